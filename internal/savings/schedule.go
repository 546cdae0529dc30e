package savings

import (
	"github.com/shopspring/decimal"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/types"
)

// PaymentEvent is a single upcoming payment of an expense.
//
// Money for the payment is saved between PeriodStart and DueDate.
type PaymentEvent struct {
	DueDate     types.Date
	PeriodStart types.Date
	Amount      decimal.Decimal
}

// track is one day of month a recurring expense is paid on.
type track struct {
	day    *int
	amount decimal.Decimal
}

// interval returns the number of months between two payments of a
// recurring expense.
func interval(f models.Frequency) int {
	if f == models.FrequencyBimonthly {
		return 2
	}
	return 1
}

// tracks returns the days of month a recurring expense is paid on.
// Biweekly expenses are paid twice, with half of the amount each time.
func tracks(e models.Expense) []track {
	if e.Frequency == models.FrequencyBiweekly {
		half := e.Amount.Div(decimal.NewFromInt(2))
		return []track{{e.DayOfMonth, half}, {e.DayOfMonth2, half}}
	}

	return []track{{e.DayOfMonth, e.Amount}}
}

// nextDue returns the first date after today that falls on day, stepping
// months months at a time.
func nextDue(today types.Date, day, months int) types.Date {
	due := today.WithDay(day)
	for !due.After(today) {
		due = due.AddMonths(months)
	}

	return due
}

// Resolve returns the upcoming payment events of the expense.
//
// Casual and scheduled expenses never have events. Events that leave no time
// to save, because the due date is not after the start of the saving period,
// are dropped.
func Resolve(e models.Expense, today types.Date) []PaymentEvent {
	var events []PaymentEvent

	switch e.Type {
	case models.ExpenseRecurring:
		months := interval(e.Frequency)

		for _, t := range tracks(e) {
			if t.day == nil || *t.day == 0 {
				continue
			}

			due := nextDue(today, *t.day, months)
			events = append(events, PaymentEvent{
				DueDate:     due,
				PeriodStart: due.AddMonths(-months),
				Amount:      t.amount,
			})
		}

	case models.ExpenseInstallment:
		index := e.Payments.NextUnpaid()
		if index < 0 {
			return nil
		}

		start := e.StartDate
		if index > 0 {
			start = InstallmentDate(e, index-1)
		}

		events = append(events, PaymentEvent{
			DueDate:     InstallmentDate(e, index),
			PeriodStart: start,
			Amount:      e.Payments[index].Amount,
		})

	default:
		return nil
	}

	valid := events[:0]
	for _, ev := range events {
		if ev.DueDate.After(ev.PeriodStart) {
			valid = append(valid, ev)
		}
	}

	return valid
}

// InstallmentDate returns the due date of the payment with the given index.
func InstallmentDate(e models.Expense, index int) types.Date {
	switch e.Frequency {
	case models.FrequencyWeekly:
		return e.StartDate.AddDays(7 * index)
	case models.FrequencyBiweekly:
		return e.StartDate.AddDays(15 * index)
	case models.FrequencyBimonthly:
		return e.StartDate.AddMonths(2 * index)
	default:
		return e.StartDate.AddMonths(index)
	}
}

// NextPayment returns the next payment of the expense and whether there is one.
//
// For installments, this is the first unpaid payment. For recurring
// expenses, it is the earliest upcoming due date with the full amount of
// the expense.
func NextPayment(e models.Expense, today types.Date) (PaymentEvent, bool) {
	switch e.Type {
	case models.ExpenseInstallment:
		index := e.Payments.NextUnpaid()
		if index < 0 {
			return PaymentEvent{}, false
		}

		return PaymentEvent{
			DueDate: InstallmentDate(e, index),
			Amount:  e.Payments[index].Amount,
		}, true

	case models.ExpenseRecurring:
		var next PaymentEvent
		found := false

		for _, ev := range Resolve(e, today) {
			if !found || ev.DueDate.Before(next.DueDate) {
				next = ev
				found = true
			}
		}

		if !found {
			return PaymentEvent{}, false
		}

		next.Amount = e.Amount
		return next, true
	}

	return PaymentEvent{}, false
}
