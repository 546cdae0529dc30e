package tracker

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/types"
)

type EventType string

const (
	EventExpense EventType = "expense"
	EventIncome  EventType = "income"
	EventPayment EventType = "payment"
)

// CalendarEvent is money moving on a day.
type CalendarEvent struct {
	ID       string          `json:"id" example:"0b7a3c9d-2f1e-4b8a-9c6d-5e4f3a2b1c0d-2024-05-28"`
	SourceID uuid.UUID       `json:"sourceId"` // The expense, income or card the event is for
	Date     types.Date      `json:"date"`
	Title    string          `json:"title"`
	Type     EventType       `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
}

type calendar struct {
	events []CalendarEvent
	seen   map[string]bool
}

// add adds the event unless the source already has an event on the day.
func (c *calendar) add(source uuid.UUID, day types.Date, title string, typ EventType, amount decimal.Decimal) {
	id := fmt.Sprintf("%s-%s", source, day)
	if c.seen[id] {
		return
	}

	c.seen[id] = true
	c.events = append(c.events, CalendarEvent{
		ID:       id,
		SourceID: source,
		Date:     day,
		Title:    title,
		Type:     typ,
		Amount:   amount,
	})
}

// equalDay reports if day is set and equal to d.
func equalDay(day *int, d int) bool {
	return day != nil && *day == d
}

// recurringOn reports if a recurring resource with the frequency and days is
// due on day.
func recurringOn(day types.Date, frequency models.Frequency, dayOfWeek, dayOfMonth *int) bool {
	switch frequency {
	case models.FrequencyWeekly:
		return dayOfWeek != nil && int(day.Weekday()) == *dayOfWeek
	case models.FrequencyMonthly:
		return equalDay(dayOfMonth, day.Day())
	case models.FrequencyBimonthly:
		// January, March, May and so on
		return equalDay(dayOfMonth, day.Day()) && (day.Month()-1)%2 == 0
	}

	return false
}

// installmentOn reports if a payment of the installment is due on day.
func installmentOn(e models.Expense, day types.Date) bool {
	if day.Before(e.StartDate) {
		return false
	}

	count := len(e.Payments)

	switch e.Frequency {
	case models.FrequencyWeekly:
		diff := e.StartDate.DaysUntil(day)
		return diff%7 == 0 && diff/7 < count
	case models.FrequencyBiweekly:
		diff := e.StartDate.DaysUntil(day)
		return diff%15 == 0 && diff/15 < count
	case models.FrequencyMonthly, models.FrequencyBimonthly:
		if day.Day() != e.StartDate.Day() {
			return false
		}

		months := e.StartDate.MonthsUntil(day)
		if e.Frequency == models.FrequencyMonthly {
			return months < count
		}
		return months%2 == 0 && months/2 < count
	}

	return false
}

// Calendar returns the financial events of the month.
func (t *Tracker) Calendar(ctx context.Context, dataset string, month types.Month) ([]CalendarEvent, error) {
	s, err := t.snapshot(ctx, dataset)
	if err != nil {
		return nil, err
	}

	if month.IsZero() {
		month = types.MonthOf(t.Today())
	}

	c := calendar{
		events: make([]CalendarEvent, 0),
		seen:   make(map[string]bool),
	}

	for _, day := range month.Days() {
		for _, e := range s.Expenses {
			if (e.Type == models.ExpenseCasual || e.Type == models.ExpenseScheduled) && e.Date.Equal(day) {
				c.add(e.ID, day, e.Name, EventExpense, e.Amount)
			}
		}

		for _, i := range s.Incomes {
			if i.Type == models.IncomeCasual && i.Date.Equal(day) {
				c.add(i.ID, day, i.Name, EventIncome, i.Amount)
			}
		}

		for _, i := range s.Incomes {
			if i.Type != models.IncomeRecurring || i.Suspended {
				continue
			}

			if recurringOn(day, i.Frequency, i.DayOfWeek, i.DayOfMonth) ||
				(i.Frequency == models.FrequencyBiweekly && equalDay(i.DayOfMonth, day.Day())) {
				c.add(i.ID, day, i.Name, EventIncome, i.Amount)
			}
		}

		for _, e := range s.Expenses {
			if e.Suspended {
				continue
			}

			switch e.Type {
			case models.ExpenseInstallment:
				if installmentOn(e, day) {
					c.add(e.ID, day, e.Name, EventExpense, e.Amount)
				}

			case models.ExpenseRecurring:
				if recurringOn(day, e.Frequency, e.DayOfWeek, e.DayOfMonth) {
					c.add(e.ID, day, e.Name, EventExpense, e.Amount)
				}

				if e.Frequency == models.FrequencyBiweekly && (equalDay(e.DayOfMonth, day.Day()) || equalDay(e.DayOfMonth2, day.Day())) {
					c.add(e.ID, day, e.Name, EventExpense, e.Amount.Div(decimal.NewFromInt(2)))
				}
			}
		}
	}

	first, last := month.First(), month.Last()
	for _, card := range s.Cards {
		if card.Type != models.CardCredit {
			continue
		}

		day := first.WithDay(card.PaymentDay)
		if day.Between(first, last) {
			c.add(card.ID, day, fmt.Sprintf("Pago %s", card.Name), EventPayment, decimal.Zero)
		}
	}

	return c.events, nil
}
