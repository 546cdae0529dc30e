package tracker

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/savings"
	"github.com/weekly-savings/backend/internal/types"
)

// WeekGoal is a savings goal as shown in the summary of its week.
type WeekGoal struct {
	models.SavingsGoal
	DisplayAmount decimal.Decimal `json:"displayAmount"` // The amount to save, 0 for postponed goals
	Progress      decimal.Decimal `json:"progress"`      // Percentage of the total amount covered by other goals
}

// WeekSummary is the overview of the money of one week.
type WeekSummary struct {
	WeekStart   types.Date      `json:"weekStart"`
	WeekEnd     types.Date      `json:"weekEnd"`
	Currency    string          `json:"currency" example:"MXN"`
	Income      decimal.Decimal `json:"income"`      // Sum of the active weekly incomes
	Programmed  decimal.Decimal `json:"programmed"`  // Sum of the pending goals of the week
	Saved       decimal.Decimal `json:"saved"`       // Savings put aside during the week
	FreeCash    decimal.Decimal `json:"freeCash"`    // Income that is not saved
	Accumulated decimal.Decimal `json:"accumulated"` // Sum of the debit card balances
	Goals       []WeekGoal      `json:"goals"`
}

// WeekSummary returns the summary of the week that day is in. For a zero day,
// the current week is used.
func (t *Tracker) WeekSummary(ctx context.Context, dataset string, day types.Date) (WeekSummary, error) {
	s, err := t.snapshot(ctx, dataset)
	if err != nil {
		return WeekSummary{}, err
	}

	if day.IsZero() {
		day = t.Today()
	}

	w := WeekSummary{
		WeekStart:   day.WeekStart(),
		WeekEnd:     day.WeekEnd(),
		Currency:    t.currency.String(),
		Income:      decimal.Zero,
		Programmed:  decimal.Zero,
		Saved:       decimal.Zero,
		Accumulated: decimal.Zero,
		Goals:       make([]WeekGoal, 0),
	}

	for _, i := range s.Incomes {
		if i.IsWeekly() {
			w.Income = w.Income.Add(i.Amount)
		}
	}

	for _, g := range s.Goals {
		if g.WeekStartDate.Equal(w.WeekStart) {
			w.Goals = append(w.Goals, WeekGoal{
				SavingsGoal:   g,
				DisplayAmount: g.DisplayAmount(),
				Progress:      g.Progress(),
			})

			if g.Status == models.GoalPending {
				w.Programmed = w.Programmed.Add(g.Amount)
			}
		}

		if (g.Status == models.GoalSaved || g.Status == models.GoalSpent) && g.SavedDate != nil {
			if types.DateOf(g.SavedDate.In(t.location)).Between(w.WeekStart, w.WeekEnd) {
				w.Saved = w.Saved.Add(g.Amount)
			}
		}
	}

	w.FreeCash = w.Income.Sub(w.Saved)

	for _, c := range s.Cards {
		if c.Type == models.CardDebit {
			w.Accumulated = w.Accumulated.Add(c.Balance)
		}
	}

	return w, nil
}

// ExpenseSavings is the progress of the savings for the next payment of an
// expense.
type ExpenseSavings struct {
	Expense     models.Expense  `json:"expense"`
	Saved       decimal.Decimal `json:"saved"`       // Sum of the saved goals
	NextPayment types.Date      `json:"nextPayment"` // Due date of the next payment
	Amount      decimal.Decimal `json:"amount"`      // Amount of the next payment
	Progress    decimal.Decimal `json:"progress"`    // Percentage of the next payment that is saved
	CanPay      bool            `json:"canPay"`      // If the savings cover the next payment
}

// ExpenseSavings returns the savings progress of every recurring expense and
// installment that has savings goals.
func (t *Tracker) ExpenseSavings(ctx context.Context, dataset string) ([]ExpenseSavings, error) {
	s, err := t.snapshot(ctx, dataset)
	if err != nil {
		return nil, err
	}

	withGoals := make(map[string]bool)
	for _, g := range s.Goals {
		withGoals[g.ExpenseID.String()] = true
	}

	today := t.Today()
	result := make([]ExpenseSavings, 0)

	for _, e := range s.Expenses {
		if e.Type != models.ExpenseRecurring && e.Type != models.ExpenseInstallment {
			continue
		}

		if !withGoals[e.ID.String()] {
			continue
		}

		next, ok := savings.NextPayment(e, today)
		if !ok {
			continue
		}

		saved := savedFor(s.Goals, e.ID)
		progress := decimal.Zero
		if next.Amount.IsPositive() {
			progress = saved.Div(next.Amount).Mul(decimal.NewFromInt(100)).Round(2)
		}

		result = append(result, ExpenseSavings{
			Expense:     e,
			Saved:       saved,
			NextPayment: next.DueDate,
			Amount:      next.Amount,
			Progress:    progress,
			CanPay:      saved.GreaterThanOrEqual(next.Amount),
		})
	}

	return result, nil
}
