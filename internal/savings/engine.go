// Package savings computes the weekly savings goals for upcoming payments.
//
// All functions are pure: they take snapshots of the collections and
// return new slices without modifying their input.
package savings

import (
	"time"

	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/types"
)

// Anchor returns the weekday the income is received on.
//
// The first active weekly recurring income is used. If there is none, or it
// has no day of week, there is no anchor and ok is false.
func Anchor(incomes []models.Income) (weekday time.Weekday, ok bool) {
	for _, i := range incomes {
		if !i.IsWeekly() {
			continue
		}

		if i.DayOfWeek == nil {
			return 0, false
		}

		return time.Weekday(*i.DayOfWeek), true
	}

	return 0, false
}

// Generate computes the savings goals for all expenses and reconciles them
// with the previous goals.
//
// Without an income anchor, no goals are generated and the result is empty.
func Generate(expenses []models.Expense, incomes []models.Income, previous []models.SavingsGoal, today types.Date) []models.SavingsGoal {
	weekday, ok := Anchor(incomes)
	if !ok {
		return []models.SavingsGoal{}
	}

	generated := make([]models.SavingsGoal, 0)
	for _, e := range expenses {
		if !Eligible(e) {
			continue
		}

		generated = append(generated, GoalsForEvents(e, Resolve(e, today), weekday)...)
	}

	return Reconcile(generated, previous)
}
