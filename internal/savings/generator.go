package savings

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/types"
)

// GoalID returns the ID of the goal of the expense for the payment due on
// dueDate that is saved in the week starting at weekStart.
func GoalID(expenseID uuid.UUID, dueDate, weekStart types.Date) string {
	return fmt.Sprintf("%s-%s-%s", expenseID, dueDate, weekStart)
}

// Eligible reports if goals are generated for the expense.
//
// Weekly recurring expenses are paid from the weekly income directly and
// need no savings.
func Eligible(e models.Expense) bool {
	if e.Suspended {
		return false
	}

	switch e.Type {
	case models.ExpenseInstallment:
		return true
	case models.ExpenseRecurring:
		return e.Frequency != models.FrequencyWeekly
	}

	return false
}

// GoalsForEvents splits every event into equal pending goals, one for each
// day in its saving period on which the income is received.
//
// Events without any income day in their period are skipped.
func GoalsForEvents(e models.Expense, events []PaymentEvent, weekday time.Weekday) []models.SavingsGoal {
	goals := make([]models.SavingsGoal, 0)
	index := make(map[string]int)

	for _, ev := range events {
		var paydays []types.Date
		for _, day := range types.Range(ev.PeriodStart, ev.DueDate) {
			if day.Weekday() == weekday {
				paydays = append(paydays, day)
			}
		}

		if len(paydays) == 0 {
			continue
		}

		quota := ev.Amount.Div(decimal.NewFromInt(int64(len(paydays))))

		for _, day := range paydays {
			week := day.WeekStart()
			id := GoalID(e.ID, ev.DueDate, week)

			// Both days of a biweekly expense can resolve to the same
			// payment, the goals are merged then
			if i, ok := index[id]; ok {
				goals[i].Amount = goals[i].Amount.Add(quota)
				goals[i].TotalAmount = goals[i].TotalAmount.Add(ev.Amount)
				continue
			}

			index[id] = len(goals)
			goals = append(goals, models.SavingsGoal{
				ID:            id,
				ExpenseID:     e.ID,
				ExpenseName:   e.Name,
				WeekStartDate: week,
				Amount:        quota,
				TotalAmount:   ev.Amount,
				DueDate:       ev.DueDate,
				Status:        models.GoalPending,
			})
		}
	}

	return goals
}
