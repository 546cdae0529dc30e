package savings

import (
	"github.com/weekly-savings/backend/internal/models"
)

// Reconcile merges freshly generated goals with the previous ones.
//
// Goals that were acted on keep their status, amount and saved date. Pending
// goals keep their amount as long as the total of their payment did not
// change, which keeps redistributed amounts of postponed goals. Previous goals
// without a generated counterpart are dropped.
//
// Matched goals keep their creation time. Their update time is only kept when
// nothing about the goal changed.
func Reconcile(generated, previous []models.SavingsGoal) []models.SavingsGoal {
	byID := make(map[string]models.SavingsGoal, len(previous))
	for _, g := range previous {
		byID[g.ID] = g
	}

	goals := make([]models.SavingsGoal, 0, len(generated))
	for _, g := range generated {
		old, ok := byID[g.ID]
		if !ok {
			goals = append(goals, g)
			continue
		}

		switch {
		case old.Status != models.GoalPending:
			kept := old
			kept.ExpenseName = g.ExpenseName
			kept.TotalAmount = g.TotalAmount
			kept.DueDate = g.DueDate
			goals = append(goals, withTimestamps(kept, old))

		case old.TotalAmount.Equal(g.TotalAmount):
			g.Amount = old.Amount
			goals = append(goals, withTimestamps(g, old))

		default:
			goals = append(goals, withTimestamps(g, old))
		}
	}

	return goals
}

// withTimestamps returns g with the timestamps of the stored goal.
func withTimestamps(g, stored models.SavingsGoal) models.SavingsGoal {
	g.DatasetModel = stored.DatasetModel

	changed := g.ExpenseName != stored.ExpenseName ||
		g.Status != stored.Status ||
		!g.Amount.Equal(stored.Amount) ||
		!g.TotalAmount.Equal(stored.TotalAmount) ||
		!g.DueDate.Equal(stored.DueDate)
	if changed {
		touch(&g)
	}

	return g
}
