package savings

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/weekly-savings/backend/internal/models"
	"golang.org/x/exp/slices"
)

var (
	ErrGoalNotFound      = fmt.Errorf("%w savings goal with this ID", models.ErrResourceNotFound)
	ErrInvalidTransition = errors.New("the savings goal cannot change to this status")
)

// find returns the index of the goal with the ID and checks that it has
// the expected status.
func find(goals []models.SavingsGoal, id string, status models.GoalStatus) (int, error) {
	i := slices.IndexFunc(goals, func(g models.SavingsGoal) bool {
		return g.ID == id
	})

	if i < 0 {
		return -1, ErrGoalNotFound
	}

	if goals[i].Status != status {
		return -1, fmt.Errorf("%w: goal is %s, not %s", ErrInvalidTransition, goals[i].Status, status)
	}

	return i, nil
}

// touch clears the update time of the goal so that it is set when the goal
// is stored.
func touch(g *models.SavingsGoal) {
	g.UpdatedAt = time.Time{}
}

// Postpone marks the goal as postponed and spreads its amount evenly over
// the later pending goals of the same expense.
//
// If there are no later pending goals, the amount is not saved at all.
func Postpone(goals []models.SavingsGoal, id string) ([]models.SavingsGoal, error) {
	i, err := find(goals, id, models.GoalPending)
	if err != nil {
		return nil, err
	}

	target := goals[i]
	result := slices.Clone(goals)

	var cohort []int
	for j, g := range result {
		if j != i && g.ExpenseID == target.ExpenseID && g.Status == models.GoalPending && g.WeekStartDate.After(target.WeekStartDate) {
			cohort = append(cohort, j)
		}
	}

	if len(cohort) > 0 {
		share := target.Amount.Div(decimal.NewFromInt(int64(len(cohort))))
		for _, j := range cohort {
			result[j].Amount = result[j].Amount.Add(share)
			touch(&result[j])
		}
	}

	result[i].Status = models.GoalPostponed
	touch(&result[i])
	return result, nil
}

// MarkSaved marks a pending goal as saved at now.
func MarkSaved(goals []models.SavingsGoal, id string, now time.Time) ([]models.SavingsGoal, error) {
	i, err := find(goals, id, models.GoalPending)
	if err != nil {
		return nil, err
	}

	result := slices.Clone(goals)
	result[i].Status = models.GoalSaved
	result[i].SavedDate = &now
	touch(&result[i])

	return result, nil
}

// MarkSpent marks a saved goal as spent.
func MarkSpent(goals []models.SavingsGoal, id string) ([]models.SavingsGoal, error) {
	i, err := find(goals, id, models.GoalSaved)
	if err != nil {
		return nil, err
	}

	result := slices.Clone(goals)
	result[i].Status = models.GoalSpent
	touch(&result[i])

	return result, nil
}
