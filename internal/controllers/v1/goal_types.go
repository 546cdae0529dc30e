package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/tracker"
	"github.com/weekly-savings/backend/internal/types"
	ws_uuid "github.com/weekly-savings/backend/internal/uuid"
	"golang.org/x/exp/slices"
)

type GoalLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/datasets/household/goals/0b7a3c9d-2f1e-4b8a-9c6d-5e4f3a2b1c0d-2024-05-28-2024-05-06"`              // The goal itself
	Expense  string `json:"expense" example:"https://example.com/api/v1/datasets/household/expenses/0b7a3c9d-2f1e-4b8a-9c6d-5e4f3a2b1c0d"`                             // The expense the goal saves for
	Save     string `json:"save" example:"https://example.com/api/v1/datasets/household/goals/0b7a3c9d-2f1e-4b8a-9c6d-5e4f3a2b1c0d-2024-05-28-2024-05-06/save"`         // Marks the goal as saved
	Postpone string `json:"postpone" example:"https://example.com/api/v1/datasets/household/goals/0b7a3c9d-2f1e-4b8a-9c6d-5e4f3a2b1c0d-2024-05-28-2024-05-06/postpone"` // Postpones the goal
}

type Goal struct {
	models.SavingsGoal
	DisplayAmount decimal.Decimal `json:"displayAmount" example:"200"` // The amount to save this week, 0 for postponed goals
	Progress      decimal.Decimal `json:"progress" example:"50"`       // Percentage of the total amount covered by the other goals of the payment
	Links         GoalLinks       `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.SavingsGoal) Goal {
	url := linkBase(c)

	return Goal{
		SavingsGoal:   model,
		DisplayAmount: model.DisplayAmount(),
		Progress:      model.Progress(),
		Links: GoalLinks{
			Self:     fmt.Sprintf("%s/goals/%s", url, model.ID),
			Expense:  fmt.Sprintf("%s/expenses/%s", url, model.ExpenseID),
			Save:     fmt.Sprintf("%s/goals/%s/save", url, model.ID),
			Postpone: fmt.Sprintf("%s/goals/%s/postpone", url, model.ID),
		},
	}
}

// newGoals returns the API v1 representation of the resources
func newGoals(c *gin.Context, goals []models.SavingsGoal) []Goal {
	data := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, newGoal(c, goal))
	}

	return data
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`                                                     // List of resources
	Error *string `json:"error" example:"the goal status must be one of 'pending'"` // The error, if any occurred
}

type GoalResponse struct {
	Error *string `json:"error" example:"the savings goal cannot change to this status"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                       // The resource
}

type GoalQueryFilter struct {
	Week      types.Date        `form:"week" example:"2024-05-08"` // Any day of the week of the goals
	ExpenseID ws_uuid.UUID      `form:"expense"`                   // ID of the expense
	Status    models.GoalStatus `form:"status"`                    // By status
	Name      string            `form:"name"`                      // By expense name, supports glob patterns
}

func (f GoalQueryFilter) filter(setFields []string) (tracker.GoalFilter, error) {
	if slices.Contains(setFields, "Status") && !f.Status.Valid() {
		return tracker.GoalFilter{}, models.ErrGoalStatusUnknown
	}

	return tracker.GoalFilter{
		Week:      f.Week,
		ExpenseID: f.ExpenseID.UUID,
		Status:    f.Status,
		Name:      f.Name,
	}, nil
}
