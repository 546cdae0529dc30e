package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/weekly-savings/backend/internal/types"
	"gorm.io/gorm"
)

// SavingsGoal is the amount to set aside in one week for an upcoming payment
// of an expense.
type SavingsGoal struct {
	DatasetModel
	ID            string          `json:"id" gorm:"primaryKey" example:"7b4a1e3c-3c1f-4c5e-9a8e-0d2b9b7f6c11-2024-05-28-2024-05-06"`
	ExpenseID     uuid.UUID       `json:"expenseId" gorm:"index"`
	ExpenseName   string          `json:"expenseName"`
	WeekStartDate types.Date      `json:"weekStartDate" gorm:"index"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	TotalAmount   decimal.Decimal `json:"totalAmount" gorm:"type:DECIMAL(20,8)"`
	DueDate       types.Date      `json:"dueDate"`
	Status        GoalStatus      `json:"status"`
	SavedDate     *time.Time      `json:"savedDate"`
}

func (g *SavingsGoal) BeforeSave(_ *gorm.DB) error {
	if !g.Status.Valid() {
		return ErrGoalStatusUnknown
	}

	return nil
}

// DisplayAmount is the amount shown for the week. Postponed goals
// do not need any money.
func (g SavingsGoal) DisplayAmount() decimal.Decimal {
	if g.Status == GoalPostponed {
		return decimal.Zero
	}

	return g.Amount
}

// Progress returns the share of the total amount that is covered by goals other
// than this one, as a percentage.
func (g SavingsGoal) Progress() decimal.Decimal {
	switch g.Status {
	case GoalSaved, GoalSpent:
		return decimal.NewFromInt(100)
	case GoalPostponed:
		return decimal.Zero
	}

	if !g.TotalAmount.IsPositive() {
		return decimal.Zero
	}

	return g.TotalAmount.Sub(g.Amount).Div(g.TotalAmount).Mul(decimal.NewFromInt(100)).Round(2)
}

// Returns all savings goals of the dataset for export
func (SavingsGoal) Export(tx *gorm.DB, dataset string) (json.RawMessage, error) {
	return export[SavingsGoal](tx, dataset)
}
