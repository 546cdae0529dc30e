package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/tracker"
	"github.com/weekly-savings/backend/internal/types"
	"golang.org/x/exp/slices"
)

type ExpenseEditable struct {
	Name             string               `json:"name" example:"Rent" default:""`                                                                                   // Name of the expense
	Amount           decimal.Decimal      `json:"amount" example:"8500" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`            // Amount of each payment. Calculated for installments
	Type             models.ExpenseType   `json:"type" example:"recurring" enums:"recurring,casual,scheduled,installment"`                                          // Type of the expense
	Frequency        models.Frequency     `json:"frequency" example:"monthly" enums:"weekly,biweekly,monthly,bimonthly"`                                            // How often a recurring expense or an installment is paid
	PaymentMethod    models.PaymentMethod `json:"paymentMethod" example:"debit" enums:"credit,debit,cash"`                                                          // How the expense is paid
	PaymentSourceID  *uuid.UUID           `json:"paymentSourceId" example:"4e3b1c0d-8a7f-4b6e-9d5c-2f1e0a9b8c7d"`                                                   // The card the expense is paid with
	DayOfWeek        *int                 `json:"dayOfWeek" example:"5" minimum:"0" maximum:"6"`                                                                    // Day of the week, 0 is Sunday
	DayOfMonth       *int                 `json:"dayOfMonth" example:"28" minimum:"1" maximum:"31"`                                                                 // Day of the month the expense is due
	DayOfMonth2      *int                 `json:"dayOfMonth2" example:"15" minimum:"1" maximum:"31"`                                                                // Second day of the month for biweekly expenses
	TotalAmount      decimal.Decimal      `json:"totalAmount" example:"12000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`      // Total amount of an installment plan
	NumberOfPayments int                  `json:"numberOfPayments" example:"12" minimum:"0" default:"0"`                                                            // Number of payments of an installment plan
	StartDate        types.Date           `json:"startDate" example:"2024-05-15"`                                                                                   // Due date of the first payment of an installment plan
	Date             types.Date           `json:"date" example:"2024-06-01"`                                                                                        // Date of a casual or scheduled expense
}

// newExpenseEditable returns the editable fields of the expense.
func newExpenseEditable(e models.Expense) ExpenseEditable {
	return ExpenseEditable{
		Name:             e.Name,
		Amount:           e.Amount,
		Type:             e.Type,
		Frequency:        e.Frequency,
		PaymentMethod:    e.PaymentMethod,
		PaymentSourceID:  e.PaymentSourceID,
		DayOfWeek:        e.DayOfWeek,
		DayOfMonth:       e.DayOfMonth,
		DayOfMonth2:      e.DayOfMonth2,
		TotalAmount:      e.TotalAmount,
		NumberOfPayments: e.NumberOfPayments,
		StartDate:        e.StartDate,
		Date:             e.Date,
	}
}

// apply sets the editable fields of the expense.
func (editable ExpenseEditable) apply(e *models.Expense) {
	e.Name = editable.Name
	e.Amount = editable.Amount
	e.Type = editable.Type
	e.Frequency = editable.Frequency
	e.PaymentMethod = editable.PaymentMethod
	e.PaymentSourceID = editable.PaymentSourceID
	e.DayOfWeek = editable.DayOfWeek
	e.DayOfMonth = editable.DayOfMonth
	e.DayOfMonth2 = editable.DayOfMonth2
	e.TotalAmount = editable.TotalAmount
	e.NumberOfPayments = editable.NumberOfPayments
	e.StartDate = editable.StartDate
	e.Date = editable.Date
}

// model returns the database resource for the API representation of the editable fields
func (editable ExpenseEditable) model() models.Expense {
	var e models.Expense
	editable.apply(&e)
	return e
}

type ExpenseLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/datasets/household/expenses/0b7a3c9d-2f1e-4b8a-9c6d-5e4f3a2b1c0d"`                // The expense itself
	Goals      string `json:"goals" example:"https://example.com/api/v1/datasets/household/goals?expense=0b7a3c9d-2f1e-4b8a-9c6d-5e4f3a2b1c0d"`          // Savings goals of the expense
	Suspension string `json:"suspension" example:"https://example.com/api/v1/datasets/household/expenses/0b7a3c9d-2f1e-4b8a-9c6d-5e4f3a2b1c0d/suspension"` // Suspends or resumes the expense
	Pay        string `json:"pay" example:"https://example.com/api/v1/datasets/household/expenses/0b7a3c9d-2f1e-4b8a-9c6d-5e4f3a2b1c0d/pay"`               // Pays the next payment with the saved goals
}

type Expense struct {
	models.Expense
	Links ExpenseLinks `json:"links"`
}

// newExpense returns the API v1 representation of the resource
func newExpense(c *gin.Context, model models.Expense) Expense {
	url := linkBase(c)

	return Expense{
		Expense: model,
		Links: ExpenseLinks{
			Self:       fmt.Sprintf("%s/expenses/%s", url, model.ID),
			Goals:      fmt.Sprintf("%s/goals?expense=%s", url, model.ID),
			Suspension: fmt.Sprintf("%s/expenses/%s/suspension", url, model.ID),
			Pay:        fmt.Sprintf("%s/expenses/%s/pay", url, model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data  []Expense `json:"data"`                                                          // List of resources
	Error *string   `json:"error" example:"the specified ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error" example:"the specified ID is not a valid UUID"` // The error, if any occurred
	Data  []ExpenseResponse `json:"data"`                                                          // List of created resources
}

func (r *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Error *string  `json:"error" example:"the specified ID is not a valid UUID"` // The error, if any occurred
	Data  *Expense `json:"data"`                                                          // The resource
}

type ExpenseQueryFilter struct {
	Type      models.ExpenseType `form:"type"`      // By type
	Name      string             `form:"name"`      // By name, supports glob patterns
	Suspended bool               `form:"suspended"` // Is the expense suspended?
}

func (f ExpenseQueryFilter) filter(setFields []string) (tracker.ExpenseFilter, error) {
	filter := tracker.ExpenseFilter{
		Type: f.Type,
		Name: f.Name,
	}

	if slices.Contains(setFields, "Type") && !f.Type.Valid() {
		return filter, models.ErrExpenseTypeUnknown
	}

	if slices.Contains(setFields, "Suspended") {
		filter.Suspended = &f.Suspended
	}

	return filter, nil
}

type PaymentEditable struct {
	Amount decimal.Decimal `json:"amount" example:"1250" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount of the payment
	Paid   bool            `json:"paid" example:"false" default:"false"`                                                    // If the payment has been made
}

type PaymentResponse struct {
	Error *string          `json:"error" example:"the saved goals of the expense do not cover the payment"` // The error, if any occurred
	Data  *tracker.Payment `json:"data"`                                                                    // The payment that was made
}
