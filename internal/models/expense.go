package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/weekly-savings/backend/internal/types"
	"gorm.io/gorm"
)

// Expense is an outgoing payment.
//
// The fields used depend on the Type. Recurring expenses repeat with their
// Frequency on DayOfMonth (and DayOfMonth2 for biweekly ones). Installment
// expenses are paid in NumberOfPayments Payments, starting at StartDate.
// Casual and scheduled expenses happen once, on Date.
type Expense struct {
	DatasetModel
	ID     uuid.UUID       `json:"id" gorm:"primaryKey"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Type   ExpenseType     `json:"type"`

	Frequency       Frequency     `json:"frequency,omitempty"`
	PaymentMethod   PaymentMethod `json:"paymentMethod,omitempty"`
	PaymentSourceID *uuid.UUID    `json:"paymentSourceId"`
	DayOfWeek       *int          `json:"dayOfWeek"`
	DayOfMonth      *int          `json:"dayOfMonth"`
	DayOfMonth2     *int          `json:"dayOfMonth2"`
	Suspended       bool          `json:"suspended"`

	TotalAmount      decimal.Decimal `json:"totalAmount" gorm:"type:DECIMAL(20,8)"`
	NumberOfPayments int             `json:"numberOfPayments"`
	Payments         Payments        `json:"payments"`
	StartDate        types.Date      `json:"startDate"`

	Date types.Date `json:"date"`
}

func (e *Expense) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	return nil
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.normalize()
	return e.Validate()
}

// normalize clears the fields that the type of the expense does not use.
func (e *Expense) normalize() {
	if e.Type != ExpenseRecurring {
		e.DayOfWeek = nil
		e.DayOfMonth = nil
		e.DayOfMonth2 = nil
	}

	if e.Type != ExpenseInstallment {
		e.TotalAmount = decimal.Zero
		e.NumberOfPayments = 0
		e.StartDate = types.Date{}
	}

	if e.Type != ExpenseCasual && e.Type != ExpenseScheduled {
		e.Date = types.Date{}
	} else {
		e.Frequency = ""
		e.Suspended = false
	}

	if e.PaymentMethod == PaymentCash {
		e.PaymentSourceID = nil
	}
}

// Validate checks the fields needed for the type of the expense.
func (e Expense) Validate() error {
	if e.Amount.IsNegative() {
		return ErrAmountNegative
	}

	switch e.Type {
	case ExpenseRecurring:
		if !e.Frequency.valid() {
			return ErrFrequencyUnknown
		}

		if !e.PaymentMethod.valid() {
			return ErrPaymentMethodUnknown
		}

		if !validDay(e.DayOfWeek, 0, 6) {
			return ErrDayOfWeekInvalid
		}

		if !validDay(e.DayOfMonth, 1, 31) || !validDay(e.DayOfMonth2, 1, 31) {
			return ErrDayOfMonthInvalid
		}

	case ExpenseInstallment:
		if !e.Frequency.valid() {
			return ErrFrequencyUnknown
		}

		if !e.PaymentMethod.valid() {
			return ErrPaymentMethodUnknown
		}

		if e.TotalAmount.IsNegative() {
			return ErrAmountNegative
		}

		if e.NumberOfPayments < 1 || len(e.Payments) != e.NumberOfPayments {
			return ErrPaymentCountInvalid
		}

		for _, p := range e.Payments {
			if p.Amount.IsNegative() {
				return ErrAmountNegative
			}
		}

		if e.StartDate.IsZero() {
			return ErrDateMissing
		}

	case ExpenseCasual, ExpenseScheduled:
		if e.Date.IsZero() {
			return ErrDateMissing
		}

	default:
		return ErrExpenseTypeUnknown
	}

	return nil
}

// Suspendable reports if the expense can be suspended.
func (e Expense) Suspendable() bool {
	return e.Type == ExpenseRecurring || e.Type == ExpenseInstallment
}

// PaidWith reports if the expense is paid with the card.
func (e Expense) PaidWith(cardID uuid.UUID) bool {
	return e.PaymentSourceID != nil && *e.PaymentSourceID == cardID
}

// Returns all expenses of the dataset for export
func (Expense) Export(tx *gorm.DB, dataset string) (json.RawMessage, error) {
	return export[Expense](tx, dataset)
}
