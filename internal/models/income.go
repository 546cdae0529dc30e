package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/weekly-savings/backend/internal/types"
	"gorm.io/gorm"
)

// Income is money coming in, either on a recurring schedule or once.
type Income struct {
	DatasetModel
	ID     uuid.UUID       `json:"id" gorm:"primaryKey"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Type   IncomeType      `json:"type"`

	Frequency  Frequency `json:"frequency,omitempty"`
	DayOfWeek  *int      `json:"dayOfWeek"`
	DayOfMonth *int      `json:"dayOfMonth"`
	Suspended  bool      `json:"suspended"`

	Date types.Date `json:"date"`
}

func (i *Income) BeforeCreate(_ *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	return nil
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	i.normalize()
	return i.Validate()
}

// normalize clears the fields that the type of the income does not use.
func (i *Income) normalize() {
	switch i.Type {
	case IncomeRecurring:
		i.Date = types.Date{}
	case IncomeCasual:
		i.Frequency = ""
		i.DayOfWeek = nil
		i.DayOfMonth = nil
		i.Suspended = false
	}
}

func (i Income) Validate() error {
	if i.Amount.IsNegative() {
		return ErrAmountNegative
	}

	switch i.Type {
	case IncomeRecurring:
		if !i.Frequency.valid() {
			return ErrFrequencyUnknown
		}

		if !validDay(i.DayOfWeek, 0, 6) {
			return ErrDayOfWeekInvalid
		}

		if !validDay(i.DayOfMonth, 1, 31) {
			return ErrDayOfMonthInvalid
		}

	case IncomeCasual:
		if i.Date.IsZero() {
			return ErrDateMissing
		}

	default:
		return ErrIncomeTypeUnknown
	}

	return nil
}

// IsWeekly reports if the income is an active weekly recurring income.
func (i Income) IsWeekly() bool {
	return i.Type == IncomeRecurring && i.Frequency == FrequencyWeekly && !i.Suspended
}

// Returns all incomes of the dataset for export
func (Income) Export(tx *gorm.DB, dataset string) (json.RawMessage, error) {
	return export[Income](tx, dataset)
}
