package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Card is a credit or debit card.
//
// Debit cards hold the money that is set aside for savings goals.
type Card struct {
	DatasetModel
	ID   uuid.UUID `json:"id" gorm:"primaryKey"`
	Name string    `json:"name"`
	Type CardType  `json:"type"`

	CreditLimit decimal.Decimal `json:"creditLimit" gorm:"type:DECIMAL(20,8)"`
	CutoffDay   int             `json:"cutoffDay"`
	PaymentDay  int             `json:"paymentDay"`

	Balance decimal.Decimal `json:"balance" gorm:"type:DECIMAL(20,8)"`
}

func (c *Card) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	return nil
}

func (c *Card) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.normalize()
	return c.Validate()
}

// normalize clears the fields that the type of the card does not use.
// Only debit cards hold a balance.
func (c *Card) normalize() {
	switch c.Type {
	case CardDebit:
		c.CreditLimit = decimal.Zero
		c.CutoffDay = 0
		c.PaymentDay = 0
	case CardCredit:
		c.Balance = decimal.Zero
	}
}

// Validate checks the fields of the card.
//
// The balance of debit cards is not checked here, it is only
// enforced when money is moved off the card.
func (c Card) Validate() error {
	switch c.Type {
	case CardCredit:
		if c.CreditLimit.IsNegative() {
			return ErrAmountNegative
		}

		if c.CutoffDay < 1 || c.CutoffDay > 31 || c.PaymentDay < 1 || c.PaymentDay > 31 {
			return ErrDayOfMonthInvalid
		}

	case CardDebit:
		return nil

	default:
		return ErrCardTypeUnknown
	}

	return nil
}

// Returns all cards of the dataset for export
func (Card) Export(tx *gorm.DB, dataset string) (json.RawMessage, error) {
	return export[Card](tx, dataset)
}
