package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/weekly-savings/backend/internal/models"
	ws_uuid "github.com/weekly-savings/backend/internal/uuid"
)

type CardEditable struct {
	Name        string          `json:"name" example:"Payroll" default:""`                                                                         // Name of the card
	Type        models.CardType `json:"type" example:"debit" enums:"credit,debit"`                                                                 // Type of the card
	CreditLimit decimal.Decimal `json:"creditLimit" example:"20000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Credit limit of a credit card
	CutoffDay   int             `json:"cutoffDay" example:"3" minimum:"1" maximum:"31"`                                                            // Day of the month the statement of a credit card is cut
	PaymentDay  int             `json:"paymentDay" example:"23" minimum:"1" maximum:"31"`                                                          // Day of the month a credit card must be paid
	Balance     decimal.Decimal `json:"balance" example:"1500" default:"0"`                                                                        // The money on a debit card
}

func newCardEditable(c models.Card) CardEditable {
	return CardEditable{
		Name:        c.Name,
		Type:        c.Type,
		CreditLimit: c.CreditLimit,
		CutoffDay:   c.CutoffDay,
		PaymentDay:  c.PaymentDay,
		Balance:     c.Balance,
	}
}

func (editable CardEditable) apply(c *models.Card) {
	c.Name = editable.Name
	c.Type = editable.Type
	c.CreditLimit = editable.CreditLimit
	c.CutoffDay = editable.CutoffDay
	c.PaymentDay = editable.PaymentDay
	c.Balance = editable.Balance
}

// model returns the database resource for the API representation of the editable fields
func (editable CardEditable) model() models.Card {
	var c models.Card
	editable.apply(&c)
	return c
}

type CardLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/datasets/household/cards/4e3b1c0d-8a7f-4b6e-9d5c-2f1e0a9b8c7d"`                                     // The card itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/datasets/household/expenses"`                                                                   // Expenses of the dataset
	Transfer string `json:"transfer" example:"https://example.com/api/v1/datasets/household/cards/4e3b1c0d-8a7f-4b6e-9d5c-2f1e0a9b8c7d?transferTo=YOUR_TARGET_CARD_ID"` // Deletes the card and moves its balance to another debit card
}

type Card struct {
	models.Card
	Links CardLinks `json:"links"`
}

// newCard returns the API v1 representation of the resource
func newCard(c *gin.Context, model models.Card) Card {
	url := linkBase(c)

	return Card{
		Card: model,
		Links: CardLinks{
			Self:     fmt.Sprintf("%s/cards/%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/expenses", url),
			Transfer: fmt.Sprintf("%s/cards/%s?transferTo=YOUR_TARGET_CARD_ID", url, model.ID),
		},
	}
}

type CardListResponse struct {
	Data  []Card  `json:"data"`                                                          // List of resources
	Error *string `json:"error" example:"the specified ID is not a valid UUID"` // The error, if any occurred
}

type CardCreateResponse struct {
	Error *string        `json:"error" example:"the specified ID is not a valid UUID"` // The error, if any occurred
	Data  []CardResponse `json:"data"`                                                          // List of created resources
}

func (r *CardCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CardResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CardResponse struct {
	Error *string `json:"error" example:"the specified ID is not a valid UUID"` // The error, if any occurred
	Data  *Card   `json:"data"`                                                          // The resource
}

type CardQueryFilter struct {
	Type models.CardType `form:"type"` // By type
}

type QueryTransfer struct {
	TransferTo ws_uuid.UUID `form:"transferTo" example:"8c7d6e5f-4a3b-4c2d-9e1f-0a9b8c7d6e5f"` // ID of the debit card that receives the balance
}
