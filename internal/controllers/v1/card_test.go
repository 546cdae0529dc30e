package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	v1 "github.com/weekly-savings/backend/internal/controllers/v1"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/tracker"
	"github.com/weekly-savings/backend/test"
)

func getCard(t *testing.T, url string, expectedStatus ...int) v1.CardResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodGet, url, "")
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var card v1.CardResponse
	test.DecodeResponse(t, &r, &card)

	return card
}

func createGold(t *testing.T) v1.CardResponse {
	return createTestCard(t, v1.CardEditable{
		Name:        "Gold",
		Type:        models.CardCredit,
		CreditLimit: decimal.NewFromInt(20000),
		CutoffDay:   3,
		PaymentDay:  23,
	})
}

func (suite *TestSuiteStandard) TestCreateCards() {
	debit := createTestCard(suite.T(), v1.CardEditable{Balance: decimal.NewFromInt(1500)})
	gold := createGold(suite.T())

	suite.Assert().Equal(base+"/cards/"+debit.Data.ID.String(), debit.Data.Links.Self)
	suite.Assert().Equal(base+"/expenses", debit.Data.Links.Expenses)
	suite.Assert().Equal(base+"/cards/"+debit.Data.ID.String()+"?transferTo=YOUR_TARGET_CARD_ID", debit.Data.Links.Transfer)
	assertDecimal(suite.T(), "1500", debit.Data.Balance)

	card := getCard(suite.T(), gold.Data.Links.Self)
	suite.Assert().Equal(models.CardCredit, card.Data.Type)
	suite.Assert().Equal(23, card.Data.PaymentDay)
	assertDecimal(suite.T(), "20000", card.Data.CreditLimit)
}

func (suite *TestSuiteStandard) TestCreateCardInvalid() {
	tests := []struct {
		name string
		card v1.CardEditable
	}{
		{"Unknown type", v1.CardEditable{Type: "prepaid"}},
		{"No cutoff day", v1.CardEditable{Type: models.CardCredit, PaymentDay: 23}},
		{"Payment day too large", v1.CardEditable{Type: models.CardCredit, CutoffDay: 3, PaymentDay: 32}},
		{"Negative credit limit", v1.CardEditable{Type: models.CardCredit, CutoffDay: 3, PaymentDay: 23, CreditLimit: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_ = createTestCard(t, tt.card, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetCards() {
	_ = createTestCard(suite.T(), v1.CardEditable{})
	_ = createTestCard(suite.T(), v1.CardEditable{Name: "Payroll"})
	_ = createGold(suite.T())

	tests := []struct {
		query  string
		len    int
		status int
	}{
		{"", 3, http.StatusOK},
		{"type=debit", 2, http.StatusOK},
		{"type=credit", 1, http.StatusOK},
		{"type=prepaid", 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, base+"/cards?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var cards v1.CardListResponse
			test.DecodeResponse(t, &r, &cards)
			assert.Len(t, cards.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestGetCardErrors() {
	_ = getCard(suite.T(), base+"/cards/c1d4e8a2-7b3f-4e6a-9d0c-5f2b8a1e7c3d", http.StatusNotFound)
	_ = getCard(suite.T(), base+"/cards/gold", http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateCard() {
	card := createTestCard(suite.T(), v1.CardEditable{Balance: decimal.NewFromInt(100)})

	r := test.Request(suite.T(), http.MethodPatch, card.Data.Links.Self, `{"balance": "250"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.CardResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assertDecimal(suite.T(), "250", updated.Data.Balance)
	suite.Assert().Equal("Savings", updated.Data.Name)

	r = test.Request(suite.T(), http.MethodPatch, card.Data.Links.Self, `{"type": "prepaid"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, card.Data.Links.Self, `{"type": "credit", "cutoffDay": 3, "paymentDay": 23}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var rejected v1.CardResponse
	test.DecodeResponse(suite.T(), &r, &rejected)
	suite.Require().NotNil(rejected.Error)
	suite.Assert().Contains(*rejected.Error, tracker.ErrBalanceOnTypeChange.Error())

	r = test.Request(suite.T(), http.MethodPatch, base+"/cards/c1d4e8a2-7b3f-4e6a-9d0c-5f2b8a1e7c3d", `{"balance": "250"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	stored := getCard(suite.T(), card.Data.Links.Self)
	suite.Assert().Equal(models.CardDebit, stored.Data.Type)
}

func (suite *TestSuiteStandard) TestDeleteCardMovesExpensesToCash() {
	gold := createGold(suite.T())
	phone := createTestExpense(suite.T(), v1.ExpenseEditable{
		Name:            "Phone",
		Type:            models.ExpenseRecurring,
		Frequency:       models.FrequencyMonthly,
		PaymentMethod:   models.PaymentCredit,
		PaymentSourceID: &gold.Data.ID,
		Amount:          decimal.NewFromInt(300),
		DayOfMonth:      ptr(5),
	})

	r := test.Request(suite.T(), http.MethodDelete, gold.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	_ = getCard(suite.T(), gold.Data.Links.Self, http.StatusNotFound)

	expense := getExpense(suite.T(), phone.Data.Links.Self)
	suite.Assert().Equal(models.PaymentCash, expense.Data.PaymentMethod)
	suite.Assert().Nil(expense.Data.PaymentSourceID)
}

func (suite *TestSuiteStandard) TestDeleteCardTransfer() {
	savings := createTestCard(suite.T(), v1.CardEditable{Balance: decimal.NewFromInt(500)})
	payroll := createTestCard(suite.T(), v1.CardEditable{Name: "Payroll", Balance: decimal.NewFromInt(100)})
	gold := createGold(suite.T())

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"No target", "", http.StatusBadRequest},
		{"Same card", "transferTo=" + savings.Data.ID.String(), http.StatusBadRequest},
		{"Credit card", "transferTo=" + gold.Data.ID.String(), http.StatusBadRequest},
		{"Unknown card", "transferTo=c1d4e8a2-7b3f-4e6a-9d0c-5f2b8a1e7c3d", http.StatusNotFound},
		{"Invalid ID", "transferTo=payroll", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, fmt.Sprintf("%s?%s", savings.Data.Links.Self, tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// Nothing was deleted or transferred
	card := getCard(suite.T(), savings.Data.Links.Self)
	assertDecimal(suite.T(), "500", card.Data.Balance)

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("%s?transferTo=%s", savings.Data.Links.Self, payroll.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	card = getCard(suite.T(), payroll.Data.Links.Self)
	assertDecimal(suite.T(), "600", card.Data.Balance)

	// Payroll is the only debit card left
	r = test.Request(suite.T(), http.MethodDelete, payroll.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteCardNotFound() {
	r := test.Request(suite.T(), http.MethodDelete, base+"/cards/c1d4e8a2-7b3f-4e6a-9d0c-5f2b8a1e7c3d", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
