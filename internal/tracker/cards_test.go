package tracker_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/tracker"
)

func (suite *TestSuiteStandard) TestListCards() {
	suite.createDebitCard("Savings", 0)
	suite.createCreditCard("Gold", 10)

	cards, err := suite.t.ListCards(ctx, dataset, "")
	suite.Require().Nil(err)
	suite.Assert().Len(cards, 2)

	cards, err = suite.t.ListCards(ctx, dataset, models.CardCredit)
	suite.Require().Nil(err)
	suite.Require().Len(cards, 1)
	suite.Assert().Equal("Gold", cards[0].Name)
}

func (suite *TestSuiteStandard) TestCreateCardInvalid() {
	_, err := suite.t.CreateCard(ctx, dataset, models.Card{Name: "Gold", Type: models.CardCredit, CutoffDay: 3, PaymentDay: 40})
	suite.Assert().ErrorIs(err, models.ErrDayOfMonthInvalid)

	_, err = suite.t.CreateCard(ctx, dataset, models.Card{Name: "Gift", Type: "gift"})
	suite.Assert().ErrorIs(err, models.ErrCardTypeUnknown)
}

func (suite *TestSuiteStandard) TestUpdateCard() {
	card := suite.createDebitCard("Savings", 0)

	updated, err := suite.t.UpdateCard(ctx, dataset, card.ID, func(c *models.Card) error {
		c.Balance = decimal.NewFromInt(250)
		return nil
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(card.ID, updated.ID)

	stored, err := suite.t.GetCard(ctx, dataset, card.ID)
	suite.Require().Nil(err)
	suite.assertDecimal("250", stored.Balance)
}

func (suite *TestSuiteStandard) TestDeleteCardMovesExpensesToCash() {
	gold := suite.createCreditCard("Gold", 10)

	phone, err := suite.t.CreateExpense(ctx, dataset, models.Expense{
		Name:            "Phone",
		Type:            models.ExpenseRecurring,
		Frequency:       models.FrequencyMonthly,
		PaymentMethod:   models.PaymentCredit,
		PaymentSourceID: &gold.ID,
		Amount:          decimal.NewFromInt(300),
		DayOfMonth:      ptr(5),
	})
	suite.Require().Nil(err)

	err = suite.t.DeleteCard(ctx, dataset, gold.ID, nil)
	suite.Require().Nil(err)

	phone, err = suite.t.GetExpense(ctx, dataset, phone.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.PaymentCash, phone.PaymentMethod)
	suite.Assert().Nil(phone.PaymentSourceID)

	_, err = suite.t.GetCard(ctx, dataset, gold.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteDebitCardWithoutBalance() {
	card := suite.createDebitCard("Savings", 0)

	err := suite.t.DeleteCard(ctx, dataset, card.ID, nil)
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestDeleteOnlyDebitCardWithBalance() {
	card := suite.createDebitCard("Savings", 500)

	err := suite.t.DeleteCard(ctx, dataset, card.ID, nil)
	suite.Assert().ErrorIs(err, tracker.ErrOnlyDebitCardWithBalance)

	_, err = suite.t.GetCard(ctx, dataset, card.ID)
	suite.Assert().Nil(err, "the card must not be deleted")
}

func (suite *TestSuiteStandard) TestDeleteDebitCardTransfer() {
	savings := suite.createDebitCard("Savings", 500)
	payroll := suite.createDebitCard("Payroll", 100)
	gold := suite.createCreditCard("Gold", 10)

	tests := []struct {
		name string
		to   *uuid.UUID
		err  error
	}{
		{"No target", nil, tracker.ErrBalanceTransferRequired},
		{"Same card", &savings.ID, tracker.ErrBalanceTransferRequired},
		{"Credit card", &gold.ID, tracker.ErrNotDebitCard},
		{"Unknown card", ptr(uuid.New()), models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		err := suite.t.DeleteCard(ctx, dataset, savings.ID, tt.to)
		suite.Assert().ErrorIs(err, tt.err, tt.name)
	}

	err := suite.t.DeleteCard(ctx, dataset, savings.ID, &payroll.ID)
	suite.Require().Nil(err)

	payroll, err = suite.t.GetCard(ctx, dataset, payroll.ID)
	suite.Require().Nil(err)
	suite.assertDecimal("600", payroll.Balance)
}

func (suite *TestSuiteStandard) TestUpdateCardTypeWithBalance() {
	card := suite.createDebitCard("Savings", 250)

	_, err := suite.t.UpdateCard(ctx, dataset, card.ID, func(c *models.Card) error {
		c.Type = models.CardCredit
		c.CutoffDay = 3
		c.PaymentDay = 23
		return nil
	})
	suite.Assert().ErrorIs(err, tracker.ErrBalanceOnTypeChange)

	stored, err := suite.t.GetCard(ctx, dataset, card.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.CardDebit, stored.Type)
	suite.assertDecimal("250", stored.Balance)

	empty := suite.createDebitCard("Payroll", 0)
	updated, err := suite.t.UpdateCard(ctx, dataset, empty.ID, func(c *models.Card) error {
		c.Type = models.CardCredit
		c.CreditLimit = decimal.NewFromInt(5000)
		c.CutoffDay = 3
		c.PaymentDay = 23
		return nil
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.CardCredit, updated.Type)

	updated, err = suite.t.UpdateCard(ctx, dataset, empty.ID, func(c *models.Card) error {
		c.Type = models.CardDebit
		return nil
	})
	suite.Require().Nil(err)
	suite.assertDecimal("0", updated.CreditLimit)
	suite.Assert().Equal(0, updated.CutoffDay)
	suite.Assert().Equal(0, updated.PaymentDay)
}
