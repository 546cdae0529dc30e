package tracker_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/tracker"
	"github.com/weekly-savings/backend/internal/types"
)

// saveAll saves all pending goals of the expense.
func (suite *TestSuiteStandard) saveAll(expense models.Expense) {
	for _, g := range suite.goals(tracker.GoalFilter{ExpenseID: expense.ID, Status: models.GoalPending}) {
		_, err := suite.t.SaveGoal(ctx, dataset, g.ID, nil)
		suite.Require().Nil(err)
	}
}

func (suite *TestSuiteStandard) TestPayWithSavings() {
	suite.createWeeklyIncome(time.Friday)
	rent := suite.createRent()
	card := suite.createDebitCard("Savings", 0)
	suite.saveAll(rent)

	p, err := suite.t.PayWithSavings(ctx, dataset, rent.ID, nil)
	suite.Require().Nil(err)
	suite.Assert().Equal(rent.ID, p.ExpenseID)
	suite.Assert().Equal(card.ID, p.CardID)
	suite.Assert().Equal(types.NewDate(2024, time.May, 28), p.DueDate)
	suite.Assert().Equal(4, p.Spent)
	suite.assertDecimal("400", p.Amount)

	card, err = suite.t.GetCard(ctx, dataset, card.ID)
	suite.Require().Nil(err)
	suite.assertDecimal("0", card.Balance)

	goals := suite.goals(tracker.GoalFilter{})
	suite.Require().Len(goals, 4)
	for _, g := range goals {
		suite.Assert().Equal(models.GoalSpent, g.Status)
	}

	_, err = suite.t.PayWithSavings(ctx, dataset, rent.ID, nil)
	suite.Assert().ErrorIs(err, tracker.ErrInsufficientSavings)
}

func (suite *TestSuiteStandard) TestPayWithSavingsErrors() {
	suite.createWeeklyIncome(time.Friday)
	rent := suite.createRent()
	card := suite.createDebitCard("Savings", 0)

	_, err := suite.t.PayWithSavings(ctx, dataset, rent.ID, nil)
	suite.Assert().ErrorIs(err, tracker.ErrInsufficientSavings)

	suite.saveAll(rent)
	_, err = suite.t.UpdateCard(ctx, dataset, card.ID, func(c *models.Card) error {
		c.Balance = decimal.NewFromInt(399)
		return nil
	})
	suite.Require().Nil(err)

	_, err = suite.t.PayWithSavings(ctx, dataset, rent.ID, nil)
	suite.Assert().ErrorIs(err, tracker.ErrInsufficientFunds)

	gold := suite.createCreditCard("Gold", 10)
	_, err = suite.t.PayWithSavings(ctx, dataset, rent.ID, &gold.ID)
	suite.Assert().ErrorIs(err, tracker.ErrNotDebitCard)

	concert, err := suite.t.CreateExpense(ctx, dataset, models.Expense{Name: "Concert", Type: models.ExpenseCasual, Date: types.NewDate(2024, time.May, 11)})
	suite.Require().Nil(err)

	_, err = suite.t.PayWithSavings(ctx, dataset, concert.ID, nil)
	suite.Assert().ErrorIs(err, tracker.ErrNothingToPay)

	saved := suite.goals(tracker.GoalFilter{Status: models.GoalSaved})
	suite.Assert().Len(saved, 4, "failed payments must not spend goals")
}

func (suite *TestSuiteStandard) TestPayInstallmentWithSavings() {
	suite.createWeeklyIncome(time.Friday)
	suite.createDebitCard("Savings", 0)

	laptop, err := suite.t.CreateExpense(ctx, dataset, models.Expense{
		Name:             "Laptop",
		Type:             models.ExpenseInstallment,
		Frequency:        models.FrequencyMonthly,
		PaymentMethod:    models.PaymentDebit,
		TotalAmount:      decimal.NewFromInt(900),
		NumberOfPayments: 3,
		StartDate:        types.NewDate(2024, time.April, 15),
	})
	suite.Require().Nil(err)

	_, err = suite.t.UpdateInstallmentPayment(ctx, dataset, laptop.ID, 0, func(p *models.Payment) error {
		p.Paid = true
		return nil
	})
	suite.Require().Nil(err)

	// Fridays from April 15 to May 15
	suite.Require().Len(suite.goals(tracker.GoalFilter{}), 4)
	suite.saveAll(laptop)

	p, err := suite.t.PayWithSavings(ctx, dataset, laptop.ID, nil)
	suite.Require().Nil(err)
	suite.Assert().Equal(types.NewDate(2024, time.May, 15), p.DueDate)
	suite.assertDecimal("300", p.Amount)

	laptop, err = suite.t.GetExpense(ctx, dataset, laptop.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(2, laptop.Payments.NextUnpaid())

	// Fridays from May 15 to June 15 for the last payment
	goals := suite.goals(tracker.GoalFilter{})
	suite.Require().Len(goals, 5)
	for _, g := range goals {
		suite.Assert().Equal(models.GoalPending, g.Status)
		suite.Assert().Equal(types.NewDate(2024, time.June, 15), g.DueDate)
		suite.assertDecimal("60", g.Amount)
	}
}
