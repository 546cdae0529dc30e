package tracker_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/tracker"
	"github.com/weekly-savings/backend/internal/types"
)

func (suite *TestSuiteStandard) TestCreateExpenseRegenerates() {
	suite.createWeeklyIncome(time.Friday)
	rent := suite.createRent()

	goals := suite.goals(tracker.GoalFilter{})
	suite.Require().Len(goals, 4)

	weeks := []types.Date{
		types.NewDate(2024, time.April, 29),
		types.NewDate(2024, time.May, 6),
		types.NewDate(2024, time.May, 13),
		types.NewDate(2024, time.May, 20),
	}

	for i, g := range goals {
		suite.Assert().Equal(rent.ID, g.ExpenseID)
		suite.Assert().Equal("Rent", g.ExpenseName)
		suite.Assert().Equal(weeks[i], g.WeekStartDate)
		suite.Assert().Equal(types.NewDate(2024, time.May, 28), g.DueDate)
		suite.Assert().Equal(models.GoalPending, g.Status)
		suite.assertDecimal("100", g.Amount)
		suite.assertDecimal("400", g.TotalAmount)
	}
}

func (suite *TestSuiteStandard) TestCreateExpenseWithoutIncome() {
	suite.createRent()
	suite.Assert().Len(suite.goals(tracker.GoalFilter{}), 0)
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalid() {
	_, err := suite.t.CreateExpense(ctx, dataset, models.Expense{Name: "Gym", Type: "membership"})
	suite.Assert().ErrorIs(err, models.ErrExpenseTypeUnknown)

	_, err = suite.t.CreateExpense(ctx, dataset, models.Expense{
		Name:            "Phone",
		Type:            models.ExpenseRecurring,
		Frequency:       models.FrequencyMonthly,
		PaymentMethod:   models.PaymentCredit,
		PaymentSourceID: ptr(uuid.New()),
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCreateInstallment() {
	e, err := suite.t.CreateExpense(ctx, dataset, models.Expense{
		Name:             "Laptop",
		Type:             models.ExpenseInstallment,
		Frequency:        models.FrequencyMonthly,
		PaymentMethod:    models.PaymentCredit,
		TotalAmount:      decimal.NewFromInt(900),
		NumberOfPayments: 3,
		StartDate:        types.NewDate(2024, time.May, 1),
	})
	suite.Require().Nil(err)
	suite.Require().Len(e.Payments, 3)
	suite.assertDecimal("300", e.Amount)

	for _, p := range e.Payments {
		suite.assertDecimal("300", p.Amount)
		suite.Assert().False(p.Paid)
	}

	single, err := suite.t.CreateExpense(ctx, dataset, models.Expense{
		Name:          "Fridge",
		Type:          models.ExpenseInstallment,
		Frequency:     models.FrequencyMonthly,
		PaymentMethod: models.PaymentCash,
		TotalAmount:   decimal.NewFromInt(700),
		StartDate:     types.NewDate(2024, time.May, 1),
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(1, single.NumberOfPayments)
	suite.Assert().Len(single.Payments, 1)
}

func (suite *TestSuiteStandard) TestListExpenses() {
	suite.createRent()
	_, err := suite.t.CreateExpense(ctx, dataset, models.Expense{Name: "Concert", Type: models.ExpenseCasual, Amount: decimal.NewFromInt(80), Date: types.NewDate(2024, time.May, 11)})
	suite.Require().Nil(err)

	_, err = suite.t.CreateExpense(ctx, "other", models.Expense{Name: "Rental car", Type: models.ExpenseCasual, Date: types.NewDate(2024, time.May, 11)})
	suite.Require().Nil(err)

	tests := []struct {
		name   string
		filter tracker.ExpenseFilter
		names  []string
	}{
		{"All", tracker.ExpenseFilter{}, []string{"Rent", "Concert"}},
		{"Type", tracker.ExpenseFilter{Type: models.ExpenseCasual}, []string{"Concert"}},
		{"Name glob", tracker.ExpenseFilter{Name: "REN*"}, []string{"Rent"}},
		{"Name glob without match", tracker.ExpenseFilter{Name: "*car*"}, []string{}},
		{"Not suspended", tracker.ExpenseFilter{Suspended: ptr(false)}, []string{"Rent", "Concert"}},
		{"Suspended", tracker.ExpenseFilter{Suspended: ptr(true)}, []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			expenses, err := suite.t.ListExpenses(ctx, dataset, tt.filter)
			assert.Nil(t, err)

			names := make([]string, 0)
			for _, e := range expenses {
				names = append(names, e.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpenseNotFound() {
	_, err := suite.t.GetExpense(ctx, dataset, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	suite.createWeeklyIncome(time.Friday)
	rent := suite.createRent()

	updated, err := suite.t.UpdateExpense(ctx, dataset, rent.ID, func(e *models.Expense) error {
		e.Name = "  Apartment "
		e.Amount = decimal.NewFromInt(800)
		e.ID = uuid.New()
		return nil
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(rent.ID, updated.ID)
	suite.Assert().Equal("Apartment", updated.Name)

	goals := suite.goals(tracker.GoalFilter{})
	suite.Require().Len(goals, 4)
	for _, g := range goals {
		suite.Assert().Equal("Apartment", g.ExpenseName)
		suite.assertDecimal("200", g.Amount)
	}
}

func (suite *TestSuiteStandard) TestUpdateExpenseInvalid() {
	rent := suite.createRent()

	_, err := suite.t.UpdateExpense(ctx, dataset, rent.ID, func(e *models.Expense) error {
		e.DayOfMonth = ptr(32)
		return nil
	})
	suite.Assert().ErrorIs(err, models.ErrDayOfMonthInvalid)

	stored, err := suite.t.GetExpense(ctx, dataset, rent.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(28, *stored.DayOfMonth)
}

func (suite *TestSuiteStandard) TestUpdateInstallmentKeepsPayments() {
	suite.createWeeklyIncome(time.Friday)
	laptop, err := suite.t.CreateExpense(ctx, dataset, models.Expense{
		Name:             "Laptop",
		Type:             models.ExpenseInstallment,
		Frequency:        models.FrequencyMonthly,
		PaymentMethod:    models.PaymentCredit,
		TotalAmount:      decimal.NewFromInt(900),
		NumberOfPayments: 3,
		StartDate:        types.NewDate(2024, time.May, 1),
	})
	suite.Require().Nil(err)

	// The first payment is due on the start date, no goals lead up to it
	suite.Assert().Len(suite.goals(tracker.GoalFilter{}), 0)

	laptop, err = suite.t.UpdateInstallmentPayment(ctx, dataset, laptop.ID, 0, func(p *models.Payment) error {
		p.Paid = true
		return nil
	})
	suite.Require().Nil(err)
	suite.Assert().True(laptop.Payments[0].Paid)

	// Fridays from May 1 to June 1
	goals := suite.goals(tracker.GoalFilter{})
	suite.Require().Len(goals, 5)
	for _, g := range goals {
		suite.assertDecimal("60", g.Amount)
		suite.Assert().Equal(types.NewDate(2024, time.June, 1), g.DueDate)
	}

	laptop, err = suite.t.UpdateExpense(ctx, dataset, laptop.ID, func(e *models.Expense) error {
		e.Name = "Work laptop"
		return nil
	})
	suite.Require().Nil(err)
	suite.Assert().True(laptop.Payments[0].Paid, "payments are kept when their number does not change")

	laptop, err = suite.t.UpdateExpense(ctx, dataset, laptop.ID, func(e *models.Expense) error {
		e.NumberOfPayments = 4
		return nil
	})
	suite.Require().Nil(err)
	suite.Require().Len(laptop.Payments, 4)
	suite.Assert().Equal(0, laptop.Payments.NextUnpaid())
	suite.assertDecimal("225", laptop.Amount)
}

func (suite *TestSuiteStandard) TestUpdateInstallmentPaymentAmount() {
	laptop, err := suite.t.CreateExpense(ctx, dataset, models.Expense{
		Name:             "Laptop",
		Type:             models.ExpenseInstallment,
		Frequency:        models.FrequencyMonthly,
		PaymentMethod:    models.PaymentCredit,
		TotalAmount:      decimal.NewFromInt(900),
		NumberOfPayments: 3,
		StartDate:        types.NewDate(2024, time.May, 1),
	})
	suite.Require().Nil(err)

	laptop, err = suite.t.UpdateInstallmentPayment(ctx, dataset, laptop.ID, 2, func(p *models.Payment) error {
		p.Amount = decimal.NewFromInt(450)
		return nil
	})
	suite.Require().Nil(err)
	suite.assertDecimal("450", laptop.Payments[2].Amount)
	suite.assertDecimal("300", laptop.Payments[1].Amount)

	// The payments no longer add up to the total, which is accepted
	suite.assertDecimal("900", laptop.TotalAmount)

	_, err = suite.t.UpdateInstallmentPayment(ctx, dataset, laptop.ID, 2, func(p *models.Payment) error {
		p.Amount = decimal.NewFromInt(-1)
		return nil
	})
	suite.Assert().ErrorIs(err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestUpdateInstallmentPaymentInvalidIndex() {
	rent := suite.createRent()
	laptop, err := suite.t.CreateExpense(ctx, dataset, models.Expense{
		Name:             "Laptop",
		Type:             models.ExpenseInstallment,
		Frequency:        models.FrequencyMonthly,
		PaymentMethod:    models.PaymentCredit,
		TotalAmount:      decimal.NewFromInt(900),
		NumberOfPayments: 3,
		StartDate:        types.NewDate(2024, time.May, 1),
	})
	suite.Require().Nil(err)

	noop := func(*models.Payment) error { return nil }

	_, err = suite.t.UpdateInstallmentPayment(ctx, dataset, laptop.ID, 3, noop)
	suite.Assert().ErrorIs(err, models.ErrPaymentIndexInvalid)

	_, err = suite.t.UpdateInstallmentPayment(ctx, dataset, laptop.ID, -1, noop)
	suite.Assert().ErrorIs(err, models.ErrPaymentIndexInvalid)

	_, err = suite.t.UpdateInstallmentPayment(ctx, dataset, rent.ID, 0, noop)
	suite.Assert().ErrorIs(err, models.ErrPaymentIndexInvalid)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	suite.createWeeklyIncome(time.Friday)
	rent := suite.createRent()
	suite.Require().Len(suite.goals(tracker.GoalFilter{}), 4)

	err := suite.t.DeleteExpense(ctx, dataset, rent.ID)
	suite.Require().Nil(err)

	suite.Assert().Len(suite.goals(tracker.GoalFilter{}), 0)

	_, err = suite.t.GetExpense(ctx, dataset, rent.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	err = suite.t.DeleteExpense(ctx, dataset, rent.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestToggleExpenseSuspension() {
	suite.createWeeklyIncome(time.Friday)
	rent := suite.createRent()

	e, err := suite.t.ToggleExpenseSuspension(ctx, dataset, rent.ID)
	suite.Require().Nil(err)
	suite.Assert().True(e.Suspended)
	suite.Assert().Len(suite.goals(tracker.GoalFilter{}), 0)

	e, err = suite.t.ToggleExpenseSuspension(ctx, dataset, rent.ID)
	suite.Require().Nil(err)
	suite.Assert().False(e.Suspended)
	suite.Assert().Len(suite.goals(tracker.GoalFilter{}), 4)
}

func (suite *TestSuiteStandard) TestToggleExpenseSuspensionCasual() {
	concert, err := suite.t.CreateExpense(ctx, dataset, models.Expense{Name: "Concert", Type: models.ExpenseCasual, Date: types.NewDate(2024, time.May, 11)})
	suite.Require().Nil(err)

	_, err = suite.t.ToggleExpenseSuspension(ctx, dataset, concert.ID)
	suite.Assert().ErrorIs(err, tracker.ErrNotSuspendable)
}

func (suite *TestSuiteStandard) TestRegenerate() {
	suite.createWeeklyIncome(time.Friday)
	suite.createRent()

	before := suite.goals(tracker.GoalFilter{})

	goals, err := suite.t.Regenerate(ctx, dataset)
	suite.Require().Nil(err)
	suite.Require().Len(goals, len(before))

	for i := range goals {
		suite.Assert().Equal(before[i].ID, goals[i].ID)
		suite.Assert().True(before[i].Amount.Equal(goals[i].Amount))
	}
}

func (suite *TestSuiteStandard) TestInvalidDatasetName() {
	_, err := suite.t.ListExpenses(ctx, "Not a dataset", tracker.ExpenseFilter{})
	suite.Assert().ErrorIs(err, models.ErrDatasetNameInvalid)

	_, err = suite.t.Regenerate(ctx, "")
	suite.Assert().ErrorIs(err, models.ErrDatasetNameInvalid)

	_, err = suite.t.WeekSummary(ctx, "../etc", types.Date{})
	suite.Assert().ErrorIs(err, models.ErrDatasetNameInvalid)
}

func (suite *TestSuiteStandard) TestDatabaseError() {
	suite.CloseDB()

	_, err := suite.t.ListExpenses(ctx, dataset, tracker.ExpenseFilter{})
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
