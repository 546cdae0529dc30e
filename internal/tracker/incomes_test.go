package tracker_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/tracker"
	"github.com/weekly-savings/backend/internal/types"
)

func (suite *TestSuiteStandard) TestUpdateIncomeKeepsPendingAmounts() {
	salary := suite.createWeeklyIncome(time.Friday)
	suite.createRent()

	_, err := suite.t.UpdateIncome(ctx, dataset, salary.ID, func(i *models.Income) error {
		i.DayOfWeek = ptr(int(time.Monday))
		return nil
	})
	suite.Require().Nil(err)

	// Mondays from April 28 to May 28. The goals of the first four weeks
	// already existed and keep their amounts.
	goals := suite.goals(tracker.GoalFilter{})
	suite.Require().Len(goals, 5)
	for _, g := range goals[:4] {
		suite.assertDecimal("100", g.Amount)
	}
	suite.Assert().Equal(types.NewDate(2024, time.May, 27), goals[4].WeekStartDate)
	suite.assertDecimal("80", goals[4].Amount)
}

func (suite *TestSuiteStandard) TestFirstWeeklyIncomeIsAnchor() {
	suite.createWeeklyIncome(time.Friday)
	suite.createWeeklyIncome(time.Monday)
	suite.createRent()

	suite.Assert().Len(suite.goals(tracker.GoalFilter{}), 4)
}

func (suite *TestSuiteStandard) TestListIncomes() {
	suite.createWeeklyIncome(time.Friday)
	_, err := suite.t.CreateIncome(ctx, dataset, models.Income{Name: "Bonus", Type: models.IncomeCasual, Amount: decimal.NewFromInt(5000), Date: types.NewDate(2024, time.May, 20)})
	suite.Require().Nil(err)

	incomes, err := suite.t.ListIncomes(ctx, dataset, tracker.IncomeFilter{})
	suite.Require().Nil(err)
	suite.Assert().Len(incomes, 2)

	incomes, err = suite.t.ListIncomes(ctx, dataset, tracker.IncomeFilter{Type: models.IncomeCasual})
	suite.Require().Nil(err)
	suite.Require().Len(incomes, 1)
	suite.Assert().Equal("Bonus", incomes[0].Name)

	incomes, err = suite.t.ListIncomes(ctx, dataset, tracker.IncomeFilter{Name: "sal*"})
	suite.Require().Nil(err)
	suite.Require().Len(incomes, 1)
	suite.Assert().Equal("Salary", incomes[0].Name)
}

func (suite *TestSuiteStandard) TestCreateIncomeInvalid() {
	_, err := suite.t.CreateIncome(ctx, dataset, models.Income{Name: "Bonus", Type: models.IncomeCasual})
	suite.Assert().ErrorIs(err, models.ErrDateMissing)

	_, err = suite.t.CreateIncome(ctx, dataset, models.Income{Name: "Salary", Type: models.IncomeRecurring, Frequency: models.FrequencyWeekly, DayOfWeek: ptr(9)})
	suite.Assert().ErrorIs(err, models.ErrDayOfWeekInvalid)
}

func (suite *TestSuiteStandard) TestDeleteIncomeClearsGoals() {
	salary := suite.createWeeklyIncome(time.Friday)
	suite.createRent()
	suite.Require().Len(suite.goals(tracker.GoalFilter{}), 4)

	err := suite.t.DeleteIncome(ctx, dataset, salary.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(suite.goals(tracker.GoalFilter{}), 0)

	_, err = suite.t.GetIncome(ctx, dataset, salary.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteIncomeNotFound() {
	err := suite.t.DeleteIncome(ctx, dataset, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestToggleIncomeSuspension() {
	salary := suite.createWeeklyIncome(time.Friday)
	suite.createRent()

	i, err := suite.t.ToggleIncomeSuspension(ctx, dataset, salary.ID)
	suite.Require().Nil(err)
	suite.Assert().True(i.Suspended)
	suite.Assert().Len(suite.goals(tracker.GoalFilter{}), 0)

	i, err = suite.t.ToggleIncomeSuspension(ctx, dataset, salary.ID)
	suite.Require().Nil(err)
	suite.Assert().False(i.Suspended)
	suite.Assert().Len(suite.goals(tracker.GoalFilter{}), 4)
}

func (suite *TestSuiteStandard) TestToggleIncomeSuspensionCasual() {
	bonus, err := suite.t.CreateIncome(ctx, dataset, models.Income{Name: "Bonus", Type: models.IncomeCasual, Date: types.NewDate(2024, time.May, 20)})
	suite.Require().Nil(err)

	_, err = suite.t.ToggleIncomeSuspension(ctx, dataset, bonus.ID)
	suite.Assert().ErrorIs(err, tracker.ErrNotSuspendable)
}
