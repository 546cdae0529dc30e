package tracker_test

import (
	"encoding/json"
	"time"

	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/tracker"
)

func (suite *TestSuiteStandard) TestExport() {
	suite.createWeeklyIncome(time.Friday)
	suite.createRent()
	suite.createDebitCard("Savings", 0)

	export, err := suite.t.Export(ctx, dataset)
	suite.Require().Nil(err)
	suite.Assert().Len(export, 4)

	var goals []models.SavingsGoal
	suite.Require().Nil(json.Unmarshal(export["SavingsGoal"], &goals))
	suite.Assert().Len(goals, 4)

	var cards []models.Card
	suite.Require().Nil(json.Unmarshal(export["Card"], &cards))
	suite.Assert().Len(cards, 1)
}

func (suite *TestSuiteStandard) TestDeleteDataset() {
	suite.createWeeklyIncome(time.Friday)
	suite.createRent()

	_, err := suite.t.CreateCard(ctx, "other", models.Card{Name: "Savings", Type: models.CardDebit})
	suite.Require().Nil(err)

	err = suite.t.DeleteDataset(ctx, dataset)
	suite.Require().Nil(err)

	expenses, err := suite.t.ListExpenses(ctx, dataset, tracker.ExpenseFilter{})
	suite.Require().Nil(err)
	suite.Assert().Len(expenses, 0)
	suite.Assert().Len(suite.goals(tracker.GoalFilter{}), 0)

	cards, err := suite.t.ListCards(ctx, "other", "")
	suite.Require().Nil(err)
	suite.Assert().Len(cards, 1)
}
