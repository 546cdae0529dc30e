package v1_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	v1 "github.com/weekly-savings/backend/internal/controllers/v1"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/types"
	"github.com/weekly-savings/backend/test"
)

func (suite *TestSuiteStandard) TestGetGoals() {
	_ = createTestIncome(suite.T(), v1.IncomeEditable{})
	rent := createTestExpense(suite.T(), v1.ExpenseEditable{})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 4},
		{"Week", "week=2024-05-08", 1},
		{"Week without goals", "week=2024-06-03", 0},
		{"Expense", "expense=" + rent.Data.ID.String(), 4},
		{"Other expense", "expense=" + uuid.NewString(), 0},
		{"Pending", "status=pending", 4},
		{"Saved", "status=saved", 0},
		{"Name glob", "name=r?nt", 4},
		{"Other name", "name=car", 0},
		{"Week and status", "week=2024-05-08&status=pending", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.Len(t, getGoals(t, tt.query), tt.len)
		})
	}

	goals := getGoals(suite.T(), "week=2024-05-08")
	suite.Require().Len(goals, 1)
	suite.Assert().Equal(types.NewDate(2024, time.May, 6), goals[0].WeekStartDate)
	suite.Assert().Equal("Rent", goals[0].ExpenseName)
	suite.Assert().Equal(rent.Data.Links.Self, goals[0].Links.Expense)
	assertDecimal(suite.T(), "100", goals[0].DisplayAmount)
	assertDecimal(suite.T(), "75", goals[0].Progress)
}

func (suite *TestSuiteStandard) TestGetGoalsInvalidQuery() {
	tests := []string{
		"status=forgotten",
		"week=next-monday",
		"expense=rent",
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, base+"/goals?"+tt, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var goals v1.GoalListResponse
			test.DecodeResponse(t, &r, &goals)
			assert.NotNil(t, goals.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestGetGoal() {
	_ = createTestIncome(suite.T(), v1.IncomeEditable{})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{})
	g := getGoals(suite.T(), "")[0]

	suite.Assert().Equal(base+"/goals/"+g.ID, g.Links.Self)
	suite.Assert().Equal(base+"/goals/"+g.ID+"/save", g.Links.Save)
	suite.Assert().Equal(base+"/goals/"+g.ID+"/postpone", g.Links.Postpone)

	r := test.Request(suite.T(), http.MethodGet, g.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var goal v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &goal)
	suite.Assert().Equal(g.ID, goal.Data.ID)

	r = test.Request(suite.T(), http.MethodGet, base+"/goals/does-not-exist", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/datasets/office/goals/"+g.ID, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSaveGoal() {
	_ = createTestIncome(suite.T(), v1.IncomeEditable{})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{})
	card := createTestCard(suite.T(), v1.CardEditable{Balance: decimal.NewFromInt(50)})
	g := getGoals(suite.T(), "")[1]

	r := test.Request(suite.T(), http.MethodPost, g.Links.Save, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var saved v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &saved)
	suite.Assert().Equal(models.GoalSaved, saved.Data.Status)
	suite.Require().NotNil(saved.Data.SavedDate)
	suite.Assert().True(saved.Data.SavedDate.Equal(test.Clock()))

	c := getCard(suite.T(), card.Data.Links.Self)
	assertDecimal(suite.T(), "150", c.Data.Balance)

	// Saved goals cannot be saved again
	r = test.Request(suite.T(), http.MethodPost, g.Links.Save, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, base+"/goals/does-not-exist/save", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	suite.Assert().Len(getGoals(suite.T(), "status=saved"), 1)
}

func (suite *TestSuiteStandard) TestSaveGoalCardSelection() {
	_ = createTestIncome(suite.T(), v1.IncomeEditable{})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{})
	g := getGoals(suite.T(), "")[0]

	r := test.Request(suite.T(), http.MethodPost, g.Links.Save, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(r.Body.String(), "a debit card is needed")

	gold := createGold(suite.T())
	_ = createTestCard(suite.T(), v1.CardEditable{})
	payroll := createTestCard(suite.T(), v1.CardEditable{Name: "Payroll"})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Several debit cards", "", http.StatusBadRequest},
		{"Credit card", map[string]any{"cardId": gold.Data.ID}, http.StatusBadRequest},
		{"Unknown card", map[string]any{"cardId": uuid.New()}, http.StatusNotFound},
		{"Broken body", `{"cardId": "payroll"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, g.Links.Save, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	suite.Assert().Len(getGoals(suite.T(), "status=pending"), 4, "failed saves must not change the goal")

	r = test.Request(suite.T(), http.MethodPost, g.Links.Save, map[string]any{"cardId": payroll.Data.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	c := getCard(suite.T(), payroll.Data.Links.Self)
	assertDecimal(suite.T(), "100", c.Data.Balance)
}

func (suite *TestSuiteStandard) TestPostponeGoal() {
	_ = createTestIncome(suite.T(), v1.IncomeEditable{DayOfWeek: ptr(1), Type: models.IncomeRecurring, Frequency: models.FrequencyWeekly})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{})

	// Mondays from April 28 to May 28
	goals := getGoals(suite.T(), "")
	suite.Require().Len(goals, 5)

	r := test.Request(suite.T(), http.MethodPost, goals[0].Links.Postpone, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var postponed v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &postponed)
	suite.Assert().Equal(models.GoalPostponed, postponed.Data.Status)
	assertDecimal(suite.T(), "80", postponed.Data.Amount)
	assertDecimal(suite.T(), "0", postponed.Data.DisplayAmount)

	check := func(t *testing.T) {
		goals := getGoals(t, "")
		assert.Len(t, goals, 5)
		assert.Equal(t, models.GoalPostponed, goals[0].Status)
		for _, g := range goals[1:] {
			assertDecimal(t, "100", g.Amount)
		}
	}

	check(suite.T())

	r = test.Request(suite.T(), http.MethodPost, base+"/goals/regenerate", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	check(suite.T())

	r = test.Request(suite.T(), http.MethodPost, goals[0].Links.Postpone, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, base+"/goals/does-not-exist/postpone", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRegenerateGoals() {
	_ = createTestIncome(suite.T(), v1.IncomeEditable{})
	rent := createTestExpense(suite.T(), v1.ExpenseEditable{})

	r := test.Request(suite.T(), http.MethodPost, base+"/goals/regenerate", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var goals v1.GoalListResponse
	test.DecodeResponse(suite.T(), &r, &goals)
	suite.Require().Len(goals.Data, 4)
	for _, g := range goals.Data {
		suite.Assert().Equal(rent.Data.ID, g.ExpenseID)
	}

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/datasets/Household/goals/regenerate", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRegenerateGoalsDBError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPost, base+"/goals/regenerate", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
