package v1_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	v1 "github.com/weekly-savings/backend/internal/controllers/v1"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/types"
	"github.com/weekly-savings/backend/test"
)

func (suite *TestSuiteStandard) TestCreateIncome() {
	i := createTestIncome(suite.T(), v1.IncomeEditable{})

	suite.Require().NotNil(i.Data)
	suite.Assert().Equal("Salary", i.Data.Name)
	suite.Assert().Equal(models.FrequencyWeekly, i.Data.Frequency)
	suite.Assert().Equal(5, *i.Data.DayOfWeek)
	suite.Assert().Equal(base+"/incomes/"+i.Data.ID.String(), i.Data.Links.Self)
	suite.Assert().Equal(base+"/incomes/"+i.Data.ID.String()+"/suspension", i.Data.Links.Suspension)

	r := test.Request(suite.T(), http.MethodGet, i.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var income v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &income)
	suite.Assert().Equal(i.Data.ID, income.Data.ID)
	assertDecimal(suite.T(), "1000", income.Data.Amount)
}

func (suite *TestSuiteStandard) TestCreateIncomeInvalid() {
	tests := []struct {
		name   string
		income v1.IncomeEditable
	}{
		{"Unknown type", v1.IncomeEditable{Type: "lottery", Amount: decimal.NewFromInt(1)}},
		{"Casual without date", v1.IncomeEditable{Type: models.IncomeCasual}},
		{"Unknown frequency", v1.IncomeEditable{Type: models.IncomeRecurring, Frequency: "daily"}},
		{"Invalid day of week", v1.IncomeEditable{Type: models.IncomeRecurring, Frequency: models.FrequencyWeekly, DayOfWeek: ptr(7)}},
		{"Negative amount", v1.IncomeEditable{Type: models.IncomeRecurring, Frequency: models.FrequencyWeekly, DayOfWeek: ptr(5), Amount: decimal.NewFromInt(-1000)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_ = createTestIncome(t, tt.income, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetIncomes() {
	_ = createTestIncome(suite.T(), v1.IncomeEditable{})
	_ = createTestIncome(suite.T(), v1.IncomeEditable{Name: "Bonus", Type: models.IncomeCasual, Date: types.NewDate(2024, time.May, 20)})
	rental := createTestIncome(suite.T(), v1.IncomeEditable{
		Name:       "Rental",
		Type:       models.IncomeRecurring,
		Frequency:  models.FrequencyMonthly,
		DayOfMonth: ptr(1),
		Amount:     decimal.NewFromInt(3000),
	})

	r := test.Request(suite.T(), http.MethodPost, rental.Data.Links.Suspension, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Type", "type=recurring", 2},
		{"Name glob", "name=*a*", 2},
		{"Suspended", "suspended=true", 1},
		{"Active casual", "suspended=false&type=casual", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, base+"/incomes?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var incomes v1.IncomeListResponse
			test.DecodeResponse(t, &r, &incomes)
			assert.Len(t, incomes.Data, tt.len)
		})
	}

	r = test.Request(suite.T(), http.MethodGet, base+"/incomes?type=lottery", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetIncomeErrors() {
	r := test.Request(suite.T(), http.MethodGet, base+"/incomes/c1d4e8a2-7b3f-4e6a-9d0c-5f2b8a1e7c3d", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, base+"/incomes/salary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateIncome() {
	i := createTestIncome(suite.T(), v1.IncomeEditable{})

	r := test.Request(suite.T(), http.MethodPatch, i.Data.Links.Self, map[string]any{
		"name":   "Paycheck",
		"amount": "1200",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Paycheck", updated.Data.Name)
	assertDecimal(suite.T(), "1200", updated.Data.Amount)
	suite.Assert().Equal(5, *updated.Data.DayOfWeek)

	r = test.Request(suite.T(), http.MethodPatch, i.Data.Links.Self, `{"dayOfWeek": 9}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, base+"/incomes/c1d4e8a2-7b3f-4e6a-9d0c-5f2b8a1e7c3d", `{"name": "Paycheck"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestUpdateIncomeKeepsPendingAmounts verifies that goals that already
// exist keep their amounts when the pay day changes.
func (suite *TestSuiteStandard) TestUpdateIncomeKeepsPendingAmounts() {
	i := createTestIncome(suite.T(), v1.IncomeEditable{})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{})

	r := test.Request(suite.T(), http.MethodPatch, i.Data.Links.Self, `{"dayOfWeek": 1}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	goals := getGoals(suite.T(), "")
	suite.Require().Len(goals, 5)
	for _, g := range goals[:4] {
		assertDecimal(suite.T(), "100", g.Amount)
	}
	suite.Assert().Equal(types.NewDate(2024, time.May, 27), goals[4].WeekStartDate)
	assertDecimal(suite.T(), "80", goals[4].Amount)
}

func (suite *TestSuiteStandard) TestDeleteIncome() {
	i := createTestIncome(suite.T(), v1.IncomeEditable{})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{})
	suite.Require().Len(getGoals(suite.T(), ""), 4)

	r := test.Request(suite.T(), http.MethodDelete, i.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Len(getGoals(suite.T(), ""), 0)

	r = test.Request(suite.T(), http.MethodGet, i.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, i.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestToggleIncomeSuspension() {
	i := createTestIncome(suite.T(), v1.IncomeEditable{})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{})

	tests := []struct {
		suspended bool
		goals     int
	}{
		{true, 0},
		{false, 4},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodPost, i.Data.Links.Suspension, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var income v1.IncomeResponse
		test.DecodeResponse(suite.T(), &r, &income)
		suite.Assert().Equal(tt.suspended, income.Data.Suspended)
		suite.Assert().Len(getGoals(suite.T(), ""), tt.goals)
	}

	bonus := createTestIncome(suite.T(), v1.IncomeEditable{Name: "Bonus", Type: models.IncomeCasual, Date: types.NewDate(2024, time.May, 20)})
	r := test.Request(suite.T(), http.MethodPost, bonus.Data.Links.Suspension, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
