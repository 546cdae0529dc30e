package v1_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	v1 "github.com/weekly-savings/backend/internal/controllers/v1"
	"github.com/weekly-savings/backend/internal/tracker"
	"github.com/weekly-savings/backend/internal/types"
	"github.com/weekly-savings/backend/test"
)

func getWeekSummary(t *testing.T, query string) tracker.WeekSummary {
	r := test.Request(t, http.MethodGet, base+"/dashboard/week?"+query, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.WeekSummaryResponse
	test.DecodeResponse(t, &r, &response)

	return *response.Data
}

func (suite *TestSuiteStandard) TestWeekSummary() {
	_ = createTestIncome(suite.T(), v1.IncomeEditable{})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{})
	_ = createTestCard(suite.T(), v1.CardEditable{Balance: decimal.NewFromInt(50)})
	_ = createGold(suite.T())

	w := getWeekSummary(suite.T(), "")
	suite.Assert().Equal(types.NewDate(2024, time.May, 6), w.WeekStart)
	suite.Assert().Equal(types.NewDate(2024, time.May, 12), w.WeekEnd)
	suite.Assert().Equal("MXN", w.Currency)
	assertDecimal(suite.T(), "1000", w.Income)
	assertDecimal(suite.T(), "100", w.Programmed)
	assertDecimal(suite.T(), "0", w.Saved)
	assertDecimal(suite.T(), "1000", w.FreeCash)
	assertDecimal(suite.T(), "50", w.Accumulated)
	suite.Require().Len(w.Goals, 1)
	assertDecimal(suite.T(), "75", w.Goals[0].Progress)

	saveGoals(suite.T(), "week=2024-05-08")

	w = getWeekSummary(suite.T(), "date=2024-05-12")
	assertDecimal(suite.T(), "0", w.Programmed)
	assertDecimal(suite.T(), "100", w.Saved)
	assertDecimal(suite.T(), "900", w.FreeCash)
	assertDecimal(suite.T(), "150", w.Accumulated)
}

func (suite *TestSuiteStandard) TestWeekSummaryOtherWeek() {
	_ = createTestIncome(suite.T(), v1.IncomeEditable{})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{})

	w := getWeekSummary(suite.T(), "date=2024-06-05")
	suite.Assert().Equal(types.NewDate(2024, time.June, 3), w.WeekStart)
	suite.Assert().Len(w.Goals, 0)
	assertDecimal(suite.T(), "1000", w.Income)
	assertDecimal(suite.T(), "0", w.Programmed)
}

func (suite *TestSuiteStandard) TestDashboardInvalidQuery() {
	tests := []string{
		base + "/dashboard/week?date=tomorrow",
		base + "/dashboard/week?date=2024-13-01",
		base + "/dashboard/calendar?month=May",
		base + "/dashboard/calendar?month=2024-05-08",
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestDashboardDBError() {
	suite.CloseDB()

	tests := []string{
		base + "/dashboard/week",
		base + "/dashboard/expense-savings",
		base + "/dashboard/calendar",
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt, "")
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseSavings() {
	_ = createTestIncome(suite.T(), v1.IncomeEditable{})
	rent := createTestExpense(suite.T(), v1.ExpenseEditable{})
	_ = createTestCard(suite.T(), v1.CardEditable{})

	g := getGoals(suite.T(), "")[0]
	r := test.Request(suite.T(), http.MethodPost, g.Links.Save, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, base+"/dashboard/expense-savings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseSavingsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)

	s := response.Data[0]
	suite.Assert().Equal(rent.Data.ID, s.Expense.ID)
	suite.Assert().Equal(types.NewDate(2024, time.May, 28), s.NextPayment)
	assertDecimal(suite.T(), "100", s.Saved)
	assertDecimal(suite.T(), "400", s.Amount)
	assertDecimal(suite.T(), "25", s.Progress)
	suite.Assert().False(s.CanPay)
}

func (suite *TestSuiteStandard) TestCalendar() {
	salary := createTestIncome(suite.T(), v1.IncomeEditable{})
	rent := createTestExpense(suite.T(), v1.ExpenseEditable{})
	gold := createGold(suite.T())

	tests := []struct {
		name     string
		query    string
		incomes  int
		rent     types.Date
		payment  types.Date
		expected int
	}{
		{"Current month", "", 5, types.NewDate(2024, time.May, 28), types.NewDate(2024, time.May, 23), 7},
		{"June", "month=2024-06", 4, types.NewDate(2024, time.June, 28), types.NewDate(2024, time.June, 23), 6},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, base+"/dashboard/calendar?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CalendarResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.expected)

			incomes := 0
			for _, e := range response.Data {
				switch e.SourceID {
				case salary.Data.ID:
					incomes++
					assert.Equal(t, tracker.EventIncome, e.Type)
					assert.Equal(t, time.Friday, e.Date.Weekday())
				case rent.Data.ID:
					assert.Equal(t, tracker.EventExpense, e.Type)
					assert.Equal(t, tt.rent, e.Date)
					assertDecimal(t, "400", e.Amount)
				case gold.Data.ID:
					assert.Equal(t, tracker.EventPayment, e.Type)
					assert.Equal(t, tt.payment, e.Date)
					assert.Equal(t, "Pago Gold", e.Title)
				default:
					assert.Fail(t, "unexpected event", "%v", e)
				}
			}
			assert.Equal(t, tt.incomes, incomes)
		})
	}
}
