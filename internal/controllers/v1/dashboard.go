package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weekly-savings/backend/internal/httputil"
	"github.com/weekly-savings/backend/internal/tracker"
)

func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/week", OptionsDashboard)
	r.GET("/week", co.GetWeekSummary)
	r.OPTIONS("/expense-savings", OptionsDashboard)
	r.GET("/expense-savings", co.GetExpenseSavings)
	r.OPTIONS("/calendar", OptionsDashboard)
	r.GET("/calendar", co.GetCalendar)
}

type WeekSummaryResponse struct {
	Error *string              `json:"error" example:"the specified date is not in YYYY-MM-DD format"` // The error, if any occurred
	Data  *tracker.WeekSummary `json:"data"`                                                           // The summary of the week
}

type ExpenseSavingsResponse struct {
	Error *string                  `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  []tracker.ExpenseSavings `json:"data"`                                                                // Savings progress per expense
}

type CalendarResponse struct {
	Error *string                 `json:"error" example:"the specified month is not in YYYY-MM format"` // The error, if any occurred
	Data  []tracker.CalendarEvent `json:"data"`                                                         // Events of the month, ordered by day
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Param			dataset	path	string	true	"Name of the dataset"
// @Router			/v1/datasets/{dataset}/dashboard/week [options]
// @Router			/v1/datasets/{dataset}/dashboard/expense-savings [options]
// @Router			/v1/datasets/{dataset}/dashboard/calendar [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Week summary
// @Description	Returns income, savings goals and savings of a week. Weeks start on Monday.
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	WeekSummaryResponse
// @Failure		400		{object}	WeekSummaryResponse
// @Failure		500		{object}	WeekSummaryResponse
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			date	query		string	false	"Any day of the week in YYYY-MM-DD format. Defaults to today"
// @Router			/v1/datasets/{dataset}/dashboard/week [get]
func (co Controller) GetWeekSummary(c *gin.Context) {
	var query QueryDate
	if err := c.ShouldBindQuery(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, WeekSummaryResponse{
			Error: &s,
		})
		return
	}

	summary, err := co.t.WeekSummary(c.Request.Context(), dataset(c), query.Date)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeekSummaryResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, WeekSummaryResponse{Data: &summary})
}

// @Summary		Expense savings
// @Description	Returns the savings progress for the next payment of every expense with savings goals
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	ExpenseSavingsResponse
// @Failure		400		{object}	ExpenseSavingsResponse
// @Failure		500		{object}	ExpenseSavingsResponse
// @Param			dataset	path		string	true	"Name of the dataset"
// @Router			/v1/datasets/{dataset}/dashboard/expense-savings [get]
func (co Controller) GetExpenseSavings(c *gin.Context) {
	savings, err := co.t.ExpenseSavings(c.Request.Context(), dataset(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseSavingsResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ExpenseSavingsResponse{Data: savings})
}

// @Summary		Calendar
// @Description	Returns the payments and incomes of a month
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	CalendarResponse
// @Failure		400		{object}	CalendarResponse
// @Failure		500		{object}	CalendarResponse
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			month	query		string	false	"Year and month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/datasets/{dataset}/dashboard/calendar [get]
func (co Controller) GetCalendar(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CalendarResponse{
			Error: &s,
		})
		return
	}

	events, err := co.t.Calendar(c.Request.Context(), dataset(c), query.Month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CalendarResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CalendarResponse{Data: events})
}
