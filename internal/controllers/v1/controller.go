// Package v1 contains the HTTP handlers for the datasets of the savings
// tracker.
package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/weekly-savings/backend/internal/httputil"
	"github.com/weekly-savings/backend/internal/tracker"
)

type Controller struct {
	t       *tracker.Tracker
	version string
}

// NewController returns a controller for the tracker. The version is
// added to exports.
func NewController(t *tracker.Tracker, version string) Controller {
	return Controller{t: t, version: version}
}

// RegisterRoutes registers the routes of a dataset on the group, which
// must have a :dataset parameter.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsDataset)
		r.GET("", GetDataset)
		r.DELETE("", co.Cleanup)
		r.OPTIONS("/export", OptionsExport)
		r.GET("/export", co.Export)
	}

	co.RegisterExpenseRoutes(r.Group("/expenses"))
	co.RegisterIncomeRoutes(r.Group("/incomes"))
	co.RegisterCardRoutes(r.Group("/cards"))
	co.RegisterGoalRoutes(r.Group("/goals"))
	co.RegisterDashboardRoutes(r.Group("/dashboard"))
}

type ExportResponse struct {
	Version      string                     `json:"version"`      // The version of the backend the export was made with
	Dataset      string                     `json:"dataset"`      // Name of the exported dataset
	Data         map[string]json.RawMessage `json:"data"`         // The exported data
	CreationTime time.Time                  `json:"creationTime"` // Time the export was created
	Clacks       string                     `json:"clacks"`       // This will always have the value "GNU Terry Pratchett"
}

type DatasetResponse struct {
	Links DatasetLinks `json:"links"`
}

type DatasetLinks struct {
	Expenses       string `json:"expenses" example:"https://example.com/api/v1/datasets/household/expenses"`                         // URL of expense list endpoint
	Incomes        string `json:"incomes" example:"https://example.com/api/v1/datasets/household/incomes"`                           // URL of income list endpoint
	Cards          string `json:"cards" example:"https://example.com/api/v1/datasets/household/cards"`                               // URL of card list endpoint
	Goals          string `json:"goals" example:"https://example.com/api/v1/datasets/household/goals"`                               // URL of savings goal list endpoint
	Week           string `json:"week" example:"https://example.com/api/v1/datasets/household/dashboard/week"`                       // URL of the summary of the current week
	ExpenseSavings string `json:"expenseSavings" example:"https://example.com/api/v1/datasets/household/dashboard/expense-savings"` // URL of the savings progress per expense
	Calendar       string `json:"calendar" example:"https://example.com/api/v1/datasets/household/dashboard/calendar"`               // URL of the calendar of the current month
	Export         string `json:"export" example:"https://example.com/api/v1/datasets/household/export"`                             // URL of the export of the dataset
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Datasets
// @Success		204
// @Param			dataset	path	string	true	"Name of the dataset"
// @Router			/v1/datasets/{dataset} [options]
func OptionsDataset(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Dataset
// @Description	Returns the links to the resources of a dataset
// @Tags			Datasets
// @Success		200		{object}	DatasetResponse
// @Param			dataset	path		string	true	"Name of the dataset"
// @Router			/v1/datasets/{dataset} [get]
func GetDataset(c *gin.Context) {
	url := linkBase(c)

	c.JSON(http.StatusOK, DatasetResponse{
		Links: DatasetLinks{
			Expenses:       url + "/expenses",
			Incomes:        url + "/incomes",
			Cards:          url + "/cards",
			Goals:          url + "/goals",
			Week:           url + "/dashboard/week",
			ExpenseSavings: url + "/dashboard/expense-savings",
			Calendar:       url + "/dashboard/calendar",
			Export:         url + "/export",
		},
	})
}

// @Summary		Delete dataset
// @Description	Permanently deletes all resources of the dataset
// @Tags			Datasets
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1/datasets/{dataset} [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Message: errCleanupConfirmation.Error(),
		})
		return
	}

	err = co.t.DeleteDataset(c.Request.Context(), dataset(c))
	if err != nil {
		c.JSON(status(err), httpError{
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Datasets
// @Success		204
// @Param			dataset	path	string	true	"Name of the dataset"
// @Router			/v1/datasets/{dataset}/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports all resources of the dataset
// @Tags			Datasets
// @Produce		json
// @Success		200		{object}	ExportResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			dataset	path		string	true	"Name of the dataset"
// @Router			/v1/datasets/{dataset}/export [get]
func (co Controller) Export(c *gin.Context) {
	export, err := co.t.Export(c.Request.Context(), dataset(c))
	if err != nil {
		c.JSON(status(err), httpError{
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, ExportResponse{
		Version:      co.version,
		Dataset:      dataset(c),
		Data:         export,
		CreationTime: time.Now().UTC(),
		Clacks:       "GNU Terry Pratchett",
	})
}
