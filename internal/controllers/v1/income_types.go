package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/tracker"
	"github.com/weekly-savings/backend/internal/types"
	"golang.org/x/exp/slices"
)

type IncomeEditable struct {
	Name       string            `json:"name" example:"Salary" default:""`                                                                   // Name of the income
	Amount     decimal.Decimal   `json:"amount" example:"4500" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Amount of each payment
	Type       models.IncomeType `json:"type" example:"recurring" enums:"recurring,casual"`                                                  // Type of the income
	Frequency  models.Frequency  `json:"frequency" example:"weekly" enums:"weekly,biweekly,monthly,bimonthly"`                               // How often a recurring income is paid
	DayOfWeek  *int              `json:"dayOfWeek" example:"5" minimum:"0" maximum:"6"`                                                      // Day of the week for weekly incomes, 0 is Sunday
	DayOfMonth *int              `json:"dayOfMonth" example:"15" minimum:"1" maximum:"31"`                                                   // Day of the month for other recurring incomes
	Date       types.Date        `json:"date" example:"2024-05-10"`                                                                          // Date of a casual income
}

func newIncomeEditable(i models.Income) IncomeEditable {
	return IncomeEditable{
		Name:       i.Name,
		Amount:     i.Amount,
		Type:       i.Type,
		Frequency:  i.Frequency,
		DayOfWeek:  i.DayOfWeek,
		DayOfMonth: i.DayOfMonth,
		Date:       i.Date,
	}
}

func (editable IncomeEditable) apply(i *models.Income) {
	i.Name = editable.Name
	i.Amount = editable.Amount
	i.Type = editable.Type
	i.Frequency = editable.Frequency
	i.DayOfWeek = editable.DayOfWeek
	i.DayOfMonth = editable.DayOfMonth
	i.Date = editable.Date
}

// model returns the database resource for the API representation of the editable fields
func (editable IncomeEditable) model() models.Income {
	var i models.Income
	editable.apply(&i)
	return i
}

type IncomeLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/datasets/household/incomes/9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"`                // The income itself
	Suspension string `json:"suspension" example:"https://example.com/api/v1/datasets/household/incomes/9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d/suspension"` // Suspends or resumes the income
}

type Income struct {
	models.Income
	Links IncomeLinks `json:"links"`
}

// newIncome returns the API v1 representation of the resource
func newIncome(c *gin.Context, model models.Income) Income {
	url := linkBase(c)

	return Income{
		Income: model,
		Links: IncomeLinks{
			Self:       fmt.Sprintf("%s/incomes/%s", url, model.ID),
			Suspension: fmt.Sprintf("%s/incomes/%s/suspension", url, model.ID),
		},
	}
}

type IncomeListResponse struct {
	Data  []Income `json:"data"`                                                          // List of resources
	Error *string  `json:"error" example:"the specified ID is not a valid UUID"` // The error, if any occurred
}

type IncomeCreateResponse struct {
	Error *string          `json:"error" example:"the specified ID is not a valid UUID"` // The error, if any occurred
	Data  []IncomeResponse `json:"data"`                                                          // List of created resources
}

func (r *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, IncomeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Error *string `json:"error" example:"the specified ID is not a valid UUID"` // The error, if any occurred
	Data  *Income `json:"data"`                                                          // The resource
}

type IncomeQueryFilter struct {
	Type      models.IncomeType `form:"type"`      // By type
	Name      string            `form:"name"`      // By name, supports glob patterns
	Suspended bool              `form:"suspended"` // Is the income suspended?
}

func (f IncomeQueryFilter) filter(setFields []string) (tracker.IncomeFilter, error) {
	filter := tracker.IncomeFilter{
		Type: f.Type,
		Name: f.Name,
	}

	if slices.Contains(setFields, "Type") && !f.Type.Valid() {
		return filter, models.ErrIncomeTypeUnknown
	}

	if slices.Contains(setFields, "Suspended") {
		filter.Suspended = &f.Suspended
	}

	return filter, nil
}
