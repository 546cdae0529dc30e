package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weekly-savings/backend/internal/httputil"
	"github.com/weekly-savings/backend/internal/models"
)

func (co Controller) RegisterIncomeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsIncomes)
		r.GET("", co.GetIncomes)
		r.POST("", co.CreateIncomes)
	}
	{
		r.OPTIONS("/:id", co.OptionsIncomeDetail)
		r.GET("/:id", co.GetIncome)
		r.PATCH("/:id", co.UpdateIncome)
		r.DELETE("/:id", co.DeleteIncome)
	}
	{
		r.OPTIONS("/:id/suspension", co.OptionsIncomeAction)
		r.POST("/:id/suspension", co.ToggleIncomeSuspension)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Param			dataset	path	string	true	"Name of the dataset"
// @Router			/v1/datasets/{dataset}/incomes [options]
func OptionsIncomes(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/datasets/{dataset}/incomes/{id} [options]
func (co Controller) OptionsIncomeDetail(c *gin.Context) {
	optionsDetail(c, co.t.GetIncome, httputil.OptionsGetPatchDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/datasets/{dataset}/incomes/{id}/suspension [options]
func (co Controller) OptionsIncomeAction(c *gin.Context) {
	optionsDetail(c, co.t.GetIncome, httputil.OptionsPost)
}

// @Summary		Create incomes
// @Description	Creates new incomes. The savings goals of the dataset are regenerated.
// @Tags			Incomes
// @Produce		json
// @Success		201			{object}	IncomeCreateResponse
// @Failure		400			{object}	IncomeCreateResponse
// @Failure		404			{object}	IncomeCreateResponse
// @Failure		500			{object}	IncomeCreateResponse
// @Param			dataset		path		string				true	"Name of the dataset"
// @Param			incomes		body		[]IncomeEditable	true	"Incomes"
// @Router			/v1/datasets/{dataset}/incomes [post]
func (co Controller) CreateIncomes(c *gin.Context) {
	var incomes []IncomeEditable

	err := httputil.BindData(c, &incomes)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := IncomeCreateResponse{}

	for _, create := range incomes {
		income, err := co.t.CreateIncome(c.Request.Context(), dataset(c), create.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newIncome(c, income)
		r.Data = append(r.Data, IncomeResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get incomes
// @Description	Returns a list of incomes in the order they were created in
// @Tags			Incomes
// @Produce		json
// @Success		200			{object}	IncomeListResponse
// @Failure		400			{object}	IncomeListResponse
// @Failure		500			{object}	IncomeListResponse
// @Param			dataset		path		string	true	"Name of the dataset"
// @Param			type		query		string	false	"Filter by type"
// @Param			name		query		string	false	"Filter by name. Supports glob patterns like 'car*'"
// @Param			suspended	query		bool	false	"Is the income suspended?"
// @Router			/v1/datasets/{dataset}/incomes [get]
func (co Controller) GetIncomes(c *gin.Context) {
	var query IncomeQueryFilter

	if err := c.ShouldBindQuery(&query); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, IncomeListResponse{
			Error: &s,
		})
		return
	}

	setFields := httputil.SetFields(c.Request.URL.Query(), query)

	filter, err := query.filter(setFields)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	incomes, err := co.t.ListIncomes(c.Request.Context(), dataset(c), filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Income, 0, len(incomes))
	for _, income := range incomes {
		data = append(data, newIncome(c, income))
	}

	c.JSON(http.StatusOK, IncomeListResponse{Data: data})
}

// @Summary		Get income
// @Description	Returns a specific income
// @Tags			Incomes
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/datasets/{dataset}/incomes/{id} [get]
func (co Controller) GetIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	income, err := co.t.GetIncome(c.Request.Context(), dataset(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	apiResource := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &apiResource})
}

// @Summary		Update income
// @Description	Updates an existing income. Only values to be updated need to be specified. The savings goals of the dataset are regenerated.
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			dataset	path		string			true	"Name of the dataset"
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/datasets/{dataset}/incomes/{id} [patch]
func (co Controller) UpdateIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err == nil {
		err = bufferBody(c)
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	income, err := co.t.UpdateIncome(c.Request.Context(), dataset(c), uri.ID.UUID, func(i *models.Income) error {
		editable := newIncomeEditable(*i)
		if err := httputil.BindData(c, &editable); err != nil {
			return err
		}

		editable.apply(i)
		return nil
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	apiResource := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &apiResource})
}

// @Summary		Delete income
// @Description	Deletes an income
// @Tags			Incomes
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/datasets/{dataset}/incomes/{id} [delete]
func (co Controller) DeleteIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Message: err.Error(),
		})
		return
	}

	err = co.t.DeleteIncome(c.Request.Context(), dataset(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Toggle suspension
// @Description	Suspends an active income or resumes a suspended one. Only recurring incomes can be suspended.
// @Tags			Incomes
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/datasets/{dataset}/incomes/{id}/suspension [post]
func (co Controller) ToggleIncomeSuspension(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	income, err := co.t.ToggleIncomeSuspension(c.Request.Context(), dataset(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	apiResource := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &apiResource})
}
