package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weekly-savings/backend/internal/httputil"
	"github.com/weekly-savings/backend/internal/models"
)

func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsExpenses)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpenses)
	}
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.PATCH("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
	{
		r.OPTIONS("/:id/suspension", co.OptionsExpenseAction)
		r.POST("/:id/suspension", co.ToggleExpenseSuspension)
		r.OPTIONS("/:id/pay", co.OptionsExpenseAction)
		r.POST("/:id/pay", co.PayExpense)
		r.OPTIONS("/:id/payments/:index", co.OptionsExpensePayment)
		r.PATCH("/:id/payments/:index", co.UpdateExpensePayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Param			dataset	path	string	true	"Name of the dataset"
// @Router			/v1/datasets/{dataset}/expenses [options]
func OptionsExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/datasets/{dataset}/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	optionsDetail(c, co.t.GetExpense, httputil.OptionsGetPatchDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/datasets/{dataset}/expenses/{id}/suspension [options]
// @Router			/v1/datasets/{dataset}/expenses/{id}/pay [options]
func (co Controller) OptionsExpenseAction(c *gin.Context) {
	optionsDetail(c, co.t.GetExpense, httputil.OptionsPost)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			index	path		int		true	"Index of the payment"
// @Router			/v1/datasets/{dataset}/expenses/{id}/payments/{index} [options]
func (co Controller) OptionsExpensePayment(c *gin.Context) {
	optionsDetail(c, co.t.GetExpense, httputil.OptionsPatch)
}

// @Summary		Create expenses
// @Description	Creates new expenses. The savings goals of the dataset are regenerated.
// @Tags			Expenses
// @Produce		json
// @Success		201			{object}	ExpenseCreateResponse
// @Failure		400			{object}	ExpenseCreateResponse
// @Failure		404			{object}	ExpenseCreateResponse
// @Failure		500			{object}	ExpenseCreateResponse
// @Param			dataset		path		string				true	"Name of the dataset"
// @Param			expenses	body		[]ExpenseEditable	true	"Expenses"
// @Router			/v1/datasets/{dataset}/expenses [post]
func (co Controller) CreateExpenses(c *gin.Context) {
	var expenses []ExpenseEditable

	err := httputil.BindData(c, &expenses)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ExpenseCreateResponse{}

	for _, create := range expenses {
		expense, err := co.t.CreateExpense(c.Request.Context(), dataset(c), create.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newExpense(c, expense)
		r.Data = append(r.Data, ExpenseResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get expenses
// @Description	Returns a list of expenses in the order they were created in
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	ExpenseListResponse
// @Failure		400			{object}	ExpenseListResponse
// @Failure		500			{object}	ExpenseListResponse
// @Param			dataset		path		string	true	"Name of the dataset"
// @Param			type		query		string	false	"Filter by type"
// @Param			name		query		string	false	"Filter by name. Supports glob patterns like 'car*'"
// @Param			suspended	query		bool	false	"Is the expense suspended?"
// @Router			/v1/datasets/{dataset}/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var query ExpenseQueryFilter

	if err := c.ShouldBindQuery(&query); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &s,
		})
		return
	}

	setFields := httputil.SetFields(c.Request.URL.Query(), query)

	filter, err := query.filter(setFields)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	expenses, err := co.t.ListExpenses(c.Request.Context(), dataset(c), filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: data})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/datasets/{dataset}/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	expense, err := co.t.GetExpense(c.Request.Context(), dataset(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	apiResource := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &apiResource})
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified. The savings goals of the dataset are regenerated.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			dataset	path		string			true	"Name of the dataset"
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/datasets/{dataset}/expenses/{id} [patch]
func (co Controller) UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err == nil {
		err = bufferBody(c)
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	expense, err := co.t.UpdateExpense(c.Request.Context(), dataset(c), uri.ID.UUID, func(e *models.Expense) error {
		editable := newExpenseEditable(*e)
		if err := httputil.BindData(c, &editable); err != nil {
			return err
		}

		editable.apply(e)
		return nil
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	apiResource := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &apiResource})
}

// @Summary		Delete expense
// @Description	Deletes an expense and its savings goals
// @Tags			Expenses
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/datasets/{dataset}/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Message: err.Error(),
		})
		return
	}

	err = co.t.DeleteExpense(c.Request.Context(), dataset(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Toggle suspension
// @Description	Suspends an active expense or resumes a suspended one. Only recurring expenses and installments can be suspended.
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/datasets/{dataset}/expenses/{id}/suspension [post]
func (co Controller) ToggleExpenseSuspension(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	expense, err := co.t.ToggleExpenseSuspension(c.Request.Context(), dataset(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	apiResource := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &apiResource})
}

// @Summary		Update payment
// @Description	Updates a payment of an installment plan. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			dataset	path		string			true	"Name of the dataset"
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			index	path		int				true	"Index of the payment, starting at 0"
// @Param			payment	body		PaymentEditable	true	"Payment"
// @Router			/v1/datasets/{dataset}/expenses/{id}/payments/{index} [patch]
func (co Controller) UpdateExpensePayment(c *gin.Context) {
	var uri URIPayment
	err := c.ShouldBindUri(&uri)
	if err == nil {
		err = bufferBody(c)
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	expense, err := co.t.UpdateInstallmentPayment(c.Request.Context(), dataset(c), uri.ID.UUID, uri.Index, func(p *models.Payment) error {
		editable := PaymentEditable(*p)
		if err := httputil.BindData(c, &editable); err != nil {
			return err
		}

		*p = models.Payment(editable)
		return nil
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	apiResource := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &apiResource})
}

// @Summary		Pay with savings
// @Description	Pays the next payment of the expense from a debit card. The saved goals of the expense must cover the payment and are marked as spent.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	PaymentResponse
// @Failure		400		{object}	PaymentResponse
// @Failure		404		{object}	PaymentResponse
// @Failure		500		{object}	PaymentResponse
// @Param			dataset	path		string			true	"Name of the dataset"
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			card	body		CardSelection	false	"The debit card to pay with"
// @Router			/v1/datasets/{dataset}/expenses/{id}/pay [post]
func (co Controller) PayExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	cardID, err := bindCardSelection(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	payment, err := co.t.PayWithSavings(c.Request.Context(), dataset(c), uri.ID.UUID, cardID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, PaymentResponse{Data: &payment})
}
