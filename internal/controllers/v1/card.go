package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weekly-savings/backend/internal/httputil"
	"github.com/weekly-savings/backend/internal/models"
	"golang.org/x/exp/slices"
)

func (co Controller) RegisterCardRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCards)
		r.GET("", co.GetCards)
		r.POST("", co.CreateCards)
	}
	{
		r.OPTIONS("/:id", co.OptionsCardDetail)
		r.GET("/:id", co.GetCard)
		r.PATCH("/:id", co.UpdateCard)
		r.DELETE("/:id", co.DeleteCard)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cards
// @Success		204
// @Param			dataset	path	string	true	"Name of the dataset"
// @Router			/v1/datasets/{dataset}/cards [options]
func OptionsCards(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cards
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/datasets/{dataset}/cards/{id} [options]
func (co Controller) OptionsCardDetail(c *gin.Context) {
	optionsDetail(c, co.t.GetCard, httputil.OptionsGetPatchDelete)
}

// @Summary		Create cards
// @Description	Creates new cards
// @Tags			Cards
// @Produce		json
// @Success		201			{object}	CardCreateResponse
// @Failure		400			{object}	CardCreateResponse
// @Failure		404			{object}	CardCreateResponse
// @Failure		500			{object}	CardCreateResponse
// @Param			dataset		path		string				true	"Name of the dataset"
// @Param			cards		body		[]CardEditable		true	"Cards"
// @Router			/v1/datasets/{dataset}/cards [post]
func (co Controller) CreateCards(c *gin.Context) {
	var cards []CardEditable

	err := httputil.BindData(c, &cards)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CardCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CardCreateResponse{}

	for _, create := range cards {
		card, err := co.t.CreateCard(c.Request.Context(), dataset(c), create.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newCard(c, card)
		r.Data = append(r.Data, CardResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get cards
// @Description	Returns a list of cards in the order they were created in
// @Tags			Cards
// @Produce		json
// @Success		200		{object}	CardListResponse
// @Failure		400		{object}	CardListResponse
// @Failure		500		{object}	CardListResponse
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			type	query		string	false	"Filter by type"
// @Router			/v1/datasets/{dataset}/cards [get]
func (co Controller) GetCards(c *gin.Context) {
	var filter CardQueryFilter

	if err := c.ShouldBindQuery(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, CardListResponse{
			Error: &s,
		})
		return
	}

	setFields := httputil.SetFields(c.Request.URL.Query(), filter)
	if slices.Contains(setFields, "Type") && !filter.Type.Valid() {
		s := errCardTypeFilter.Error()
		c.JSON(http.StatusBadRequest, CardListResponse{
			Error: &s,
		})
		return
	}

	cards, err := co.t.ListCards(c.Request.Context(), dataset(c), filter.Type)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Card, 0, len(cards))
	for _, card := range cards {
		data = append(data, newCard(c, card))
	}

	c.JSON(http.StatusOK, CardListResponse{Data: data})
}

// @Summary		Get card
// @Description	Returns a specific card
// @Tags			Cards
// @Produce		json
// @Success		200		{object}	CardResponse
// @Failure		400		{object}	CardResponse
// @Failure		404		{object}	CardResponse
// @Failure		500		{object}	CardResponse
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/datasets/{dataset}/cards/{id} [get]
func (co Controller) GetCard(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CardResponse{
			Error: &e,
		})
		return
	}

	card, err := co.t.GetCard(c.Request.Context(), dataset(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CardResponse{
			Error: &e,
		})
		return
	}

	apiResource := newCard(c, card)
	c.JSON(http.StatusOK, CardResponse{Data: &apiResource})
}

// @Summary		Update card
// @Description	Updates an existing card. Only values to be updated need to be specified.
// @Tags			Cards
// @Accept			json
// @Produce		json
// @Success		200		{object}	CardResponse
// @Failure		400		{object}	CardResponse
// @Failure		404		{object}	CardResponse
// @Failure		500		{object}	CardResponse
// @Param			dataset	path		string			true	"Name of the dataset"
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			card	body		CardEditable	true	"Card"
// @Router			/v1/datasets/{dataset}/cards/{id} [patch]
func (co Controller) UpdateCard(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err == nil {
		err = bufferBody(c)
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CardResponse{
			Error: &e,
		})
		return
	}

	card, err := co.t.UpdateCard(c.Request.Context(), dataset(c), uri.ID.UUID, func(card *models.Card) error {
		editable := newCardEditable(*card)
		if err := httputil.BindData(c, &editable); err != nil {
			return err
		}

		editable.apply(card)
		return nil
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CardResponse{
			Error: &e,
		})
		return
	}

	apiResource := newCard(c, card)
	c.JSON(http.StatusOK, CardResponse{Data: &apiResource})
}

// @Summary		Delete card
// @Description	Deletes a card. Expenses paid with the card are paid in cash afterwards. The balance of a debit card must be transferred to another debit card.
// @Tags			Cards
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transferTo	query		string	false	"ID of the debit card that receives the balance"
// @Router			/v1/datasets/{dataset}/cards/{id} [delete]
func (co Controller) DeleteCard(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Message: err.Error(),
		})
		return
	}

	var query QueryTransfer
	err = c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(status(err), httpError{
			Message: err.Error(),
		})
		return
	}

	err = co.t.DeleteCard(c.Request.Context(), dataset(c), uri.ID.UUID, query.TransferTo.Ptr())
	if err != nil {
		c.JSON(status(err), httpError{
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
