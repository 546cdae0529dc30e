package v1

import (
	"bytes"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/weekly-savings/backend/internal/httputil"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/types"
	ws_uuid "github.com/weekly-savings/backend/internal/uuid"
)

type URIID struct {
	ID ws_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIGoalID struct {
	ID string `uri:"id" binding:"required" example:"7b4a1e3c-3c1f-4c5e-9a8e-0d2b9b7f6c11-2024-05-28-2024-05-06"` // ID of the savings goal
}

type URIPayment struct {
	URIID
	Index int `uri:"index" example:"2"` // Index of the payment, starting at 0
}

type QueryDate struct {
	Date types.Date `form:"date" example:"2024-05-08"` // Any day of the week in YYYY-MM-DD format
}

type QueryMonth struct {
	Month types.Month `form:"month" example:"2024-05"` // Year and month in YYYY-MM format
}

// CardSelection selects the debit card money is moved to or from.
type CardSelection struct {
	CardID *uuid.UUID `json:"cardId" example:"4e3b1c0d-8a7f-4b6e-9d5c-2f1e0a9b8c7d"` // ID of the debit card. Can be omitted if there is only one debit card
}

// bindCardSelection binds the optional card selection. An empty body
// selects no card.
func bindCardSelection(c *gin.Context) (*uuid.UUID, error) {
	var selection CardSelection
	err := httputil.BindData(c, &selection)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		return nil, err
	}

	return selection.CardID, nil
}

// dataset returns the name of the dataset of the request.
func dataset(c *gin.Context) string {
	return c.Param("dataset")
}

// linkBase returns the URL of the dataset of the request.
func linkBase(c *gin.Context) string {
	return c.GetString(string(models.DBContextURL)) + "/v1/datasets/" + dataset(c)
}

// bufferBody reads the request body so that it can be bound
// while the dataset is locked.
func bufferBody(c *gin.Context) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	return nil
}
