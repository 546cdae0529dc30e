package httperror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weekly-savings/backend/internal/models"
)

type Error struct {
	Message string `json:"error" example:"there is no expense matching your query"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

// Status returns the HTTP status for an error returned by
// the database or the tracker.
func Status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Handler writes the error with its status as response.
func Handler(c *gin.Context, err error) {
	c.JSON(Status(err), New(err))
}
