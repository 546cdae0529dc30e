package v1

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// optionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
//
// get loads the resource to verify that it exists, options writes the allowed methods.
func optionsDetail[R any](c *gin.Context, get func(context.Context, string, uuid.UUID) (R, error), options gin.HandlerFunc) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Message: err.Error(),
		})
		return
	}

	_, err = get(c.Request.Context(), dataset(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Message: err.Error(),
		})
		return
	}

	options(c)
}
