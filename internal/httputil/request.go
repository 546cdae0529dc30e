package httputil

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData decodes the JSON body of the request into data.
//
// Fields that are not in the body keep their values, so data can be
// prefilled with the current state of a resource to apply partial updates.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)

	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return ErrRequestBodyEmpty
	case errors.As(err, &typeErr):
		// The message names the offending field
		return err
	}

	log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("request body")
	return ErrInvalidBody
}
