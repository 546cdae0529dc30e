// Package healthz reports whether the backend can reach its database.
package healthz

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weekly-savings/backend/internal/httputil"
	"github.com/weekly-savings/backend/internal/models"
)

type Response struct {
	Database string  `json:"database" example:"ok"`                             // "ok" or "unavailable"
	Error    *string `json:"error,omitempty" example:"sql: database is closed"` // Why the database cannot be reached
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the state of the database connection
// @Tags			General
// @Produce		json
// @Success		200	{object}	Response
// @Failure		503	{object}	Response
// @Router			/healthz [get]
func Get(c *gin.Context) {
	if err := ping(c.Request.Context()); err != nil {
		msg := err.Error()
		c.JSON(http.StatusServiceUnavailable, Response{Database: "unavailable", Error: &msg})
		return
	}

	c.JSON(http.StatusOK, Response{Database: "ok"})
}

func ping(ctx context.Context) error {
	if models.DB == nil {
		return models.ErrGeneral
	}

	sqlDB, err := models.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}
