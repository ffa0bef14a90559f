package handler

import (
	"net/http"

	"comanda/internal/apierror"
	"comanda/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// bindAndValidate binds the JSON body and runs validator tags. Returns false
// and writes the error response if binding fails — the caller should return
// immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Envelope("The request body is not valid JSON"))
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Envelope("The request is not valid"))
		return false
	}
	return true
}

// respondError maps a service error onto the wire. Storage-class errors are
// logged with full context and reported generically.
func respondError(c *gin.Context, err error) {
	e := apierror.From(err)
	if e.Kind == apierror.Storage {
		log.Error().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Err(err).
			Msg("request failed")
	}
	c.JSON(apierror.Status(e.Kind), apierror.Envelope(e.Message))
}
