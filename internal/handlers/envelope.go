package handlers

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/calmliming/menuflow/internal/apperr"
)

// envelope is the body of every API response.
type envelope struct {
	Code int         `json:"code"`
	Data interface{} `json:"data"`
	Msg  string      `json:"msg"`
}

func respond(c *gin.Context, status int, data interface{}, msg string) {
	c.JSON(status, envelope{Code: status, Data: data, Msg: msg})
}

// fail writes err in the envelope. Internal causes are logged and replaced
// by a generic message.
func fail(c *gin.Context, err error) {
	status := apperr.Status(err)

	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Kind == apperr.KindInternal {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		respond(c, status, nil, "internal server error")
		return
	}

	var data interface{}
	if len(ae.Fields) > 0 {
		data = gin.H{"fields": ae.Fields}
	}
	respond(c, status, data, ae.Msg)
}
