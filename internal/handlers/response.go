package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorEnvelope is the only error shape the API returns: a human-readable
// message, never a stack trace, plus an optional machine-readable code.
type ErrorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: msg,
		Code:  code,
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
