package api

import (
	"errors"
	"net/http"
	"time"

	"addressbook/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// Response is the uniform success envelope for every endpoint with a body
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorDetails is the failure payload for non-validation errors
type ErrorDetails struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Details   string    `json:"details"`
}

// ValidationErrorDetails lists every failing field with its message
type ValidationErrorDetails struct {
	Timestamp time.Time         `json:"timestamp"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors"`
}

// respond writes the success envelope
func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Message: message, Data: data})
}

// respondError is the single place domain errors become HTTP responses.
// Unknown errors are logged in full but reported generically.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrAddressNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(c, http.StatusConflict, domain.ErrConflict.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("unhandled error")
		writeError(c, http.StatusInternalServerError, "internal server error")
	}
}

// respondBindError translates JSON binding failures. Validator errors get a
// field-name to message map; malformed JSON gets a generic 400.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, ValidationErrorDetails{
			Timestamp: time.Now().UTC(),
			Message:   "validation failed",
			Errors:    validationMessages(verrs),
		})
		return
	}
	writeError(c, http.StatusBadRequest, "invalid request body")
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorDetails{
		Timestamp: time.Now().UTC(),
		Message:   message,
		Details:   c.Request.Method + " " + c.Request.URL.Path,
	})
}
