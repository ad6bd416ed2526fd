package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medicore/clinic-api/pkg/apperror"
)

// ErrorBody is the only failure shape the API exposes.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error translates a service error into an HTTP response using the closed
// kind→status mapping. This is the single place statuses are chosen from
// errors; handlers must not inspect message text.
func Error(c *gin.Context, err error) {
	c.JSON(statusFor(err), ErrorBody{Error: apperror.MessageOf(err)})
}

// ErrorWithStatus forces a specific status while keeping the standard body,
// for the handful of endpoints whose observed contract deviates from the
// default mapping (appointment cancel reports 400 for a missing row).
func ErrorWithStatus(c *gin.Context, status int, err error) {
	c.JSON(status, ErrorBody{Error: apperror.MessageOf(err)})
}

// BadRequest responds 400 with a literal message, used for request-shape
// validation that never reaches the service layer.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

func statusFor(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindConflict:
		return http.StatusConflict
	case apperror.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
