package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every JSON response is wrapped in.
type APIResponse[T any] struct {
	StatusCode int `json:"status_code"`
	Data       T   `json:"data"`
}

// ErrorData is the payload of a failed request.
type ErrorData struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Success writes data with the given status. A zero status means 200.
func Success[T any](ctx *gin.Context, status int, data T) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, APIResponse[T]{StatusCode: status, Data: data})
}

// Error writes an error payload and aborts the handler chain. A zero status means 400.
func Error(ctx *gin.Context, status int, message string, details map[string]string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.AbortWithStatusJSON(status, APIResponse[ErrorData]{
		StatusCode: status,
		Data:       ErrorData{Message: message, Details: details},
	})
}

// NoContent writes 204 with an empty body.
func NoContent(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
}
