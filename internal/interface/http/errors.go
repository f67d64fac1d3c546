package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-service/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-service/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-user-service/pkg/response"
)

const (
	msgInvalidBody   = "Invalid request body"
	msgNotFound      = "User not found"
	msgAlreadyExists = "User already exists"
	msgInternal      = "Internal server error"
)

// statusForError maps a domain error to the HTTP status and client message.
// Anything it does not recognise is an internal error.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrUserNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, entity.ErrUserAlreadyExists):
		return http.StatusUnprocessableEntity, msgAlreadyExists
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

// fail writes the mapped error response. Internal errors are logged with the
// operation and request id; the client only sees the generic message.
func (h *UserHandler) fail(c *gin.Context, op string, err error) {
	status, msg := statusForError(err)
	if status == http.StatusInternalServerError && h.Logger != nil {
		h.Logger.WithError(err).WithFields(logrus.Fields{
			"operation":  op,
			"request_id": c.GetString(middleware.RequestIDKey),
			"user_id":    c.Param("id"),
		}).Error("user request failed")
	}
	response.Error(c, status, msg, nil)
}
