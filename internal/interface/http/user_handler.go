package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/go-ddd-user-service/internal/application"
	"github.com/oksasatya/go-ddd-user-service/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-service/pkg/response"
	"github.com/oksasatya/go-ddd-user-service/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Fields are pointers so a key that is present with "" or 0 still passes `required`.
type createUserRequest struct {
	Name  *string `json:"name" binding:"required"`
	Email *string `json:"email" binding:"required"`
	Age   *uint8  `json:"age" binding:"required"`
}

// A nil field is left unchanged.
type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Age   *uint8  `json:"age"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   uint8  `json:"age"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Age: u.Age}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, msgInvalidBody, validation.ToDetails(err))
		return
	}

	u, err := h.Svc.CreateUser(c.Request.Context(), entity.CreateUser{
		Name:  *req.Name,
		Email: *req.Email,
		Age:   *req.Age,
	})
	if err != nil {
		h.fail(c, "create_user", err)
		return
	}
	response.Success(c, http.StatusCreated, toUserResponse(u))
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Svc.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get_user", err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u))
}

func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, msgInvalidBody, validation.ToDetails(err))
		return
	}

	u, err := h.Svc.UpdateUser(c.Request.Context(), entity.UpdateUser{
		ID:    c.Param("id"),
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		h.fail(c, "update_user", err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u))
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete_user", err)
		return
	}
	response.NoContent(c)
}
