package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/application"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/entity"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/pkg/response"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/pkg/validation"
)

// AccountHandler serves account and session creation for the reference API.
type AccountHandler struct {
	Svc    *application.AccountService
	Logger *logrus.Logger
}

func NewAccountHandler(svc *application.AccountService, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateUser POST /api/users {email, password}
func (h *AccountHandler) CreateUser(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSON(c, response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)))
		return
	}

	u, err := h.Svc.CreateAccount(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, application.ErrEmailTaken):
		response.JSON(c, response.Error[any](c, http.StatusUnprocessableEntity, "email has already been taken", nil))
		return
	case err != nil:
		h.logError(c, "create user failed", err)
		response.JSON(c, response.Error[any](c, http.StatusInternalServerError, "could not create user", nil))
		return
	}
	response.JSON(c, response.Success(c, http.StatusCreated, u, "user created", nil))
}

// CreateSession POST /api/users/sessions {email, password}
func (h *AccountHandler) CreateSession(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSON(c, response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)))
		return
	}

	s, err := h.Svc.OpenSession(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		response.JSON(c, response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil))
		return
	case err != nil:
		h.logError(c, "create session failed", err)
		response.JSON(c, response.Error[any](c, http.StatusInternalServerError, "could not create session", nil))
		return
	}
	response.JSON(c, response.Success[*entity.Session](c, http.StatusCreated, s, "session created", nil))
}

func (h *AccountHandler) logError(c *gin.Context, msg string, err error) {
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error(msg)
	}
}
