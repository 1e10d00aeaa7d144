package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookgallery-backend/internal/domains/user"
	"bookgallery-backend/internal/shared/response"
	"bookgallery-backend/internal/shared/validate"
)

// AuthHandler serves registration and login. Neither endpoint sits
// behind the auth middleware.
type AuthHandler struct {
	service user.Service
}

func NewAuthHandler(svc user.Service) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Register handles POST /api/Auth/register. A successful registration
// returns the token alongside the new profile, so the client is logged
// in immediately.
func (h *AuthHandler) Register(c *gin.Context) {
	var cmd user.CreateUserCommand
	if err := c.BindJSON(&cmd); err != nil {
		response.Errors(c, http.StatusBadRequest, []string{err.Error()})
		return
	}

	if err := cmd.Validate(); err != nil {
		response.ValidationErrors(c, validate.FieldErrors(err))
		return
	}

	res, err := h.service.Register(c.Request.Context(), cmd)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !res.Succeeded {
		response.FromFailure(c, res.Result)
		return
	}

	response.JSON(c, http.StatusOK, res.Data)
}

// Login handles POST /api/Auth/login. Failed credentials come back as
// 401 with the same message regardless of which part was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var cmd user.LoginCommand
	if err := c.BindJSON(&cmd); err != nil {
		response.Errors(c, http.StatusBadRequest, []string{err.Error()})
		return
	}

	if err := cmd.Validate(); err != nil {
		response.ValidationErrors(c, validate.FieldErrors(err))
		return
	}

	res, err := h.service.Login(c.Request.Context(), cmd)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !res.Succeeded {
		response.Unauthorized(c, res.Errors)
		return
	}

	response.JSON(c, http.StatusOK, res.Data)
}
