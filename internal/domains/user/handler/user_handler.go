package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookgallery-backend/internal/domains/user"
	"bookgallery-backend/internal/shared/middleware"
	"bookgallery-backend/internal/shared/response"
)

// UserHandler serves profile retrieval for the authenticated user.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// Profile handles GET /api/User/profile. The user id comes from the
// validated token, never from the request.
func (h *UserHandler) Profile(c *gin.Context) {
	raw, ok := c.Get(middleware.ContextUserID)
	if !ok {
		response.Unauthorized(c, []string{"Invalid token."})
		return
	}
	userID, ok := raw.(uuid.UUID)
	if !ok {
		response.Unauthorized(c, []string{"Invalid token."})
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), userID)
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
