package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookgallery-backend/internal/domains/author"
	"bookgallery-backend/internal/shared/response"
	"bookgallery-backend/internal/shared/validate"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Create handles POST /api/Author.
func (h *AuthorHandler) Create(c *gin.Context) {
	var cmd author.CreateAuthorCommand
	if err := c.BindJSON(&cmd); err != nil {
		response.Errors(c, http.StatusBadRequest, []string{err.Error()})
		return
	}

	if err := cmd.Validate(); err != nil {
		response.ValidationErrors(c, validate.FieldErrors(err))
		return
	}

	res, err := h.service.Create(c.Request.Context(), cmd)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !res.Succeeded {
		response.FromFailure(c, res.Result)
		return
	}

	response.JSON(c, http.StatusCreated, res.Data)
}

// List handles GET /api/Author with optional FirstName/LastName filters
// and paging.
func (h *AuthorHandler) List(c *gin.Context) {
	spec := author.NewFilterSpecification(
		c.Query("FirstName"),
		c.Query("LastName"),
		queryInt(c, "PageNumber", 1),
		queryInt(c, "PageSize", 10),
	)

	page, err := h.service.List(c.Request.Context(), spec)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, page)
}

// GetByID handles GET /api/Author/:id.
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Errors(c, http.StatusBadRequest, []string{"Invalid UUID format."})
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), id)
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

// Update handles PUT /api/Author/:id. An empty body id is substituted
// from the path; any other mismatch is rejected.
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Errors(c, http.StatusBadRequest, []string{"Invalid UUID format."})
		return
	}

	var cmd author.UpdateAuthorCommand
	if err := c.BindJSON(&cmd); err != nil {
		response.Errors(c, http.StatusBadRequest, []string{err.Error()})
		return
	}

	if cmd.AuthorID != id {
		if cmd.AuthorID == uuid.Nil && id != uuid.Nil {
			cmd.AuthorID = id
		} else {
			response.Errors(c, http.StatusBadRequest, []string{"Author ID mismatch"})
			return
		}
	}

	if err := cmd.Validate(); err != nil {
		response.ValidationErrors(c, validate.FieldErrors(err))
		return
	}

	res, err := h.service.Update(c.Request.Context(), cmd)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !res.Succeeded {
		response.FromFailure(c, res)
		return
	}

	response.NoContent(c)
}

// Delete handles DELETE /api/Author/:id.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Errors(c, http.StatusBadRequest, []string{"Invalid UUID format."})
		return
	}

	res, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !res.Succeeded {
		response.FromFailure(c, res)
		return
	}

	response.NoContent(c)
}

// queryInt parses an integer query parameter with a fallback.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
