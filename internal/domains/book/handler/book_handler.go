package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookgallery-backend/internal/domains/book"
	"bookgallery-backend/internal/shared/response"
	"bookgallery-backend/internal/shared/validate"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// Create handles POST /api/Book.
func (h *BookHandler) Create(c *gin.Context) {
	var cmd book.CreateBookCommand
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

// List handles GET /api/Book with optional Genre/Title filters and
// paging. A genre name outside the closed enumeration is rejected
// before the query runs.
func (h *BookHandler) List(c *gin.Context) {
	var genre *book.Genre
	if raw := c.Query("Genre"); raw != "" {
		g, err := book.ParseGenre(raw)
		if err != nil {
			response.Errors(c, http.StatusBadRequest, []string{"Invalid enum value."})
			return
		}
		genre = &g
	}

	spec := book.NewFilterSpecification(
		genre,
		c.Query("Title"),
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

// GetByID handles GET /api/Book/:id.
func (h *BookHandler) GetByID(c *gin.Context) {
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

// Update handles PUT /api/Book/:id. An empty body id is substituted
// from the path; any other mismatch is rejected.
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Errors(c, http.StatusBadRequest, []string{"Invalid UUID format."})
		return
	}

	var cmd book.UpdateBookCommand
	if err := c.BindJSON(&cmd); err != nil {
		response.Errors(c, http.StatusBadRequest, []string{err.Error()})
		return
	}

	if cmd.BookID != id {
		if cmd.BookID == uuid.Nil && id != uuid.Nil {
			cmd.BookID = id
		} else {
			response.Errors(c, http.StatusBadRequest, []string{"Book ID mismatch"})
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

// Delete handles DELETE /api/Book/:id.
func (h *BookHandler) Delete(c *gin.Context) {
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

// Genres handles GET /api/Book/genres. The list is fixed and does not
// touch storage.
func (h *BookHandler) Genres(c *gin.Context) {
	response.JSON(c, http.StatusOK, book.Genres())
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
