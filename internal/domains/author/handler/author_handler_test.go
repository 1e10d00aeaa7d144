package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookgallery-backend/internal/domains/author"
	"bookgallery-backend/pkg/result"
)

type mockAuthorService struct {
	mock.Mock
}

func (m *mockAuthorService) Create(ctx context.Context, cmd author.CreateAuthorCommand) (result.Of[author.Dto], error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(result.Of[author.Dto]), args.Error(1)
}

func (m *mockAuthorService) GetByID(ctx context.Context, id uuid.UUID) (result.Of[author.Dto], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(result.Of[author.Dto]), args.Error(1)
}

func (m *mockAuthorService) List(ctx context.Context, spec author.FilterSpecification) (result.PagedResult[author.Dto], error) {
	args := m.Called(ctx, spec)
	return args.Get(0).(result.PagedResult[author.Dto]), args.Error(1)
}

func (m *mockAuthorService) Update(ctx context.Context, cmd author.UpdateAuthorCommand) (result.Result, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(result.Result), args.Error(1)
}

func (m *mockAuthorService) Delete(ctx context.Context, id uuid.UUID) (result.Result, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(result.Result), args.Error(1)
}

func setupAuthorRouter(svc author.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthorHandler(svc)

	r := gin.New()
	r.POST("/api/Author", h.Create)
	r.GET("/api/Author", h.List)
	r.GET("/api/Author/:id", h.GetByID)
	r.PUT("/api/Author/:id", h.Update)
	r.DELETE("/api/Author/:id", h.Delete)
	return r
}

func TestAuthorHandler_Update_SubstitutesEmptyBodyID(t *testing.T) {
	svc := new(mockAuthorService)
	router := setupAuthorRouter(svc)

	id := uuid.New()
	svc.On("Update", mock.Anything, mock.MatchedBy(func(cmd author.UpdateAuthorCommand) bool {
		return cmd.AuthorID == id
	})).Return(result.Success(), nil)

	body := `{"firstName":"Ursula","lastName":"Le Guin","dateOfBirth":"1929-10-21T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPut, "/api/Author/"+id.String(), strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	svc.AssertExpectations(t)
}

func TestAuthorHandler_Update_RejectsMismatchedID(t *testing.T) {
	svc := new(mockAuthorService)
	router := setupAuthorRouter(svc)

	pathID := uuid.New()
	bodyID := uuid.New()
	body := fmt.Sprintf(
		`{"authorId":%q,"firstName":"Ursula","lastName":"Le Guin","dateOfBirth":"1929-10-21T00:00:00Z"}`,
		bodyID)
	req := httptest.NewRequest(http.MethodPut, "/api/Author/"+pathID.String(), strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Author ID mismatch")
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAuthorHandler_Update_AcceptsMatchingBodyID(t *testing.T) {
	svc := new(mockAuthorService)
	router := setupAuthorRouter(svc)

	id := uuid.New()
	svc.On("Update", mock.Anything, mock.MatchedBy(func(cmd author.UpdateAuthorCommand) bool {
		return cmd.AuthorID == id
	})).Return(result.Success(), nil)

	body := fmt.Sprintf(
		`{"authorId":%q,"firstName":"Ursula","lastName":"Le Guin","dateOfBirth":"1929-10-21T00:00:00Z"}`,
		id)
	req := httptest.NewRequest(http.MethodPut, "/api/Author/"+id.String(), strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	svc.AssertExpectations(t)
}

func TestAuthorHandler_Create_ValidationFailureShape(t *testing.T) {
	svc := new(mockAuthorService)
	router := setupAuthorRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/Author", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "First name is required.")
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthorHandler_GetByID_NotFound(t *testing.T) {
	svc := new(mockAuthorService)
	router := setupAuthorRouter(svc)

	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).
		Return(result.NotFoundOf[author.Dto]("Author not found."), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/Author/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Author not found.")
}

func TestAuthorHandler_GetByID_InvalidUUID(t *testing.T) {
	svc := new(mockAuthorService)
	router := setupAuthorRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/Author/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestAuthorHandler_List_PassesFiltersAndPaging(t *testing.T) {
	svc := new(mockAuthorService)
	router := setupAuthorRouter(svc)

	want := author.NewFilterSpecification("Urs", "Le", 2, 5)
	svc.On("List", mock.Anything, want).
		Return(result.NewPagedResult([]author.Dto{}, 2, 5, 0), nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/Author?FirstName=Urs&LastName=Le&PageNumber=2&PageSize=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"items":[]`)
	svc.AssertExpectations(t)
}
