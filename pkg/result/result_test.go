package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessHasNoErrors(t *testing.T) {
	r := Success()

	assert.True(t, r.Succeeded)
	assert.Empty(t, r.Errors)
	assert.False(t, r.HasErrors())
	assert.False(t, r.ValidationFailed())
	assert.False(t, r.IsNotFound())
}

func TestFailureCarriesMessage(t *testing.T) {
	r := Failure("something went wrong")

	assert.False(t, r.Succeeded)
	assert.Equal(t, []string{"something went wrong"}, r.Errors)
	assert.True(t, r.HasErrors())
}

func TestFailureListPreservesOrder(t *testing.T) {
	r := FailureList([]string{"first", "second", "third"})

	assert.False(t, r.Succeeded)
	assert.Equal(t, []string{"first", "second", "third"}, r.Errors)
}

func TestValidationFailure(t *testing.T) {
	fields := map[string][]string{
		"Title":           {"Title is required."},
		"PublicationYear": {"Publication year must be between 800 and 2026."},
	}
	r := ValidationFailure(fields)

	assert.False(t, r.Succeeded)
	assert.True(t, r.ValidationFailed())
	assert.False(t, r.HasErrors())
	assert.Equal(t, fields, r.ValidationErrors)
}

func TestNotFoundIsFlagged(t *testing.T) {
	r := NotFound("Author not found.")

	assert.False(t, r.Succeeded)
	assert.True(t, r.IsNotFound())
	assert.Equal(t, []string{"Author not found."}, r.Errors)

	assert.False(t, Failure("other").IsNotFound())
}

func TestSuccessDataCarriesData(t *testing.T) {
	r := SuccessData("payload")

	assert.True(t, r.Succeeded)
	assert.Equal(t, "payload", r.Data)
}

func TestFailureOfLeavesDataZero(t *testing.T) {
	r := FailureOf[string]("nope")

	assert.False(t, r.Succeeded)
	assert.Zero(t, r.Data)

	nf := NotFoundOf[int]("missing")
	assert.True(t, nf.IsNotFound())
	assert.Zero(t, nf.Data)
}

func TestNewPagedResultNeverReturnsNilItems(t *testing.T) {
	page := NewPagedResult[string](nil, 3, 10, 0)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.PageNumber)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, 0, page.TotalCount)
}
