package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookgallery-backend/internal/domains/book"
)

func TestFilterClause_GenreThenTitleNumberedInOrder(t *testing.T) {
	genre := book.GenreFantasy
	where, args := filterClause(book.NewFilterSpecification(&genre, "Earthsea", 1, 10))

	assert.Contains(t, where, "genre = $1")
	assert.Contains(t, where, "title ILIKE '%' || $2 || '%'")
	assert.Equal(t, []interface{}{book.GenreFantasy, "Earthsea"}, args)
}

func TestFilterClause_EscapesLikeMetacharactersInTitle(t *testing.T) {
	// A literal % or _ in the title filter must match itself, not act
	// as a wildcard.
	_, args := filterClause(book.NewFilterSpecification(nil, `50%_off`, 1, 10))

	assert.Equal(t, []interface{}{`50\%\_off`}, args)
}
