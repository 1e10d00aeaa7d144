package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookgallery-backend/internal/domains/author"
)

func TestFilterClause_NoFilters(t *testing.T) {
	where, args := filterClause(author.NewFilterSpecification("", "", 1, 10))

	assert.Equal(t, " WHERE 1=1", where)
	assert.Empty(t, args)
}

func TestFilterClause_BothFiltersNumberedInOrder(t *testing.T) {
	where, args := filterClause(author.NewFilterSpecification("Urs", "Le", 1, 10))

	assert.Contains(t, where, "first_name ILIKE '%' || $1 || '%'")
	assert.Contains(t, where, "last_name ILIKE '%' || $2 || '%'")
	assert.Equal(t, []interface{}{"Urs", "Le"}, args)
}

func TestFilterClause_EscapesLikeMetacharacters(t *testing.T) {
	// A literal % or _ in the filter must match itself, not act as a
	// wildcard.
	where, args := filterClause(author.NewFilterSpecification(`100%`, `a_b\c`, 1, 10))

	assert.Contains(t, where, "first_name ILIKE")
	assert.Equal(t, []interface{}{`100\%`, `a\_b\\c`}, args)
}
