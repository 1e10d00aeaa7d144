package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenres_FixedListInOrder(t *testing.T) {
	want := []string{
		"Fiction", "NonFiction", "Mystery", "Fantasy", "ScienceFiction",
		"Biography", "Romance", "Thriller", "Historical",
	}
	assert.Equal(t, want, Genres())
}

func TestParseGenre_KnownNames(t *testing.T) {
	for _, name := range Genres() {
		g, err := ParseGenre(name)
		require.NoError(t, err)
		assert.Equal(t, name, g.String())
	}
}

func TestParseGenre_RejectsUnknownAndCaseMismatch(t *testing.T) {
	for _, name := range []string{"", "Horror", "fiction", "SCIENCEFICTION", "Science Fiction"} {
		_, err := ParseGenre(name)
		assert.Error(t, err, "name %q", name)
	}
}
