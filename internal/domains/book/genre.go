package book

import "fmt"

// Genre is the closed set of book genres. The wire format is the
// literal name.
type Genre string

const (
	GenreFiction        Genre = "Fiction"
	GenreNonFiction     Genre = "NonFiction"
	GenreMystery        Genre = "Mystery"
	GenreFantasy        Genre = "Fantasy"
	GenreScienceFiction Genre = "ScienceFiction"
	GenreBiography      Genre = "Biography"
	GenreRomance        Genre = "Romance"
	GenreThriller       Genre = "Thriller"
	GenreHistorical     Genre = "Historical"
)

var allGenres = []Genre{
	GenreFiction,
	GenreNonFiction,
	GenreMystery,
	GenreFantasy,
	GenreScienceFiction,
	GenreBiography,
	GenreRomance,
	GenreThriller,
	GenreHistorical,
}

// Genres returns every genre name in declaration order. The result is
// independent of database state.
func Genres() []string {
	names := make([]string, len(allGenres))
	for i, g := range allGenres {
		names[i] = string(g)
	}
	return names
}

// ParseGenre maps a name to its Genre. The match is exact; unknown
// names are rejected.
func ParseGenre(s string) (Genre, error) {
	for _, g := range allGenres {
		if string(g) == s {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown genre %q", s)
}

func (g Genre) String() string {
	return string(g)
}
