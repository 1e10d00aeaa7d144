package author

import "errors"

// ErrAuthorNotFound is the repository-level sentinel for a missing row.
var ErrAuthorNotFound = errors.New("author not found")

// NotFoundMessage is the user-facing not-found text.
const NotFoundMessage = "Author not found."
