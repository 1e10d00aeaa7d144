package book

import "errors"

// ErrBookNotFound is returned by repositories when no row matches.
var ErrBookNotFound = errors.New("book not found")

// NotFoundMessage is the wire-facing not-found text.
const NotFoundMessage = "Book not found."
