package book

import "errors"

// ErrNotFound is returned when a book is not found in the catalog.
var ErrNotFound = errors.New("book not found")

// ErrDuplicateTitle is returned when adding a book whose title is already
// taken, compared case-insensitively.
var ErrDuplicateTitle = errors.New("book title already exists")

// Book represents a catalog entry. Title is the primary lookup key for
// borrow and return operations and is unique across the catalog,
// case-insensitively. AvailableCopies never goes below zero; the only
// guard is the borrow-time check.
type Book struct {
	ID              string
	Title           string
	Author          string
	AvailableCopies int
}
