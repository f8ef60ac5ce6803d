package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for catalog storage. Implementations
// own the collection and persist every mutation before returning.
type Repository interface {
	// List returns all books in catalog insertion order.
	List(ctx context.Context) ([]Book, error)
	// GetByTitle returns the first book whose title matches,
	// case-insensitively, or ErrNotFound.
	GetByTitle(ctx context.Context, title string) (Book, error)
	// Add appends a new book, failing with ErrDuplicateTitle when the
	// title is already taken, case-insensitively.
	Add(ctx context.Context, b Book) error
	// AdjustCopies applies delta to the available copy count of the book
	// with the given title and returns the updated record. The delta is
	// applied as-is; keeping the count non-negative is the caller's
	// responsibility.
	AdjustCopies(ctx context.Context, title string, delta int) (Book, error)
}
