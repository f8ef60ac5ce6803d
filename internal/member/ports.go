package member

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=member

// Repository defines the contract for member storage. Implementations
// own the collection and persist every mutation before returning.
type Repository interface {
	// List returns all members in roster insertion order.
	List(ctx context.Context) ([]Member, error)
	// GetByID returns the first member whose ID matches,
	// case-insensitively, or ErrNotFound.
	GetByID(ctx context.Context, id string) (Member, error)
	// Add appends a new member, failing with ErrDuplicateID when the ID
	// is already taken, case-insensitively.
	Add(ctx context.Context, mem Member) error
	// AddBorrowedTitle puts title into the member's borrow set and
	// returns the updated member. Adding a title the member already
	// holds is a no-op.
	AddBorrowedTitle(ctx context.Context, id, title string) (Member, error)
	// RemoveBorrowedTitle removes title from the member's borrow set and
	// returns the updated member. Removing a title the member does not
	// hold is a no-op.
	RemoveBorrowedTitle(ctx context.Context, id, title string) (Member, error)
}
