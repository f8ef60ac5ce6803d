package member

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when no member matches the given ID.
var ErrNotFound = errors.New("member not found")

// ErrDuplicateID is returned when adding a member whose ID is already
// taken, compared case-insensitively.
var ErrDuplicateID = errors.New("member id already exists")

// Member represents a library member. BorrowedTitles behaves as an
// ordered set: a title appears at most once, insertion order is kept
// for display.
type Member struct {
	ID             string
	Name           string
	BorrowedTitles []string
}

// HasBorrowed reports whether the member currently holds the given
// title, compared case-insensitively.
func (m Member) HasBorrowed(title string) bool {
	for _, t := range m.BorrowedTitles {
		if strings.EqualFold(t, title) {
			return true
		}
	}
	return false
}
