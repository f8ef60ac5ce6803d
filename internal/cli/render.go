package cli

import (
	"errors"
	"fmt"

	"librarian/internal/book"
	"librarian/internal/library"
	"librarian/internal/member"

	"go.uber.org/zap"
)

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) printBook(b book.Book) {
	m.printf("Book ID: %s | Title: %s | Author: %s | Available: %d\n",
		b.ID, b.Title, b.Author, b.AvailableCopies)
}

func (m *Menu) printMember(mem member.Member) {
	m.printf("Member ID: %s | Name: %s\n", mem.ID, mem.Name)
	if len(mem.BorrowedTitles) == 0 {
		m.println("  No books currently borrowed.")
		return
	}
	m.println("  Borrowed Books:")
	for _, title := range mem.BorrowedTitles {
		m.printf("  - %s\n", title)
	}
}

// printError renders a service error as the single-line console
// message the user acts on. Errors outside the known set pass through
// verbatim and are logged.
func (m *Menu) printError(err error) {
	switch {
	case errors.Is(err, member.ErrNotFound):
		m.println("Error: Member not found.")
	case errors.Is(err, book.ErrNotFound):
		m.println("Error: Book not found.")
	case errors.Is(err, library.ErrNoCopies):
		m.println("Error: No available copies of this book.")
	case errors.Is(err, library.ErrAlreadyBorrowed):
		m.println("Error: Member has already borrowed this book.")
	case errors.Is(err, library.ErrNotBorrowed):
		m.println("Error: Member has not borrowed this book.")
	case errors.Is(err, book.ErrDuplicateTitle):
		m.println("Error: A book with this title already exists.")
	case errors.Is(err, member.ErrDuplicateID):
		m.println("Error: A member with this ID already exists.")
	default:
		m.logger.Error("operation failed", zap.Error(err))
		m.printf("Error: %v\n", err)
	}
}

func (m *Menu) printValidationErrors(errs []ValidationError) {
	for _, e := range errs {
		m.printf("Error: %s.\n", e.Message)
	}
}
