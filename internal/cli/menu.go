// Package cli implements the interactive console menu over the
// catalog, roster, and transaction services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"librarian/internal/book"
	"librarian/internal/library"
	"librarian/internal/member"

	"go.uber.org/zap"
)

// Menu is one interactive session: it renders the numbered menu, reads
// a choice per iteration, and dispatches to the services. All reads
// and writes go through the injected streams, so tests can script an
// entire session.
type Menu struct {
	books   *book.Service
	members *member.Service
	library *library.Service
	logger  *zap.Logger

	in  *bufio.Scanner
	out io.Writer
}

// NewMenu wires the menu to its services and I/O streams.
func NewMenu(books *book.Service, members *member.Service, lib *library.Service, in io.Reader, out io.Writer, logger *zap.Logger) *Menu {
	return &Menu{
		books:   books,
		members: members,
		library: lib,
		logger:  logger,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops over the menu until the exit option is chosen. Running out
// of input behaves like choosing exit, so piped sessions terminate
// cleanly.
func (m *Menu) Run(ctx context.Context) {
	m.logger.Debug("interactive session started")
	for {
		m.printMenu()
		choice, ok := m.promptLine("Enter your choice: ")
		if !ok {
			if err := m.in.Err(); err != nil {
				m.logger.Warn("reading input failed", zap.Error(err))
			}
			m.println("Exiting the system. Goodbye!")
			return
		}
		if m.dispatch(ctx, choice) {
			return
		}
	}
}

// dispatch runs one menu action and reports whether the session should
// end.
func (m *Menu) dispatch(ctx context.Context, choice string) bool {
	switch choice {
	case "1":
		m.addBook(ctx)
	case "2":
		m.addMember(ctx)
	case "3":
		m.listBooks(ctx)
	case "4":
		m.listMembers(ctx)
	case "5":
		m.borrowBook(ctx)
	case "6":
		m.returnBook(ctx)
	case "7":
		m.searchByAuthor(ctx)
	case "8":
		m.mostBorrowed(ctx)
	case "9":
		m.history(ctx)
	case "10":
		m.println("Exiting the system. Goodbye!")
		return true
	default:
		m.println("Invalid choice. Please try again.")
	}
	return false
}

func (m *Menu) printMenu() {
	m.println("")
	m.println("===== SMART LIBRARY MANAGEMENT SYSTEM =====")
	m.println("1. Add New Book")
	m.println("2. Add New Member")
	m.println("3. Display All Books")
	m.println("4. Display All Members")
	m.println("5. Borrow Book")
	m.println("6. Return Book")
	m.println("7. Search by Author")
	m.println("8. Most Borrowed Book")
	m.println("9. Transaction History")
	m.println("10. Exit")
}

// promptLine prints prompt and reads one line, trimmed of surrounding
// whitespace. ok is false once the input stream is exhausted.
func (m *Menu) promptLine(prompt string) (line string, ok bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptInt reads one line and converts it to an int. A line that is
// not a number aborts with an inline error, sending the user back to
// the menu.
func (m *Menu) promptInt(prompt string) (int, bool) {
	line, ok := m.promptLine(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		m.println("Invalid input for copies. Please enter a number.")
		return 0, false
	}
	return n, true
}
