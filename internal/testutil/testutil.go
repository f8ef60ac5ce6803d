// Package testutil provides shared fixtures for tests across the
// library manager.
package testutil

import (
	"path/filepath"
	"testing"

	"librarian/internal/book"
	"librarian/internal/member"

	"go.uber.org/zap"
)

// TestBookDune is a canned catalog entry for tests.
var TestBookDune = book.Book{
	ID:              "B1",
	Title:           "Dune",
	Author:          "Frank Herbert",
	AvailableCopies: 1,
}

// TestBookFoundation is a canned catalog entry for tests.
var TestBookFoundation = book.Book{
	ID:              "B2",
	Title:           "Foundation",
	Author:          "Isaac Asimov",
	AvailableCopies: 2,
}

// TestMemberAlice is a canned roster entry for tests.
var TestMemberAlice = member.Member{
	ID:   "M1",
	Name: "Alice Liddell",
}

// TestMemberBob is a canned roster entry for tests.
var TestMemberBob = member.Member{
	ID:   "M2",
	Name: "Bob Gray",
}

// Logger returns a logger that discards everything, for wiring
// components under test.
func Logger() *zap.Logger {
	return zap.NewNop()
}

// TempPaths returns books/members/transactions paths inside a fresh
// temporary directory, mirroring the default data file layout.
func TempPaths(t *testing.T) (booksPath, membersPath, logPath string) {
	t.Helper()
	dir := t.TempDir()
	return filepath.Join(dir, "books.txt"),
		filepath.Join(dir, "members.txt"),
		filepath.Join(dir, "transactions.log")
}
