package cli

import (
	"context"

	"librarian/internal/book"

	"github.com/google/uuid"
)

type addBookInput struct {
	ID     string
	Title  string `validate:"required"`
	Author string `validate:"required"`
	Copies int    `validate:"gte=0"`
}

// addBook drives option 1. A blank ID gets a generated one; a typed ID
// is kept verbatim.
func (m *Menu) addBook(ctx context.Context) {
	id, ok := m.promptLine("Enter Book ID: ")
	if !ok {
		return
	}
	title, ok := m.promptLine("Enter Title: ")
	if !ok {
		return
	}
	author, ok := m.promptLine("Enter Author: ")
	if !ok {
		return
	}
	copies, ok := m.promptInt("Enter Available Copies: ")
	if !ok {
		return
	}

	if id == "" {
		id = uuid.NewString()
	}
	in := addBookInput{ID: id, Title: title, Author: author, Copies: copies}
	if errs := ValidateStruct(in); len(errs) > 0 {
		m.printValidationErrors(errs)
		return
	}

	err := m.books.Add(ctx, book.Book{
		ID:              in.ID,
		Title:           in.Title,
		Author:          in.Author,
		AvailableCopies: in.Copies,
	})
	if err != nil {
		m.printError(err)
		return
	}
	m.println("Book added successfully!")
}

// listBooks drives option 3.
func (m *Menu) listBooks(ctx context.Context) {
	books, err := m.books.List(ctx)
	if err != nil {
		m.printError(err)
		return
	}
	if len(books) == 0 {
		m.println("No books in the library.")
		return
	}
	for _, b := range books {
		m.printBook(b)
	}
}

// searchByAuthor drives option 7.
func (m *Menu) searchByAuthor(ctx context.Context) {
	author, ok := m.promptLine("Enter Author's Name: ")
	if !ok {
		return
	}
	found, err := m.books.SearchByAuthor(ctx, author)
	if err != nil {
		m.printError(err)
		return
	}
	if len(found) == 0 {
		m.printf("No books found by author '%s'.\n", author)
		return
	}
	m.printf("Books by '%s':\n", author)
	for _, b := range found {
		m.printBook(b)
	}
}
