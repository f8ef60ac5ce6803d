package book

import (
	"context"
	"strings"
)

// Service provides catalog business logic.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add puts a new book into the catalog.
func (s *Service) Add(ctx context.Context, b Book) error {
	return s.repo.Add(ctx, b)
}

// List returns every book in catalog insertion order.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// GetByTitle returns the book with the given title, case-insensitively.
func (s *Service) GetByTitle(ctx context.Context, title string) (Book, error) {
	return s.repo.GetByTitle(ctx, title)
}

// SearchByAuthor returns all books whose author field contains the given
// substring, case-insensitively, in catalog insertion order.
func (s *Service) SearchByAuthor(ctx context.Context, author string) ([]Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(author)
	var found []Book
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Author), needle) {
			found = append(found, b)
		}
	}
	return found, nil
}
