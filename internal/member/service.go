package member

import (
	"context"
)

// Service provides member roster business logic.
type Service struct {
	repo Repository
}

// NewService creates a new member service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add puts a new member into the roster.
func (s *Service) Add(ctx context.Context, m Member) error {
	return s.repo.Add(ctx, m)
}

// List returns every member in roster insertion order.
func (s *Service) List(ctx context.Context) ([]Member, error) {
	return s.repo.List(ctx)
}

// GetByID returns the member with the given ID, case-insensitively.
func (s *Service) GetByID(ctx context.Context, id string) (Member, error) {
	return s.repo.GetByID(ctx, id)
}
