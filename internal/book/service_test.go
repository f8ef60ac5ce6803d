package book

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestService_SearchByAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	catalog := []Book{
		{ID: "B1", Title: "Dune", Author: "Frank Herbert", AvailableCopies: 2},
		{ID: "B2", Title: "Foundation", Author: "Isaac Asimov", AvailableCopies: 1},
		{ID: "B3", Title: "Dune Messiah", Author: "Frank Herbert", AvailableCopies: 1},
	}

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(catalog, nil)

		found, err := service.SearchByAuthor(context.Background(), "herBERT")

		assert.NoError(t, err)
		assert.Len(t, found, 2)
		assert.Equal(t, "Dune", found[0].Title)
		assert.Equal(t, "Dune Messiah", found[1].Title)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(catalog, nil)

		found, err := service.SearchByAuthor(context.Background(), "Tolkien")

		assert.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("preserves catalog insertion order", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(catalog, nil)

		found, err := service.SearchByAuthor(context.Background(), "a")

		assert.NoError(t, err)
		assert.Len(t, found, 3)
		assert.Equal(t, []Book{catalog[0], catalog[1], catalog[2]}, found)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, context.DeadlineExceeded)

		_, err := service.SearchByAuthor(context.Background(), "Herbert")

		assert.Error(t, err)
	})
}

func TestService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	testBook := Book{ID: "B1", Title: "Dune", Author: "Frank Herbert", AvailableCopies: 3}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Add(gomock.Any(), testBook).Return(nil)

		assert.NoError(t, service.Add(context.Background(), testBook))
	})

	t.Run("duplicate title", func(t *testing.T) {
		mockRepo.EXPECT().Add(gomock.Any(), testBook).Return(ErrDuplicateTitle)

		err := service.Add(context.Background(), testBook)

		assert.ErrorIs(t, err, ErrDuplicateTitle)
	})
}

func TestService_GetByTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("found", func(t *testing.T) {
		want := Book{ID: "B1", Title: "Dune"}
		mockRepo.EXPECT().GetByTitle(gomock.Any(), "dune").Return(want, nil)

		got, err := service.GetByTitle(context.Background(), "dune")

		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByTitle(gomock.Any(), "missing").Return(Book{}, ErrNotFound)

		_, err := service.GetByTitle(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}
