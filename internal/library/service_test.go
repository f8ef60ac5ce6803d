package library

import (
	"context"
	"testing"
	"time"

	"librarian/internal/book"
	"librarian/internal/member"
	"librarian/internal/txlog"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testClock = time.Date(2025, 3, 1, 14, 5, 9, 0, time.UTC)

type mocks struct {
	books   *book.MockRepository
	members *member.MockRepository
	log     *txlog.MockLog
}

func newTestService(t *testing.T) (*Service, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := mocks{
		books:   book.NewMockRepository(ctrl),
		members: member.NewMockRepository(ctrl),
		log:     txlog.NewMockLog(ctrl),
	}
	s := NewService(m.books, m.members, m.log, zap.NewNop())
	s.now = func() time.Time { return testClock }
	return s, m
}

func TestService_Borrow(t *testing.T) {
	ctx := context.Background()
	alice := member.Member{ID: "M1", Name: "Alice"}
	dune := book.Book{ID: "B1", Title: "Dune", Author: "Frank Herbert", AvailableCopies: 1}

	t.Run("success decrements copies, records title, logs", func(t *testing.T) {
		s, m := newTestService(t)

		m.members.EXPECT().GetByID(gomock.Any(), "M1").Return(alice, nil)
		m.books.EXPECT().GetByTitle(gomock.Any(), "dune").Return(dune, nil)
		m.books.EXPECT().AdjustCopies(gomock.Any(), "Dune", -1).
			Return(book.Book{ID: "B1", Title: "Dune", Author: "Frank Herbert", AvailableCopies: 0}, nil)
		m.members.EXPECT().AddBorrowedTitle(gomock.Any(), "M1", "Dune").
			Return(member.Member{ID: "M1", Name: "Alice", BorrowedTitles: []string{"Dune"}}, nil)
		m.log.EXPECT().Append(gomock.Any(), txlog.Entry{
			At:         testClock,
			Kind:       txlog.KindBorrowed,
			Title:      "Dune",
			MemberName: "Alice",
			MemberID:   "M1",
		}).Return(nil)

		gotBook, gotMember, err := s.Borrow(ctx, "M1", "dune")

		assert.NoError(t, err)
		assert.Equal(t, 0, gotBook.AvailableCopies)
		assert.Equal(t, []string{"Dune"}, gotMember.BorrowedTitles)
	})

	t.Run("member not found", func(t *testing.T) {
		s, m := newTestService(t)

		m.members.EXPECT().GetByID(gomock.Any(), "M9").Return(member.Member{}, member.ErrNotFound)

		_, _, err := s.Borrow(ctx, "M9", "Dune")

		assert.ErrorIs(t, err, member.ErrNotFound)
	})

	t.Run("book not found", func(t *testing.T) {
		s, m := newTestService(t)

		m.members.EXPECT().GetByID(gomock.Any(), "M1").Return(alice, nil)
		m.books.EXPECT().GetByTitle(gomock.Any(), "Missing").Return(book.Book{}, book.ErrNotFound)

		_, _, err := s.Borrow(ctx, "M1", "Missing")

		assert.ErrorIs(t, err, book.ErrNotFound)
	})

	t.Run("no available copies", func(t *testing.T) {
		s, m := newTestService(t)

		gone := dune
		gone.AvailableCopies = 0
		m.members.EXPECT().GetByID(gomock.Any(), "M1").Return(alice, nil)
		m.books.EXPECT().GetByTitle(gomock.Any(), "Dune").Return(gone, nil)

		_, _, err := s.Borrow(ctx, "M1", "Dune")

		assert.ErrorIs(t, err, ErrNoCopies)
	})

	t.Run("already borrowed, checked against canonical title", func(t *testing.T) {
		s, m := newTestService(t)

		holding := member.Member{ID: "M1", Name: "Alice", BorrowedTitles: []string{"Dune"}}
		m.members.EXPECT().GetByID(gomock.Any(), "M1").Return(holding, nil)
		m.books.EXPECT().GetByTitle(gomock.Any(), "DUNE").Return(dune, nil)

		_, _, err := s.Borrow(ctx, "M1", "DUNE")

		assert.ErrorIs(t, err, ErrAlreadyBorrowed)
	})

	t.Run("copies check runs before already-borrowed check", func(t *testing.T) {
		s, m := newTestService(t)

		holding := member.Member{ID: "M1", Name: "Alice", BorrowedTitles: []string{"Dune"}}
		gone := dune
		gone.AvailableCopies = 0
		m.members.EXPECT().GetByID(gomock.Any(), "M1").Return(holding, nil)
		m.books.EXPECT().GetByTitle(gomock.Any(), "Dune").Return(gone, nil)

		_, _, err := s.Borrow(ctx, "M1", "Dune")

		assert.ErrorIs(t, err, ErrNoCopies)
	})
}

func TestService_Return(t *testing.T) {
	ctx := context.Background()
	alice := member.Member{ID: "M1", Name: "Alice", BorrowedTitles: []string{"Dune"}}
	dune := book.Book{ID: "B1", Title: "Dune", Author: "Frank Herbert", AvailableCopies: 0}

	t.Run("success increments copies, clears title, logs", func(t *testing.T) {
		s, m := newTestService(t)

		m.members.EXPECT().GetByID(gomock.Any(), "M1").Return(alice, nil)
		m.books.EXPECT().GetByTitle(gomock.Any(), "dune").Return(dune, nil)
		m.books.EXPECT().AdjustCopies(gomock.Any(), "Dune", 1).
			Return(book.Book{ID: "B1", Title: "Dune", Author: "Frank Herbert", AvailableCopies: 1}, nil)
		m.members.EXPECT().RemoveBorrowedTitle(gomock.Any(), "M1", "Dune").
			Return(member.Member{ID: "M1", Name: "Alice"}, nil)
		m.log.EXPECT().Append(gomock.Any(), txlog.Entry{
			At:         testClock,
			Kind:       txlog.KindReturned,
			Title:      "Dune",
			MemberName: "Alice",
			MemberID:   "M1",
		}).Return(nil)

		gotBook, gotMember, err := s.Return(ctx, "M1", "dune")

		assert.NoError(t, err)
		assert.Equal(t, 1, gotBook.AvailableCopies)
		assert.Empty(t, gotMember.BorrowedTitles)
	})

	t.Run("member not found", func(t *testing.T) {
		s, m := newTestService(t)

		m.members.EXPECT().GetByID(gomock.Any(), "M9").Return(member.Member{}, member.ErrNotFound)

		_, _, err := s.Return(ctx, "M9", "Dune")

		assert.ErrorIs(t, err, member.ErrNotFound)
	})

	t.Run("book not found", func(t *testing.T) {
		s, m := newTestService(t)

		m.members.EXPECT().GetByID(gomock.Any(), "M1").Return(alice, nil)
		m.books.EXPECT().GetByTitle(gomock.Any(), "Missing").Return(book.Book{}, book.ErrNotFound)

		_, _, err := s.Return(ctx, "M1", "Missing")

		assert.ErrorIs(t, err, book.ErrNotFound)
	})

	t.Run("title not held", func(t *testing.T) {
		s, m := newTestService(t)

		foundation := book.Book{ID: "B2", Title: "Foundation", AvailableCopies: 2}
		m.members.EXPECT().GetByID(gomock.Any(), "M1").Return(alice, nil)
		m.books.EXPECT().GetByTitle(gomock.Any(), "Foundation").Return(foundation, nil)

		_, _, err := s.Return(ctx, "M1", "Foundation")

		assert.ErrorIs(t, err, ErrNotBorrowed)
	})
}

func TestService_MostBorrowed(t *testing.T) {
	ctx := context.Background()

	t.Run("two borrows beat one", func(t *testing.T) {
		s, m := newTestService(t)

		m.log.EXPECT().Lines(gomock.Any()).Return([]string{
			"[2025-03-01 10:00:01] Borrowed: 'Dune' by Alice (ID: M1)",
			"[2025-03-01 10:00:02] Borrowed: 'Foundation' by Bob (ID: M2)",
			"[2025-03-01 10:00:03] Borrowed: 'Dune' by Bob (ID: M2)",
		}, nil)

		got, err := s.MostBorrowed(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []TitleCount{{Title: "Dune", Count: 2}}, got)
	})

	t.Run("ties produce multiple results", func(t *testing.T) {
		s, m := newTestService(t)

		m.log.EXPECT().Lines(gomock.Any()).Return([]string{
			"[2025-03-01 10:00:01] Borrowed: 'Foundation' by Alice (ID: M1)",
			"[2025-03-01 10:00:02] Borrowed: 'Dune' by Bob (ID: M2)",
		}, nil)

		got, err := s.MostBorrowed(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []TitleCount{
			{Title: "Foundation", Count: 1},
			{Title: "Dune", Count: 1},
		}, got)
	})

	t.Run("empty log yields empty report", func(t *testing.T) {
		s, m := newTestService(t)

		m.log.EXPECT().Lines(gomock.Any()).Return(nil, nil)

		got, err := s.MostBorrowed(ctx)

		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("malformed lines are skipped with a warning", func(t *testing.T) {
		core, observed := observer.New(zapcore.WarnLevel)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		logMock := txlog.NewMockLog(ctrl)
		s := NewService(book.NewMockRepository(ctrl), member.NewMockRepository(ctrl), logMock, zap.New(core))

		logMock.EXPECT().Lines(gomock.Any()).Return([]string{
			"[2025-03-01 10:00:01] Borrowed: 'Dune' by Alice (ID: M1)",
			"Borrowed: no quotes here",
		}, nil)

		got, err := s.MostBorrowed(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []TitleCount{{Title: "Dune", Count: 1}}, got)
		assert.Equal(t, 1, observed.FilterMessage("skipped malformed transaction log lines").Len())
	})

	t.Run("log read error", func(t *testing.T) {
		s, m := newTestService(t)

		m.log.EXPECT().Lines(gomock.Any()).Return(nil, context.DeadlineExceeded)

		_, err := s.MostBorrowed(ctx)

		assert.Error(t, err)
	})
}

func TestService_History(t *testing.T) {
	ctx := context.Background()

	t.Run("joins lines oldest first", func(t *testing.T) {
		s, m := newTestService(t)

		m.log.EXPECT().Lines(gomock.Any()).Return([]string{"first", "second"}, nil)

		got, err := s.History(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "first\nsecond", got)
	})

	t.Run("empty log", func(t *testing.T) {
		s, m := newTestService(t)

		m.log.EXPECT().Lines(gomock.Any()).Return(nil, nil)

		got, err := s.History(ctx)

		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}
