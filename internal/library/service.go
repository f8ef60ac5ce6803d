// Package library implements the transaction engine: borrow and return
// transitions across the catalog, the member roster, and the
// append-only transaction log, plus the reports derived from that log.
package library

import (
	"context"
	"errors"
	"strings"
	"time"

	"librarian/internal/book"
	"librarian/internal/member"
	"librarian/internal/txlog"

	"go.uber.org/zap"
)

// ErrNoCopies is returned when borrowing a book with no available
// copies.
var ErrNoCopies = errors.New("no available copies")

// ErrAlreadyBorrowed is returned when a member borrows a title they
// already hold.
var ErrAlreadyBorrowed = errors.New("book already borrowed by member")

// ErrNotBorrowed is returned when a member returns a title they do not
// hold.
var ErrNotBorrowed = errors.New("book not borrowed by member")

// TitleCount pairs a title with its logged borrow count.
type TitleCount struct {
	Title string
	Count int
}

// Service coordinates the borrow/return state machine over the three
// stores. Each (member, book) pair is either not-borrowed or borrowed;
// Borrow and Return are the only transitions.
type Service struct {
	books   book.Repository
	members member.Repository
	log     txlog.Log
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates the transaction engine over the given stores.
func NewService(books book.Repository, members member.Repository, log txlog.Log, logger *zap.Logger) *Service {
	return &Service{
		books:   books,
		members: members,
		log:     log,
		logger:  logger,
		now:     time.Now,
	}
}

// Borrow takes one copy of the titled book for the member: the copy
// count drops by one, the canonical title enters the member's borrow
// set, and a Borrowed line is appended to the transaction log. Checks
// run in resolution order: member, book, available copies, already
// borrowed. A failed check leaves all state untouched.
func (s *Service) Borrow(ctx context.Context, memberID, title string) (book.Book, member.Member, error) {
	m, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return book.Book{}, member.Member{}, err
	}
	b, err := s.books.GetByTitle(ctx, title)
	if err != nil {
		return book.Book{}, member.Member{}, err
	}
	if b.AvailableCopies <= 0 {
		return book.Book{}, member.Member{}, ErrNoCopies
	}
	if m.HasBorrowed(b.Title) {
		return book.Book{}, member.Member{}, ErrAlreadyBorrowed
	}

	updatedBook, err := s.books.AdjustCopies(ctx, b.Title, -1)
	if err != nil {
		return book.Book{}, member.Member{}, err
	}
	updatedMember, err := s.members.AddBorrowedTitle(ctx, m.ID, b.Title)
	if err != nil {
		return book.Book{}, member.Member{}, err
	}
	if err := s.append(ctx, txlog.KindBorrowed, b.Title, updatedMember); err != nil {
		return book.Book{}, member.Member{}, err
	}

	s.logger.Debug("book borrowed",
		zap.String("title", b.Title),
		zap.String("member_id", updatedMember.ID))
	return updatedBook, updatedMember, nil
}

// Return is the inverse transition: the copy count rises by one, the
// title leaves the member's borrow set, and a Returned line is
// appended. The increment is unconditional; nothing tracks an original
// total to clamp against.
func (s *Service) Return(ctx context.Context, memberID, title string) (book.Book, member.Member, error) {
	m, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return book.Book{}, member.Member{}, err
	}
	b, err := s.books.GetByTitle(ctx, title)
	if err != nil {
		return book.Book{}, member.Member{}, err
	}
	if !m.HasBorrowed(b.Title) {
		return book.Book{}, member.Member{}, ErrNotBorrowed
	}

	updatedBook, err := s.books.AdjustCopies(ctx, b.Title, 1)
	if err != nil {
		return book.Book{}, member.Member{}, err
	}
	updatedMember, err := s.members.RemoveBorrowedTitle(ctx, m.ID, b.Title)
	if err != nil {
		return book.Book{}, member.Member{}, err
	}
	if err := s.append(ctx, txlog.KindReturned, b.Title, updatedMember); err != nil {
		return book.Book{}, member.Member{}, err
	}

	s.logger.Debug("book returned",
		zap.String("title", b.Title),
		zap.String("member_id", updatedMember.ID))
	return updatedBook, updatedMember, nil
}

// MostBorrowed re-parses the whole transaction log and returns every
// title tied for the highest borrow count, in first-appearance order.
// The log, not in-memory state, is the source of truth, so the report
// stays consistent with logged history. Malformed lines are skipped
// with a warning.
func (s *Service) MostBorrowed(ctx context.Context) ([]TitleCount, error) {
	lines, err := s.log.Lines(ctx)
	if err != nil {
		return nil, err
	}

	counts, order, malformed := txlog.ProjectBorrowCounts(lines)
	if malformed > 0 {
		s.logger.Warn("skipped malformed transaction log lines",
			zap.Int("count", malformed))
	}

	titles, maxCount := txlog.MostBorrowed(counts, order)
	out := make([]TitleCount, 0, len(titles))
	for _, t := range titles {
		out = append(out, TitleCount{Title: t, Count: maxCount})
	}
	return out, nil
}

// History returns the raw transaction log, one line per transaction,
// oldest first. An empty string means nothing has been recorded.
func (s *Service) History(ctx context.Context) (string, error) {
	lines, err := s.log.Lines(ctx)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

func (s *Service) append(ctx context.Context, kind txlog.Kind, title string, m member.Member) error {
	e := txlog.Entry{
		At:         s.now(),
		Kind:       kind,
		Title:      title,
		MemberName: m.Name,
		MemberID:   m.ID,
	}
	if err := s.log.Append(ctx, e); err != nil {
		s.logger.Error("transaction log append failed", zap.Error(err))
		return err
	}
	return nil
}
