package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"librarian/internal/book"
	"librarian/internal/config"
	"librarian/internal/member"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// starterBooks is the demo catalog. Several authors repeat so the
// search option has something to find, and one title carries a comma
// to exercise the snapshot quoting.
var starterBooks = []book.Book{
	{ID: "B1", Title: "Dune", Author: "Frank Herbert", AvailableCopies: 3},
	{ID: "B2", Title: "Foundation", Author: "Isaac Asimov", AvailableCopies: 2},
	{ID: "B3", Title: "I, Robot", Author: "Isaac Asimov", AvailableCopies: 2},
	{ID: "B4", Title: "The Hobbit", Author: "J.R.R. Tolkien", AvailableCopies: 4},
	{ID: "B5", Title: "The Fellowship of the Ring", Author: "J.R.R. Tolkien", AvailableCopies: 2},
	{ID: "B6", Title: "Pride and Prejudice", Author: "Jane Austen", AvailableCopies: 3},
	{ID: "B7", Title: "Emma", Author: "Jane Austen", AvailableCopies: 1},
	{ID: "B8", Title: "1984", Author: "George Orwell", AvailableCopies: 5},
	{ID: "B9", Title: "Brave New World", Author: "Aldous Huxley", AvailableCopies: 2},
	{ID: "B10", Title: "Fahrenheit 451", Author: "Ray Bradbury", AvailableCopies: 2},
	{ID: "B11", Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", AvailableCopies: 1},
	{ID: "B12", Title: "A Wizard of Earthsea", Author: "Ursula K. Le Guin", AvailableCopies: 2},
}

var starterMembers = []member.Member{
	{ID: "M1", Name: "Alice Liddell"},
	{ID: "M2", Name: "Bob Gray"},
	{ID: "M3", Name: "Charlie Bucket"},
	{ID: "M4", Name: "Dana Scully"},
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	bookRepo, err := book.NewFileRepo(cfg.BooksPath(), logger)
	if err != nil {
		logger.Fatal("cannot open book store",
			zap.String("path", cfg.BooksPath()),
			zap.Error(err))
	}
	memberRepo, err := member.NewFileRepo(cfg.MembersPath(), logger)
	if err != nil {
		logger.Fatal("cannot open member store",
			zap.String("path", cfg.MembersPath()),
			zap.Error(err))
	}

	booksAdded := 0
	for _, b := range starterBooks {
		if err := bookRepo.Add(ctx, b); err != nil {
			if errors.Is(err, book.ErrDuplicateTitle) {
				logger.Warn("skipping existing book", zap.String("title", b.Title))
				continue
			}
			logger.Fatal("seeding book failed",
				zap.String("title", b.Title),
				zap.Error(err))
		}
		booksAdded++
	}

	membersAdded := 0
	for _, m := range starterMembers {
		if err := memberRepo.Add(ctx, m); err != nil {
			if errors.Is(err, member.ErrDuplicateID) {
				logger.Warn("skipping existing member", zap.String("id", m.ID))
				continue
			}
			logger.Fatal("seeding member failed",
				zap.String("id", m.ID),
				zap.Error(err))
		}
		membersAdded++
	}

	fmt.Printf("Seeded %d books and %d members into %s.\n", booksAdded, membersAdded, cfg.DataDir)
}

// newLogger builds a console logger at the configured level, writing to
// stderr.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	return zapCfg.Build()
}
