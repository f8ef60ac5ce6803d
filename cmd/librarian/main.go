package main

import (
	"context"
	"log"
	"os"

	"librarian/internal/book"
	"librarian/internal/cli"
	"librarian/internal/config"
	"librarian/internal/library"
	"librarian/internal/member"
	"librarian/internal/txlog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	bookRepo := mustOpenBooks(cfg, logger)
	memberRepo := mustOpenMembers(cfg, logger)
	transactionLog := txlog.NewFileLog(cfg.TransactionsPath(), logger)

	menu := cli.NewMenu(
		book.NewService(bookRepo),
		member.NewService(memberRepo),
		library.NewService(bookRepo, memberRepo, transactionLog, logger),
		os.Stdin,
		os.Stdout,
		logger,
	)
	menu.Run(context.Background())
}

// newLogger builds a console logger at the configured level. Output
// goes to stderr so diagnostics stay out of the menu stream.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	return zapCfg.Build()
}

func mustOpenBooks(cfg config.Config, logger *zap.Logger) *book.FileRepo {
	repo, err := book.NewFileRepo(cfg.BooksPath(), logger)
	if err != nil {
		logger.Fatal("cannot open book store",
			zap.String("path", cfg.BooksPath()),
			zap.Error(err))
	}
	return repo
}

func mustOpenMembers(cfg config.Config, logger *zap.Logger) *member.FileRepo {
	repo, err := member.NewFileRepo(cfg.MembersPath(), logger)
	if err != nil {
		logger.Fatal("cannot open member store",
			zap.String("path", cfg.MembersPath()),
			zap.Error(err))
	}
	return repo
}
