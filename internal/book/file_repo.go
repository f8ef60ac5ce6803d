package book

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// FileRepo keeps the catalog in memory and mirrors every mutation to a
// CSV snapshot file. Records whose fields carry no comma, quote or
// newline serialize to the plain `id,title,author,copies` line format,
// so files written by earlier naive implementations load unchanged.
// Not safe for concurrent use.
type FileRepo struct {
	path   string
	logger *zap.Logger

	books   []Book
	byTitle map[string]int // normalized title -> index of first occurrence
}

// NewFileRepo loads the snapshot at path and returns a repository over
// it. A missing file is an empty catalog, not an error.
func NewFileRepo(path string, logger *zap.Logger) (*FileRepo, error) {
	r := &FileRepo{
		path:    path,
		logger:  logger,
		byTitle: make(map[string]int),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func normalizeTitle(title string) string {
	return strings.ToLower(title)
}

func (r *FileRepo) load() error {
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open book snapshot: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			r.logger.Warn("skipping unreadable book record", zap.Error(err))
			continue
		}
		if len(record) != 4 {
			r.logger.Warn("skipping malformed book record",
				zap.Int("fields", len(record)))
			continue
		}
		copies, err := strconv.Atoi(strings.TrimSpace(record[3]))
		if err != nil {
			r.logger.Warn("skipping book record with bad copy count",
				zap.String("title", record[1]),
				zap.String("copies", record[3]))
			continue
		}

		b := Book{
			ID:              record[0],
			Title:           record[1],
			Author:          record[2],
			AvailableCopies: copies,
		}
		r.books = append(r.books, b)
		key := normalizeTitle(b.Title)
		if _, ok := r.byTitle[key]; !ok {
			r.byTitle[key] = len(r.books) - 1
		}
	}

	r.logger.Debug("loaded book snapshot",
		zap.String("path", r.path),
		zap.Int("count", len(r.books)))
	return nil
}

// snapshot rewrites the whole catalog file. The write goes to a temp
// file first so a failure never truncates the existing snapshot.
func (r *FileRepo) snapshot() error {
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".books-*.tmp")
	if err != nil {
		return fmt.Errorf("create book snapshot: %w", err)
	}

	w := csv.NewWriter(tmp)
	for _, b := range r.books {
		if err := w.Write([]string{b.ID, b.Title, b.Author, strconv.Itoa(b.AvailableCopies)}); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return fmt.Errorf("write book snapshot: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write book snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close book snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace book snapshot: %w", err)
	}

	r.logger.Debug("saved book snapshot",
		zap.String("path", r.path),
		zap.Int("count", len(r.books)))
	return nil
}

func (r *FileRepo) List(ctx context.Context) ([]Book, error) {
	return append([]Book(nil), r.books...), nil
}

func (r *FileRepo) GetByTitle(ctx context.Context, title string) (Book, error) {
	for _, b := range r.books {
		if strings.EqualFold(b.Title, title) {
			return b, nil
		}
	}
	return Book{}, ErrNotFound
}

func (r *FileRepo) Add(ctx context.Context, b Book) error {
	key := normalizeTitle(b.Title)
	if _, ok := r.byTitle[key]; ok {
		return ErrDuplicateTitle
	}

	r.books = append(r.books, b)
	r.byTitle[key] = len(r.books) - 1

	if err := r.snapshot(); err != nil {
		r.books = r.books[:len(r.books)-1]
		delete(r.byTitle, key)
		return err
	}
	return nil
}

func (r *FileRepo) AdjustCopies(ctx context.Context, title string, delta int) (Book, error) {
	idx, ok := r.byTitle[normalizeTitle(title)]
	if !ok {
		return Book{}, ErrNotFound
	}

	prev := r.books[idx].AvailableCopies
	r.books[idx].AvailableCopies = prev + delta

	if err := r.snapshot(); err != nil {
		r.books[idx].AvailableCopies = prev
		return Book{}, err
	}
	return r.books[idx], nil
}
