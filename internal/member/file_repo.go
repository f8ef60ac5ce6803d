package member

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// FileRepo keeps the member roster in memory and mirrors every mutation
// to a CSV snapshot file. The third column holds the member's borrowed
// titles joined by ";"; it is empty when nothing is borrowed. A title
// containing ";" corrupts that column on reload, the same documented
// limitation the plain format always had. Not safe for concurrent use.
type FileRepo struct {
	path   string
	logger *zap.Logger

	members []Member
	byID    map[string]int // normalized id -> index of first occurrence
}

// NewFileRepo loads the snapshot at path and returns a repository over
// it. A missing file is an empty roster, not an error.
func NewFileRepo(path string, logger *zap.Logger) (*FileRepo, error) {
	r := &FileRepo{
		path:   path,
		logger: logger,
		byID:   make(map[string]int),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func normalizeID(id string) string {
	return strings.ToLower(id)
}

func cloneMember(m Member) Member {
	m.BorrowedTitles = append([]string(nil), m.BorrowedTitles...)
	return m
}

func (r *FileRepo) load() error {
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open member snapshot: %w", err)
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
			r.logger.Warn("skipping unreadable member record", zap.Error(err))
			continue
		}
		if len(record) != 2 && len(record) != 3 {
			r.logger.Warn("skipping malformed member record",
				zap.Int("fields", len(record)))
			continue
		}

		m := Member{ID: record[0], Name: record[1]}
		if len(record) == 3 && record[2] != "" {
			m.BorrowedTitles = strings.Split(record[2], ";")
		}
		r.members = append(r.members, m)
		key := normalizeID(m.ID)
		if _, ok := r.byID[key]; !ok {
			r.byID[key] = len(r.members) - 1
		}
	}

	r.logger.Debug("loaded member snapshot",
		zap.String("path", r.path),
		zap.Int("count", len(r.members)))
	return nil
}

// snapshot rewrites the whole roster file. The write goes to a temp
// file first so a failure never truncates the existing snapshot.
func (r *FileRepo) snapshot() error {
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".members-*.tmp")
	if err != nil {
		return fmt.Errorf("create member snapshot: %w", err)
	}

	w := csv.NewWriter(tmp)
	for _, m := range r.members {
		record := []string{m.ID, m.Name, strings.Join(m.BorrowedTitles, ";")}
		if err := w.Write(record); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return fmt.Errorf("write member snapshot: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write member snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close member snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace member snapshot: %w", err)
	}

	r.logger.Debug("saved member snapshot",
		zap.String("path", r.path),
		zap.Int("count", len(r.members)))
	return nil
}

func (r *FileRepo) List(ctx context.Context) ([]Member, error) {
	out := make([]Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, cloneMember(m))
	}
	return out, nil
}

func (r *FileRepo) GetByID(ctx context.Context, id string) (Member, error) {
	for _, m := range r.members {
		if strings.EqualFold(m.ID, id) {
			return cloneMember(m), nil
		}
	}
	return Member{}, ErrNotFound
}

func (r *FileRepo) Add(ctx context.Context, m Member) error {
	key := normalizeID(m.ID)
	if _, ok := r.byID[key]; ok {
		return ErrDuplicateID
	}

	r.members = append(r.members, cloneMember(m))
	r.byID[key] = len(r.members) - 1

	if err := r.snapshot(); err != nil {
		r.members = r.members[:len(r.members)-1]
		delete(r.byID, key)
		return err
	}
	return nil
}

func (r *FileRepo) AddBorrowedTitle(ctx context.Context, id, title string) (Member, error) {
	idx, ok := r.byID[normalizeID(id)]
	if !ok {
		return Member{}, ErrNotFound
	}

	m := &r.members[idx]
	if m.HasBorrowed(title) {
		return cloneMember(*m), nil
	}

	prev := m.BorrowedTitles
	m.BorrowedTitles = append(append([]string(nil), prev...), title)

	if err := r.snapshot(); err != nil {
		m.BorrowedTitles = prev
		return Member{}, err
	}
	return cloneMember(*m), nil
}

func (r *FileRepo) RemoveBorrowedTitle(ctx context.Context, id, title string) (Member, error) {
	idx, ok := r.byID[normalizeID(id)]
	if !ok {
		return Member{}, ErrNotFound
	}

	m := &r.members[idx]
	at := -1
	for i, t := range m.BorrowedTitles {
		if strings.EqualFold(t, title) {
			at = i
			break
		}
	}
	if at < 0 {
		return cloneMember(*m), nil
	}

	prev := m.BorrowedTitles
	next := append([]string(nil), prev[:at]...)
	m.BorrowedTitles = append(next, prev[at+1:]...)

	if err := r.snapshot(); err != nil {
		m.BorrowedTitles = prev
		return Member{}, err
	}
	return cloneMember(*m), nil
}
