package txlog

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// FileLog appends formatted entries to a plain text file, one line per
// transaction. The file is created on first append and only ever grows.
type FileLog struct {
	path   string
	logger *zap.Logger
}

// NewFileLog returns a log backed by the file at path.
func NewFileLog(path string, logger *zap.Logger) *FileLog {
	return &FileLog{path: path, logger: logger}
}

func (l *FileLog) Append(ctx context.Context, e Entry) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open transaction log: %w", err)
	}

	line := FormatLine(e)
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("append transaction log: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close transaction log: %w", err)
	}

	l.logger.Debug("appended transaction", zap.String("line", line))
	return nil
}

func (l *FileLog) Lines(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read transaction log: %w", err)
	}

	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
