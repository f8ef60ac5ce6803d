package txlog

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_log.go -package=txlog

// Log is the append-only transaction history.
type Log interface {
	// Append adds one entry at the end of the log.
	Append(ctx context.Context, e Entry) error
	// Lines returns every non-empty raw line in append order.
	Lines(ctx context.Context) ([]string, error)
}
