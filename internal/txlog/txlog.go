// Package txlog is the append-only transaction history of the library:
// one human-readable line per borrow or return, never rewritten. The
// log is the sole source for historical reporting; reports re-parse it
// from scratch instead of keeping an in-memory tally.
package txlog

import (
	"fmt"
	"time"
)

// Kind tags what a log entry records.
type Kind string

const (
	KindBorrowed Kind = "Borrowed"
	KindReturned Kind = "Returned"
)

const timeLayout = "2006-01-02 15:04:05"

// Entry is one transaction before formatting.
type Entry struct {
	At         time.Time
	Kind       Kind
	Title      string
	MemberName string
	MemberID   string
}

// FormatLine renders an entry as a log line:
//
//	[2006-01-02 15:04:05] Borrowed: 'title' by name (ID: memberId)
func FormatLine(e Entry) string {
	return fmt.Sprintf("[%s] %s: '%s' by %s (ID: %s)",
		e.At.Format(timeLayout), e.Kind, e.Title, e.MemberName, e.MemberID)
}
