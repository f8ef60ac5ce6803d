package txlog

import (
	"strings"
)

const borrowMarker = "Borrowed:"

// ProjectBorrowCounts folds raw log lines into per-title borrow counts.
// It is a pure function: given the same lines it always produces the
// same result. A line counts when it contains the borrow marker and a
// title can be extracted from between the first pair of single quotes;
// borrow lines without such a pair are tallied as malformed and
// skipped. The returned order slice holds each counted title once, in
// first-appearance order.
func ProjectBorrowCounts(lines []string) (counts map[string]int, order []string, malformed int) {
	counts = make(map[string]int)

	for _, line := range lines {
		if !strings.Contains(line, borrowMarker) {
			continue
		}
		title, ok := extractTitle(line)
		if !ok {
			malformed++
			continue
		}
		if _, seen := counts[title]; !seen {
			order = append(order, title)
		}
		counts[title]++
	}
	return counts, order, malformed
}

// MostBorrowed returns every title whose count ties the maximum, in
// first-appearance order, along with that maximum. No counted borrows
// yields a nil slice and zero.
func MostBorrowed(counts map[string]int, order []string) ([]string, int) {
	maxCount := 0
	for _, n := range counts {
		if n > maxCount {
			maxCount = n
		}
	}
	if maxCount == 0 {
		return nil, 0
	}

	var top []string
	for _, title := range order {
		if counts[title] == maxCount {
			top = append(top, title)
		}
	}
	return top, maxCount
}

// extractTitle returns the text between the first pair of single quotes.
func extractTitle(line string) (string, bool) {
	open := strings.IndexByte(line, '\'')
	if open < 0 {
		return "", false
	}
	n := strings.IndexByte(line[open+1:], '\'')
	if n < 0 {
		return "", false
	}
	return line[open+1 : open+1+n], true
}
