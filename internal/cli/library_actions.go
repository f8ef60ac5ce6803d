package cli

import "context"

// borrowBook drives option 5.
func (m *Menu) borrowBook(ctx context.Context) {
	memberID, ok := m.promptLine("Enter Member ID: ")
	if !ok {
		return
	}
	title, ok := m.promptLine("Enter Title of Book to Borrow: ")
	if !ok {
		return
	}
	b, mem, err := m.library.Borrow(ctx, memberID, title)
	if err != nil {
		m.printError(err)
		return
	}
	m.printf("Book '%s' borrowed by %s.\n", b.Title, mem.Name)
}

// returnBook drives option 6.
func (m *Menu) returnBook(ctx context.Context) {
	memberID, ok := m.promptLine("Enter Member ID: ")
	if !ok {
		return
	}
	title, ok := m.promptLine("Enter Title of Book to Return: ")
	if !ok {
		return
	}
	b, mem, err := m.library.Return(ctx, memberID, title)
	if err != nil {
		m.printError(err)
		return
	}
	m.printf("Book '%s' returned by %s.\n", b.Title, mem.Name)
}

// mostBorrowed drives option 8: every title tied at the highest logged
// borrow count.
func (m *Menu) mostBorrowed(ctx context.Context) {
	top, err := m.library.MostBorrowed(ctx)
	if err != nil {
		m.printError(err)
		return
	}
	if len(top) == 0 {
		m.println("No borrow transactions recorded yet.")
		return
	}
	m.println("Most Borrowed Book(s):")
	for _, tc := range top {
		m.printf("- %s (borrowed %d time(s))\n", tc.Title, tc.Count)
	}
}

// history drives option 9: the raw transaction log between header and
// footer rules.
func (m *Menu) history(ctx context.Context) {
	log, err := m.library.History(ctx)
	if err != nil {
		m.printError(err)
		return
	}
	if log == "" {
		m.println("No transactions have been recorded yet.")
		return
	}
	m.println("===== Transaction History =====")
	m.println(log)
	m.println("==============================")
}
