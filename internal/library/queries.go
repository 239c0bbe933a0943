package library

import "github.com/mmcdole/bookshelf/internal/domain"

// FindBook scans in insertion order and returns the first exact,
// case-sensitive title match.
func (l *Library) FindBook(title string) (domain.Book, bool) {
	for _, b := range l.books {
		if b.Title() == title {
			l.logger.Debug("book found", "title", title)
			return b, true
		}
	}
	l.logger.Debug("book not found", "title", title, "searched", len(l.books))
	return domain.Book{}, false
}

// Books returns a copy of the collection in insertion order.
func (l *Library) Books() []domain.Book {
	out := make([]domain.Book, len(l.books))
	copy(out, l.books)
	return out
}

// Titles returns every stored title in insertion order.
func (l *Library) Titles() []string {
	titles := make([]string, len(l.books))
	for i, b := range l.books {
		titles[i] = b.Title()
	}
	return titles
}
