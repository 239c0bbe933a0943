package library

import "github.com/mmcdole/bookshelf/internal/domain"

// AddBook appends b. Duplicate titles are allowed.
func (l *Library) AddBook(b domain.Book) {
	l.books = append(l.books, b)
	l.logger.Info("book added", "title", b.Title(), "author", b.Author(), "year", b.Year(), "count", len(l.books))
}
