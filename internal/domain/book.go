package domain

// Book is a single library record. Fields are set once by NewBook and only
// exposed through accessors.
type Book struct {
	title  string
	author string
	year   string
}

// NewBook creates a book from already validated input.
func NewBook(title, author, year string) Book {
	return Book{title: title, author: author, year: year}
}

func (b Book) Title() string  { return b.title }
func (b Book) Author() string { return b.author }
func (b Book) Year() string   { return b.year }
