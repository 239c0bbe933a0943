// Package actions defines the entries of the library menu.
package actions

import (
	"fmt"
	"strings"

	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/render"
)

// Labels of the built-in actions, in menu order
const (
	AddLabel     = "Add a book"
	SearchLabel  = "Search book"
	DisplayLabel = "Display books"
)

// Result messages
const (
	FoundMsg    = "Book found."
	NotFoundMsg = "Book not found."
	NoBooksMsg  = "No books to display"
)

// Suggester proposes a stored title close to a query that missed.
type Suggester interface {
	Suggest(query string, titles []string) (string, bool)
}

// Default returns Add, Search and Display in that order.
// A nil suggester disables "did you mean" hints.
func Default(suggester Suggester) []domain.Action {
	return []domain.Action{
		AddBook(),
		SearchBook(suggester),
		DisplayBooks(),
	}
}

// Register adds each action to reg in order
func Register(reg domain.ActionRegistry, actions ...domain.Action) {
	for _, a := range actions {
		reg.AddAction(a)
	}
}

// AddBook asks for title, author and year and appends the book.
func AddBook() domain.Action {
	return domain.Action{
		Label:   AddLabel,
		Heading: "Enter book details: \n\n",
		Fields: []domain.Field{
			{Prompt: "Enter title: ", Pattern: domain.PatternText},
			{Prompt: "Enter author: ", Pattern: domain.PatternText},
			{Prompt: "Enter year: ", Pattern: domain.PatternYear},
		},
		Run: func(store domain.Store, in []string) domain.Outcome {
			store.AddBook(domain.NewBook(in[0], in[1], in[2]))
			return domain.Outcome{}
		},
	}
}

// SearchBook looks a title up exactly and shows the match as a table.
func SearchBook(suggester Suggester) domain.Action {
	return domain.Action{
		Label: SearchLabel,
		Fields: []domain.Field{
			{Prompt: "Enter book title: ", Pattern: domain.PatternText},
		},
		Run: func(store domain.Store, in []string) domain.Outcome {
			title := in[0]

			var sb strings.Builder
			if book, ok := store.FindBook(title); ok {
				sb.WriteString(FoundMsg + "\n\n")
				sb.WriteString(render.BookTable([]domain.Book{book}))
			} else {
				sb.WriteString(NotFoundMsg + "\n")
				if suggester != nil {
					if s, ok := suggester.Suggest(title, store.Titles()); ok {
						fmt.Fprintf(&sb, "Did you mean %q?\n", s)
					}
				}
			}

			return domain.Outcome{Output: sb.String(), Pause: true}
		},
	}
}

// DisplayBooks lists every stored book, or a notice box when there are none.
func DisplayBooks() domain.Action {
	return domain.Action{
		Label: DisplayLabel,
		Run: func(store domain.Store, _ []string) domain.Outcome {
			books := store.Books()
			if len(books) == 0 {
				return domain.Outcome{Output: render.MessageBox(NoBooksMsg), Pause: true}
			}
			return domain.Outcome{Output: render.BookTable(books), Pause: true}
		},
	}
}
