package actions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/bookshelf/internal/actions"
	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/library"
	"github.com/mmcdole/bookshelf/internal/log"
	"github.com/mmcdole/bookshelf/internal/render"
)

type fakeSuggester struct {
	title  string
	called bool
}

func (f *fakeSuggester) Suggest(string, []string) (string, bool) {
	f.called = true
	return f.title, f.title != ""
}

func Test_Default_Order(t *testing.T) {
	got := actions.Default(nil)

	require.Len(t, got, 3)
	assert.Equal(t, actions.AddLabel, got[0].Label)
	assert.Equal(t, actions.SearchLabel, got[1].Label)
	assert.Equal(t, actions.DisplayLabel, got[2].Label)
}

func Test_Register(t *testing.T) {
	lib := library.New(log.NullLogger())

	actions.Register(lib, actions.Default(nil)...)

	assert.Len(t, lib.Actions(), 3)
}

func Test_AddBook(t *testing.T) {
	lib := library.New(log.NullLogger())
	add := actions.AddBook()

	require.Len(t, add.Fields, 3)
	assert.Equal(t, domain.PatternText, add.Fields[0].Pattern)
	assert.Equal(t, domain.PatternText, add.Fields[1].Pattern)
	assert.Equal(t, domain.PatternYear, add.Fields[2].Pattern)

	outcome := add.Run(lib, []string{"Dune", "Frank Herbert", "1965"})

	assert.Equal(t, domain.Outcome{}, outcome)
	assert.Equal(t, []domain.Book{domain.NewBook("Dune", "Frank Herbert", "1965")}, lib.Books())
}

func Test_SearchBook(t *testing.T) {
	dune := domain.NewBook("Dune", "Frank Herbert", "1965")

	t.Run("found_shows_single_row_table", func(t *testing.T) {
		lib := library.New(log.NullLogger())
		lib.AddBook(dune)
		suggester := &fakeSuggester{title: "Dune"}

		outcome := actions.SearchBook(suggester).Run(lib, []string{"Dune"})

		assert.True(t, outcome.Pause)
		assert.Equal(t, "Book found.\n\n"+render.BookTable([]domain.Book{dune}), outcome.Output)
		assert.False(t, suggester.called)
	})

	t.Run("miss_is_case_sensitive", func(t *testing.T) {
		lib := library.New(log.NullLogger())
		lib.AddBook(dune)

		outcome := actions.SearchBook(nil).Run(lib, []string{"dune"})

		assert.True(t, outcome.Pause)
		assert.Equal(t, "Book not found.\n", outcome.Output)
	})

	t.Run("miss_with_suggestion", func(t *testing.T) {
		lib := library.New(log.NullLogger())
		lib.AddBook(dune)

		outcome := actions.SearchBook(&fakeSuggester{title: "Dune"}).Run(lib, []string{"dune"})

		assert.Equal(t, "Book not found.\nDid you mean \"Dune\"?\n", outcome.Output)
	})

	t.Run("miss_without_close_title", func(t *testing.T) {
		lib := library.New(log.NullLogger())

		outcome := actions.SearchBook(&fakeSuggester{}).Run(lib, []string{"Dune"})

		assert.Equal(t, "Book not found.\n", outcome.Output)
	})
}

func Test_DisplayBooks(t *testing.T) {
	t.Run("empty_store", func(t *testing.T) {
		lib := library.New(log.NullLogger())

		outcome := actions.DisplayBooks().Run(lib, nil)

		assert.True(t, outcome.Pause)
		assert.Equal(t, render.MessageBox(actions.NoBooksMsg), outcome.Output)
	})

	t.Run("lists_all_in_order", func(t *testing.T) {
		books := []domain.Book{
			domain.NewBook("Dune", "Frank Herbert", "1965"),
			domain.NewBook("Emma", "Jane Austen", "1815"),
		}
		lib := library.New(log.NullLogger())
		for _, b := range books {
			lib.AddBook(b)
		}

		outcome := actions.DisplayBooks().Run(lib, nil)

		assert.Equal(t, render.BookTable(books), outcome.Output)
	})
}
