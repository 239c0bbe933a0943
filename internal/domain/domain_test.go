package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/bookshelf/internal/domain"
)

func Test_PatternText(t *testing.T) {
	accepted := []string{"Dune", "Frank Herbert", "Catch 22", "a", "1984", "   "}
	rejected := []string{"", "Dune!", "O'Brien", "Jean-Luc", "tab\there", "Émile", "line\n"}

	for _, in := range accepted {
		assert.True(t, domain.PatternText.Match(in), "expected %q to be accepted", in)
	}
	for _, in := range rejected {
		assert.False(t, domain.PatternText.Match(in), "expected %q to be rejected", in)
	}
}

func Test_PatternYear(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1999", true},
		{"0000", true},
		{"1965", true},
		{"99", false},
		{"19999", false},
		{"19a9", false},
		{" 1999", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.PatternYear.Match(tc.input))
		})
	}
}

func Test_ZeroPatternMatchesNothing(t *testing.T) {
	assert.False(t, domain.Pattern{}.Match("anything"))
}

func Test_NewBook_Accessors(t *testing.T) {
	b := domain.NewBook("Dune", "Frank Herbert", "1965")

	assert.Equal(t, "Dune", b.Title())
	assert.Equal(t, "Frank Herbert", b.Author())
	assert.Equal(t, "1965", b.Year())
}
