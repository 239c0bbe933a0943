package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/bookshelf/internal/console"
	"github.com/mmcdole/bookshelf/internal/domain"
)

type countingClearer struct{ n int }

func (c *countingClearer) Clear() { c.n++ }

func newReader(input string) (*console.Reader, *bytes.Buffer, *countingClearer) {
	var out bytes.Buffer
	clr := &countingClearer{}
	return console.NewReader(strings.NewReader(input), &out, clr), &out, clr
}

func Test_ReadValidated_AcceptsMatchingInputFirstTime(t *testing.T) {
	for _, in := range []string{"Dune", "Frank Herbert", "Catch 22", "1984"} {
		t.Run(in, func(t *testing.T) {
			r, out, clr := newReader(in + "\n")

			got, err := r.ReadValidated("Enter title: ", domain.PatternText)

			require.NoError(t, err)
			assert.Equal(t, in, got)
			assert.Equal(t, "Enter title: ", out.String())
			assert.Zero(t, clr.n)
		})
	}
}

func Test_ReadValidated_RetriesUntilValid(t *testing.T) {
	r, out, clr := newReader("Dune!\n\nJean-Luc\nDune\n")

	got, err := r.ReadValidated("Enter title: ", domain.PatternText)

	require.NoError(t, err)
	assert.Equal(t, "Dune", got)
	assert.Equal(t, 3, strings.Count(out.String(), console.InvalidInputMsg))
	assert.Equal(t, 4, strings.Count(out.String(), "Enter title: "))
	assert.Equal(t, 3, clr.n)
}

func Test_ReadValidated_Year(t *testing.T) {
	r, out, _ := newReader("99\n19999\n19a9\n1999\n")

	got, err := r.ReadValidated("Enter year: ", domain.PatternYear)

	require.NoError(t, err)
	assert.Equal(t, "1999", got)
	assert.Equal(t, 3, strings.Count(out.String(), console.InvalidInputMsg))
}

func Test_ReadValidated_LineEndings(t *testing.T) {
	tests := map[string]string{
		"crlf":            "Dune\r\n",
		"no_trailing_eol": "Dune",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			r, _, _ := newReader(input)

			got, err := r.ReadValidated("> ", domain.PatternText)

			require.NoError(t, err)
			assert.Equal(t, "Dune", got)
		})
	}
}

func Test_ReadValidated_NeverReturnsInvalidInputWhenInputEnds(t *testing.T) {
	r, _, _ := newReader("bad!\nstill bad!\n")

	got, err := r.ReadValidated("> ", domain.PatternText)

	assert.ErrorIs(t, err, domain.ErrInputClosed)
	assert.Empty(t, got)
}

func Test_ReadChoice(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        int
		wantRedraws int
	}{
		{name: "lowest", input: "1\n", want: 1},
		{name: "highest", input: "4\n", want: 4},
		{name: "surrounding_spaces", input: " 2 \n", want: 2},
		{name: "zero_rejected", input: "0\n3\n", want: 3, wantRedraws: 1},
		{name: "above_range_rejected", input: "5\n3\n", want: 3, wantRedraws: 1},
		{name: "negative_rejected", input: "-1\n2\n", want: 2, wantRedraws: 1},
		{name: "non_numeric_rejected", input: "abc\n2x\n\n1\n", want: 1, wantRedraws: 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, out, clr := newReader(tc.input)
			redraws := 0

			got, err := r.ReadChoice(4, func() { redraws++ })

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantRedraws, redraws)
			assert.Equal(t, tc.wantRedraws, clr.n)
			assert.Equal(t, tc.wantRedraws, strings.Count(out.String(), console.InvalidInputMsg))
		})
	}
}

func Test_ReadChoice_InputClosed(t *testing.T) {
	r, _, _ := newReader("9\n")

	_, err := r.ReadChoice(4, nil)

	assert.ErrorIs(t, err, domain.ErrInputClosed)
}

func Test_Pause(t *testing.T) {
	r, out, _ := newReader("\n")

	require.NoError(t, r.Pause())
	assert.Equal(t, console.PauseMsg+"\n", out.String())

	assert.ErrorIs(t, r.Pause(), domain.ErrInputClosed)
}
