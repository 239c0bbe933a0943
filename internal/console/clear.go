package console

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/mmcdole/bookshelf/internal/config"
)

// Clearer wipes the visible screen.
type Clearer interface {
	Clear()
}

// clearSequence moves the cursor home and erases the display
const clearSequence = "\033[H\033[2J"

// ANSIClearer clears by writing the ANSI erase sequence to W
type ANSIClearer struct {
	W io.Writer
}

func (c ANSIClearer) Clear() {
	io.WriteString(c.W, clearSequence)
}

// NopClearer leaves the screen untouched
type NopClearer struct{}

func (NopClearer) Clear() {}

// NewClearer picks a Clearer for out according to policy.
// Under ClearAuto the screen is only cleared when out is a terminal.
func NewClearer(out io.Writer, policy config.ClearPolicy) Clearer {
	switch policy {
	case config.ClearNever:
		return NopClearer{}
	case config.ClearAlways:
		return ANSIClearer{W: out}
	}

	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ANSIClearer{W: out}
	}
	return NopClearer{}
}
