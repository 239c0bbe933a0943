// Package console is the line-based front end: a numbered menu on stdout,
// answered line by line on stdin.
package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mmcdole/bookshelf/internal/domain"
)

// Menu text
const (
	WelcomeMsg  = "Welcome to the library!"
	ChooseMsg   = "Please choose an action:"
	ExitLabel   = "Exit"
	FarewellMsg = "Thank you for using the library!"
)

// Library is what the menu drives: the action registry plus the store
// handle passed to every action.
type Library interface {
	domain.Store
	domain.ActionRegistry
}

// signal tells the loop whether to render the menu again
type signal int

const (
	continueLoop signal = iota
	stopLoop
)

// Menu runs the render/choose/dispatch loop until Exit is chosen.
type Menu struct {
	lib    Library
	in     *Reader
	out    io.Writer
	clear  Clearer
	logger *slog.Logger
}

// NewMenu creates a menu reading from in and writing to out
func NewMenu(lib Library, in io.Reader, out io.Writer, clearer Clearer, logger *slog.Logger) *Menu {
	if clearer == nil {
		clearer = NopClearer{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Menu{
		lib:    lib,
		in:     NewReader(in, out, clearer),
		out:    out,
		clear:  clearer,
		logger: logger,
	}
}

// Run blocks until the user picks Exit (nil), input ends
// (domain.ErrInputClosed) or ctx is cancelled between iterations.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		actions := m.lib.Actions()
		m.clear.Clear()
		m.render(actions)

		choice, err := m.in.ReadChoice(len(actions)+1, func() { m.render(actions) })
		if err != nil {
			return err
		}

		sig, err := m.dispatch(actions, choice)
		if err != nil {
			return err
		}
		if sig == stopLoop {
			return nil
		}
	}
}

// render prints the banner and the numbered entries, Exit last
func (m *Menu) render(actions []domain.Action) {
	fmt.Fprintln(m.out, WelcomeMsg)
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, ChooseMsg)
	for i, a := range actions {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, a.Label)
	}
	fmt.Fprintf(m.out, "%d. %s\n", len(actions)+1, ExitLabel)
	fmt.Fprintln(m.out)
}

// dispatch runs the chosen entry. choice is already within [1, len(actions)+1].
func (m *Menu) dispatch(actions []domain.Action, choice int) (signal, error) {
	if choice == len(actions)+1 {
		m.logger.Info("exit selected")
		m.clear.Clear()
		fmt.Fprintln(m.out, FarewellMsg)
		return stopLoop, nil
	}

	action := actions[choice-1]
	m.logger.Info("action selected", "choice", choice, "label", action.Label)
	m.clear.Clear()

	if action.Heading != "" {
		fmt.Fprint(m.out, action.Heading)
	}

	values := make([]string, 0, len(action.Fields))
	for _, f := range action.Fields {
		v, err := m.in.ReadValidated(f.Prompt, f.Pattern)
		if err != nil {
			return stopLoop, err
		}
		values = append(values, v)
	}

	outcome := action.Run(m.lib, values)

	if outcome.Output != "" {
		m.clear.Clear()
		fmt.Fprint(m.out, outcome.Output)
	}

	if outcome.Pause {
		if err := m.in.Pause(); err != nil {
			return stopLoop, err
		}
	}

	return continueLoop, nil
}
