// Package tui is the full-screen front end. It walks the same menu states as
// the console front end: menu, field input, result, done.
package tui

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/bookshelf/internal/console"
	"github.com/mmcdole/bookshelf/internal/domain"
)

// ApplicationState represents the current screen
type ApplicationState int

const (
	StateMenu   ApplicationState = iota // Choosing an entry
	StateInput                          // Collecting an action's fields
	StateResult                         // Showing an action's output
	StateDone                           // Exit chosen
)

// Library is the registry plus the store handle passed to actions
type Library interface {
	domain.Store
	domain.ActionRegistry
}

// Model is the main Bubble Tea model for the application
type Model struct {
	State ApplicationState

	lib     Library
	actions []domain.Action
	keys    KeyMap
	logger  *slog.Logger

	// Menu
	Cursor int
	choice textinput.Model

	// Field input for the running action
	active int
	field  int
	values []string
	input  textinput.Model

	// Result screen
	Output string

	ErrMsg string
	Width  int
	Height int
}

// NewModel creates a model over lib's registered actions
func NewModel(lib Library, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		State:   StateMenu,
		lib:     lib,
		actions: lib.Actions(),
		keys:    DefaultKeyMap(),
		logger:  logger,
		choice:  newPrompt(console.ChoicePrompt),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.logger.Info("interrupted")
			m.State = StateDone
			return m, tea.Quit
		}

		switch m.State {
		case StateMenu:
			return m.updateMenu(msg)
		case StateInput:
			return m.updateInput(msg)
		case StateResult:
			if key.Matches(msg, m.keys.Enter) {
				m.toMenu()
			}
			return m, nil
		}
		return m, nil
	}

	// Cursor blink and other input-internal messages
	var cmd tea.Cmd
	switch m.State {
	case StateMenu:
		m.choice, cmd = m.choice.Update(msg)
	case StateInput:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// entries is the number of menu lines including Exit
func (m Model) entries() int {
	return len(m.actions) + 1
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.Cursor < m.entries()-1 {
			m.Cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		choice := m.Cursor + 1
		// A typed number wins over the highlighted entry
		if raw := m.choice.Value(); raw != "" {
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil || n < 1 || n > m.entries() {
				m.ErrMsg = console.InvalidInputMsg
				m.choice.SetValue("")
				return m, nil
			}
			choice = n
		}
		m.choice.SetValue("")
		return m.dispatch(choice)
	}

	var cmd tea.Cmd
	m.choice, cmd = m.choice.Update(msg)
	return m, cmd
}

// dispatch runs the entry at 1-based choice
func (m Model) dispatch(choice int) (tea.Model, tea.Cmd) {
	m.ErrMsg = ""

	if choice == m.entries() {
		m.logger.Info("exit selected")
		m.State = StateDone
		return m, tea.Quit
	}

	m.active = choice - 1
	action := m.actions[m.active]
	m.logger.Info("action selected", "choice", choice, "label", action.Label)

	m.values = make([]string, 0, len(action.Fields))
	m.field = 0
	if len(action.Fields) == 0 {
		return m.run(), nil
	}

	m.State = StateInput
	m.input = newPrompt(action.Fields[0].Prompt)
	return m, textinput.Blink
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Enter) {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	action := m.actions[m.active]
	f := action.Fields[m.field]
	value := m.input.Value()

	if !f.Pattern.Match(value) {
		m.ErrMsg = console.InvalidInputMsg
		m.input.SetValue("")
		return m, nil
	}

	m.ErrMsg = ""
	m.values = append(m.values, value)
	m.field++

	if m.field < len(action.Fields) {
		m.input = newPrompt(action.Fields[m.field].Prompt)
		return m, textinput.Blink
	}

	return m.run(), nil
}

// run invokes the active action with the collected values
func (m Model) run() Model {
	outcome := m.actions[m.active].Run(m.lib, m.values)

	if outcome.Output == "" && !outcome.Pause {
		m.toMenu()
		return m
	}

	m.State = StateResult
	m.Output = outcome.Output
	return m
}

func (m *Model) toMenu() {
	m.State = StateMenu
	m.Output = ""
	m.values = nil
	m.field = 0
	m.ErrMsg = ""
}
