package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/bookshelf/internal/console"
	"github.com/mmcdole/bookshelf/internal/tui/styles"
)

// View renders the current screen
func (m Model) View() string {
	var body string
	switch m.State {
	case StateMenu:
		body = m.viewMenu()
	case StateInput:
		body = m.viewInput()
	case StateResult:
		body = m.viewResult()
	case StateDone:
		return console.FarewellMsg + "\n"
	}
	return styles.PanelStyle.Render(body) + "\n"
}

func (m Model) viewMenu() string {
	var sb strings.Builder

	sb.WriteString(styles.TitleStyle.Render(console.WelcomeMsg))
	sb.WriteString("\n")
	sb.WriteString(styles.SubtitleStyle.Render(console.ChooseMsg))
	sb.WriteString("\n")

	labels := make([]string, 0, m.entries())
	for _, a := range m.actions {
		labels = append(labels, a.Label)
	}
	labels = append(labels, console.ExitLabel)

	for i, label := range labels {
		line := fmt.Sprintf("%d. %s", i+1, label)
		if i == m.Cursor {
			sb.WriteString(styles.SelectedItemStyle.Render(line))
		} else {
			sb.WriteString(styles.NormalItemStyle.Render(line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.choice.View())
	sb.WriteString(m.viewError())
	sb.WriteString(styles.HelpStyle.Render(helpLine(m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Quit)))

	return sb.String()
}

func (m Model) viewInput() string {
	action := m.actions[m.active]

	var sb strings.Builder
	sb.WriteString(styles.TitleStyle.Render(action.Label))
	sb.WriteString("\n")

	for i, v := range m.values {
		sb.WriteString(styles.DimStyle.Render(action.Fields[i].Prompt + v))
		sb.WriteString("\n")
	}

	sb.WriteString(m.input.View())
	sb.WriteString(m.viewError())
	sb.WriteString(styles.HelpStyle.Render(helpLine(m.keys.Enter, m.keys.Quit)))

	return sb.String()
}

func (m Model) viewResult() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		strings.TrimRight(m.Output, "\n"),
		"",
		styles.DimStyle.Render(console.PauseMsg),
	)
}

func (m Model) viewError() string {
	if m.ErrMsg == "" {
		return "\n"
	}
	return "\n" + styles.ErrorStyle.Render(m.ErrMsg) + "\n"
}
