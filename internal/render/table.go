// Package render draws the fixed-width book tables shown after a search or
// a listing.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/bookshelf/internal/domain"
)

// Column widths, excluding the single leading space in every cell
const (
	TitleWidth  = 20
	AuthorWidth = 20
	YearWidth   = 10
)

// EmptyBoxWidth is the inner width of a message box, equal to the table's
// inner width so both line up.
const EmptyBoxWidth = (TitleWidth + 1) + 1 + (AuthorWidth + 1) + 1 + (YearWidth + 1)

var border = lipgloss.NormalBorder()

var columnWidths = []int{TitleWidth, AuthorWidth, YearWidth}

// BookTable renders books under a Title/Author/Year header.
// Cells wider than their column are printed in full, shifting the border.
func BookTable(books []domain.Book) string {
	var sb strings.Builder

	sb.WriteString(rule(border.TopLeft, border.MiddleTop, border.TopRight))
	sb.WriteString(row("Title", "Author", "Year"))
	sb.WriteString(rule(border.MiddleLeft, border.Middle, border.MiddleRight))
	for _, b := range books {
		sb.WriteString(row(b.Title(), b.Author(), b.Year()))
	}
	sb.WriteString(rule(border.BottomLeft, border.MiddleBottom, border.BottomRight))

	return sb.String()
}

// MessageBox renders msg centred in a box as wide as a book table.
func MessageBox(msg string) string {
	gap := EmptyBoxWidth - lipgloss.Width(msg)
	if gap < 0 {
		gap = 0
	}
	left := gap / 2

	var sb strings.Builder
	sb.WriteString(border.TopLeft + strings.Repeat(border.Top, EmptyBoxWidth) + border.TopRight + "\n")
	sb.WriteString(border.Left + strings.Repeat(" ", left) + msg + strings.Repeat(" ", gap-left) + border.Right + "\n")
	sb.WriteString(border.BottomLeft + strings.Repeat(border.Bottom, EmptyBoxWidth) + border.BottomRight + "\n")
	return sb.String()
}

func rule(left, mid, right string) string {
	parts := make([]string, len(columnWidths))
	for i, w := range columnWidths {
		parts[i] = strings.Repeat(border.Top, w+1)
	}
	return left + strings.Join(parts, mid) + right + "\n"
}

func row(cells ...string) string {
	var sb strings.Builder
	for i, cell := range cells {
		sb.WriteString(border.Left)
		sb.WriteString(" ")
		sb.WriteString(padRight(cell, columnWidths[i]))
	}
	sb.WriteString(border.Right)
	sb.WriteString("\n")
	return sb.String()
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
