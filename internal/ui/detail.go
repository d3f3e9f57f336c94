package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const detailWidth = 56

// renderDetail draws the selected book's modal. The selected book may sit
// outside the current filtered list; it is rendered from the detail fetch,
// not from the snapshot rows.
func (m Model) renderDetail() string {
	book := m.snapshot.Selected
	if book == nil {
		return ""
	}
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Text.Bold(true).Render(book.Title))
	b.WriteString("\n")
	b.WriteString(s.MutedText.Render("By " + book.Author))
	b.WriteString("\n\n")

	b.WriteString(m.statusBadge(book.Status))
	if added := formatAddedDate(book.ParsedCreatedAt()); added != "" {
		b.WriteString(s.FaintText.Render("   Added on " + added))
	}
	b.WriteString("\n\n")

	b.WriteString(s.MutedText.Render("Description"))
	b.WriteString("\n")
	desc := lipgloss.NewStyle().Width(detailWidth).Render(book.Description)
	b.WriteString(s.Text.Render(desc))
	b.WriteString("\n\n")

	if m.confirmingDelete {
		b.WriteString(s.DangerText.Render("Are you sure you want to delete this book? (y/n)"))
	} else {
		b.WriteString(s.MutedText.Render("t toggle read • d delete • esc close"))
	}

	return s.Modal.Width(detailWidth + 4).Render(b.String())
}
