package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atul121001/bookshelf/internal/library"
	"github.com/atul121001/bookshelf/internal/notify"
	"github.com/atul121001/bookshelf/internal/query"
)

// View implements tea.Model.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	sections := []string{m.renderHeader(width)}

	if m.snapshot.LoadErr != "" {
		sections = append(sections, m.styles.Banner.Width(width).Render(m.snapshot.LoadErr))
	}

	sections = append(sections, m.renderFilterBar())

	switch m.mode {
	case modeForm:
		sections = append(sections, m.centered(width, m.renderForm()))
	case modeDetail:
		sections = append(sections, m.centered(width, m.renderDetail()))
	case modeHelp:
		sections = append(sections, m.centered(width, m.renderHelp()))
	default:
		sections = append(sections, m.renderList(width))
	}

	if toasts := m.renderToasts(width); toasts != "" {
		sections = append(sections, toasts)
	}

	sections = append(sections, m.styles.Footer.Width(width).Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader(width int) string {
	left := m.styles.Logo.Render("bookshelf") + "  " +
		m.styles.MutedText.Render("My Book Library")

	right := m.styles.MutedText.Render(fmt.Sprintf("%d books", len(m.snapshot.Books)))
	if m.snapshot.Loading {
		right = m.spin.View() + m.styles.MutedText.Render(" loading")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return m.styles.Header.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderFilterBar() string {
	active := m.snapshot.Query.Status

	var parts []string
	for _, f := range []query.StatusFilter{query.FilterAll, query.FilterRead, query.FilterUnread} {
		label := filterLabel(f)
		if f == active {
			parts = append(parts, m.styles.FilterActive.Render(label))
		} else {
			parts = append(parts, m.styles.FilterInactive.Render(label))
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, parts...)

	if m.mode == modeSearch {
		return bar + "  " + m.searchInput.View()
	}
	if m.submitted != "" {
		chip := fmt.Sprintf("%s:%q", m.criteria, m.submitted)
		return bar + "  " + m.styles.AccentText.Render(chip)
	}
	return bar
}

func (m Model) renderList(width int) string {
	books := m.snapshot.Books
	if len(books) == 0 {
		return m.renderEmptyState()
	}

	var rows []string
	for i, book := range books {
		rows = append(rows, m.renderRow(book, i == m.cursor, width))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderRow(book library.Book, selected bool, width int) string {
	titleMax, authorMax := rowWidths(width)
	badge := m.statusBadge(book.Status)
	title := truncate(book.Title, titleMax)
	author := truncate(book.Author, authorMax)

	line := fmt.Sprintf(" %s  %s  %s",
		badge,
		m.styles.Text.Bold(true).Render(title),
		m.styles.MutedText.Render("by "+author))

	if selected {
		marker := m.styles.AccentText.Render("▌")
		return marker + m.styles.Selected.Render(line)
	}
	return " " + line
}

func (m Model) statusBadge(s library.Status) string {
	if s == library.StatusRead {
		return m.styles.SuccessText.Render("read  ")
	}
	return m.styles.WarningText.Render("unread")
}

func (m Model) renderEmptyState() string {
	if m.snapshot.Loading {
		return m.styles.MutedText.Render("  Loading books...")
	}
	msg := "No books match your current filters."
	if m.snapshot.Query.Status == query.FilterAll && !m.snapshot.Query.HasSearch() {
		msg = "You don't have any books yet. Add your first book!"
	}
	return m.styles.WarningText.Render("  " + msg)
}

func (m Model) renderToasts(width int) string {
	if len(m.notes) == 0 {
		return ""
	}
	var lines []string
	for _, note := range m.notes {
		lines = append(lines, m.renderToast(note, width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderToast(note notify.Notification, width int) string {
	var icon string
	switch note.Severity {
	case notify.SeveritySuccess:
		icon = m.styles.SuccessText.Render("✓")
	case notify.SeverityError:
		icon = m.styles.DangerText.Render("✗")
	default:
		icon = m.styles.InfoText.Render("•")
	}
	return " " + icon + " " + m.styles.Text.Render(truncate(note.Message, width-6))
}

func (m Model) renderHelp() string {
	m.help.ShowAll = true
	return m.styles.Modal.Render(
		m.styles.AccentText.Bold(true).Render("Key Bindings") + "\n\n" +
			m.help.View(m.keys) + "\n\n" +
			m.styles.MutedText.Render("press any key to close"))
}

// centered positions modal content in the free vertical space between the
// chrome rows. Falls back to left alignment when the terminal size is
// unknown.
func (m Model) centered(width int, content string) string {
	height := m.height - 6
	if height < lipgloss.Height(content) {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func filterLabel(f query.StatusFilter) string {
	switch f {
	case query.FilterRead:
		return "Read Books"
	case query.FilterUnread:
		return "Unread Books"
	default:
		return "All Books"
	}
}
