package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atul121001/bookshelf/internal/library"
)

// addForm is the add-book modal: three required fields plus an inline
// validation error line. New books are created unread.
type addForm struct {
	inputs []textinput.Model
	focus  int
	err    string
}

const (
	fieldTitle = iota
	fieldAuthor
	fieldDescription
)

func newAddForm() addForm {
	labels := []string{"Title", "Author", "Description"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		input := textinput.New()
		input.Placeholder = label
		input.CharLimit = 200
		input.Width = 40
		inputs[i] = input
	}
	inputs[fieldTitle].Focus()
	return addForm{inputs: inputs}
}

func (f addForm) draft() library.Draft {
	return library.Draft{
		Title:       strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Author:      strings.TrimSpace(f.inputs[fieldAuthor].Value()),
		Description: strings.TrimSpace(f.inputs[fieldDescription].Value()),
		Status:      library.StatusUnread,
	}
}

func (f addForm) update(msg tea.Msg) (addForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f addForm) moveFocus(delta int) (addForm, tea.Cmd) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f, f.inputs[f.focus].Focus()
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.form = newAddForm()
		m.mode = modeList
		return m, nil

	case msg.Type == tea.KeyTab || msg.Type == tea.KeyDown:
		var cmd tea.Cmd
		m.form, cmd = m.form.moveFocus(1)
		return m, cmd

	case msg.Type == tea.KeyShiftTab || msg.Type == tea.KeyUp:
		var cmd tea.Cmd
		m.form, cmd = m.form.moveFocus(-1)
		return m, cmd

	case msg.Type == tea.KeyEnter:
		if m.form.focus < len(m.form.inputs)-1 {
			var cmd tea.Cmd
			m.form, cmd = m.form.moveFocus(1)
			return m, cmd
		}
		draft := m.form.draft()
		if err := draft.Validate(); err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		m.form.err = ""
		return m, m.submitFormCmd(draft)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) renderForm() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.AccentText.Bold(true).Render("Add Book"))
	b.WriteString("\n\n")
	for i, input := range m.form.inputs {
		label := input.Placeholder
		if i == m.form.focus {
			b.WriteString(s.AccentText.Render("▸ " + label))
		} else {
			b.WriteString(s.MutedText.Render("  " + label))
		}
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	if m.form.err != "" {
		b.WriteString("\n")
		b.WriteString(s.DangerText.Render(m.form.err))
	}
	b.WriteString("\n\n")
	b.WriteString(s.MutedText.Render("enter next/submit • tab fields • esc cancel"))

	return m.styles.Modal.Render(b.String())
}
