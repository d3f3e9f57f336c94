package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atul121001/bookshelf/internal/library"
	"github.com/atul121001/bookshelf/internal/query"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case stateChangedMsg:
		m.snapshot = m.opts.Controller.Snapshot()
		m.clampCursor()
		// The selection drives the detail view: setting it opens the view,
		// clearing it (close or delete) drops back to the list.
		if m.snapshot.Selected != nil && m.mode == modeList {
			m.mode = modeDetail
		}
		if m.snapshot.Selected == nil && m.mode == modeDetail {
			m.mode = modeList
			m.confirmingDelete = false
		}
		return m, waitForSignal(m.opts.Controller.Updates(), stateChangedMsg{})

	case toastsChangedMsg:
		m.notes = m.opts.Toasts.Items()
		return m, waitForSignal(m.opts.Toasts.Updates(), toastsChangedMsg{})

	case formResultMsg:
		if msg.err == nil {
			m.form = newAddForm()
			m.mode = modeList
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeForm:
		return m.handleFormKey(msg)
	case modeDetail:
		return m.handleDetailKey(msg)
	case modeHelp:
		return m.handleHelpKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.applyTheme(nextTheme(m.theme.Name))
		return m, m.savePrefsCmd()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snapshot.Books)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if n := len(m.snapshot.Books); n > 0 {
			m.cursor = n - 1
		}
		return m, nil

	case key.Matches(msg, m.keys.Details):
		if book, ok := m.bookUnderCursor(); ok {
			return m, m.detailsCmd(book.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if book, ok := m.bookUnderCursor(); ok {
			return m, m.toggleCmd(book)
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.form = newAddForm()
		m.mode = modeForm
		return m, textinput.Blink

	case key.Matches(msg, m.keys.CycleFilter):
		m.opts.Combiner.SetStatusFilter(nextFilter(m.snapshot.Query.Status))
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searchInput.SetValue(m.submitted)
		m.searchInput.Prompt = searchPrompt(m.criteria)
		m.searchInput.Focus()
		m.mode = modeSearch
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Refresh):
		m.opts.Combiner.Refresh()
		return m, nil

	case key.Matches(msg, m.keys.DismissToast):
		if len(m.notes) > 0 {
			m.opts.Toasts.Dismiss(m.notes[0].ID)
		}
		return m, nil
	}

	// Direct filter selection mirrors the three filter buttons.
	switch msg.String() {
	case "1":
		m.opts.Combiner.SetStatusFilter(query.FilterAll)
	case "2":
		m.opts.Combiner.SetStatusFilter(query.FilterRead)
	case "3":
		m.opts.Combiner.SetStatusFilter(query.FilterUnread)
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEscape:
		m.searchInput.Blur()
		m.searchInput.SetValue(m.submitted)
		m.mode = modeList
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.searchInput.Value())
		m.submitted = value
		m.searchInput.Blur()
		m.mode = modeList
		m.opts.Combiner.SetSearch(m.criteria, value)
		return m, nil

	case tea.KeyTab:
		if m.criteria == query.ByTitle {
			m.criteria = query.ByAuthor
		} else {
			m.criteria = query.ByTitle
		}
		m.searchInput.Prompt = searchPrompt(m.criteria)
		return m, m.savePrefsCmd()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	// Emptying the box reverts to the unsearched view immediately, without
	// waiting for a submit.
	if m.searchInput.Value() == "" && m.submitted != "" {
		m.submitted = ""
		m.opts.Combiner.SetSearch(m.criteria, "")
	}
	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	selected := m.snapshot.Selected
	if selected == nil {
		m.mode = modeList
		return m, nil
	}

	if m.confirmingDelete {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.confirmingDelete = false
			return m, m.deleteCmd(selected.ID)
		case key.Matches(msg, m.keys.Escape), msg.String() == "n":
			m.confirmingDelete = false
		}
		return m, nil
	}

	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.opts.Controller.CloseDetails()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleCmd(*selected)

	case key.Matches(msg, m.keys.Delete):
		m.confirmingDelete = true
		return m, nil
	}
	return m, nil
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	m.mode = modeList
	return m, nil
}

func (m Model) updateActiveInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSearch:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	case modeForm:
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) bookUnderCursor() (library.Book, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Books) {
		return library.Book{}, false
	}
	return m.snapshot.Books[m.cursor], true
}

// detailsCmd fetches the book and selects it; the controller raises a toast
// on failure, so the command itself has nothing to report.
func (m Model) detailsCmd(id string) tea.Cmd {
	ctrl := m.opts.Controller
	ctx := m.opts.Context
	return func() tea.Msg {
		_ = ctrl.ViewDetails(ctx, id)
		return nil
	}
}

func (m Model) toggleCmd(book library.Book) tea.Cmd {
	ctrl := m.opts.Controller
	ctx := m.opts.Context
	to := book.Status.Toggled()
	id := book.ID
	return func() tea.Msg {
		_ = ctrl.ToggleStatus(ctx, id, to)
		return nil
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	ctrl := m.opts.Controller
	ctx := m.opts.Context
	return func() tea.Msg {
		_ = ctrl.DeleteBook(ctx, id)
		return nil
	}
}

func (m Model) submitFormCmd(draft library.Draft) tea.Cmd {
	ctrl := m.opts.Controller
	ctx := m.opts.Context
	return func() tea.Msg {
		return formResultMsg{err: ctrl.AddBook(ctx, draft)}
	}
}

func nextFilter(f query.StatusFilter) query.StatusFilter {
	switch f {
	case query.FilterAll:
		return query.FilterRead
	case query.FilterRead:
		return query.FilterUnread
	default:
		return query.FilterAll
	}
}

func searchPrompt(c query.Criteria) string {
	return "/" + string(c) + ": "
}
