package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atul121001/bookshelf/internal/notify"
	"github.com/atul121001/bookshelf/internal/prefs"
	"github.com/atul121001/bookshelf/internal/query"
	"github.com/atul121001/bookshelf/internal/state"
)

// Options configure the UI runtime.
type Options struct {
	Context    context.Context
	Controller *state.Controller
	Toasts     *notify.Queue
	Combiner   *query.Combiner
	ThemeName  string
	Criteria   string // preferred search criteria from prefs
	PrefsPath  string
}

// Run starts the TUI and blocks until the user quits or the context is
// cancelled.
func Run(opts Options) error {
	program := tea.NewProgram(newModel(opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := program.Run()
	return exitError(err)
}

// exitError classifies the error Run's program returned. Cancelling the bound
// context kills the program with a wrapped ErrProgramKilled, and that
// signal-driven shutdown (SIGINT/SIGTERM) is a normal exit.
func exitError(err error) error {
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

type mode int

const (
	modeList mode = iota
	modeSearch
	modeForm
	modeDetail
	modeHelp
)

// Messages delivered into the update loop.
type (
	stateChangedMsg  struct{}
	toastsChangedMsg struct{}
	formResultMsg    struct{ err error }
)

// Model is the central bubbletea state container.
type Model struct {
	opts Options

	snapshot state.Snapshot
	notes    []notify.Notification

	mode             mode
	cursor           int
	confirmingDelete bool

	searchInput textinput.Model
	criteria    query.Criteria
	submitted   string // last applied search value

	form addForm

	spin spinner.Model

	keys   keyMap
	help   help.Model
	theme  Theme
	styles Styles

	width  int
	height int
}

func newModel(opts Options) Model {
	theme := themeByName(opts.ThemeName)
	styles := theme.Styles()

	criteria := query.Criteria(opts.Criteria)
	if !criteria.Valid() {
		criteria = query.ByTitle
	}

	input := textinput.New()
	input.Placeholder = "Search books..."
	input.CharLimit = 120
	input.Width = 40

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = styles.AccentText

	return Model{
		opts:        opts,
		snapshot:    opts.Controller.Snapshot(),
		notes:       opts.Toasts.Items(),
		searchInput: input,
		criteria:    criteria,
		form:        newAddForm(),
		spin:        spin,
		keys:        defaultKeyMap(),
		help:        help.New(),
		theme:       theme,
		styles:      styles,
	}
}

// Init starts the change listeners and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForSignal(m.opts.Controller.Updates(), stateChangedMsg{}),
		waitForSignal(m.opts.Toasts.Updates(), toastsChangedMsg{}),
		m.spin.Tick,
	)
}

// waitForSignal blocks on a change channel and forwards msg into the program.
// The command re-arms itself from the update loop after each receive.
func waitForSignal(ch <-chan struct{}, msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return msg
	}
}

// savePrefsCmd persists theme and criteria choices in the background.
func (m Model) savePrefsCmd() tea.Cmd {
	path := m.opts.PrefsPath
	p := prefs.Prefs{Theme: m.theme.Name, Criteria: string(m.criteria)}
	return func() tea.Msg {
		_ = prefs.Save(path, p)
		return nil
	}
}

func (m *Model) applyTheme(theme Theme) {
	m.theme = theme
	m.styles = theme.Styles()
	m.spin.Style = m.styles.AccentText
}

func (m *Model) clampCursor() {
	if n := len(m.snapshot.Books); n == 0 {
		m.cursor = 0
	} else if m.cursor >= n {
		m.cursor = n - 1
	}
}
