// Package app provides the orchestration layer for bookshelf.
//
// # Overview
//
// This is the composition root: it loads configuration and preferences,
// builds the HTTP gateway, the notification queue, the state controller, and
// the filter/search combiner, issues the initial load, and hands everything
// to the UI, blocking until exit.
//
// # Wiring
//
//	Run()
//	 ├─> config.Load()        API endpoint and log location
//	 ├─> prefs.Load()         theme and search criteria
//	 ├─> library.NewClient()  HTTP gateway
//	 ├─> notify.New()         toast queue
//	 ├─> state.New()          session controller
//	 ├─> query.NewCombiner()  filter inputs -> controller.SetQuery
//	 ├─> combiner.Refresh()   initial fetch at the default query
//	 └─> ui.Run()             TUI (blocks)
//
// # Logging
//
// The stdlib logger is redirected to <log_dir>/bookshelf.log before the TUI
// starts; diagnostic detail from failed remote calls lands there and is
// never rendered to the user. If the file cannot be opened the output is
// discarded rather than corrupting the terminal.
package app
