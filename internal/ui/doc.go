// Package ui provides the terminal user interface for bookshelf.
//
// # Architecture Overview
//
// The UI is a bubbletea program layered on top of the state controller. It
// owns no library data of its own: every render reads a state.Snapshot and
// the current notification list, and every action is expressed either as a
// combiner input (filter click, search submit) or a controller command
// (add, toggle, details, delete).
//
// # Package Structure
//
//   - model.go: Options, the Model container, Init, and change listeners
//   - update.go: key handling per mode and the controller command builders
//   - view.go: layout composition: header, filter bar, list, toasts, footer
//   - detail.go: the selected-book modal
//   - form.go: the add-book modal and its validation flow
//   - theme.go: color palettes and pre-built lipgloss styles
//   - keys.go: key bindings and the help surface
//   - helpers.go: small pure formatting utilities
//
// # Event Flow
//
// The controller and the notification queue each expose a buffered signal
// channel. Init arms one listening command per channel; each received signal
// re-reads the authoritative state (Snapshot or Items) and re-arms the
// listener. Mutating commands run in the background and report nothing
// themselves; the resulting state change and its toast arrive through the
// same two channels, so the render path has a single source of truth.
//
// # Modes
//
// One mode is active at a time: the book list (default), search input, the
// add-book form, the detail modal, and the help screen. The detail modal is
// slaved to the controller's selection: setting a selected book opens it and
// clearing the selection (close, or any delete) drops back to the list.
//
// # Key Bindings
//
//   - ↑/k, ↓/j, g, G: move the list cursor
//   - enter: view details for the highlighted book
//   - t: toggle read/unread (list and detail)
//   - a: add a book
//   - d: delete (detail view, with confirmation)
//   - f or 1/2/3: status filter (all/read/unread)
//   - /: search; tab switches title/author criteria; enter submits;
//     clearing the text reverts to the unsearched view immediately
//   - r: re-issue the current query
//   - D: dismiss the oldest toast
//   - T: cycle color theme (persisted to prefs)
//   - ?: help, esc: back, q/Ctrl+C: quit
package ui
