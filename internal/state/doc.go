// Package state implements the session state controller for the bookshelf
// client.
//
// # Overview
//
// The Controller owns the authoritative local copy of the book collection
// (the snapshot), the single selected-book detail, the active query, and the
// loading/error indicators. No other component writes this state; the UI and
// tests observe it through Snapshot copies and the Updates signal channel.
//
// # Fetch Ordering
//
// Query changes issue asynchronous list fetches tagged with a generation
// counter. A response whose generation no longer matches the latest issued
// query is discarded, success or failure alike. When the user changes the
// query twice in rapid succession the snapshot therefore settles on the
// second query's result even if the first response arrives later.
//
// # Mutation Semantics
//
// Mutations call the gateway synchronously and patch local state only after
// the remote call confirms success; there is no speculative update:
//
//   - Add: remote create, then a full re-fetch of the active query, so the
//     new book appears only if it matches the current filter.
//   - Toggle: in-place status patch of the snapshot row and the selected
//     detail, no re-fetch. The book stays visible under a filter it no
//     longer matches until the next query change (intentional).
//   - Delete: remove the row and clear the selection unconditionally.
//
// Every outcome enqueues exactly one notification with a static,
// action-specific message; raw gateway errors go to the diagnostic log only.
// Notification titles are read from the snapshot before the mutating call,
// falling back to a generic label when the book is absent locally.
//
// # Error States
//
// A failed fetch raises a persistent banner (LoadErr) and keeps the prior
// snapshot; a failed initial load therefore shows an empty list behind the
// banner. The error state is not terminal: any later fetch trigger re-enters
// loading and a success clears the banner.
package state
