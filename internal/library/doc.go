// Package library provides the HTTP gateway to the book library API.
//
// # Overview
//
// This package is the only place that knows the wire format of the remote
// collection. It exposes five typed operations (List, Get, Create, SetStatus,
// Delete) over the API's REST surface:
//
//   - GET    /books?status=&title=&author=
//   - GET    /book/{id}
//   - POST   /book/create
//   - PATCH  /book/{id}
//   - DELETE /book/{id}
//
// # Error Contract
//
// Every operation fails with a *RemoteError covering transport failures,
// non-2xx responses, and undecodable bodies. There are no retries and no
// per-call timeout overrides; the shared http.Client carries a single
// request timeout. Callers convert failures into user-facing notifications
// and never display the raw error text.
//
// # Query Translation
//
// List translates a query.Query into the server's filter parameters. The
// "all" status filter is expressed by omitting the status parameter, and a
// search value is included under its criteria's parameter name (title or
// author) only when non-empty.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use; the underlying http.Client
// handles connection pooling internally.
package library
