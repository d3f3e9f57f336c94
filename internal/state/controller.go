package state

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/atul121001/bookshelf/internal/library"
	"github.com/atul121001/bookshelf/internal/notify"
	"github.com/atul121001/bookshelf/internal/query"
)

// User-facing message strings. Raw gateway errors are logged, never shown.
const (
	msgFetchFailed   = "Failed to fetch books. Please try again later."
	msgAddFailed     = "Failed to add book. Please try again."
	msgToggleFailed  = "Failed to update book status. Please try again."
	msgDetailsFailed = "Failed to load book details. Please try again."
	msgDeleteFailed  = "Failed to delete book. Please try again."

	// fallbackTitle labels a notification when the book is no longer in the
	// local snapshot by the time the message is built.
	fallbackTitle = "Book"
)

// Snapshot is the UI-facing view of the session at a point in time. Books is
// the cached result set of the last settled query; Selected may reference a
// book outside the current filtered set.
type Snapshot struct {
	Books    []library.Book
	Query    query.Query
	Loading  bool
	LoadErr  string // banner text; empty while the last fetch succeeded
	Selected *library.Book
}

// Controller owns the local copy of the remote collection and the selected
// book detail, and mediates every mutation between the gateway and local
// state. List fetches are asynchronous and generation-tagged: a response for
// a superseded query is discarded, so the snapshot always settles on the most
// recently issued query regardless of response arrival order.
//
// A status toggle patches the snapshot in place and never re-issues the
// query, so a toggled book keeps its row under a filter it no longer matches
// until the next query change. That display behavior is intentional.
type Controller struct {
	ctx    context.Context
	gw     library.Gateway
	toasts *notify.Queue

	mu       sync.Mutex
	books    []library.Book
	query    query.Query
	loading  bool
	loadErr  string
	selected *library.Book
	gen      uint64 // latest issued list generation

	updates chan struct{}
}

// New returns a controller with an empty snapshot at the default query.
// ctx bounds the background list fetches.
func New(ctx context.Context, gw library.Gateway, toasts *notify.Queue) *Controller {
	return &Controller{
		ctx:     ctx,
		gw:      gw,
		toasts:  toasts,
		query:   query.Default(),
		updates: make(chan struct{}, 1),
	}
}

// SetQuery records q as the active query and starts an asynchronous list
// fetch. Successful fetches replace the snapshot silently; failures raise the
// error banner, enqueue one error notification, and keep the prior snapshot.
func (c *Controller) SetQuery(q query.Query) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.query = q
	c.loading = true
	c.mu.Unlock()
	c.signal()
	go c.fetch(gen, q)
}

func (c *Controller) fetch(gen uint64, q query.Query) {
	books, err := c.gw.List(c.ctx, q)

	c.mu.Lock()
	if gen != c.gen {
		// A newer query was issued while this one was in flight.
		c.mu.Unlock()
		return
	}
	c.loading = false
	if err != nil {
		c.loadErr = msgFetchFailed
		c.mu.Unlock()
		log.Printf("list books failed: %v", err)
		c.toasts.Error(msgFetchFailed)
		c.signal()
		return
	}
	c.books = books
	c.loadErr = ""
	c.mu.Unlock()
	c.signal()
}

// AddBook creates the draft remotely, then re-issues the active query so the
// new book is shown only if it matches the current filter. The snapshot is
// unchanged on failure.
func (c *Controller) AddBook(ctx context.Context, draft library.Draft) error {
	if _, err := c.gw.Create(ctx, draft); err != nil {
		log.Printf("create book failed: %v", err)
		c.toasts.Error(msgAddFailed)
		return err
	}
	c.toasts.Success(fmt.Sprintf("%q has been added successfully!", draft.Title))

	c.mu.Lock()
	c.gen++
	gen := c.gen
	q := c.query
	c.loading = true
	c.mu.Unlock()
	c.signal()
	go c.fetch(gen, q)
	return nil
}

// ToggleStatus sets the book's status remotely, then patches the matching
// book in the snapshot and the selected detail in place. The notification
// names the book using the title cached before the call.
func (c *Controller) ToggleStatus(ctx context.Context, id string, to library.Status) error {
	title := c.titleFor(id)

	if _, err := c.gw.SetStatus(ctx, id, to); err != nil {
		log.Printf("update status failed: %v", err)
		c.toasts.Error(msgToggleFailed)
		return err
	}

	c.mu.Lock()
	for i := range c.books {
		if c.books[i].ID == id {
			c.books[i].Status = to
		}
	}
	if c.selected != nil && c.selected.ID == id {
		c.selected.Status = to
	}
	c.mu.Unlock()

	verb := "marked as unread"
	if to == library.StatusRead {
		verb = "marked as read"
	}
	c.toasts.Success(fmt.Sprintf("%q %s", title, verb))
	c.signal()
	return nil
}

// ViewDetails fetches the book by id and selects it. The selection is
// unchanged on failure.
func (c *Controller) ViewDetails(ctx context.Context, id string) error {
	book, err := c.gw.Get(ctx, id)
	if err != nil {
		log.Printf("get book failed: %v", err)
		c.toasts.Error(msgDetailsFailed)
		return err
	}
	c.mu.Lock()
	c.selected = &book
	c.mu.Unlock()
	c.signal()
	return nil
}

// CloseDetails clears the selected book.
func (c *Controller) CloseDetails() {
	c.mu.Lock()
	c.selected = nil
	c.mu.Unlock()
	c.signal()
}

// DeleteBook removes the book remotely, drops it from the snapshot, and
// clears the selection unconditionally: a deletion always closes any open
// detail view, even when a different book was selected.
func (c *Controller) DeleteBook(ctx context.Context, id string) error {
	title := c.titleFor(id)

	if err := c.gw.Delete(ctx, id); err != nil {
		log.Printf("delete book failed: %v", err)
		c.toasts.Error(msgDeleteFailed)
		return err
	}

	c.mu.Lock()
	for i := range c.books {
		if c.books[i].ID == id {
			c.books = append(c.books[:i], c.books[i+1:]...)
			break
		}
	}
	c.selected = nil
	c.mu.Unlock()

	c.toasts.Info(fmt.Sprintf("%q has been deleted", title))
	c.signal()
	return nil
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Query:   c.query,
		Loading: c.loading,
		LoadErr: c.loadErr,
	}
	if len(c.books) > 0 {
		snap.Books = make([]library.Book, len(c.books))
		copy(snap.Books, c.books)
	}
	if c.selected != nil {
		sel := *c.selected
		snap.Selected = &sel
	}
	return snap
}

// Updates yields a signal after every state change. The channel is buffered
// with capacity one so rapid changes coalesce; readers re-read Snapshot after
// each receive.
func (c *Controller) Updates() <-chan struct{} {
	return c.updates
}

// titleFor reads the book's title from local state before a mutating call,
// since the mutation may remove or alter the record server-side.
func (c *Controller) titleFor(id string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, b := range c.books {
		if b.ID == id {
			return b.Title
		}
	}
	if c.selected != nil && c.selected.ID == id {
		return c.selected.Title
	}
	return fallbackTitle
}

func (c *Controller) signal() {
	select {
	case c.updates <- struct{}{}:
	default:
	}
}
