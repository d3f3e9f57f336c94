package query

import "strings"

// StatusFilter narrows a listing to books in one read state.
type StatusFilter string

const (
	FilterAll    StatusFilter = "all"
	FilterRead   StatusFilter = "read"
	FilterUnread StatusFilter = "unread"
)

// Valid reports whether f is one of the three known filters.
func (f StatusFilter) Valid() bool {
	switch f {
	case FilterAll, FilterRead, FilterUnread:
		return true
	}
	return false
}

// Criteria selects which book field a text search matches against.
type Criteria string

const (
	ByTitle  Criteria = "title"
	ByAuthor Criteria = "author"
)

// Valid reports whether c is a known search criteria.
func (c Criteria) Valid() bool {
	return c == ByTitle || c == ByAuthor
}

// Query is the combined status filter and search request sent to the library
// API. An empty Search means the query carries no text component; Criteria
// is irrelevant in that case.
type Query struct {
	Status   StatusFilter
	Criteria Criteria
	Search   string
}

// Default is the query issued on startup: every book, no search.
func Default() Query {
	return Query{Status: FilterAll, Criteria: ByTitle}
}

// HasSearch reports whether the query carries a text component.
func (q Query) HasSearch() bool {
	return q.Search != ""
}

// Combiner merges the two independent filter inputs into a single Query and
// hands each recomputed Query to emit. Every input change emits exactly one
// Query; the text component only changes on SetSearch, which callers invoke
// on explicit submission or when the search box empties.
type Combiner struct {
	status   StatusFilter
	criteria Criteria
	search   string
	emit     func(Query)
}

// NewCombiner returns a Combiner that starts at the default query. No Query
// is emitted until an input changes or Refresh is called.
func NewCombiner(emit func(Query)) *Combiner {
	return &Combiner{status: FilterAll, criteria: ByTitle, emit: emit}
}

// Current returns the query derived from the present inputs.
func (c *Combiner) Current() Query {
	return Query{Status: c.status, Criteria: c.criteria, Search: c.search}
}

// SetStatusFilter records f and emits the recombined query. Unknown values
// fall back to FilterAll.
func (c *Combiner) SetStatusFilter(f StatusFilter) {
	if !f.Valid() {
		f = FilterAll
	}
	c.status = f
	c.emitCurrent()
}

// SetSearch applies a submitted search value under the given criteria and
// emits the recombined query. A blank value clears the text component so the
// emitted query is the status filter alone.
func (c *Combiner) SetSearch(criteria Criteria, value string) {
	if !criteria.Valid() {
		criteria = ByTitle
	}
	c.criteria = criteria
	c.search = strings.TrimSpace(value)
	c.emitCurrent()
}

// ClearSearch drops the text component, keeping the status filter and
// criteria selection.
func (c *Combiner) ClearSearch() {
	c.SetSearch(c.criteria, "")
}

// Refresh re-emits the current query without changing it. Used to retry a
// failed load.
func (c *Combiner) Refresh() {
	c.emitCurrent()
}

func (c *Combiner) emitCurrent() {
	if c.emit != nil {
		c.emit(c.Current())
	}
}
