package library

import (
	"fmt"
	"net/http"
)

// RemoteError is the single failure kind the gateway surfaces: a transport
// failure, a non-2xx status, or an undecodable response body. Callers treat
// all three uniformly; NotFound exists only so detail fetches can log the
// distinction.
type RemoteError struct {
	Op         string // the operation that failed, e.g. "list books"
	StatusCode int    // zero when the request never completed
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: api returned status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the server answered that the record is absent.
func (e *RemoteError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
