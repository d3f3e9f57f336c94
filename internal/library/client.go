package library

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/atul121001/bookshelf/internal/query"
)

// Gateway defines the collection operations the rest of the application
// consumes. This interface is implemented by *Client and by test fakes.
type Gateway interface {
	List(ctx context.Context, q query.Query) ([]Book, error)
	Get(ctx context.Context, id string) (Book, error)
	Create(ctx context.Context, draft Draft) (Book, error)
	SetStatus(ctx context.Context, id string, status Status) (Book, error)
	Delete(ctx context.Context, id string) error
}

// Ensure Client implements Gateway at compile time.
var _ Gateway = (*Client)(nil)

// Client talks to the library HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIURL    = "http://localhost:3001/api"
	defaultUserAgent = "bookshelf/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given API base URL. A blank URL uses the
// default local server.
func NewClient(rawURL string) (*Client, error) {
	base, err := parseBaseURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// List fetches the books matching q. A FilterAll status adds no status
// parameter; the search value is sent under its criteria's parameter name
// only when non-empty.
func (c *Client) List(ctx context.Context, q query.Query) ([]Book, error) {
	values := url.Values{}
	if q.Status != "" && q.Status != query.FilterAll {
		values.Set("status", string(q.Status))
	}
	if q.HasSearch() {
		values.Set(string(q.Criteria), q.Search)
	}
	endpoint := c.baseURL.JoinPath("books")
	endpoint.RawQuery = values.Encode()

	var books []Book
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &books, "list books"); err != nil {
		return nil, err
	}
	return books, nil
}

// Get fetches a single book by id.
func (c *Client) Get(ctx context.Context, id string) (Book, error) {
	var book Book
	if err := c.do(ctx, http.MethodGet, c.baseURL.JoinPath("book", id), nil, &book, "get book"); err != nil {
		return Book{}, err
	}
	return book, nil
}

// Create submits a draft; the server assigns id and createdAt. A blank draft
// status is sent as unread.
func (c *Client) Create(ctx context.Context, draft Draft) (Book, error) {
	if draft.Status == "" {
		draft.Status = StatusUnread
	}
	var book Book
	if err := c.do(ctx, http.MethodPost, c.baseURL.JoinPath("book", "create"), draft, &book, "create book"); err != nil {
		return Book{}, err
	}
	return book, nil
}

// SetStatus updates only the book's read status.
func (c *Client) SetStatus(ctx context.Context, id string, status Status) (Book, error) {
	patch := struct {
		Status Status `json:"status"`
	}{Status: status}
	var book Book
	if err := c.do(ctx, http.MethodPatch, c.baseURL.JoinPath("book", id), patch, &book, "update status"); err != nil {
		return Book{}, err
	}
	return book, nil
}

// Delete removes the book by id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.baseURL.JoinPath("book", id), nil, nil, "delete book")
}

func (c *Client) do(ctx context.Context, method string, reqURL *url.URL, body, dest any, op string) error {
	var payload *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &RemoteError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		payload = bytes.NewReader(encoded)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), payload)
	if err != nil {
		return &RemoteError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RemoteError{Op: op, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &RemoteError{Op: op, StatusCode: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &RemoteError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func parseBaseURL(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		trimmed = defaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", rawURL, err)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
