package library

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/atul121001/bookshelf/internal/query"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultAPIURL {
		t.Fatalf("url = %q, want %q", u.String(), defaultAPIURL)
	}

	u, err = parseBaseURL("example.com:8080/api/")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Path != "/api" {
		t.Fatalf("path = %q, want /api without trailing slash", u.Path)
	}

	u, err = parseBaseURL("https://books.example.com/api?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_ListEncodesQuery(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Book{{ID: "b1", Title: "Dune"}})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/api")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	cases := []struct {
		name       string
		q          query.Query
		wantParams url.Values
	}{
		{
			name:       "all_no_search",
			q:          query.Default(),
			wantParams: url.Values{},
		},
		{
			name:       "status_only",
			q:          query.Query{Status: query.FilterUnread, Criteria: query.ByTitle},
			wantParams: url.Values{"status": {"unread"}},
		},
		{
			name:       "title_search",
			q:          query.Query{Status: query.FilterAll, Criteria: query.ByTitle, Search: "dune"},
			wantParams: url.Values{"title": {"dune"}},
		},
		{
			name:       "author_search_with_status",
			q:          query.Query{Status: query.FilterRead, Criteria: query.ByAuthor, Search: "herbert"},
			wantParams: url.Values{"status": {"read"}, "author": {"herbert"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			books, err := c.List(ctx, tc.q)
			if err != nil {
				t.Fatalf("List returned error: %v", err)
			}
			if len(books) != 1 || books[0].ID != "b1" {
				t.Fatalf("List books = %#v, want 1 book id=b1", books)
			}
			if gotPath != "/api/books" {
				t.Fatalf("path = %q, want /api/books", gotPath)
			}
			if len(gotQuery) != len(tc.wantParams) {
				t.Fatalf("query = %v, want %v", gotQuery, tc.wantParams)
			}
			for k, v := range tc.wantParams {
				if gotQuery.Get(k) != v[0] {
					t.Fatalf("query[%s] = %q, want %q", k, gotQuery.Get(k), v[0])
				}
			}
		})
	}
}

func TestClient_GetCreateSetStatusDelete(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			_ = json.NewEncoder(w).Encode(Book{ID: "b7", Title: "Dune", Status: StatusRead})
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/api")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	book, err := c.Get(ctx, "b7")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if book.ID != "b7" {
		t.Fatalf("Get book = %#v, want id=b7", book)
	}
	if gotMethod != http.MethodGet || gotPath != "/api/book/b7" {
		t.Fatalf("Get issued %s %s, want GET /api/book/b7", gotMethod, gotPath)
	}

	_, err = c.Create(ctx, Draft{Title: "Dune", Author: "Herbert", Description: "Sand."})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/book/create" {
		t.Fatalf("Create issued %s %s, want POST /api/book/create", gotMethod, gotPath)
	}
	if !strings.Contains(gotBody, `"status":"unread"`) {
		t.Fatalf("Create body = %s, want blank status sent as unread", gotBody)
	}

	_, err = c.SetStatus(ctx, "b7", StatusRead)
	if err != nil {
		t.Fatalf("SetStatus returned error: %v", err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/api/book/b7" {
		t.Fatalf("SetStatus issued %s %s, want PATCH /api/book/b7", gotMethod, gotPath)
	}
	if gotBody != `{"status":"read"}` {
		t.Fatalf("SetStatus body = %s, want status-only patch", gotBody)
	}

	if err := c.Delete(ctx, "b7"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/book/b7" {
		t.Fatalf("Delete issued %s %s, want DELETE /api/book/b7", gotMethod, gotPath)
	}
}

func TestClient_FailuresSurfaceAsRemoteError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/books":
			http.Error(w, "nope", http.StatusInternalServerError)
		case "/api/book/missing":
			http.NotFound(w, r)
		case "/api/book/garbled":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/api")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	_, err = c.List(ctx, query.Default())
	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("List error = %T, want *RemoteError", err)
	}
	if remote.StatusCode != http.StatusInternalServerError {
		t.Fatalf("StatusCode = %d, want 500", remote.StatusCode)
	}
	if remote.NotFound() {
		t.Fatalf("NotFound() = true for 500 response")
	}

	_, err = c.Get(ctx, "missing")
	if !errors.As(err, &remote) {
		t.Fatalf("Get error = %T, want *RemoteError", err)
	}
	if !remote.NotFound() {
		t.Fatalf("NotFound() = false, want true for 404")
	}

	_, err = c.Get(ctx, "garbled")
	if !errors.As(err, &remote) {
		t.Fatalf("Get error = %T, want *RemoteError", err)
	}
	if remote.StatusCode != 0 || !strings.Contains(remote.Error(), "decode response") {
		t.Fatalf("decode failure = %v, want wrapped decode error", remote)
	}

	// Transport failure: nothing listens on this port.
	dead, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = dead.List(ctx, query.Default())
	if !errors.As(err, &remote) {
		t.Fatalf("transport error = %T, want *RemoteError", err)
	}
	if remote.StatusCode != 0 {
		t.Fatalf("StatusCode = %d, want 0 for transport failure", remote.StatusCode)
	}
}
