// Package testutil provides a fake content API for integration tests.
//
// A ContentAPI serves one space behind one access token:
//
//	api := testutil.NewContentAPI(t, "space-id", "token")
//	api.AddEntry("course", "course-1", map[string]any{"slug": "hello", "title": "Hello"})
//
// Space lookups answer 404 for any other space id and every request with
// another bearer token answers 401, mirroring the remote error bodies.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

// ContentAPI is an in-memory stand-in for one content API host.
type ContentAPI struct {
	server    *httptest.Server
	spaceID   string
	spaceName string
	token     string
	requests  atomic.Int64

	mu      sync.RWMutex
	entries []map[string]any
}

// NewContentAPI starts a fake API for spaceID accepting token. The server is
// closed on test cleanup.
func NewContentAPI(t testing.TB, spaceID, token string) *ContentAPI {
	t.Helper()

	api := &ContentAPI{spaceID: spaceID, spaceName: "Test space", token: token}
	api.server = httptest.NewServer(http.HandlerFunc(api.serveHTTP))
	t.Cleanup(api.server.Close)
	return api
}

// URL returns the base URL of the fake API.
func (a *ContentAPI) URL() string {
	return a.server.URL
}

// Requests returns the number of requests served so far.
func (a *ContentAPI) Requests() int64 {
	return a.requests.Load()
}

// SetSpaceName changes the name reported by the space endpoint.
func (a *ContentAPI) SetSpaceName(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.spaceName = name
}

// AddEntry stores an entry of contentType. Field values may hold EntryLink
// results to reference other entries.
func (a *ContentAPI) AddEntry(contentType, id string, fields map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, map[string]any{
		"sys": map[string]any{
			"id":   id,
			"type": "Entry",
			"contentType": map[string]any{
				"sys": map[string]any{"id": contentType, "type": "Link", "linkType": "ContentType"},
			},
		},
		"fields": fields,
	})
}

// EntryLink returns a link object pointing at the entry with id.
func EntryLink(id string) map[string]any {
	return map[string]any{
		"sys": map[string]any{"id": id, "type": "Link", "linkType": "Entry"},
	}
}

func (a *ContentAPI) serveHTTP(w http.ResponseWriter, r *http.Request) {
	a.requests.Add(1)

	if r.Header.Get("Authorization") != "Bearer "+a.token {
		writeError(w, http.StatusUnauthorized, "AccessTokenInvalid",
			"The access token you sent could not be found or is invalid.")
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 2 || parts[0] != "spaces" || parts[1] != a.spaceID {
		writeError(w, http.StatusNotFound, "NotFound", "The resource could not be found.")
		return
	}

	switch {
	case len(parts) == 2:
		a.writeSpace(w)
	case len(parts) == 5 && parts[2] == "environments" && parts[4] == "entries":
		a.writeEntries(w, r)
	default:
		writeError(w, http.StatusNotFound, "NotFound", "The resource could not be found.")
	}
}

func (a *ContentAPI) writeSpace(w http.ResponseWriter) {
	a.mu.RLock()
	name := a.spaceName
	a.mu.RUnlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"sys":     map[string]any{"id": a.spaceID, "type": "Space"},
		"name":    name,
		"locales": []map[string]any{{"code": "en-US", "name": "English (United States)", "default": true}},
	})
}

// writeEntries filters by content_type and by single-segment field equality
// ("fields.slug"). Deeper field paths are ignored. With include > 0 every
// other entry is sent as an include.
func (a *ContentAPI) writeEntries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	a.mu.RLock()
	defer a.mu.RUnlock()

	items := []map[string]any{}
	includes := []map[string]any{}
	for _, entry := range a.entries {
		if a.matches(entry, query.Get("content_type"), query) {
			items = append(items, entry)
		} else {
			includes = append(includes, entry)
		}
	}

	body := map[string]any{
		"sys":   map[string]any{"type": "Array"},
		"total": len(items),
		"items": items,
	}
	if query.Get("include") != "" && query.Get("include") != "0" {
		body["includes"] = map[string]any{"Entry": includes}
	}
	writeJSON(w, http.StatusOK, body)
}

func (a *ContentAPI) matches(entry map[string]any, contentType string, query map[string][]string) bool {
	sys := entry["sys"].(map[string]any)
	linked := sys["contentType"].(map[string]any)["sys"].(map[string]any)
	if contentType != "" && linked["id"] != contentType {
		return false
	}

	fields := entry["fields"].(map[string]any)
	for key, values := range query {
		name, ok := strings.CutPrefix(key, "fields.")
		if !ok || strings.Contains(name, ".") || len(values) == 0 {
			continue
		}
		if value, _ := fields[name].(string); value != values[0] {
			return false
		}
	}
	return true
}

func writeError(w http.ResponseWriter, status int, id, message string) {
	writeJSON(w, status, map[string]any{
		"sys":       map[string]any{"id": id, "type": "Error"},
		"message":   message,
		"requestId": "test-request",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/vnd.contentful.delivery.v1+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
