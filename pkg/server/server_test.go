package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/fontlink/pkg/buildinfo"
	ferrors "github.com/matzehuels/fontlink/pkg/errors"
	"github.com/matzehuels/fontlink/pkg/observability"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := New(log.New(io.Discard))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts, "/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}
	if resp.Header.Get(RequestIDHeader) == "" {
		t.Error("missing request ID header")
	}
}

func TestVersion(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts, "/version")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if diff := cmp.Diff(buildinfo.Get(), decode[buildinfo.Info](t, resp)); diff != "" {
		t.Errorf("version mismatch (-want +got):\n%s", diff)
	}
}

func TestURL(t *testing.T) {
	ts := newTestServer(t)
	q := url.Values{}
	q.Add("family", "Open Sans:wght@400")
	q.Add("family", "Roboto:ital,wght@0,400;1,700")

	resp := get(t, ts, "/v1/url?"+q.Encode())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	got := decode[compileResponse](t, resp)
	want := compileResponse{
		URL:      "https://fonts.googleapis.com/css2?family=Open+Sans:wght@400&family=Roboto:ital,wght@0,400;1,700&display=swap",
		Link:     `<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Open+Sans:wght@400&amp;family=Roboto:ital,wght@0,400;1,700&amp;display=swap">`,
		Families: 2,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestURLErrors(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		code      ferrors.Code
		attribute string
	}{
		{"no families", "", ferrors.ErrCodeEmptyInput, ""},
		{"unknown axis", "family=" + url.QueryEscape("Roboto:opsz@14"), ferrors.ErrCodeUnknownAttribute, "opsz"},
		{"bad italic", "family=" + url.QueryEscape("Roboto:ital,wght@3,400"), ferrors.ErrCodeInvalidItalicPair, ""},
		{"control character in name", "family=" + url.QueryEscape("Bad\nName"), ferrors.ErrCodeInvalidInput, ""},
	}

	ts := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, ts, "/v1/url?"+tt.query)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			got := decode[errorResponse](t, resp)
			if got.Code != tt.code {
				t.Errorf("code = %s, want %s", got.Code, tt.code)
			}
			if got.Attribute != tt.attribute {
				t.Errorf("attribute = %q, want %q", got.Attribute, tt.attribute)
			}
			if got.RequestID == "" {
				t.Error("missing request_id")
			}
		})
	}
}

func TestStylesheet(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts, "/v1/stylesheet?preconnect=true&family=Inter")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), body)
	}
	want := `<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Inter&amp;display=swap">`
	if lines[2] != want {
		t.Errorf("link = %q, want %q", lines[2], want)
	}
}

func TestCompile(t *testing.T) {
	ts := newTestServer(t)
	body := `{"families": [{"name": "A", "weights": [400]}, {"name": "B", "weights": [700]}]}`
	resp, err := http.Post(ts.URL+"/v1/compile", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	got := decode[compileResponse](t, resp)
	want := "https://fonts.googleapis.com/css2?family=A:wght@400&family=B:wght@700&display=swap"
	if got.URL != want {
		t.Errorf("url = %q, want %q", got.URL, want)
	}
	if got.Families != 2 {
		t.Errorf("families = %d, want 2", got.Families)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code ferrors.Code
	}{
		{"empty body", "", ferrors.ErrCodeInvalidManifest},
		{"malformed json", "{", ferrors.ErrCodeInvalidManifest},
		{"empty families", `{"families": []}`, ferrors.ErrCodeEmptyInput},
		{"unknown attribute", `{"families": [{"name": "A", "foo": [1]}]}`, ferrors.ErrCodeUnknownAttribute},
		{"bad weight", `{"families": [{"name": "A", "weights": [{}]}]}`, ferrors.ErrCodeInvalidWeight},
		{"bad name", `{"families": [{"name": 5}]}`, ferrors.ErrCodeInvalidName},
	}

	ts := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/v1/compile", "application/json", bytes.NewBufferString(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			got := decode[errorResponse](t, resp)
			if got.Code != tt.code {
				t.Errorf("code = %s, want %s", got.Code, tt.code)
			}
		})
	}
}

func TestCompileOversizedBody(t *testing.T) {
	body := `{"families": [{"name": "` + strings.Repeat("a", maxBodyBytes) + `"}]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/compile", strings.NewReader(body))
	New(log.New(io.Discard)).Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var got errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Code != ferrors.ErrCodeInvalidInput {
		t.Errorf("code = %s, want %s", got.Code, ferrors.ErrCodeInvalidInput)
	}
}

func TestRequestIDPropagates(t *testing.T) {
	ts := newTestServer(t)
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request ID = %q, want abc-123", got)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/v1/url", "text/plain", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

type recordingHooks struct {
	observability.NoopCompileHooks
	observability.NoopHTTPHooks

	mu       sync.Mutex
	compiles []int
	statuses []int
}

func (h *recordingHooks) OnCompile(_ context.Context, source string, n int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if source == hookSource {
		h.compiles = append(h.compiles, n)
	}
}

func (h *recordingHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetCompileHooks(hooks)
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	h := New(log.New(io.Discard)).Handler()
	for _, target := range []string{"/v1/url?family=Inter&family=Lato", "/v1/url"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if diff := cmp.Diff([]int{2}, hooks.compiles); diff != "" {
		t.Errorf("compile events mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{200, 400}, hooks.statuses); diff != "" {
		t.Errorf("status events mismatch (-want +got):\n%s", diff)
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	s := New(log.New(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe did not return after cancel")
	}
}
