package out

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	apperrors "campusqa/internal/platform/errors"
)

func TestFetchCachesDocument(t *testing.T) {
	t.Parallel()

	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path != "/pdf/OS_Module_3.pdf" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer jwt-abc" {
			t.Errorf("authorization = %q", r.Header.Get("Authorization"))
		}
		_, _ = w.Write([]byte("%PDF-1.4 payload"))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(server.URL, t.TempDir(), 5*time.Second)

	path, err := fetcher.Fetch(context.Background(), "OS_Module_3.pdf", "jwt-abc")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read cached file: %v", err)
	}
	if string(payload) != "%PDF-1.4 payload" {
		t.Fatalf("cached payload = %q", payload)
	}

	// A second fetch is served from cache.
	if _, err := fetcher.Fetch(context.Background(), "OS_Module_3.pdf", "jwt-abc"); err != nil {
		t.Fatalf("second Fetch: %v", err)
	}
	if hits != 1 {
		t.Fatalf("server hit %d times, want 1", hits)
	}
}

func TestFetchReportsUnavailableDocument(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(server.URL, t.TempDir(), 5*time.Second)

	_, err := fetcher.Fetch(context.Background(), "missing.pdf", "jwt")
	if !errors.Is(err, apperrors.ErrDocumentUnavailable) {
		t.Fatalf("err = %v, want ErrDocumentUnavailable", err)
	}
}
