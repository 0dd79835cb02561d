package out

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	apperrors "campusqa/internal/platform/errors"

	viewerout "campusqa/internal/modules/viewer/port/out"
)

// HTTPFetcher downloads documents from the backend's /pdf endpoint
// into a local cache dir. A cached copy is reused without a round
// trip.
type HTTPFetcher struct {
	baseURL    string
	cacheDir   string
	httpClient *http.Client
}

func NewHTTPFetcher(baseURL, cacheDir string, timeout time.Duration) viewerout.Fetcher {
	return &HTTPFetcher{
		baseURL:    baseURL,
		cacheDir:   cacheDir,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, fileName, token string) (string, error) {
	cached := filepath.Join(f.cacheDir, filepath.Base(fileName))
	if _, err := os.Stat(cached); err == nil {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		f.baseURL+"/pdf/"+url.PathEscape(fileName), nil)
	if err != nil {
		return "", fmt.Errorf("build pdf request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch pdf: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch pdf %s: %w (status %d)", fileName, apperrors.ErrDocumentUnavailable, resp.StatusCode)
	}

	if err := os.MkdirAll(f.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create pdf cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(f.cacheDir, "fetch-*")
	if err != nil {
		return "", fmt.Errorf("create pdf temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write pdf: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close pdf temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), cached); err != nil {
		return "", fmt.Errorf("cache pdf: %w", err)
	}
	return cached, nil
}
