package out

import (
	"context"

	"campusqa/internal/modules/viewer/domain"
)

// Fetcher pulls a document from the backend into the local cache and
// returns the cached path. The backend requires a bearer token.
type Fetcher interface {
	Fetch(ctx context.Context, fileName, token string) (string, error)
}

// PDFReader extracts text from a cached document.
type PDFReader interface {
	ReadPage(ctx context.Context, path string, page int) (domain.Page, int, error)
}
