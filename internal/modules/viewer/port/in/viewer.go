package in

import (
	"context"

	"campusqa/internal/modules/viewer/dto"
)

type Usecase interface {
	// Open fetches the document into the local cache and reports its
	// page count.
	Open(ctx context.Context, fileName string) (dto.DocumentOutput, error)
	// Page returns the extracted text of one page, clamped to the
	// document's range.
	Page(ctx context.Context, fileName string, page int) (dto.PageOutput, error)
	// Download copies the document to destDir and returns the final
	// path.
	Download(ctx context.Context, fileName, destDir string) (string, error)
}
