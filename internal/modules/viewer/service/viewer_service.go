package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"campusqa/internal/modules/viewer/domain"
	"campusqa/internal/modules/viewer/port/out"
)

type ViewerService struct {
	fetcher out.Fetcher
	reader  out.PDFReader
}

func NewViewerService(fetcher out.Fetcher, reader out.PDFReader) *ViewerService {
	return &ViewerService{fetcher: fetcher, reader: reader}
}

func (s *ViewerService) Open(ctx context.Context, fileName, token string) (domain.Document, error) {
	path, err := s.fetcher.Fetch(ctx, fileName, token)
	if err != nil {
		return domain.Document{}, err
	}
	// Page 1 read doubles as a validity check on the fetched file.
	_, total, err := s.reader.ReadPage(ctx, path, 1)
	if err != nil {
		return domain.Document{}, err
	}
	return domain.Document{FileName: fileName, Path: path, PageCount: total}, nil
}

func (s *ViewerService) Page(ctx context.Context, fileName, token string, page int) (domain.Page, int, error) {
	path, err := s.fetcher.Fetch(ctx, fileName, token)
	if err != nil {
		return domain.Page{}, 0, err
	}
	p, total, err := s.reader.ReadPage(ctx, path, page)
	if err != nil {
		return domain.Page{}, 0, err
	}
	return p, total, nil
}

func (s *ViewerService) Download(ctx context.Context, fileName, token, destDir string) (string, error) {
	path, err := s.fetcher.Fetch(ctx, fileName, token)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	dest := filepath.Join(destDir, fileName)
	if err := copyFile(path, dest); err != nil {
		return "", err
	}
	return dest, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open cached document: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create download target: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy document: %w", err)
	}
	return nil
}
