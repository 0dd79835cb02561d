package in

import (
	"context"

	viewerdto "campusqa/internal/modules/viewer/dto"
	viewerin "campusqa/internal/modules/viewer/port/in"
)

type CLIHandler struct {
	usecase viewerin.Usecase
}

func NewCLIHandler(usecase viewerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Open(ctx context.Context, fileName string) (viewerdto.DocumentOutput, error) {
	return h.usecase.Open(ctx, fileName)
}

func (h CLIHandler) Page(ctx context.Context, fileName string, page int) (viewerdto.PageOutput, error) {
	return h.usecase.Page(ctx, fileName, page)
}

func (h CLIHandler) Download(ctx context.Context, fileName, destDir string) (string, error) {
	return h.usecase.Download(ctx, fileName, destDir)
}
