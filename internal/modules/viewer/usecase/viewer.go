package usecase

import (
	"context"

	prefsin "campusqa/internal/modules/prefs/port/in"
	"campusqa/internal/modules/viewer/domain"
	"campusqa/internal/modules/viewer/dto"
	"campusqa/internal/modules/viewer/service"
)

type Interactor struct {
	svc   *service.ViewerService
	prefs prefsin.Usecase
}

func NewInteractor(svc *service.ViewerService, prefs prefsin.Usecase) *Interactor {
	return &Interactor{svc: svc, prefs: prefs}
}

func (i *Interactor) Open(ctx context.Context, fileName string) (dto.DocumentOutput, error) {
	token, err := i.prefs.Token(ctx)
	if err != nil {
		return dto.DocumentOutput{}, err
	}
	doc, err := i.svc.Open(ctx, fileName, token)
	if err != nil {
		return dto.DocumentOutput{}, err
	}
	return dto.DocumentOutput{FileName: doc.FileName, Path: doc.Path, PageCount: doc.PageCount}, nil
}

func (i *Interactor) Page(ctx context.Context, fileName string, page int) (dto.PageOutput, error) {
	token, err := i.prefs.Token(ctx)
	if err != nil {
		return dto.PageOutput{}, err
	}
	p, total, err := i.svc.Page(ctx, fileName, token, domain.ClampPage(page, 0))
	if err != nil {
		return dto.PageOutput{}, err
	}
	return dto.PageOutput{FileName: fileName, Number: p.Number, PageCount: total, Text: p.Text}, nil
}

func (i *Interactor) Download(ctx context.Context, fileName, destDir string) (string, error) {
	token, err := i.prefs.Token(ctx)
	if err != nil {
		return "", err
	}
	return i.svc.Download(ctx, fileName, token, destDir)
}
