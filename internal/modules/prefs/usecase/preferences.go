package usecase

import (
	"context"

	"campusqa/internal/modules/prefs/dto"
	"campusqa/internal/modules/prefs/service"
)

type Interactor struct {
	svc *service.PreferencesService
}

func NewInteractor(svc *service.PreferencesService) *Interactor {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context) (dto.PreferencesOutput, error) {
	p, err := i.svc.Get(ctx)
	if err != nil {
		return dto.PreferencesOutput{}, err
	}
	return dto.PreferencesOutput{
		Course:         p.Course,
		SemesterNumber: p.SemesterNumber,
		FullSemester:   p.FullSemester(),
		Theme:          p.Theme,
		HasToken:       p.Token != "",
	}, nil
}

func (i *Interactor) SetCourse(ctx context.Context, course string) error {
	return i.svc.SetCourse(ctx, course)
}

func (i *Interactor) SetSemesterNumber(ctx context.Context, n string) error {
	return i.svc.SetSemesterNumber(ctx, n)
}

func (i *Interactor) SetTheme(ctx context.Context, theme string) error {
	return i.svc.SetTheme(ctx, theme)
}

func (i *Interactor) Token(ctx context.Context) (string, error) {
	return i.svc.Token(ctx)
}

func (i *Interactor) SetToken(ctx context.Context, token string) error {
	return i.svc.SetToken(ctx, token)
}

func (i *Interactor) ClearToken(ctx context.Context) error {
	return i.svc.ClearToken(ctx)
}

func (i *Interactor) FullSemester(ctx context.Context) (string, error) {
	p, err := i.svc.Get(ctx)
	if err != nil {
		return "", err
	}
	return p.FullSemester(), nil
}
