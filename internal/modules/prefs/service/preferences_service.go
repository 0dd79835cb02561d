package service

import (
	"context"
	"strings"

	apperrors "campusqa/internal/platform/errors"

	"campusqa/internal/modules/prefs/domain"
	"campusqa/internal/modules/prefs/port/out"
)

type PreferencesService struct {
	store out.Store
}

func NewPreferencesService(store out.Store) *PreferencesService {
	return &PreferencesService{store: store}
}

func (s *PreferencesService) Get(ctx context.Context) (domain.Preferences, error) {
	return s.store.Load(ctx)
}

func (s *PreferencesService) SetCourse(ctx context.Context, course string) error {
	course = strings.ToUpper(strings.TrimSpace(course))
	if !domain.ValidCourse(course) {
		return apperrors.ErrInvalidInput
	}
	return s.mutate(ctx, func(p *domain.Preferences) { p.Course = course })
}

func (s *PreferencesService) SetSemesterNumber(ctx context.Context, n string) error {
	n = strings.TrimSpace(n)
	if !domain.ValidSemesterNumber(n) {
		return apperrors.ErrInvalidInput
	}
	return s.mutate(ctx, func(p *domain.Preferences) { p.SemesterNumber = n })
}

func (s *PreferencesService) SetTheme(ctx context.Context, theme string) error {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		return apperrors.ErrInvalidInput
	}
	return s.mutate(ctx, func(p *domain.Preferences) { p.Theme = theme })
}

func (s *PreferencesService) Token(ctx context.Context) (string, error) {
	p, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}
	if p.Token == "" {
		return "", apperrors.ErrNoToken
	}
	return p.Token, nil
}

func (s *PreferencesService) SetToken(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return apperrors.ErrInvalidInput
	}
	return s.mutate(ctx, func(p *domain.Preferences) { p.Token = token })
}

func (s *PreferencesService) ClearToken(ctx context.Context) error {
	return s.mutate(ctx, func(p *domain.Preferences) { p.Token = "" })
}

func (s *PreferencesService) mutate(ctx context.Context, apply func(*domain.Preferences)) error {
	p, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	apply(&p)
	return s.store.Save(ctx, p)
}
