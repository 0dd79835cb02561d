package in

import (
	"context"

	"campusqa/internal/modules/prefs/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.PreferencesOutput, error)
	SetCourse(ctx context.Context, course string) error
	SetSemesterNumber(ctx context.Context, n string) error
	SetTheme(ctx context.Context, theme string) error

	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error

	// FullSemester returns the course context sent with every answer
	// request, e.g. "FY-Sem-1".
	FullSemester(ctx context.Context) (string, error)
}
