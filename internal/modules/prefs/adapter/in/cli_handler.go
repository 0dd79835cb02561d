package in

import (
	"context"

	prefsdto "campusqa/internal/modules/prefs/dto"
	prefsin "campusqa/internal/modules/prefs/port/in"
)

type CLIHandler struct {
	usecase prefsin.Usecase
}

func NewCLIHandler(usecase prefsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context) (prefsdto.PreferencesOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) SetCourse(ctx context.Context, course string) error {
	return h.usecase.SetCourse(ctx, course)
}

func (h CLIHandler) SetSemesterNumber(ctx context.Context, n string) error {
	return h.usecase.SetSemesterNumber(ctx, n)
}

func (h CLIHandler) SetTheme(ctx context.Context, theme string) error {
	return h.usecase.SetTheme(ctx, theme)
}
