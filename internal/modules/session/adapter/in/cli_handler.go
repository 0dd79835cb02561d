package in

import (
	"context"

	sessiondto "campusqa/internal/modules/session/dto"
	sessionin "campusqa/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, subject string) (sessiondto.SessionOutput, error) {
	return h.usecase.Create(ctx, subject)
}

func (h CLIHandler) List(ctx context.Context) ([]sessiondto.SessionOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Messages(ctx context.Context, sessionID string) ([]sessiondto.MessageOutput, error) {
	return h.usecase.Messages(ctx, sessionID)
}
