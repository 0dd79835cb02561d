package in

import (
	"context"

	askdto "campusqa/internal/modules/ask/dto"
	askin "campusqa/internal/modules/ask/port/in"
)

type CLIHandler struct {
	usecase askin.Usecase
}

func NewCLIHandler(usecase askin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Submit(ctx context.Context, sessionID, question string) (askdto.ResultOutput, error) {
	return h.usecase.Submit(ctx, sessionID, question)
}
