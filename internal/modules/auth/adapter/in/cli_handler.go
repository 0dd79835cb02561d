package in

import (
	"context"

	authdto "campusqa/internal/modules/auth/dto"
	authin "campusqa/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) LoginURL() string {
	return h.usecase.LoginURL()
}

func (h CLIHandler) Callback(ctx context.Context, token string) (authdto.CallbackOutput, error) {
	return h.usecase.Callback(ctx, token)
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}
