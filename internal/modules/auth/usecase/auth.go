package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"campusqa/internal/modules/auth/dto"
	prefsin "campusqa/internal/modules/prefs/port/in"
)

type Interactor struct {
	baseURL string
	prefs   prefsin.Usecase
	logger  *zap.Logger
}

func NewInteractor(baseURL string, prefs prefsin.Usecase, logger *zap.Logger) *Interactor {
	return &Interactor{baseURL: baseURL, prefs: prefs, logger: logger}
}

func (i *Interactor) LoginURL() string {
	return i.baseURL + "/login/google"
}

// Callback consumes the token the OAuth redirect carries. A missing
// token routes back to login with an error instead of failing hard.
func (i *Interactor) Callback(ctx context.Context, token string) (dto.CallbackOutput, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return dto.CallbackOutput{Route: dto.RouteLoginError}, nil
	}
	if err := i.prefs.SetToken(ctx, token); err != nil {
		return dto.CallbackOutput{}, err
	}
	i.logger.Info("token stored")
	return dto.CallbackOutput{Route: dto.RouteHome}, nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.prefs.ClearToken(ctx)
}

func (i *Interactor) LoggedIn(ctx context.Context) bool {
	_, err := i.prefs.Token(ctx)
	return err == nil
}
