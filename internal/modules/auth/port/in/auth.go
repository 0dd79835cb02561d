package in

import (
	"context"

	"campusqa/internal/modules/auth/dto"
)

type Usecase interface {
	// LoginURL is where the user's browser starts the OAuth dance; the
	// provider eventually hands back a token for Callback.
	LoginURL() string
	Callback(ctx context.Context, token string) (dto.CallbackOutput, error)
	Logout(ctx context.Context) error
	LoggedIn(ctx context.Context) bool
}
