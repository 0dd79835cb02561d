package in

import (
	"context"

	"campusqa/internal/modules/ask/dto"
)

// Usecase drives the answer request pipeline. The TUI calls Begin
// synchronously for the optimistic transcript update, then runs Await
// off the update loop; Submit is the one-shot form for the CLI.
type Usecase interface {
	Begin(ctx context.Context, sessionID, question string) (dto.BeginOutput, error)
	Await(ctx context.Context, sessionID, question string) (dto.ResultOutput, error)
	Submit(ctx context.Context, sessionID, question string) (dto.ResultOutput, error)
	Loading(sessionID string) bool
}
