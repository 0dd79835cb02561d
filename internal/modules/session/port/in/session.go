package in

import (
	"context"

	"campusqa/internal/modules/session/dto"
)

type Usecase interface {
	Create(ctx context.Context, subject string) (dto.SessionOutput, error)
	// Resolve returns the session with the given id. When the id is
	// unknown it falls back to the first existing session and marks the
	// output as redirected; with no sessions at all it fails.
	Resolve(ctx context.Context, id string) (dto.ResolveOutput, error)
	Find(ctx context.Context, id string) (dto.SessionOutput, error)
	List(ctx context.Context) ([]dto.SessionOutput, error)

	AppendMessage(ctx context.Context, sessionID string, msg dto.MessageInput) error
	Messages(ctx context.Context, sessionID string) ([]dto.MessageOutput, error)
	RenameOnFirstMessage(ctx context.Context, sessionID, content string) error
	IncrementMessageCount(ctx context.Context, sessionID string, by int) error

	// Restore loads persisted sessions and messages into memory. It is
	// called once at startup.
	Restore(ctx context.Context) error
}
