package out

import (
	"context"

	"campusqa/internal/modules/session/domain"
)

// Registry is the in-memory session list the UI renders from.
type Registry interface {
	Add(s domain.Session)
	Find(id string) (domain.Session, bool)
	First() (domain.Session, bool)
	List() []domain.Session
	Update(s domain.Session) bool
	Len() int
}

// MessageStore holds the per-session transcripts.
type MessageStore interface {
	Append(sessionID string, msg domain.Message)
	Messages(sessionID string) []domain.Message
}

// HistoryProjector mirrors registry and transcript writes into durable
// storage so a later run can restore them.
type HistoryProjector interface {
	SaveSession(ctx context.Context, s domain.Session) error
	UpdateSession(ctx context.Context, s domain.Session) error
	SaveMessage(ctx context.Context, sessionID string, msg domain.Message) error
	Load(ctx context.Context) ([]domain.Session, map[string][]domain.Message, error)
}
