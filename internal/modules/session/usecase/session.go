package usecase

import (
	"context"
	"strings"

	apperrors "campusqa/internal/platform/errors"

	"campusqa/internal/modules/session/domain"
	"campusqa/internal/modules/session/dto"
	"campusqa/internal/modules/session/service"
)

type Interactor struct {
	svc *service.SessionService
}

func NewInteractor(svc *service.SessionService) *Interactor {
	return &Interactor{svc: svc}
}

func (i *Interactor) Create(ctx context.Context, subject string) (dto.SessionOutput, error) {
	sess := i.svc.Create(ctx, strings.TrimSpace(subject))
	return toSessionOutput(sess), nil
}

func (i *Interactor) Resolve(ctx context.Context, id string) (dto.ResolveOutput, error) {
	sess, redirected, err := i.svc.Resolve(id)
	if err != nil {
		return dto.ResolveOutput{}, err
	}
	return dto.ResolveOutput{Session: toSessionOutput(sess), Redirected: redirected}, nil
}

func (i *Interactor) Find(ctx context.Context, id string) (dto.SessionOutput, error) {
	sess, err := i.svc.Find(id)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(sess), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.SessionOutput, error) {
	sessions := i.svc.List()
	outs := make([]dto.SessionOutput, 0, len(sessions))
	for _, sess := range sessions {
		outs = append(outs, toSessionOutput(sess))
	}
	return outs, nil
}

func (i *Interactor) AppendMessage(ctx context.Context, sessionID string, msg dto.MessageInput) error {
	if msg.ID == "" || msg.Role == "" {
		return apperrors.ErrInvalidInput
	}
	return i.svc.AppendMessage(ctx, sessionID, toDomainMessage(msg))
}

func (i *Interactor) Messages(ctx context.Context, sessionID string) ([]dto.MessageOutput, error) {
	if _, err := i.svc.Find(sessionID); err != nil {
		return nil, err
	}
	msgs := i.svc.Messages(sessionID)
	outs := make([]dto.MessageOutput, 0, len(msgs))
	for _, msg := range msgs {
		outs = append(outs, toMessageOutput(msg))
	}
	return outs, nil
}

func (i *Interactor) RenameOnFirstMessage(ctx context.Context, sessionID, content string) error {
	return i.svc.RenameOnFirstMessage(ctx, sessionID, content)
}

func (i *Interactor) IncrementMessageCount(ctx context.Context, sessionID string, by int) error {
	i.svc.IncrementMessageCount(ctx, sessionID, by)
	return nil
}

func (i *Interactor) Restore(ctx context.Context) error {
	return i.svc.Restore(ctx)
}

// ─── mapping ───

func toSessionOutput(s domain.Session) dto.SessionOutput {
	return dto.SessionOutput{
		ID:           s.ID,
		Subject:      s.Subject,
		MessageCount: s.MessageCount,
		CreatedAt:    s.CreatedAt,
	}
}

func toMessageOutput(m domain.Message) dto.MessageOutput {
	out := dto.MessageOutput{
		ID:        m.ID,
		Role:      m.Role,
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
	for _, src := range m.Sources {
		out.Sources = append(out.Sources, dto.SourceOutput(src))
	}
	return out
}

func toDomainMessage(m dto.MessageInput) domain.Message {
	msg := domain.Message{
		ID:        m.ID,
		Role:      m.Role,
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
	for _, src := range m.Sources {
		msg.Sources = append(msg.Sources, domain.Source(src))
	}
	return msg
}
