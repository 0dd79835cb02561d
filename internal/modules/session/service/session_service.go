package service

import (
	"context"

	"go.uber.org/zap"

	apperrors "campusqa/internal/platform/errors"

	"campusqa/internal/modules/session/domain"
	"campusqa/internal/modules/session/port/out"
	"campusqa/internal/platform/clock"
	"campusqa/internal/platform/id"
)

type SessionService struct {
	registry out.Registry
	messages out.MessageStore
	history  out.HistoryProjector
	clock    clock.Clock
	id       id.Generator
	logger   *zap.Logger
}

func NewSessionService(
	registry out.Registry,
	messages out.MessageStore,
	history out.HistoryProjector,
	clk clock.Clock,
	gen id.Generator,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		registry: registry,
		messages: messages,
		history:  history,
		clock:    clk,
		id:       gen,
		logger:   logger,
	}
}

func (s *SessionService) Create(ctx context.Context, subject string) domain.Session {
	sess := domain.NewSession(s.id.New(), subject, s.clock.Now())
	s.registry.Add(sess)
	if err := s.history.SaveSession(ctx, sess); err != nil {
		s.logger.Warn("history save failed", zap.String("session", sess.ID), zap.Error(err))
	}
	return sess
}

// Resolve falls back to the first session when the id is unknown, so a
// stale session reference lands somewhere useful instead of erroring.
func (s *SessionService) Resolve(id string) (domain.Session, bool, error) {
	if sess, ok := s.registry.Find(id); ok {
		return sess, false, nil
	}
	if first, ok := s.registry.First(); ok {
		return first, true, nil
	}
	return domain.Session{}, false, apperrors.ErrEmptySessionList
}

func (s *SessionService) Find(id string) (domain.Session, error) {
	sess, ok := s.registry.Find(id)
	if !ok {
		return domain.Session{}, apperrors.ErrSessionNotFound
	}
	return sess, nil
}

func (s *SessionService) List() []domain.Session {
	return s.registry.List()
}

func (s *SessionService) AppendMessage(ctx context.Context, sessionID string, msg domain.Message) error {
	if _, ok := s.registry.Find(sessionID); !ok {
		return apperrors.ErrSessionNotFound
	}
	s.messages.Append(sessionID, msg)
	if err := s.history.SaveMessage(ctx, sessionID, msg); err != nil {
		s.logger.Warn("history save failed", zap.String("session", sessionID), zap.Error(err))
	}
	return nil
}

func (s *SessionService) Messages(sessionID string) []domain.Message {
	return s.messages.Messages(sessionID)
}

// RenameOnFirstMessage replaces the placeholder subject with a title
// derived from the first user message. Later messages leave the subject
// alone.
func (s *SessionService) RenameOnFirstMessage(ctx context.Context, sessionID, content string) error {
	sess, ok := s.registry.Find(sessionID)
	if !ok {
		return apperrors.ErrSessionNotFound
	}
	if !sess.HasPlaceholderSubject() {
		return nil
	}
	sess.Subject = domain.SubjectFromContent(content)
	s.registry.Update(sess)
	if err := s.history.UpdateSession(ctx, sess); err != nil {
		s.logger.Warn("history update failed", zap.String("session", sessionID), zap.Error(err))
	}
	return nil
}

// IncrementMessageCount is a silent no-op for unknown sessions: the
// session may have been discarded while a request was in flight.
func (s *SessionService) IncrementMessageCount(ctx context.Context, sessionID string, by int) {
	sess, ok := s.registry.Find(sessionID)
	if !ok {
		return
	}
	sess.MessageCount += by
	s.registry.Update(sess)
	if err := s.history.UpdateSession(ctx, sess); err != nil {
		s.logger.Warn("history update failed", zap.String("session", sessionID), zap.Error(err))
	}
}

func (s *SessionService) Restore(ctx context.Context) error {
	sessions, transcripts, err := s.history.Load(ctx)
	if err != nil {
		return err
	}
	for _, sess := range sessions {
		s.registry.Add(sess)
		for _, msg := range transcripts[sess.ID] {
			s.messages.Append(sess.ID, msg)
		}
	}
	return nil
}
