package service

import (
	"context"
	"sync"

	apperrors "campusqa/internal/platform/errors"

	"campusqa/internal/modules/ask/domain"
	"campusqa/internal/modules/ask/port/out"
)

// AskService owns the per-session in-flight bookkeeping and the trip
// to the backend. Pipelines of different sessions run independently;
// within one session a second submit is rejected until the first
// settles.
type AskService struct {
	client out.AnswerClient

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewAskService(client out.AnswerClient) *AskService {
	return &AskService{
		client:   client,
		inFlight: make(map[string]bool),
	}
}

func (s *AskService) Begin(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[sessionID] {
		return apperrors.ErrRequestInFlight
	}
	s.inFlight[sessionID] = true
	return nil
}

func (s *AskService) Finish(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}

func (s *AskService) Loading(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight[sessionID]
}

func (s *AskService) Fetch(ctx context.Context, question, course, semesterNumber, token string) (domain.Answer, error) {
	return s.client.Ask(ctx, question, course, domain.NormalizeSemester(semesterNumber), token)
}
