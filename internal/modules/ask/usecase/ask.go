package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	apperrors "campusqa/internal/platform/errors"

	"campusqa/internal/modules/ask/domain"
	"campusqa/internal/modules/ask/dto"
	"campusqa/internal/modules/ask/service"
	prefsin "campusqa/internal/modules/prefs/port/in"
	sessiondto "campusqa/internal/modules/session/dto"
	sessionin "campusqa/internal/modules/session/port/in"
	"campusqa/internal/platform/clock"
)

type Interactor struct {
	svc      *service.AskService
	sessions sessionin.Usecase
	prefs    prefsin.Usecase
	clock    clock.Clock
	logger   *zap.Logger
}

func NewInteractor(
	svc *service.AskService,
	sessions sessionin.Usecase,
	prefs prefsin.Usecase,
	clk clock.Clock,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		svc:      svc,
		sessions: sessions,
		prefs:    prefs,
		clock:    clk,
		logger:   logger,
	}
}

// Begin runs the synchronous half of a submit: the user message lands
// in the transcript before any network traffic, and the session is
// renamed if this was its first message. A blank question is rejected
// without side effects.
func (i *Interactor) Begin(ctx context.Context, sessionID, question string) (dto.BeginOutput, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return dto.BeginOutput{}, apperrors.ErrEmptyQuestion
	}
	if _, err := i.sessions.Find(ctx, sessionID); err != nil {
		return dto.BeginOutput{}, err
	}
	if err := i.svc.Begin(sessionID); err != nil {
		return dto.BeginOutput{}, err
	}

	userMsg := sessiondto.MessageInput{
		ID:        domain.UserMessageID(i.clock.Now()),
		Role:      "user",
		Content:   question,
		Timestamp: i.clock.Now(),
	}
	if err := i.sessions.AppendMessage(ctx, sessionID, userMsg); err != nil {
		i.svc.Finish(sessionID)
		return dto.BeginOutput{}, err
	}
	if err := i.sessions.RenameOnFirstMessage(ctx, sessionID, question); err != nil {
		i.logger.Warn("rename on first message failed", zap.String("session", sessionID), zap.Error(err))
	}
	return dto.BeginOutput{SessionID: sessionID, UserMessage: userMsg}, nil
}

// Await runs the network half. The in-flight flag is cleared no matter
// how this returns.
func (i *Interactor) Await(ctx context.Context, sessionID, question string) (dto.ResultOutput, error) {
	defer i.svc.Finish(sessionID)

	question = strings.TrimSpace(question)

	token, err := i.prefs.Token(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNoToken) {
		return i.fail(ctx, sessionID)
	}

	prefs, err := i.prefs.Get(ctx)
	if err != nil {
		return i.fail(ctx, sessionID)
	}

	answer, fetchErr := i.svc.Fetch(ctx, question, prefs.Course, prefs.SemesterNumber, token)

	// The session may have vanished while the request was in flight;
	// a late result for a discarded session is dropped, not applied.
	if _, err := i.sessions.Find(ctx, sessionID); err != nil {
		i.logger.Info("dropping answer for discarded session", zap.String("session", sessionID))
		return dto.ResultOutput{SessionID: sessionID, Dropped: true}, nil
	}

	if fetchErr != nil {
		i.logger.Warn("answer request failed", zap.String("session", sessionID), zap.Error(fetchErr))
		return i.fail(ctx, sessionID)
	}

	aiMsg := sessiondto.MessageInput{
		ID:        domain.AssistantMessageID(i.clock.Now()),
		Role:      "assistant",
		Content:   answer.Text,
		Timestamp: i.clock.Now(),
		Sources:   toSourceInputs(domain.NormalizeSources(sessionID, answer.Sources)),
	}
	if err := i.sessions.AppendMessage(ctx, sessionID, aiMsg); err != nil {
		return dto.ResultOutput{}, err
	}
	if err := i.sessions.IncrementMessageCount(ctx, sessionID, 2); err != nil {
		i.logger.Warn("message count update failed", zap.String("session", sessionID), zap.Error(err))
	}
	return dto.ResultOutput{SessionID: sessionID, Message: aiMsg}, nil
}

func (i *Interactor) Submit(ctx context.Context, sessionID, question string) (dto.ResultOutput, error) {
	if _, err := i.Begin(ctx, sessionID, question); err != nil {
		return dto.ResultOutput{}, err
	}
	return i.Await(ctx, sessionID, question)
}

func (i *Interactor) Loading(sessionID string) bool {
	return i.svc.Loading(sessionID)
}

func (i *Interactor) fail(ctx context.Context, sessionID string) (dto.ResultOutput, error) {
	errMsg := sessiondto.MessageInput{
		ID:        domain.ErrorMessageID(i.clock.Now()),
		Role:      "assistant",
		Content:   domain.Apology,
		Timestamp: i.clock.Now(),
	}
	if err := i.sessions.AppendMessage(ctx, sessionID, errMsg); err != nil {
		return dto.ResultOutput{}, err
	}
	return dto.ResultOutput{SessionID: sessionID, Message: errMsg, Failed: true}, nil
}

func toSourceInputs(sources []domain.Source) []sessiondto.SourceInput {
	out := make([]sessiondto.SourceInput, 0, len(sources))
	for _, src := range sources {
		out = append(out, sessiondto.SourceInput(src))
	}
	return out
}
