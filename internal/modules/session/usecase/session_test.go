package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	apperrors "campusqa/internal/platform/errors"

	"campusqa/internal/modules/session/domain"
	"campusqa/internal/modules/session/dto"
	"campusqa/internal/modules/session/service"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fakeID struct {
	values []string
	next   int
}

func (f *fakeID) New() string {
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}

type fakeRegistry struct {
	order    []string
	sessions map[string]domain.Session
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{sessions: make(map[string]domain.Session)}
}

func (f *fakeRegistry) Add(s domain.Session) {
	if _, ok := f.sessions[s.ID]; !ok {
		f.order = append(f.order, s.ID)
	}
	f.sessions[s.ID] = s
}

func (f *fakeRegistry) Find(id string) (domain.Session, bool) {
	s, ok := f.sessions[id]
	return s, ok
}

func (f *fakeRegistry) First() (domain.Session, bool) {
	if len(f.order) == 0 {
		return domain.Session{}, false
	}
	return f.sessions[f.order[0]], true
}

func (f *fakeRegistry) List() []domain.Session {
	out := make([]domain.Session, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.sessions[id])
	}
	return out
}

func (f *fakeRegistry) Update(s domain.Session) bool {
	if _, ok := f.sessions[s.ID]; !ok {
		return false
	}
	f.sessions[s.ID] = s
	return true
}

func (f *fakeRegistry) Len() int { return len(f.order) }

type fakeMessages struct {
	transcripts map[string][]domain.Message
}

func newFakeMessages() *fakeMessages {
	return &fakeMessages{transcripts: make(map[string][]domain.Message)}
}

func (f *fakeMessages) Append(sessionID string, msg domain.Message) {
	f.transcripts[sessionID] = append(f.transcripts[sessionID], msg)
}

func (f *fakeMessages) Messages(sessionID string) []domain.Message {
	return f.transcripts[sessionID]
}

type fakeHistory struct {
	sessions    []domain.Session
	transcripts map[string][]domain.Message
	saveErr     error
}

func (f *fakeHistory) SaveSession(_ context.Context, s domain.Session) error {
	f.sessions = append(f.sessions, s)
	return f.saveErr
}

func (f *fakeHistory) UpdateSession(_ context.Context, s domain.Session) error { return f.saveErr }

func (f *fakeHistory) SaveMessage(_ context.Context, sessionID string, msg domain.Message) error {
	if f.transcripts == nil {
		f.transcripts = make(map[string][]domain.Message)
	}
	f.transcripts[sessionID] = append(f.transcripts[sessionID], msg)
	return f.saveErr
}

func (f *fakeHistory) Load(_ context.Context) ([]domain.Session, map[string][]domain.Message, error) {
	return f.sessions, f.transcripts, nil
}

func newTestInteractor(registry *fakeRegistry, history *fakeHistory) *Interactor {
	svc := service.NewSessionService(
		registry,
		newFakeMessages(),
		history,
		&fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
		&fakeID{values: []string{"sess-1", "sess-2"}},
		zap.NewNop(),
	)
	return NewInteractor(svc)
}

func TestCreateUsesPlaceholderSubject(t *testing.T) {
	t.Parallel()

	interactor := newTestInteractor(newFakeRegistry(), &fakeHistory{})

	out, err := interactor.Create(context.Background(), "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.Subject != domain.PlaceholderSubject {
		t.Fatalf("subject = %q, want %q", out.Subject, domain.PlaceholderSubject)
	}
	if out.MessageCount != 0 {
		t.Fatalf("message count = %d, want 0", out.MessageCount)
	}
}

func TestResolveRedirectsToFirstSession(t *testing.T) {
	t.Parallel()

	registry := newFakeRegistry()
	interactor := newTestInteractor(registry, &fakeHistory{})

	first, _ := interactor.Create(context.Background(), "algorithms")
	_, _ = interactor.Create(context.Background(), "networks")

	out, err := interactor.Resolve(context.Background(), "no-such-session")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !out.Redirected {
		t.Fatal("expected redirect for unknown session id")
	}
	if out.Session.ID != first.ID {
		t.Fatalf("redirected to %q, want first session %q", out.Session.ID, first.ID)
	}
}

func TestResolveFailsWithNoSessions(t *testing.T) {
	t.Parallel()

	interactor := newTestInteractor(newFakeRegistry(), &fakeHistory{})

	_, err := interactor.Resolve(context.Background(), "anything")
	if !errors.Is(err, apperrors.ErrEmptySessionList) {
		t.Fatalf("err = %v, want ErrEmptySessionList", err)
	}
}

func TestRenameOnFirstMessageTruncates(t *testing.T) {
	t.Parallel()

	registry := newFakeRegistry()
	interactor := newTestInteractor(registry, &fakeHistory{})
	sess, _ := interactor.Create(context.Background(), "")

	long := "what is the difference between TCP and UDP in practice"
	if err := interactor.RenameOnFirstMessage(context.Background(), sess.ID, long); err != nil {
		t.Fatalf("RenameOnFirstMessage: %v", err)
	}

	got, _ := interactor.Find(context.Background(), sess.ID)
	want := "what is the difference between T..."
	if got.Subject != want {
		t.Fatalf("subject = %q, want %q", got.Subject, want)
	}

	// A second message must not rename again.
	if err := interactor.RenameOnFirstMessage(context.Background(), sess.ID, "another question"); err != nil {
		t.Fatalf("RenameOnFirstMessage: %v", err)
	}
	got, _ = interactor.Find(context.Background(), sess.ID)
	if got.Subject != want {
		t.Fatalf("subject changed on second message: %q", got.Subject)
	}
}

func TestIncrementMessageCountIgnoresUnknownSession(t *testing.T) {
	t.Parallel()

	interactor := newTestInteractor(newFakeRegistry(), &fakeHistory{})

	if err := interactor.IncrementMessageCount(context.Background(), "ghost", 2); err != nil {
		t.Fatalf("IncrementMessageCount: %v", err)
	}
}

func TestAppendAndListMessages(t *testing.T) {
	t.Parallel()

	interactor := newTestInteractor(newFakeRegistry(), &fakeHistory{})
	sess, _ := interactor.Create(context.Background(), "")

	msg := dto.MessageInput{
		ID:        "100-user",
		Role:      domain.RoleUser,
		Content:   "what is a b-tree?",
		Timestamp: time.Date(2026, 3, 1, 9, 1, 0, 0, time.UTC),
	}
	if err := interactor.AppendMessage(context.Background(), sess.ID, msg); err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}

	msgs, err := interactor.Messages(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(msgs) != 1 || msgs[0].ID != "100-user" {
		t.Fatalf("unexpected transcript: %+v", msgs)
	}
}

func TestRestoreRebuildsRegistry(t *testing.T) {
	t.Parallel()

	history := &fakeHistory{
		sessions: []domain.Session{
			{ID: "sess-a", Subject: "old chat", MessageCount: 2},
		},
		transcripts: map[string][]domain.Message{
			"sess-a": {
				{ID: "1-user", Role: domain.RoleUser, Content: "hi"},
				{ID: "1-ai", Role: domain.RoleAssistant, Content: "hello"},
			},
		},
	}
	interactor := newTestInteractor(newFakeRegistry(), history)

	if err := interactor.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	got, err := interactor.Find(context.Background(), "sess-a")
	if err != nil {
		t.Fatalf("Find after restore: %v", err)
	}
	if got.MessageCount != 2 {
		t.Fatalf("message count = %d, want 2", got.MessageCount)
	}
	msgs, _ := interactor.Messages(context.Background(), "sess-a")
	if len(msgs) != 2 {
		t.Fatalf("restored %d messages, want 2", len(msgs))
	}
}
