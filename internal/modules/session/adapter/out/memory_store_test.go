package out

import (
	"testing"
	"time"

	"campusqa/internal/modules/session/domain"
	"campusqa/internal/platform/id"
)

func TestAddKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	for _, subject := range []string{"first", "second", "third"} {
		store.Add(domain.NewSession("sess-"+subject, subject, time.Now()))
	}

	sessions := store.List()
	if len(sessions) != 3 {
		t.Fatalf("listed %d sessions, want 3", len(sessions))
	}
	for i, subject := range []string{"first", "second", "third"} {
		if sessions[i].Subject != subject {
			t.Fatalf("sessions[%d].Subject = %q, want %q", i, sessions[i].Subject, subject)
		}
	}

	first, ok := store.First()
	if !ok || first.Subject != "first" {
		t.Fatalf("First() = %+v, %v", first, ok)
	}
}

func TestAddWithDuplicateIDDoesNotDuplicate(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	store.Add(domain.NewSession("sess-1", "original", time.Now()))
	store.Add(domain.NewSession("sess-1", "replacement", time.Now()))

	if store.Len() != 1 {
		t.Fatalf("store has %d sessions after duplicate Add, want 1", store.Len())
	}
	sessions := store.List()
	if len(sessions) != 1 || sessions[0].Subject != "replacement" {
		t.Fatalf("sessions = %+v", sessions)
	}
}

func TestGeneratedSessionIDsAreUnique(t *testing.T) {
	t.Parallel()

	gen := id.UUID{}
	store := NewMemoryStore()
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		sessionID := gen.New()
		if seen[sessionID] {
			t.Fatalf("duplicate session id %q", sessionID)
		}
		seen[sessionID] = true
		store.Add(domain.NewSession(sessionID, "", time.Now()))
	}
	if store.Len() != 200 {
		t.Fatalf("store has %d sessions, want 200", store.Len())
	}
}

func TestUpdateIgnoresUnknownSession(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	if store.Update(domain.NewSession("ghost", "x", time.Now())) {
		t.Fatal("Update reported success for an unknown session")
	}
}

func TestMessagesReturnsACopy(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	store.Append("sess-1", domain.Message{ID: "1-user", Role: domain.RoleUser, Content: "hi"})

	msgs := store.Messages("sess-1")
	msgs[0].Content = "mutated"

	if got := store.Messages("sess-1"); got[0].Content != "hi" {
		t.Fatalf("stored message mutated through returned slice: %q", got[0].Content)
	}
}
