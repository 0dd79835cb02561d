package app

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	askdto "campusqa/internal/modules/ask/dto"
	prefsdto "campusqa/internal/modules/prefs/dto"
	sessiondto "campusqa/internal/modules/session/dto"
	viewerdto "campusqa/internal/modules/viewer/dto"
	chatview "campusqa/internal/ui/views/chat"
)

type stubSessions struct{}

func (stubSessions) Create(context.Context, string) (sessiondto.SessionOutput, error) {
	return sessiondto.SessionOutput{ID: "sess-1"}, nil
}
func (stubSessions) Resolve(context.Context, string) (sessiondto.ResolveOutput, error) {
	return sessiondto.ResolveOutput{Session: sessiondto.SessionOutput{ID: "sess-1"}}, nil
}
func (stubSessions) List(context.Context) ([]sessiondto.SessionOutput, error) { return nil, nil }
func (stubSessions) Messages(context.Context, string) ([]sessiondto.MessageOutput, error) {
	return nil, nil
}

type stubAsk struct{}

func (stubAsk) Begin(context.Context, string, string) (askdto.BeginOutput, error) {
	return askdto.BeginOutput{}, nil
}
func (stubAsk) Await(context.Context, string, string) (askdto.ResultOutput, error) {
	return askdto.ResultOutput{}, nil
}
func (stubAsk) Loading(string) bool { return false }

type stubPrefs struct{}

func (stubPrefs) Get(context.Context) (prefsdto.PreferencesOutput, error) {
	return prefsdto.PreferencesOutput{}, nil
}
func (stubPrefs) SetCourse(context.Context, string) error         { return nil }
func (stubPrefs) SetSemesterNumber(context.Context, string) error { return nil }
func (stubPrefs) SetTheme(context.Context, string) error          { return nil }

type stubViewer struct{}

func (stubViewer) Page(_ context.Context, fileName string, page int) (viewerdto.PageOutput, error) {
	return viewerdto.PageOutput{FileName: fileName, Number: page, PageCount: 9, Text: "text"}, nil
}
func (stubViewer) Download(context.Context, string, string) (string, error) { return "", nil }

type stubAuth struct{}

func (stubAuth) LoginURL() string             { return "http://localhost:8000/login/google" }
func (stubAuth) Logout(context.Context) error { return nil }

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(t.TempDir(), stubSessions{}, stubAsk{}, stubPrefs{}, stubViewer{}, stubAuth{})
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return sized.(Model)
}

func loadTranscript(t *testing.T, m Model) Model {
	t.Helper()
	_ = m.chat.SetSession("sess-1")
	updated, _ := m.Update(chatview.TranscriptLoadedMsg{
		SessionID: "sess-1",
		Messages: []sessiondto.MessageOutput{
			{ID: "1-user", Role: "user", Content: "what is a b-tree?", Timestamp: time.Now()},
			{
				ID: "1-ai", Role: "assistant", Content: "A balanced tree.", Timestamp: time.Now(),
				Sources: []sessiondto.SourceOutput{{
					ID:         "sess-1-src-0",
					FileName:   "DSA_Module_4.pdf",
					Title:      "DSA_Module_4",
					PageNumber: 2,
					Relevance:  0.9,
				}},
			},
		},
	})
	return updated.(Model)
}

func TestSourceShortcutOpensPanelAndSetsStatus(t *testing.T) {
	t.Parallel()

	m := loadTranscript(t, newTestModel(t))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1"), Alt: true})
	got := updated.(Model)

	if !got.panel.Open() {
		t.Fatal("citation panel did not open")
	}
	if got.status != "viewing DSA_Module_4" {
		t.Fatalf("status = %q, want the viewing status", got.status)
	}
	if cmd == nil {
		t.Fatal("expected a page-load command")
	}
}

func TestSourceShortcutWithoutSourcesSetsStatus(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1"), Alt: true})
	got := updated.(Model)

	if got.panel.Open() {
		t.Fatal("panel opened with no sources to show")
	}
	if got.status != "no such source" {
		t.Fatalf("status = %q", got.status)
	}
}

func TestPaletteOpensOnShortcut(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if !updated.(Model).palette.Visible() {
		t.Fatal("palette not visible after its shortcut")
	}
}
