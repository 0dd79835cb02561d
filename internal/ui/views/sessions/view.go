package sessions

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	sessiondto "campusqa/internal/modules/session/dto"
	"campusqa/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type SessionPort interface {
	List(ctx context.Context) ([]sessiondto.SessionOutput, error)
	Create(ctx context.Context, subject string) (sessiondto.SessionOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Sessions []sessiondto.SessionOutput
	Err      error
}

// CreatedMsg bubbles to the app model so it can switch the transcript
// to the new session.
type CreatedMsg struct {
	Session sessiondto.SessionOutput
	Err     error
}

// ─── list item ───────────────────────────────────────────────────────────────

type sessionItem struct {
	session sessiondto.SessionOutput
}

func (i sessionItem) Title() string { return i.session.Subject }
func (i sessionItem) Description() string {
	return fmt.Sprintf("%d messages", i.session.MessageCount)
}
func (i sessionItem) FilterValue() string { return i.session.Subject }

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the session sidebar: a filterable list of chats.
type Model struct {
	port   SessionPort
	list   list.Model
	width  int
	height int
}

func New(port SessionPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Chats"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, list: l}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height)

	case LoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Chats — " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Sessions))
		for i, s := range msg.Sessions {
			items[i] = sessionItem{session: s}
		}
		cmds = append(cmds, m.list.SetItems(items))
	}

	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	return m.list.View()
}

func (m Model) SelectedSessionID() (string, bool) {
	if item, ok := m.list.SelectedItem().(sessionItem); ok {
		return item.session.ID, true
	}
	return "", false
}

// Filtering reports whether the list's search filter is active, so the
// app model yields keys for free typing.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SelectByID moves the cursor to the given session.
func (m *Model) SelectByID(id string) {
	for i, item := range m.list.Items() {
		if s, ok := item.(sessionItem); ok && s.session.ID == id {
			m.list.Select(i)
			return
		}
	}
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.port.List(context.Background())
		return LoadedMsg{Sessions: sessions, Err: err}
	}
}

// CreateSession starts a fresh chat with the placeholder subject.
func (m Model) CreateSession() tea.Cmd {
	return func() tea.Msg {
		sess, err := m.port.Create(context.Background(), "")
		return CreatedMsg{Session: sess, Err: err}
	}
}
