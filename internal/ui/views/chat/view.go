package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	sessiondto "campusqa/internal/modules/session/dto"
	"campusqa/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type TranscriptPort interface {
	Messages(ctx context.Context, sessionID string) ([]sessiondto.MessageOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type TranscriptLoadedMsg struct {
	SessionID string
	Messages  []sessiondto.MessageOutput
	Err       error
}

// SubmitMsg carries the composer content up to the app model, which
// owns the ask pipeline.
type SubmitMsg struct {
	SessionID string
	Question  string
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model renders one session's transcript plus the composer line.
type Model struct {
	port      TranscriptPort
	viewport  viewport.Model
	input     textinput.Model
	spinner   spinner.Model
	renderer  *glamour.TermRenderer
	sessionID string
	msgs      []sessiondto.MessageOutput
	loading   bool
	width     int
	height    int
}

func New(port TranscriptPort) Model {
	vp := viewport.New(0, 0)

	ti := textinput.New()
	ti.Placeholder = "Ask a question…"
	ti.CharLimit = 2000
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath(theme.GlamourStyle),
		glamour.WithWordWrap(0),
	)

	return Model{
		port:     port,
		viewport: vp,
		input:    ti,
		spinner:  sp,
		renderer: r,
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.viewport.SetContent(m.renderTranscript())

	case TranscriptLoadedMsg:
		if msg.SessionID != m.sessionID {
			break
		}
		if msg.Err == nil {
			m.msgs = msg.Messages
			m.viewport.SetContent(m.renderTranscript())
			m.viewport.GotoBottom()
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if msg.String() == "enter" && !m.loading {
			question := strings.TrimSpace(m.input.Value())
			if question != "" {
				sessionID := m.sessionID
				m.input.SetValue("")
				return m, func() tea.Msg {
					return SubmitMsg{SessionID: sessionID, Question: question}
				}
			}
			return m, nil
		}
	}

	// Typing stays live while a request is in flight; only submit is
	// blocked.
	var iCmd tea.Cmd
	m.input, iCmd = m.input.Update(msg)
	cmds = append(cmds, iCmd)

	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	composer := m.renderComposer()
	vpHeight := m.height - lipgloss.Height(composer)
	if vpHeight < 1 {
		vpHeight = 1
	}
	vp := m.viewport
	vp.Height = vpHeight
	return lipgloss.JoinVertical(lipgloss.Left, vp.View(), composer)
}

// SetSession switches the transcript to another session and reloads it.
func (m *Model) SetSession(sessionID string) tea.Cmd {
	m.sessionID = sessionID
	m.msgs = nil
	m.viewport.SetContent("")
	return m.reloadCmd(sessionID)
}

func (m Model) SessionID() string { return m.sessionID }

// Append adds one message without a round trip; the optimistic user
// message and the arriving assistant message both land here.
func (m *Model) Append(msg sessiondto.MessageOutput) {
	m.msgs = append(m.msgs, msg)
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m *Model) SetLoading(loading bool) tea.Cmd {
	m.loading = loading
	if loading {
		return m.spinner.Tick
	}
	return nil
}

func (m Model) Loading() bool { return m.loading }

// SourceAt returns the n-th source (1-based) of the latest assistant
// message, for the digit shortcuts that open the citation panel.
func (m Model) SourceAt(n int) (sessiondto.SourceOutput, bool) {
	for i := len(m.msgs) - 1; i >= 0; i-- {
		if m.msgs[i].Role != "assistant" || len(m.msgs[i].Sources) == 0 {
			continue
		}
		if n < 1 || n > len(m.msgs[i].Sources) {
			return sessiondto.SourceOutput{}, false
		}
		return m.msgs[i].Sources[n-1], true
	}
	return sessiondto.SourceOutput{}, false
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = m.height - 2
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	m.input.Width = m.width - 4
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(theme.GlamourStyle),
		glamour.WithWordWrap(m.width-2),
	); err == nil {
		m.renderer = r
	}
}

func (m Model) renderTranscript() string {
	if len(m.msgs) == 0 {
		return theme.Muted.Render("Ask your first question below.")
	}
	var sb strings.Builder
	for _, msg := range m.msgs {
		if msg.Role == "user" {
			sb.WriteString(theme.Hot.Render("You") + theme.Muted.Render("  "+msg.Timestamp.Format("15:04")) + "\n")
			sb.WriteString(msg.Content + "\n\n")
			continue
		}
		sb.WriteString(theme.Title.Render("Assistant") + theme.Muted.Render("  "+msg.Timestamp.Format("15:04")) + "\n")
		sb.WriteString(m.renderAnswer(msg.Content))
		if len(msg.Sources) > 0 {
			sb.WriteString(theme.Muted.Render("Sources:") + "\n")
			for i, src := range msg.Sources {
				sb.WriteString(theme.Muted.Render(fmt.Sprintf("  [%d] ", i+1)) +
					src.Title +
					theme.Muted.Render(fmt.Sprintf("  p.%d  %.0f%%", src.PageNumber, src.Relevance*100)) + "\n")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderAnswer(content string) string {
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(content); err == nil {
			return rendered
		}
	}
	return content + "\n"
}

func (m Model) renderComposer() string {
	if m.loading {
		return "\n" + m.spinner.View() + theme.Muted.Render(" Thinking…")
	}
	return "\n> " + m.input.View()
}

func (m Model) reloadCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		msgs, err := m.port.Messages(context.Background(), sessionID)
		return TranscriptLoadedMsg{SessionID: sessionID, Messages: msgs, Err: err}
	}
}
