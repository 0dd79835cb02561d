package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	askdto "campusqa/internal/modules/ask/dto"
	paneldomain "campusqa/internal/modules/panel/domain"
	prefsdto "campusqa/internal/modules/prefs/dto"
	sessiondto "campusqa/internal/modules/session/dto"
	viewerdto "campusqa/internal/modules/viewer/dto"
	apperrors "campusqa/internal/platform/errors"
	"campusqa/internal/ui/components"
	"campusqa/internal/ui/theme"
	chatview "campusqa/internal/ui/views/chat"
	citationview "campusqa/internal/ui/views/citation"
	sessionsview "campusqa/internal/ui/views/sessions"
)

// Terminal-scale layout: the sidebar takes 32 columns expanded, 4 when
// collapsed to a strip.
const (
	sidebarWidth          = 32
	collapsedSidebarWidth = 4
)

// Drag updates are coalesced to one layout pass per frame.
const dragFrameInterval = time.Second / 60

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type sessionPort interface {
	Create(ctx context.Context, subject string) (sessiondto.SessionOutput, error)
	Resolve(ctx context.Context, id string) (sessiondto.ResolveOutput, error)
	List(ctx context.Context) ([]sessiondto.SessionOutput, error)
	Messages(ctx context.Context, sessionID string) ([]sessiondto.MessageOutput, error)
}

type askPort interface {
	Begin(ctx context.Context, sessionID, question string) (askdto.BeginOutput, error)
	Await(ctx context.Context, sessionID, question string) (askdto.ResultOutput, error)
	Loading(sessionID string) bool
}

type prefsPort interface {
	Get(ctx context.Context) (prefsdto.PreferencesOutput, error)
	SetCourse(ctx context.Context, course string) error
	SetSemesterNumber(ctx context.Context, n string) error
	SetTheme(ctx context.Context, t string) error
}

type viewerPort interface {
	Page(ctx context.Context, fileName string, page int) (viewerdto.PageOutput, error)
	Download(ctx context.Context, fileName, destDir string) (string, error)
}

type authPort interface {
	LoginURL() string
	Logout(ctx context.Context) error
}

// ─── focus ───────────────────────────────────────────────────────────────────

type focusID int

const (
	focusChat focusID = iota
	focusSidebar
)

// ─── async messages ───────────────────────────────────────────────────────────

type sessionReadyMsg struct {
	session sessiondto.SessionOutput
	err     error
}

type askResultMsg struct {
	out askdto.ResultOutput
	err error
}

type prefsLoadedMsg struct {
	prefs prefsdto.PreferencesOutput
	err   error
}

type dragTickMsg struct{}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	NewChat  key.Binding
	Sidebar  key.Binding
	Focus    key.Binding
	Palette  key.Binding
	Close    key.Binding
	PrevPg   key.Binding
	NextPg   key.Binding
	Download key.Binding
	Source   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NewChat:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new chat")),
		Sidebar:  key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "toggle sidebar")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		Palette:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "palette")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close panel")),
		PrevPg:   key.NewBinding(key.WithKeys("alt+left"), key.WithHelp("alt+←/→", "pdf page")),
		NextPg:   key.NewBinding(key.WithKeys("alt+right"), key.WithHelp("alt+←/→", "pdf page")),
		Download: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "download pdf")),
		Source:   key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1..9", "open source")),
		Help:     key.NewBinding(key.WithKeys("ctrl+_"), key.WithHelp("ctrl+/", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewChat, k.Focus, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewChat, k.Sidebar, k.Focus},
		{k.Source, k.PrevPg, k.NextPg, k.Download, k.Close},
		{k.Palette, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model: a collapsible session sidebar, a
// chat transcript, and an optional citation pane split off by a
// draggable divider. Business logic lives behind the port interfaces.
type Model struct {
	downloadDir string

	session sessionPort
	ask     askPort
	prefs   prefsPort
	auth    authPort

	sidebar  sessionsview.Model
	chat     chatview.Model
	citation citationview.Model
	panel    *paneldomain.Controller

	focus     focusID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	prefsOut  prefsdto.PreferencesOutput
	status    string
	lastDragX int
	width     int
	height    int
}

func NewModel(
	downloadDir string,
	session sessionPort,
	ask askPort,
	prefs prefsPort,
	viewer viewerPort,
	auth authPort,
) Model {
	return Model{
		downloadDir: downloadDir,
		session:     session,
		ask:         ask,
		prefs:       prefs,
		auth:        auth,
		sidebar:     sessionsview.New(sessionPortBridge{p: session}),
		chat:        chatview.New(transcriptPortBridge{p: session}),
		citation:    citationview.New(viewerPortBridge{p: viewer}),
		panel: paneldomain.NewController(paneldomain.Layout{
			SidebarWidth:          sidebarWidth,
			CollapsedSidebarWidth: collapsedSidebarWidth,
		}),
		focus:   focusChat,
		keys:    defaultKeys(),
		help:    help.New(),
		palette: components.NewPalette(),
		status:  "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.sidebar.Init(),
		m.chat.Init(),
		m.resolveStartupCmd(),
		m.loadPrefsCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.panel.SetViewportWidth(m.width)
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case dragTickMsg:
		if m.panel.Dragging() {
			m.panel.Drag(m.lastDragX)
			m.propagateSize()
			return m, m.dragTick()
		}

	case sessionReadyMsg:
		if msg.err != nil {
			m.status = "session: " + msg.err.Error()
			return m, nil
		}
		m.sidebar.SelectByID(msg.session.ID)
		m.status = "ready"
		cmds = append(cmds, m.chat.SetSession(msg.session.ID), m.sidebar.Reload())

	case sessionsview.CreatedMsg:
		if msg.Err != nil {
			m.status = "new chat: " + msg.Err.Error()
			return m, nil
		}
		m.status = "new chat"
		cmds = append(cmds, m.chat.SetSession(msg.Session.ID), m.sidebar.Reload())

	case chatview.SubmitMsg:
		return m.submit(msg.SessionID, msg.Question)

	case askResultMsg:
		cmds = append(cmds, m.chat.SetLoading(false))
		switch {
		case msg.err != nil:
			m.status = "ask: " + msg.err.Error()
		case msg.out.Dropped:
			m.status = "answer discarded (chat gone)"
		default:
			if msg.out.SessionID == m.chat.SessionID() {
				m.chat.Append(msg.out.Message)
			}
			if msg.out.Failed {
				m.status = "request failed"
			} else {
				m.status = "answered"
			}
			cmds = append(cmds, m.sidebar.Reload())
		}

	case prefsLoadedMsg:
		if msg.err == nil {
			m.prefsOut = msg.prefs
		}

	case citationview.DownloadedMsg:
		if msg.Err != nil {
			m.status = "download: " + msg.Err.Error()
		} else {
			m.status = "saved " + msg.Path
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.sidebar.Filtering() && m.focus == focusSidebar {
			break
		}
		if handled, model, cmd := m.handleGlobalKey(msg); handled {
			return model, cmd
		}
	}

	return m.propagate(msg, cmds)
}

// handleGlobalKey owns the chrome-level shortcuts. Plain characters
// fall through to the focused view.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	s := msg.String()
	switch {
	case s == "ctrl+c":
		return true, m, tea.Quit

	case s == "ctrl+n":
		return true, m, m.sidebar.CreateSession()

	case s == "ctrl+b":
		m.panel.SetSidebarCollapsed(!m.panel.SidebarCollapsed())
		m.propagateSize()
		return true, m, nil

	case s == "tab":
		if m.focus == focusChat {
			m.focus = focusSidebar
		} else {
			m.focus = focusChat
		}
		return true, m, nil

	case s == "ctrl+p":
		cmd := m.palette.Open()
		return true, m, cmd

	case s == "ctrl+_":
		m.showHelp = true
		return true, m, nil

	case s == "esc":
		if m.panel.Open() {
			m.panel.Close()
			m.propagateSize()
			m.status = "panel closed"
			return true, m, nil
		}
		return false, m, nil

	case s == "enter" && m.focus == focusSidebar:
		if id, ok := m.sidebar.SelectedSessionID(); ok {
			m.focus = focusChat
			cmd := m.chat.SetSession(id)
			return true, m, cmd
		}
		return true, m, nil

	case s == "alt+left":
		cmd := m.citation.PrevPage()
		return true, m, cmd

	case s == "alt+right":
		cmd := m.citation.NextPage()
		return true, m, cmd

	case s == "ctrl+d":
		return true, m, m.citation.Download(m.downloadDir)

	case strings.HasPrefix(s, "alt+") && len(s) == 5 && s[4] >= '1' && s[4] <= '9':
		// The command must be built before m is returned: the method
		// mutates m, and the evaluation order of the two return
		// operands is otherwise unspecified.
		cmd := m.selectSource(int(s[4] - '0'))
		return true, m, cmd
	}
	return false, m, nil
}

// selectSource opens the citation panel on the n-th source of the
// latest answer.
func (m *Model) selectSource(n int) tea.Cmd {
	src, ok := m.chat.SourceAt(n)
	if !ok {
		m.status = "no such source"
		return nil
	}
	m.panel.Select(src.ID)
	m.propagateSize()
	m.status = "viewing " + src.Title
	return m.citation.Show(src)
}

// submit runs the synchronous half of the ask pipeline inline so the
// user message shows up before the network round trip starts.
func (m Model) submit(sessionID, question string) (tea.Model, tea.Cmd) {
	begin, err := m.ask.Begin(context.Background(), sessionID, question)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRequestInFlight):
			m.status = "still thinking…"
		case errors.Is(err, apperrors.ErrEmptyQuestion):
			// nothing to do
		default:
			m.status = "ask: " + err.Error()
		}
		return m, nil
	}
	m.chat.Append(begin.UserMessage)
	m.status = "asking…"
	cmd := tea.Batch(
		m.chat.SetLoading(true),
		m.sidebar.Reload(),
		m.awaitCmd(sessionID, question),
	)
	return m, cmd
}

// ─── mouse ───────────────────────────────────────────────────────────────────

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.panel.Open() && m.onDivider(msg.X) {
			m.panel.BeginDrag(msg.X)
			m.lastDragX = msg.X
			return m, m.dragTick()
		}

	case tea.MouseActionMotion:
		if m.panel.Dragging() {
			// Coalesced: the tick applies the latest position once per
			// frame.
			m.lastDragX = msg.X
		}

	case tea.MouseActionRelease:
		if m.panel.Dragging() {
			m.panel.Drag(msg.X)
			m.panel.EndDrag()
			m.propagateSize()
		}
	}
	return m, nil
}

// onDivider reports whether x falls on (or next to) the divider column.
func (m Model) onDivider(x int) bool {
	transcript, _ := m.panel.PaneWidths()
	dividerX := m.currentSidebarWidth() + transcript
	return x >= dividerX-1 && x <= dividerX+1
}

func (m Model) dragTick() tea.Cmd {
	return tea.Tick(dragFrameInterval, func(time.Time) tea.Msg {
		return dragTickMsg{}
	})
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.renderPanes(contentH)
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m Model) renderPanes(contentH int) string {
	sidebar := m.renderSidebar(contentH)
	transcriptW, panelW := m.panel.PaneWidths()

	chatPane := lipgloss.NewStyle().
		Width(transcriptW).
		Height(contentH).
		Render(m.chat.View())

	if !m.panel.Open() {
		return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, chatPane)
	}

	divider := m.renderDivider(contentH)
	panelPane := lipgloss.NewStyle().
		Width(panelW - 1).
		Height(contentH).
		Render(m.citation.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, chatPane, divider, panelPane)
}

func (m Model) renderSidebar(contentH int) string {
	if m.panel.SidebarCollapsed() {
		strip := theme.Muted.Render("≡")
		return lipgloss.NewStyle().
			Width(collapsedSidebarWidth).
			Height(contentH).
			Align(lipgloss.Center).
			Render(strip)
	}
	style := lipgloss.NewStyle().Width(sidebarWidth).Height(contentH)
	if m.focus == focusSidebar {
		style = style.BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(false).BorderTop(false).BorderBottom(false).
			BorderForeground(theme.Lavender)
	}
	return style.Render(m.sidebar.View())
}

func (m Model) renderDivider(contentH int) string {
	col := strings.TrimSuffix(strings.Repeat("│\n", contentH), "\n")
	style := theme.Divider
	if m.panel.Dragging() {
		style = theme.Hot
	}
	return style.Render(col)
}

func (m Model) renderStatusBar() string {
	left := m.status
	context := m.prefsOut.FullSemester
	if context != "" {
		left = theme.Hot.Render(context) + "  " + left
	}
	right := theme.Muted.Render("ctrl+n:new  tab:focus  ctrl+p:palette  ctrl+c:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "chat:new":
		return m, m.sidebar.CreateSession()

	case "panel:close":
		m.panel.Close()
		m.propagateSize()
		return m, nil

	case "pdf:download":
		return m, m.citation.Download(m.downloadDir)

	case "prefs:course":
		if len(parts) < 2 {
			m.status = "usage: prefs:course <code>"
			return m, nil
		}
		if err := m.prefs.SetCourse(context.Background(), parts[1]); err != nil {
			m.status = "unknown course: " + parts[1]
			return m, nil
		}
		return m, m.loadPrefsCmd()

	case "prefs:semester":
		if len(parts) < 2 {
			m.status = "usage: prefs:semester <1-8>"
			return m, nil
		}
		if err := m.prefs.SetSemesterNumber(context.Background(), parts[1]); err != nil {
			m.status = "invalid semester: " + parts[1]
			return m, nil
		}
		return m, m.loadPrefsCmd()

	case "prefs:theme":
		if len(parts) < 2 {
			m.status = "usage: prefs:theme <dark|light>"
			return m, nil
		}
		if err := m.prefs.SetTheme(context.Background(), parts[1]); err != nil {
			m.status = "invalid theme"
			return m, nil
		}
		theme.Apply(parts[1])
		m.status = "theme takes full effect on restart"
		return m, m.loadPrefsCmd()

	case "auth:login":
		m.status = "open in browser: " + m.auth.LoginURL()
		return m, nil

	case "auth:logout":
		if err := m.auth.Logout(context.Background()); err != nil {
			m.status = "logout: " + err.Error()
			return m, nil
		}
		m.status = "logged out"
		return m, nil

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) currentSidebarWidth() int {
	if m.panel.SidebarCollapsed() {
		return collapsedSidebarWidth
	}
	return sidebarWidth
}

func (m *Model) propagateSize() {
	contentH := m.height - 2
	if contentH < 1 {
		contentH = 1
	}
	transcriptW, panelW := m.panel.PaneWidths()

	m.sidebar, _ = m.sidebar.Update(tea.WindowSizeMsg{Width: sidebarWidth, Height: contentH})
	m.chat, _ = m.chat.Update(tea.WindowSizeMsg{Width: transcriptW, Height: contentH})
	if panelW > 0 {
		m.citation, _ = m.citation.Update(tea.WindowSizeMsg{Width: panelW - 1, Height: contentH})
	}
}

// propagate routes the message to the focused view; the citation pane
// always sees its own async messages.
func (m Model) propagate(msg tea.Msg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case citationview.PageLoadedMsg, citationview.DownloadedMsg:
		var cmd tea.Cmd
		m.citation, cmd = m.citation.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case sessionsview.LoadedMsg:
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case chatview.TranscriptLoadedMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	if _, isKey := msg.(tea.KeyMsg); isKey && m.focus == focusSidebar {
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	var chatCmd tea.Cmd
	m.chat, chatCmd = m.chat.Update(msg)
	cmds = append(cmds, chatCmd)

	var citCmd tea.Cmd
	m.citation, citCmd = m.citation.Update(msg)
	cmds = append(cmds, citCmd)

	return m, tea.Batch(cmds...)
}

// ─── async commands ───────────────────────────────────────────────────────────

// resolveStartupCmd lands the UI on a usable session: the first
// existing one, or a fresh chat when the registry is empty.
func (m Model) resolveStartupCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Resolve(context.Background(), "")
		if errors.Is(err, apperrors.ErrEmptySessionList) {
			sess, createErr := m.session.Create(context.Background(), "")
			return sessionReadyMsg{session: sess, err: createErr}
		}
		if err != nil {
			return sessionReadyMsg{err: err}
		}
		return sessionReadyMsg{session: out.Session}
	}
}

func (m Model) awaitCmd(sessionID, question string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.ask.Await(context.Background(), sessionID, question)
		return askResultMsg{out: out, err: err}
	}
}

func (m Model) loadPrefsCmd() tea.Cmd {
	return func() tea.Msg {
		prefs, err := m.prefs.Get(context.Background())
		return prefsLoadedMsg{prefs: prefs, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface
// needed by a specific sub-view.

type sessionPortBridge struct{ p sessionPort }

func (b sessionPortBridge) List(ctx context.Context) ([]sessiondto.SessionOutput, error) {
	return b.p.List(ctx)
}
func (b sessionPortBridge) Create(ctx context.Context, subject string) (sessiondto.SessionOutput, error) {
	return b.p.Create(ctx, subject)
}

type transcriptPortBridge struct{ p sessionPort }

func (b transcriptPortBridge) Messages(ctx context.Context, sessionID string) ([]sessiondto.MessageOutput, error) {
	return b.p.Messages(ctx, sessionID)
}

type viewerPortBridge struct{ p viewerPort }

func (b viewerPortBridge) Page(ctx context.Context, fileName string, page int) (viewerdto.PageOutput, error) {
	return b.p.Page(ctx, fileName, page)
}
func (b viewerPortBridge) Download(ctx context.Context, fileName, destDir string) (string, error) {
	return b.p.Download(ctx, fileName, destDir)
}
