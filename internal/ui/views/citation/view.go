package citation

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "campusqa/internal/modules/session/dto"
	viewerdto "campusqa/internal/modules/viewer/dto"
	"campusqa/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ViewerPort interface {
	Page(ctx context.Context, fileName string, page int) (viewerdto.PageOutput, error)
	Download(ctx context.Context, fileName, destDir string) (string, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type PageLoadedMsg struct {
	FileName string
	Page     viewerdto.PageOutput
	Err      error
}

type DownloadedMsg struct {
	Path string
	Err  error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the citation pane: the selected source's metadata on top,
// the referenced document page underneath. A document that fails to
// load degrades to an inline error; the excerpt is still shown.
type Model struct {
	port     ViewerPort
	viewport viewport.Model
	spinner  spinner.Model

	source  sessiondto.SourceOutput
	page    viewerdto.PageOutput
	loadErr string
	loading bool
	width   int
	height  int
}

func New(port ViewerPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:     port,
		viewport: viewport.New(0, 0),
		spinner:  sp,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.viewport.SetContent(m.renderBody())

	case PageLoadedMsg:
		if msg.FileName != m.source.FileName {
			break
		}
		m.loading = false
		if msg.Err != nil {
			m.loadErr = "Failed to load PDF. Press d to download instead."
		} else {
			m.loadErr = ""
			m.page = msg.Page
		}
		m.viewport.SetContent(m.renderBody())
		m.viewport.GotoTop()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	header := m.renderHeader()
	vpHeight := m.height - lipgloss.Height(header)
	if vpHeight < 1 {
		vpHeight = 1
	}
	vp := m.viewport
	vp.Height = vpHeight

	if m.loading {
		body := lipgloss.Place(m.width, vpHeight, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading document…")
		return lipgloss.JoinVertical(lipgloss.Left, header, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, vp.View())
}

// Show switches the pane to a newly selected source and starts loading
// the cited page.
func (m *Model) Show(source sessiondto.SourceOutput) tea.Cmd {
	m.source = source
	m.page = viewerdto.PageOutput{}
	m.loadErr = ""
	m.loading = true
	m.viewport.SetContent("")
	return tea.Batch(m.loadPageCmd(source.FileName, source.PageNumber), m.spinner.Tick)
}

func (m Model) Source() sessiondto.SourceOutput { return m.source }

func (m *Model) NextPage() tea.Cmd {
	if m.source.FileName == "" || m.page.Number == 0 {
		return nil
	}
	m.loading = true
	return tea.Batch(m.loadPageCmd(m.source.FileName, m.page.Number+1), m.spinner.Tick)
}

func (m *Model) PrevPage() tea.Cmd {
	if m.source.FileName == "" || m.page.Number <= 1 {
		return nil
	}
	m.loading = true
	return tea.Batch(m.loadPageCmd(m.source.FileName, m.page.Number-1), m.spinner.Tick)
}

// Download copies the document into destDir; DownloadedMsg reports the
// final path.
func (m Model) Download(destDir string) tea.Cmd {
	if m.source.FileName == "" {
		return nil
	}
	fileName := m.source.FileName
	return func() tea.Msg {
		path, err := m.port.Download(context.Background(), fileName, destDir)
		return DownloadedMsg{Path: path, Err: err}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = m.height - 4
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
}

func (m Model) renderHeader() string {
	if m.source.ID == "" {
		return theme.Title.Render("Source") + "\n"
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.source.Title))
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("  %.0f%% match", m.source.Relevance*100)))
	sb.WriteString("\n")
	sb.WriteString(theme.Muted.Render(m.source.FileName))
	if m.page.PageCount > 0 {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("  p.%d/%d", m.page.Number, m.page.PageCount)))
	} else if m.source.PageNumber > 0 {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("  p.%d", m.source.PageNumber)))
	}
	sb.WriteString(theme.Muted.Render("  [/]: page  d: download  esc: close"))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) renderBody() string {
	var sb strings.Builder
	if m.source.Excerpt != "" {
		sb.WriteString(theme.Muted.Render("Cited excerpt:") + "\n")
		sb.WriteString(m.source.Excerpt + "\n\n")
	}
	if m.loadErr != "" {
		sb.WriteString(theme.Bad.Render(m.loadErr) + "\n")
		return sb.String()
	}
	if m.page.Text != "" {
		sb.WriteString(theme.Muted.Render("Document page:") + "\n")
		sb.WriteString(m.page.Text + "\n")
	}
	if sb.Len() == 0 {
		return theme.Muted.Render("(no content)")
	}
	return sb.String()
}

func (m Model) loadPageCmd(fileName string, page int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Page(context.Background(), fileName, page)
		return PageLoadedMsg{FileName: fileName, Page: out, Err: err}
	}
}
