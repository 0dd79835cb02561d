package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha by default; Apply("light") swaps in Latte. Styles
// are package vars so views can reference them directly.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	Title   lipgloss.Style
	Muted   lipgloss.Style
	Hot     lipgloss.Style
	Bad     lipgloss.Style
	Pane    lipgloss.Style
	Divider lipgloss.Style

	// GlamourStyle is the style name handed to the markdown renderer.
	GlamourStyle = "dark"
)

func init() {
	rebuild()
}

// Apply switches the palette by preference name. Anything that is not
// "light" stays on the dark palette.
func Apply(name string) {
	if name == "light" {
		Base = lipgloss.Color("#eff1f5")
		Mantle = lipgloss.Color("#e6e9ef")
		Surface0 = lipgloss.Color("#ccd0da")
		Surface1 = lipgloss.Color("#bcc0cc")
		Text = lipgloss.Color("#4c4f69")
		Subtext0 = lipgloss.Color("#6c6f85")
		Lavender = lipgloss.Color("#7287fd")
		Sapphire = lipgloss.Color("#209fb5")
		Green = lipgloss.Color("#40a02b")
		Peach = lipgloss.Color("#fe640b")
		Red = lipgloss.Color("#d20f39")
		GlamourStyle = "light"
	}
	rebuild()
}

func rebuild() {
	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Bad = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(0, 1)
	Divider = lipgloss.NewStyle().Foreground(Surface1)
}
