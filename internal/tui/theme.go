package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorAccent  = colorPeach
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSubtext0)
	hintStyle    = lipgloss.NewStyle().Foreground(colorOverlay0)
	cursorStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(colorError)
	statusStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	helperStyle  = lipgloss.NewStyle().Foreground(colorTeal)

	selectedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(colorOverlay0)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorSurface0).Padding(0, 1)

	segmentOn = lipgloss.NewStyle().
			Foreground(colorBase).Background(colorAccent).Bold(true).Padding(0, 1)
	segmentOff = lipgloss.NewStyle().
			Foreground(colorSubtext0).Background(colorSurface0).Padding(0, 1)

	tagGood = lipgloss.NewStyle().
		Foreground(colorBase).Background(colorGreen).Bold(true).Padding(0, 1)
	tagWarn = lipgloss.NewStyle().
		Foreground(colorBase).Background(colorRed).Bold(true).Padding(0, 1)
	tagNeutral = lipgloss.NewStyle().
			Foreground(colorText).Background(colorSurface1).Padding(0, 1)

	tabOn  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Underline(true).Padding(0, 1)
	tabOff = lipgloss.NewStyle().Foreground(colorSubtext0).Padding(0, 1)
)
