package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPurple   = lipgloss.Color("#7D56F4")
	ColorGreen    = lipgloss.Color("#25A065")
	ColorRed      = lipgloss.Color("#E05252")
	ColorYellow   = lipgloss.Color("#E5C07B")
	ColorGray     = lipgloss.Color("#626262")
	ColorGrayDim  = lipgloss.Color("#404040")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorOffWhite = lipgloss.Color("#D0D0D0")
	ColorMagenta  = lipgloss.Color("#C678DD")
	ColorCyan     = lipgloss.Color("#56B6C2")
	ColorSelBg    = lipgloss.Color("#2D3B4D")
)

// Header and footer styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)
)

// Tab styles
var (
	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorPurple).
			Padding(0, 1)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(ColorGray).
				Padding(0, 1)
)

// List styles
var (
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorSelBg)

	NormalStyle = lipgloss.NewStyle()

	DoneStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	OverdueStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)

// Priority styles
var (
	PriorityHighStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorRed)

	PriorityMediumStyle = lipgloss.NewStyle().
				Foreground(ColorYellow)

	PriorityLowStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)
)

// Grid styles
var (
	GridHourStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	GridTodayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	GridTaskStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite)
)

// Chat styles
var (
	ChatUserStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	ChatAssistantStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorMagenta)

	ChatBodyStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGrayDim).
			Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPurple).
			Padding(1, 2)
)

// Status icons
const (
	IconDone   = "✓"
	IconOpen   = "○"
	IconPicked = "◉"
	IconRisk   = "▲"
)
