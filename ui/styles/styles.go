package styles

import "github.com/charmbracelet/lipgloss"

var (
	areaLabelColor      = lipgloss.Color("#9b9b9b")
	statusAreaBgColor   = lipgloss.Color("#323232")
	statusLabelColor    = lipgloss.Color("#ffffff")
	statusInfoFontColor = lipgloss.Color("#000000")
	statusInfoBgColor   = lipgloss.Color("#ffff37")
	onSwitchBgColor     = lipgloss.Color("#32ff32")
	offSwitchBgColor    = lipgloss.Color("#ff3232")
	historyAreaBgColor  = lipgloss.Color("#000000")
	historyFontColor    = lipgloss.Color("#32c832")
)

func StatusAreaStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(statusAreaBgColor).
		Padding(0, 1).
		Width(width)
}

func StatusAreaLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(areaLabelColor).
		Background(statusAreaBgColor)
}

func StatusLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(statusLabelColor).
		Background(statusAreaBgColor).
		MarginRight(1)
}

func StatusInfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(statusInfoFontColor).
		Background(statusInfoBgColor).
		Padding(0, 1)
}

func SwitchStyle(on bool) lipgloss.Style {
	bg := offSwitchBgColor
	if on {
		bg = onSwitchBgColor
	}
	return lipgloss.NewStyle().
		Foreground(statusInfoFontColor).
		Background(bg).
		Padding(0, 1)
}

// StatusCellStyle lays out one label/value pair in a status row
func StatusCellStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(statusAreaBgColor).
		Width(width)
}

func HistoryAreaStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(historyAreaBgColor).
		Padding(0, 1).
		Width(width)
}

func HistoryAreaLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(areaLabelColor).
		Background(historyAreaBgColor)
}

// HistoryLineStyle pads every line to the panel width so a short line
// overwrites whatever was drawn there last frame
func HistoryLineStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(historyFontColor).
		Background(historyAreaBgColor).
		Width(width)
}
