package components

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/eventlist/internal/event"
	"github.com/Rorical/eventlist/internal/input"
	"github.com/Rorical/eventlist/ui/styles"
)

const (
	onLabel  = "On"
	offLabel = "Off"
)

func RenderSwitch(on bool) string {
	label := offLabel
	if on {
		label = onLabel
	}
	return styles.SwitchStyle(on).Render(label)
}

func RenderInfo(text string) string {
	return styles.StatusInfoStyle().Render(text)
}

// LastKeyText is "<code>, <name>" or "None" before any key was pressed
func LastKeyText(snap input.Snapshot, keyName func(event.KeyCode) string) string {
	if !snap.HasLastKey {
		return "None"
	}
	return fmt.Sprintf("%d, %s", snap.LastKey, keyName(snap.LastKey))
}

func MousePositionText(pos event.Position) string {
	return fmt.Sprintf("%d, %d", pos.X, pos.Y)
}

// RenderStatus draws the device state. dropped is the number of input events
// lost to a full queue.
func RenderStatus(snap input.Snapshot, keyName func(event.KeyCode) string, dropped int, width int) string {
	inner := max(width-2, 2)
	column := inner / 2

	cell := func(label, value string) string {
		return styles.StatusCellStyle(column).Render(
			lipgloss.JoinHorizontal(lipgloss.Top, styles.StatusLabelStyle().Render(label), value),
		)
	}
	row := func(cells ...string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.StatusAreaLabelStyle().Render("Status Area"),
		row(
			cell("Mouse Focus", RenderSwitch(snap.MouseFocused)),
			cell("Keyboard Focus", RenderSwitch(snap.KeyboardFocused)),
		),
		row(
			cell("Mouse Position", RenderInfo(MousePositionText(snap.MousePosition))),
			cell("Last Keypress", RenderInfo(LastKeyText(snap, keyName))),
		),
		row(
			cell("Input Grabbed", RenderSwitch(snap.InputGrabbed)),
			cell("Dropped Events", RenderInfo(strconv.Itoa(dropped))),
		),
	)
	return styles.StatusAreaStyle(width).Render(content)
}
