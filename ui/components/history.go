package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/Rorical/eventlist/ui/styles"
)

const historyLabel = "Event History Area"

// RenderHistory draws lines (newest first) bottom-up so the newest entry sits
// on the last row of the panel. height counts the label row.
func RenderHistory(lines []string, width, height int) string {
	if height <= 0 {
		return ""
	}
	inner := max(width-2, 1)
	rows := max(height-1, 0)
	shown := min(len(lines), rows)

	lineStyle := styles.HistoryLineStyle(inner)
	out := make([]string, 0, rows+1)
	out = append(out, styles.HistoryAreaLabelStyle().Render(ansi.Truncate(historyLabel, inner, "…")))
	for n := 0; n < rows-shown; n++ {
		out = append(out, lineStyle.Render(""))
	}
	for i := shown - 1; i >= 0; i-- {
		out = append(out, lineStyle.Render(ansi.Truncate(lines[i], inner, "…")))
	}
	return styles.HistoryAreaStyle(width).Render(strings.Join(out, "\n"))
}

// ClampHeight keeps the first height rows of a rendered block
func ClampHeight(rendered string, height int) string {
	if height <= 0 {
		return ""
	}
	rows := strings.Split(rendered, "\n")
	if len(rows) <= height {
		return rendered
	}
	return strings.Join(rows[:height], "\n")
}
