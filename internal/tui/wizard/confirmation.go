package wizard

import (
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/investflow/internal/tui/theme"
)

// RenderConfirmation renders a warning dialog with a title, a message and
// the y/n instructions.
func RenderConfirmation(title, message string) string {
	t := theme.Current()

	titleText := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Warning)).
		Render("⚠ " + title)

	messageText := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		Width(46).
		Render(message)

	instructions := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted)).
		Render("Press Y to confirm, N or ESC to cancel")

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleText,
		"",
		messageText,
		"",
		instructions,
	)

	return lipgloss.NewStyle().
		Width(54).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Warning)).
		Render(content)
}
