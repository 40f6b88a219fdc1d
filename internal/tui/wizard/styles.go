// Package wizard provides the chrome shared by full-screen wizards: button
// bars, hint bars and the confirmation dialog.
package wizard

import (
	"strings"

	"github.com/mark3labs/investflow/internal/tui/theme"
)

// RenderHintBar renders a hint bar with the given key-description pairs.
// Example: RenderHintBar("↑↓", "navigate", "enter", "select", "esc", "exit")
// Returns: "↑↓ navigate • enter select • esc exit"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()

	var sb strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			sb.WriteString(" " + s.HintSeparator.Render("•") + " ")
		}
		sb.WriteString(s.HintKey.Render(pairs[i]) + " " + s.HintDesc.Render(pairs[i+1]))
	}

	return sb.String()
}
