package investwizard

import (
	"embed"
	"strings"

	"charm.land/glamour/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/investflow/internal/logger"
)

//go:embed docs/*.md
var docs embed.FS

// document returns an embedded offering document by file name.
func document(name string) string {
	data, err := docs.ReadFile("docs/" + name)
	if err != nil {
		logger.Error("Missing embedded document %s: %v", name, err)
		return ""
	}
	return string(data)
}

// renderMarkdown renders markdown using glamour, falling back to plain
// wrapped text if rendering fails.
func renderMarkdown(content string, width int) string {
	if width > 100 {
		width = 100
	}
	if width < 20 {
		width = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logger.Warn("glamour renderer unavailable: %v", err)
		return lipgloss.NewStyle().Width(width).Render(content)
	}

	rendered, err := r.Render(content)
	if err != nil {
		logger.Warn("Failed to render markdown: %v", err)
		return lipgloss.NewStyle().Width(width).Render(content)
	}

	return strings.Trim(rendered, "\n")
}
