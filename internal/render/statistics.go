package render

import (
	"fmt"
	"strings"

	"github.com/MEKXH/requisition/internal/requisition"
	"github.com/charmbracelet/glamour"
)

// Renderer turns markdown into terminal output.
type Renderer interface {
	Render(string) (string, error)
}

// NewMarkdownRenderer returns a glamour renderer that adapts to the terminal.
func NewMarkdownRenderer(width int) (Renderer, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return r, nil
}

// StatisticsText renders counts as plain lines.
func StatisticsText(stats requisition.Statistics) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The total number of requisitions submitted: %d\n", stats.Total)
	fmt.Fprintf(&sb, "The total number of approved requisitions: %d\n", stats.Approved)
	fmt.Fprintf(&sb, "The total number of pending requisitions: %d\n", stats.Pending)
	fmt.Fprintf(&sb, "The total number of not approved requisitions: %d\n", stats.NotApproved)
	return sb.String()
}

// StatisticsMarkdown renders counts as a markdown table.
func StatisticsMarkdown(stats requisition.Statistics) string {
	var sb strings.Builder
	sb.WriteString("## Requisition statistics\n\n")
	sb.WriteString("| Status | Count |\n")
	sb.WriteString("|---|---:|\n")
	fmt.Fprintf(&sb, "| %s | %d |\n", requisition.StatusApproved, stats.Approved)
	fmt.Fprintf(&sb, "| %s | %d |\n", requisition.StatusPending, stats.Pending)
	fmt.Fprintf(&sb, "| %s | %d |\n", requisition.StatusNotApproved, stats.NotApproved)
	fmt.Fprintf(&sb, "| **Total** | **%d** |\n", stats.Total)
	return sb.String()
}

// Markdown renders md with r, returning md unchanged when r is nil or fails.
func Markdown(md string, r Renderer) string {
	if r == nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
