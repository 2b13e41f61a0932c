package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/swimlane/internal/tui/theme"
)

// markdown renderers are built once per wrap width
var markdown = struct {
	sync.Mutex
	byWidth map[int]*glamour.TermRenderer
}{byWidth: map[int]*glamour.TermRenderer{}}

func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	markdown.Lock()
	defer markdown.Unlock()

	if r, ok := markdown.byWidth[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	markdown.byWidth[width] = r
	return r, nil
}

// RenderDescription renders a card description as markdown wrapped to width.
// Cards without a description get a muted placeholder; text glamour cannot
// render is shown as is.
func RenderDescription(description string, width int) string {
	if strings.TrimSpace(description) == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("No description")
	}

	r, err := markdownRenderer(width)
	if err != nil {
		return description
	}
	out, err := r.Render(description)
	if err != nil {
		return description
	}
	return strings.Trim(out, "\n")
}
