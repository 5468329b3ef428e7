package printer

import (
	"io"
	"strings"

	"github.com/arthur-debert/docprint/pkg/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// indentUnit is the text one nesting level adds in front of a line
const indentUnit = "  "

func indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(indentUnit, depth)
}

// painter applies the pass's color decision to tokens. The zero value paints
// nothing.
type painter struct {
	styles map[string]lipgloss.Style
}

func newPainter(useColor bool, theme *styles.Theme) painter {
	if !useColor {
		return painter{}
	}
	// The renderer is private to the pass and never probes the terminal.
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return painter{styles: theme.Bind(r)}
}

func (p painter) paint(style, s string) string {
	if p.styles == nil {
		return s
	}
	st, ok := p.styles[style]
	if !ok {
		return s
	}
	return st.Render(s)
}

func (p painter) keyword(s string) string     { return p.paint(styles.Keyword, s) }
func (p painter) name(s string) string        { return p.paint(styles.Name, s) }
func (p painter) location(s string) string    { return p.paint(styles.Location, s) }
func (p painter) description(s string) string { return p.paint(styles.Description, s) }

// splitLines breaks a description into lines. A trailing newline does not
// produce an empty final line and carriage returns before newlines are
// dropped.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
