package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// Renderers are cached by style and wrap width. Building one with
// WithAutoStyle can block on terminal queries, so the style is chosen from
// Lip Gloss's background detection instead.
var mdRenderers = map[string]*glamour.TermRenderer{}

// renderHeading renders title as a level-one markdown heading. On any
// renderer failure it falls back to the plain title style.
func renderHeading(title string, width int) string {
	title = strings.TrimSpace(sanitizeLine(title))
	if title == "" {
		return ""
	}
	width = max(width, 10)

	styleName := markdownStyle()
	key := styleName + ":" + strconv.Itoa(width)
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(markdownStyleConfig(styleName)),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return styleTitle().Render(title)
		}
		mdRenderers[key] = rr
		r = rr
	}

	out, err := r.Render("# " + escapeMarkdown(title))
	if err != nil {
		return styleTitle().Render(title)
	}
	return strings.Trim(out, "\n")
}

func markdownStyle() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func markdownStyleConfig(styleName string) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig
	if styleName == "light" {
		cfg = styles.LightStyleConfig
	}

	zero := uint(0)
	cfg.Document.Margin = &zero
	cfg.Heading.Margin = &zero
	cfg.H1.Margin = &zero

	// Headings follow the normal text palette with the accent as background.
	cfg.H1.Color = mdColor(colorAccentFg, styleName)
	cfg.H1.BackgroundColor = mdColor(colorAccent, styleName)
	return cfg
}

func mdColor(c lipgloss.AdaptiveColor, styleName string) *string {
	s := c.Dark
	if styleName == "light" {
		s = c.Light
	}
	return &s
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`, "[", `\[`, "]", `\]`, "<", `\<`,
)

func escapeMarkdown(s string) string {
	return mdEscaper.Replace(s)
}
