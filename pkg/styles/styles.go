// Package styles defines the visual styling of rendered documentation.
//
// A Theme maps semantic style names (Keyword, Name, Location, Description) to
// style definitions loaded from YAML. Themes are inert data: Bind turns them
// into lipgloss styles attached to a specific lipgloss.Renderer, so whether a
// style emits escape codes is decided by that renderer and never by global
// state.
package styles

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Semantic style names
const (
	Keyword     = "Keyword"
	Name        = "Name"
	Location    = "Location"
	Description = "Description"
)

// ColorDef is an adaptive color definition
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Faint      bool   `yaml:"faint,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config is the YAML shape of a theme file
type Config struct {
	// Background is "dark" or "light" and selects the adaptive color side
	Background string              `yaml:"background"`
	Colors     map[string]ColorDef `yaml:"colors"`
	Styles     map[string]StyleDef `yaml:"styles"`
}

// Theme is a parsed, immutable style configuration
type Theme struct {
	dark   bool
	colors map[string]ColorDef
	styles map[string]StyleDef
}

//go:embed styles.yaml
var embeddedStyles []byte

var defaultTheme = mustDefault()

func mustDefault() *Theme {
	theme, err := parse(embeddedStyles, fallbackTheme())
	if err != nil {
		return fallbackTheme()
	}
	return theme
}

// fallbackTheme keeps rendering possible if the embedded theme is unusable
func fallbackTheme() *Theme {
	return &Theme{
		dark:   true,
		colors: map[string]ColorDef{},
		styles: map[string]StyleDef{
			Keyword:     {Foreground: "5"},
			Name:        {Bold: true},
			Location:    {Italic: true, Faint: true},
			Description: {Foreground: "8"},
		},
	}
}

// Default returns the embedded theme
func Default() *Theme {
	return defaultTheme
}

// Load reads a theme from a YAML file
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a theme from YAML data. Styles missing from the data fall
// back to the default theme's definitions.
func Parse(data []byte) (*Theme, error) {
	return parse(data, Default())
}

func parse(data []byte, base *Theme) (*Theme, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	switch config.Background {
	case "", "dark", "light":
	default:
		return nil, fmt.Errorf("invalid background %q: must be dark or light", config.Background)
	}

	theme := &Theme{
		dark:   config.Background != "light",
		colors: make(map[string]ColorDef, len(config.Colors)),
		styles: make(map[string]StyleDef, len(config.Styles)),
	}
	for name, def := range config.Colors {
		theme.colors[name] = def
	}
	for name, def := range config.Styles {
		theme.styles[name] = def
	}

	for _, name := range []string{Keyword, Name, Location, Description} {
		if _, ok := theme.styles[name]; ok {
			continue
		}
		def := base.styles[name]
		theme.styles[name] = def
		for _, ref := range []string{def.Foreground, def.Background} {
			if c, ok := base.colors[ref]; ok {
				if _, exists := theme.colors[ref]; !exists {
					theme.colors[ref] = c
				}
			}
		}
	}

	return theme, nil
}

// IsDark reports whether adaptive colors resolve to their dark value
func (t *Theme) IsDark() bool {
	return t.dark
}

// StyleNames returns the names defined by the theme in sorted order
func (t *Theme) StyleNames() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bind builds lipgloss styles attached to r. Tab conversion is disabled so
// that styled text differs from the raw text only by escape sequences.
func (t *Theme) Bind(r *lipgloss.Renderer) map[string]lipgloss.Style {
	r.SetHasDarkBackground(t.dark)

	bound := make(map[string]lipgloss.Style, len(t.styles))
	for name, def := range t.styles {
		bound[name] = t.buildStyle(r, def)
	}
	return bound
}

func (t *Theme) buildStyle(r *lipgloss.Renderer, def StyleDef) lipgloss.Style {
	style := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Faint {
		style = style.Faint(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Foreground != "" {
		style = style.Foreground(t.color(def.Foreground))
	}
	if def.Background != "" {
		style = style.Background(t.color(def.Background))
	}

	return style
}

// color resolves a named color, treating unknown names as literal colors
func (t *Theme) color(ref string) lipgloss.TerminalColor {
	if c, ok := t.colors[ref]; ok {
		return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark}
	}
	return lipgloss.Color(ref)
}
