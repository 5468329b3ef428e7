package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/docprint/pkg/config"
	"github.com/arthur-debert/docprint/pkg/errors"
	"github.com/arthur-debert/docprint/pkg/styles"
	"github.com/arthur-debert/docprint/pkg/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newThemeCmd(root *rootOptions) *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "theme [file]",
		Short: MsgThemeShort,
		Long:  MsgThemeLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := map[string]interface{}{}
			if cmd.Flags().Changed("color") {
				flags["color"] = color
			}
			cfg, err := config.Load(config.LoadOptions{Path: root.configPath, Flags: flags})
			if err != nil {
				return err
			}

			path := cfg.Theme
			if len(args) == 1 {
				path = args[0]
			}
			theme, err := loadTheme(path)
			if err != nil {
				return err
			}

			mode, err := ui.ParseColorMode(cfg.Color)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid color mode")
			}
			out := cmd.OutOrStdout()
			file, _ := out.(*os.File)
			return previewTheme(out, theme, ui.ShouldColor(mode, file))
		},
	}

	cmd.Flags().StringVar(&color, "color", "auto", MsgFlagColor)

	return cmd
}

// loadTheme returns the built-in theme for an empty path
func loadTheme(path string) (*styles.Theme, error) {
	if path == "" {
		return styles.Default(), nil
	}
	theme, err := styles.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStyleLoad, "failed to load theme").
			WithDetail("path", path)
	}
	return theme, nil
}

// previewTheme writes the background and one sample line per style
func previewTheme(w io.Writer, theme *styles.Theme, useColor bool) error {
	background := "light"
	if theme.IsDark() {
		background = "dark"
	}
	if _, err := fmt.Fprintf(w, MsgThemeBackground, background); err != nil {
		return err
	}

	var bound map[string]lipgloss.Style
	if useColor {
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.ANSI)
		bound = theme.Bind(r)
	}

	for _, name := range theme.StyleNames() {
		sample := MsgThemeSample
		if style, ok := bound[name]; ok {
			sample = style.Render(sample)
		}
		if _, err := fmt.Fprintf(w, "  %-12s %s\n", name, sample); err != nil {
			return err
		}
	}
	return nil
}
