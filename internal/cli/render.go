package cli

import (
	"os"

	"github.com/arthur-debert/docprint/pkg/config"
	"github.com/arthur-debert/docprint/pkg/docnode"
	"github.com/arthur-debert/docprint/pkg/errors"
	"github.com/arthur-debert/docprint/pkg/loader"
	"github.com/arthur-debert/docprint/pkg/logging"
	"github.com/arthur-debert/docprint/pkg/printer"
	"github.com/arthur-debert/docprint/pkg/ui"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	color   string
	private bool
	format  string
	theme   string
	filter  string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:     "render [file...]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{
				Path:  root.configPath,
				Flags: flagOverrides(cmd, opts),
			})
			if err != nil {
				return err
			}
			return runRender(cmd, cfg, opts.filter, args)
		},
	}

	cmd.Flags().StringVar(&opts.color, "color", "auto", MsgFlagColor)
	cmd.Flags().BoolVar(&opts.private, "private", false, MsgFlagPrivate)
	cmd.Flags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	cmd.Flags().StringVar(&opts.theme, "theme", "", MsgFlagTheme)
	cmd.Flags().StringVar(&opts.filter, "filter", "", MsgFlagFilter)

	return cmd
}

// flagOverrides returns only the flags set on the command line, so unset
// flags do not mask the config file or environment
func flagOverrides(cmd *cobra.Command, opts *renderOptions) map[string]interface{} {
	overrides := make(map[string]interface{})
	flags := cmd.Flags()
	if flags.Changed("color") {
		overrides["color"] = opts.color
	}
	if flags.Changed("private") {
		overrides["private"] = opts.private
	}
	if flags.Changed("format") {
		overrides["format"] = opts.format
	}
	if flags.Changed("theme") {
		overrides["theme"] = opts.theme
	}
	return overrides
}

func runRender(cmd *cobra.Command, cfg *config.Config, filter string, args []string) error {
	logger := logging.GetLogger("cli")

	mode, err := ui.ParseColorMode(cfg.Color)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid color mode")
	}
	format, err := loader.ParseFormat(cfg.Format)
	if err != nil {
		return errors.Wrap(err, errors.ErrUnsupportedFormat, "invalid input format")
	}

	theme, err := loadTheme(cfg.Theme)
	if err != nil {
		return err
	}

	nodes, err := readInputs(cmd, format, args)
	if err != nil {
		return err
	}

	if filter != "" {
		nodes = docnode.FindByName(nodes, filter)
		if len(nodes) == 0 {
			return errors.Newf(errors.ErrNotFound, "no node named %q", filter)
		}
	}

	out := cmd.OutOrStdout()
	file, _ := out.(*os.File)
	useColor := ui.ShouldColor(mode, file)

	logger.Info().
		Int("nodes", len(nodes)).
		Bool("color", useColor).
		Bool("private", cfg.Private).
		Msg("Rendering documentation")

	p := printer.New(nodes, printer.Options{
		UseColor:       useColor,
		IncludePrivate: cfg.Private,
		Theme:          theme,
	})
	return p.Print(out)
}

func readInputs(cmd *cobra.Command, format loader.Format, args []string) ([]docnode.Node, error) {
	if len(args) == 0 {
		args = []string{loader.StdinName}
	}

	var nodes []docnode.Node
	for _, arg := range args {
		var (
			decoded []docnode.Node
			err     error
		)
		if arg == loader.StdinName {
			decoded, err = loader.Decode(cmd.InOrStdin(), format, loader.StdinName)
		} else {
			decoded, err = loader.LoadFile(arg, format)
		}
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, decoded...)
	}
	return nodes, nil
}
