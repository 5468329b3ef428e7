package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/docprint/pkg/config"
	"github.com/arthur-debert/docprint/pkg/errors"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to generate configuration")
			}
			if !write {
				_, err = fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path := config.UserConfigPath()
			if _, err := os.Stat(path); err == nil {
				return errors.New(errors.ErrFileAccess, "config file already exists").
					WithDetail("path", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrap(err, errors.ErrFileAccess, "failed to create config directory").
					WithDetail("path", path)
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrap(err, errors.ErrFileAccess, "failed to write config file").
					WithDetail("path", path)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}
