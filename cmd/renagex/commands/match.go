package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/renagex/renagex/cmd/renagex/opts"
)

// NewMatchCmd creates a new match command
func NewMatchCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <pattern> [replacement]",
		Short: "Preview matches without renaming anything",
		Long: `Match lists the files whose names match the pattern, together with their
capture groups and, when a replacement template is given, the name each file
would be renamed to. Nothing is written to the filesystem.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "match").Logger().WithContext(cmd.Context())
			cmd.SetContext(ctx)

			cfg, err := buildConfig(cmd, o, args, true)
			if err != nil {
				return err
			}
			return runOperation(cmd, o, cfg)
		},
	}

	addRenameFlags(cmd)
	return cmd
}
