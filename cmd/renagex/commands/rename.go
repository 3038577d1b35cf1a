package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/renagex/renagex/cmd/renagex/opts"
)

// NewRenameCmd creates a new rename command
func NewRenameCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <pattern> <replacement>",
		Short: "Rename files matching the pattern",
		Long: `Rename matches files against the pattern, computes each target name from
the replacement template, aborts if any two targets collide, and then renames
the files one by one. Renames are independent: there is no rollback if a
later rename fails.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "rename").Logger().WithContext(cmd.Context())
			cmd.SetContext(ctx)

			cfg, err := buildConfig(cmd, o, args, false)
			if err != nil {
				return err
			}
			return runOperation(cmd, o, cfg)
		},
	}

	addRenameFlags(cmd)
	return cmd
}
