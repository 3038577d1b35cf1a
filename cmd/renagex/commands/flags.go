package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/renagex/renagex/cmd/renagex/opts"
	"github.com/renagex/renagex/pkg/config"
	"github.com/renagex/renagex/pkg/operation"
	"github.com/renagex/renagex/pkg/walker"
)

var (
	// Flags shared by the match and rename commands
	full            bool
	recursive       bool
	padding         int
	ignore          []string
	continueOnError bool
)

// addRenameFlags adds the matching/renaming flags to a command
func addRenameFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&full, "full", "f", false, "match the full filename against the pattern")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "search directories recursively")
	cmd.Flags().IntVarP(&padding, "padding", "p", 0, "zero-pad numeric groups to this minimum width")
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "glob patterns of files to skip")
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "keep renaming remaining files after a failed rename")
}

// buildConfig assembles the run configuration: config-file defaults first,
// then explicitly set flags on top.
func buildConfig(cmd *cobra.Command, o *opts.RootOpts, args []string, dryRun bool) (*config.Config, error) {
	cfg := &config.Config{
		Pattern: args[0],
		DryRun:  dryRun,
	}
	if len(args) > 1 {
		cfg.Replacement = args[1]
	}

	o.FileConfig.Apply(cmd.Context(), cfg)

	flags := cmd.Flags()
	if flags.Changed("full") {
		cfg.Full = full
	}
	if flags.Changed("recursive") {
		cfg.Recursive = recursive
	}
	if flags.Changed("padding") {
		cfg.Padding = padding
	}
	if len(ignore) > 0 {
		cfg.Ignore = append(cfg.Ignore, ignore...)
	}
	if flags.Changed("continue-on-error") {
		cfg.ContinueOnError = continueOnError
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// runOperation wires up the operator and runs it.
func runOperation(cmd *cobra.Command, o *opts.RootOpts, cfg *config.Config) error {
	op, err := operation.New(operation.Options{
		Config:   cfg,
		Lister:   walker.NewOSLister(cfg.Ignore),
		Reporter: o.Reporter,
	})
	if err != nil {
		return err
	}

	if _, err := op.Run(cmd.Context()); err != nil {
		return errors.Errorf("bulk rename: %w", err)
	}
	return nil
}
