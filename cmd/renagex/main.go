package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/renagex/renagex/cmd/renagex/commands"
	"github.com/renagex/renagex/cmd/renagex/opts"
)

func main() {
	rootOpts := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "renagex",
		Short: "Bulk-rename files with regular expressions",
		Long: `renagex matches filenames against a regular expression and renames them
according to a replacement template: \1 inserts capture group 1, \L\1 and
\U\1 insert it lower- or upper-cased, and numeric groups can be zero-padded
to a fixed width. Use the match command to preview, rename to apply.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flags are parsed by now; logging and config depend on them.
			setupLogging()
			o, err := newRootOpts(cmd.Context())
			if err != nil {
				return err
			}
			*rootOpts = *o
			return nil
		},
	}

	addRootFlags(rootCmd)
	rootCmd.AddCommand(
		commands.NewMatchCmd(rootOpts),
		commands.NewRenameCmd(rootOpts),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
