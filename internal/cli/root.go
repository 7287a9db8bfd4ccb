// Package cli defines the shelf command line.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"
)

// Execute runs the shelf command line with args and releases the database
// and log file afterwards, whatever the outcome.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cc := &commandContext{}
	cmd := newRootCommand(cc)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	return errors.Join(err, cc.close())
}

// newRootCommand builds the command tree. Without a subcommand shelf
// starts the player.
func newRootCommand(cc *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "shelf",
		Short:         "Play albums from a local music library",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cc.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayer(cmd.Context(), cc, cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cc.configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&cc.dbPath, "db", "", "Library database path (default: XDG data dir)")

	rootCmd.AddCommand(newScanCommand(cc))
	rootCmd.AddCommand(newAlbumsCommand(cc))
	rootCmd.AddCommand(newCollectionsCommand(cc))

	return rootCmd
}
