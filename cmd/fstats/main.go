// Command fstats shows which folders under a directory use the most space
// and hold the most files, updating live while the scan runs.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fstats/internal/app"
	"fstats/internal/config"
	"fstats/internal/domain"
)

func newRootCommand() *cobra.Command {
	var flags config.Flags
	rootCmd := &cobra.Command{
		Use:           "fstats [path]",
		Short:         "Interactive disk usage by folder",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := config.LoadConfig(flags.ConfigFile)
			if err != nil {
				return err
			}
			cfg := flags.Apply(cmd.Flags(), base)
			if len(args) == 1 && !cmd.Flags().Changed("path") {
				cfg.Path = args[0]
			}
			return app.Run(cfg)
		},
	}
	flags.Register(rootCmd.Flags())
	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fstats: %v\n", err)
		if errors.Is(err, domain.ErrConfig) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
