package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "swatchy [color]",
		Short:         "Swatchy derives shades and harmonies from a base color",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the interactive palette
			return runInteractive(cmd, flags, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file (default ~/.swatchy/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newCopyCmd(flags))
	cmd.AddCommand(newCompareCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
