// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/grantthrive/grantctl/cmd/grantctl/handlers"
)

// Root returns the root command for the grantctl CLI.
func Root() *cobra.Command {
	var global handlers.GlobalOptions
	flush := func() {}

	cmd := &cobra.Command{
		Use:           "grantctl",
		Short:         "Create and publish grant programs on GrantThrive",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx, f, err := handlers.Setup(cmd.Context(), global)
			if err != nil {
				return err
			}
			flush = f
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			defer flush()
			return handlers.Finish(global)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&global.ConfigPath, "config", "", "Path to configuration file (default: $XDG_CONFIG_HOME/grantctl/config.yaml)")
	pf.StringVar(&global.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&global.LogFormat, "log-format", "", "Log format: console or json")
	pf.StringVar(&global.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit")

	// Grant authoring
	cmd.AddCommand(Create())
	cmd.AddCommand(Submit())
	cmd.AddCommand(Validate())
	cmd.AddCommand(Archive())

	// API
	cmd.AddCommand(Grants())
	cmd.AddCommand(Login())
	cmd.AddCommand(Logout())
	cmd.AddCommand(Status())

	// Utility
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
