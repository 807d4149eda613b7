package commands

import (
	"github.com/MEKXH/requisition/internal/config"
	"github.com/spf13/cobra"
)

var logLevelOverride string

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requisition",
		Short: "Requisition - purchase request tracking",
		Long:  `Requisition records staff purchase requests, approves small ones automatically and lets a supervisor change their status.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "init" {
				return configureLogger(config.DefaultConfig(), logLevelOverride, false)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return configureLogger(cfg, logLevelOverride, cmd.Name() == "run")
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&logLevelOverride, "log-level", "", "Override log level (debug|info|warn|error)")

	cmd.AddCommand(
		NewInitCmd(),
		NewRunCmd(),
		NewReplayCmd(),
		NewStatusCmd(),
		NewVersionCmd(),
	)

	return cmd
}
