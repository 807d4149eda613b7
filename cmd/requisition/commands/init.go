package commands

import (
	"fmt"
	"os"

	"github.com/MEKXH/requisition/internal/config"
	"github.com/spf13/cobra"
)

func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize requisition configuration",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := config.ConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config already exists: %s\n", configPath)
		return nil
	}

	cfg := config.DefaultConfig()

	for _, dir := range []string{config.ConfigDir(), config.StateDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Requisition initialized!\n")
	fmt.Printf("Config: %s\n", configPath)
	fmt.Printf("State: %s\n", config.StateDir())
	fmt.Printf("\nNext steps:\n")
	fmt.Printf("1. Edit %s to change the auto-approval limit or enable the audit trail\n", configPath)
	fmt.Printf("2. Run 'requisition run' to start a session\n")

	return nil
}
