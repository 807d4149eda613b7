package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/MEKXH/requisition/internal/config"
	"github.com/MEKXH/requisition/internal/render"
	"github.com/MEKXH/requisition/internal/version"
	"github.com/spf13/cobra"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show requisition configuration status",
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println(render.Header("=== Requisition Status ==="))
	fmt.Println()

	fmt.Printf("Config: %s\n", config.ConfigPath())
	if _, err := os.Stat(config.ConfigPath()); err == nil {
		fmt.Println("  Status: OK")
	} else {
		fmt.Println("  Status: Not found (run 'requisition init')")
	}

	logFile := strings.TrimSpace(cfg.Log.File)
	if logFile == "" {
		logFile = "stderr"
	}
	fmt.Println("\nLogging:")
	fmt.Printf("  Level: %s\n", cfg.Log.Level)
	fmt.Printf("  Format: %s\n", cfg.Log.Format)
	fmt.Printf("  File: %s\n", logFile)

	fmt.Println("\nApproval:")
	fmt.Printf("  Auto-approve below: %s\n", render.Money(cfg.Approval.CurrencySymbol, cfg.AutoApproveLimit()))

	fmt.Println("\nAudit trail:")
	if cfg.Audit.Enabled {
		fmt.Println("  Status: enabled")
		fmt.Printf("  Path: %s\n", cfg.AuditPath())
	} else {
		fmt.Println("  Status: disabled")
	}

	fmt.Printf("\n%s\n", version.String())
	return nil
}
