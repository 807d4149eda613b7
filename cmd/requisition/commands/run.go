package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MEKXH/requisition/internal/command"
	"github.com/MEKXH/requisition/internal/config"
	"github.com/MEKXH/requisition/internal/render"
	"github.com/spf13/cobra"
)

func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start an interactive requisition session",
		Long:  "Start the menu-driven session. Requisitions live only as long as the session.",
		RunE:  runSession,
	}
	cmd.Flags().Bool("plain", false, "Print statistics as plain text instead of rendered markdown")
	return cmd
}

func runSession(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ledger := newLedger(cfg)
	env := command.Env{
		Ledger:   ledger,
		Prompter: command.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		Currency: cfg.Approval.CurrencySymbol,
	}

	plain, _ := cmd.Flags().GetBool("plain")
	if !plain {
		renderer, err := render.NewMarkdownRenderer(80)
		if err != nil {
			slog.Warn("markdown renderer unavailable, using plain statistics", "error", err)
		} else {
			env.Renderer = renderer
		}
	}

	slog.Info("requisition session started", "auto_approve_limit", ledger.AutoApproveLimit().String())
	err = command.NewSession(command.DefaultRegistry(), env).Run(ctx)
	stats := ledger.Statistics()
	slog.Info("requisition session ended",
		"total", stats.Total,
		"approved", stats.Approved,
		"pending", stats.Pending,
		"not_approved", stats.NotApproved,
	)
	return err
}
