package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/MEKXH/requisition/internal/config"
	"github.com/MEKXH/requisition/internal/export"
	"github.com/MEKXH/requisition/internal/render"
	"github.com/MEKXH/requisition/internal/requisition"
	"github.com/MEKXH/requisition/internal/script"
	"github.com/spf13/cobra"
)

func NewReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay a YAML script of requests against a fresh ledger",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}
	cmd.Flags().String("format", "yaml", "Output format (yaml|text)")
	cmd.Flags().String("export", "", "Also write the final listing to a .csv or .xlsx file")
	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	format = strings.ToLower(strings.TrimSpace(format))
	if format != "yaml" && format != "text" {
		return fmt.Errorf("invalid --format %q (expected yaml or text)", format)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	s, err := script.Load(args[0])
	if err != nil {
		return err
	}

	ledger := newLedger(cfg)
	results, err := script.Run(s, ledger)
	if err != nil {
		return err
	}

	if exportPath, _ := cmd.Flags().GetString("export"); strings.TrimSpace(exportPath) != "" {
		if err := export.Write(exportPath, ledger.List()); err != nil {
			return fmt.Errorf("export listing: %w", err)
		}
		slog.Info("listing exported", "path", exportPath, "records", ledger.Len())
	}

	out := cmd.OutOrStdout()
	if format == "yaml" {
		encoded, err := script.Encode(results)
		if err != nil {
			return err
		}
		_, err = out.Write(encoded)
		return err
	}

	writeReplayText(out, ledger, results, cfg.Approval.CurrencySymbol)
	return nil
}

func writeReplayText(out io.Writer, ledger *requisition.Ledger, results []script.Result, symbol string) {
	for _, res := range results {
		fmt.Fprintf(out, "#%d %s: %s\n", res.Step, res.Kind, res.Outcome)
		for _, rej := range res.Rejections {
			fmt.Fprintf(out, "  skipped item #%d %q (price %q): %s\n", rej.Position, rej.Name, rej.Price, rej.Reason)
		}
		if record, ok := res.Record(); ok {
			writeIndented(out, render.Detail(record, symbol))
		}
		if res.Statistics != nil {
			stats := requisition.Statistics{
				Total:       res.Statistics.Total,
				Approved:    res.Statistics.Approved,
				Pending:     res.Statistics.Pending,
				NotApproved: res.Statistics.NotApproved,
			}
			writeIndented(out, render.StatisticsText(stats))
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, render.Table(ledger.List(), symbol))
}

func writeIndented(out io.Writer, block string) {
	for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
		fmt.Fprintf(out, "  %s\n", line)
	}
}
