package commands

import (
	"log/slog"

	"github.com/MEKXH/requisition/internal/audit"
	"github.com/MEKXH/requisition/internal/config"
	"github.com/MEKXH/requisition/internal/requisition"
)

// newLedger builds an empty ledger configured from cfg, with the audit trail
// attached when enabled.
func newLedger(cfg *config.Config) *requisition.Ledger {
	opts := []requisition.Option{
		requisition.WithAutoApproveLimit(cfg.AutoApproveLimit()),
	}
	if cfg.Audit.Enabled {
		writer := audit.NewWriter(cfg.AuditPath())
		opts = append(opts, requisition.WithObserver(writer.Observe))
		slog.Debug("audit trail enabled", "path", writer.Path())
	}
	return requisition.NewLedger(opts...)
}
