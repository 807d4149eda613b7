package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Approval.AutoApproveLimit != 500 {
		t.Errorf("expected AutoApproveLimit=500, got %v", cfg.Approval.AutoApproveLimit)
	}
	if cfg.Approval.CurrencySymbol != "$" {
		t.Errorf("expected CurrencySymbol=$, got %q", cfg.Approval.CurrencySymbol)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected Log.Level=info, got %q", cfg.Log.Level)
	}
	if cfg.Audit.Enabled {
		t.Error("expected audit disabled by default")
	}
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.AutoApproveLimit().Equal(decimal.NewFromInt(500)) {
		t.Fatalf("unexpected limit: %s", cfg.AutoApproveLimit())
	}
	if _, err := os.Stat(filepath.Join(home, ".requisition", "config.json")); err != nil {
		t.Fatalf("expected config file to be written: %v", err)
	}
}

func TestLoad_ReadsOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	if err := os.MkdirAll(ConfigDir(), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	raw := `{"log":{"level":"DEBUG"},"approval":{"auto_approve_limit":250.5},"audit":{"enabled":true,"path":"~/trail.jsonl"}}`
	if err := os.WriteFile(ConfigPath(), []byte(raw), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected normalized level debug, got %q", cfg.Log.Level)
	}
	if !cfg.AutoApproveLimit().Equal(decimal.RequireFromString("250.5")) {
		t.Errorf("unexpected limit: %s", cfg.AutoApproveLimit())
	}
	if cfg.Approval.CurrencySymbol != "$" {
		t.Errorf("expected currency default to survive, got %q", cfg.Approval.CurrencySymbol)
	}
	if !cfg.Audit.Enabled {
		t.Error("expected audit enabled")
	}
	if got, want := cfg.AuditPath(), filepath.Join(home, "trail.jsonl"); got != want {
		t.Errorf("expected audit path %q, got %q", want, got)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Approval.AutoApproveLimit = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative limit")
	}

	cfg = DefaultConfig()
	cfg.Log.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}

	cfg = DefaultConfig()
	cfg.Log.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log format")
	}

	cfg = DefaultConfig()
	cfg.Approval.AutoApproveLimit = 0
	cfg.Approval.CurrencySymbol = " "
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if cfg.Approval.CurrencySymbol != "$" {
		t.Fatalf("expected currency default restored, got %+v", cfg.Approval)
	}
	if cfg.Approval.AutoApproveLimit != 0 || !cfg.AutoApproveLimit().IsZero() {
		t.Fatalf("expected zero limit to be kept, got %+v", cfg.Approval)
	}
}

func TestLoad_ZeroLimitDisablesAutoApproval(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("USERPROFILE", tmpDir)

	cfg := DefaultConfig()
	cfg.Approval.AutoApproveLimit = 0
	if err := Save(cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !loaded.AutoApproveLimit().IsZero() {
		t.Fatalf("expected limit 0 after reload, got %s", loaded.AutoApproveLimit())
	}
}

func TestAuditPath_Default(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	got := DefaultConfig().AuditPath()
	want := filepath.Join(home, ".requisition", "state", "audit.jsonl")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
