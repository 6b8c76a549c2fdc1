package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/api-sage/retail-teller/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TELLER_CONFIG_FILE",
		"TELLER_BRANCH_CODE",
		"TELLER_CURRENCY_SYMBOL",
		"TELLER_WITHDRAWAL_CAP",
		"TELLER_WITHDRAWALS_PER_SESSION",
		"TELLER_LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.BranchCode != "0001" {
		t.Fatalf("expected default branch 0001, got %q", cfg.BranchCode)
	}
	if cfg.CurrencySymbol != "R$" {
		t.Fatalf("expected default currency symbol R$, got %q", cfg.CurrencySymbol)
	}
	if got := cfg.WithdrawalCap.StringFixed(2); got != "500.00" {
		t.Fatalf("expected default withdrawal cap 500.00, got %s", got)
	}
	if cfg.WithdrawalsPerSession != 3 {
		t.Fatalf("expected default withdrawals per session 3, got %d", cfg.WithdrawalsPerSession)
	}
	if cfg.LogFile != "" {
		t.Fatalf("expected no default log file, got %q", cfg.LogFile)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELLER_BRANCH_CODE", "0042")
	t.Setenv("TELLER_CURRENCY_SYMBOL", "US$")
	t.Setenv("TELLER_WITHDRAWAL_CAP", "250.00")
	t.Setenv("TELLER_WITHDRAWALS_PER_SESSION", "5")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.BranchCode != "0042" || cfg.CurrencySymbol != "US$" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if got := cfg.WithdrawalCap.StringFixed(2); got != "250.00" {
		t.Fatalf("expected withdrawal cap 250.00, got %s", got)
	}
	if cfg.WithdrawalsPerSession != 5 {
		t.Fatalf("expected 5 withdrawals per session, got %d", cfg.WithdrawalsPerSession)
	}
}

func TestLoadYAMLFileAndEnvPrecedence(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "teller.yaml")
	raw := "branchCode: \"0099\"\nwithdrawalCap: \"300.00\"\ncurrencySymbol: \"EUR\"\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("TELLER_CONFIG_FILE", path)
	t.Setenv("TELLER_CURRENCY_SYMBOL", "R$")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.BranchCode != "0099" {
		t.Fatalf("expected branch from file, got %q", cfg.BranchCode)
	}
	if got := cfg.WithdrawalCap.StringFixed(2); got != "300.00" {
		t.Fatalf("expected withdrawal cap from file, got %s", got)
	}
	if cfg.CurrencySymbol != "R$" {
		t.Fatalf("expected env to win over file, got %q", cfg.CurrencySymbol)
	}
}

func TestLoadRejectsInvalidBranchCode(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELLER_BRANCH_CODE", "12")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for branch code that is not 4 characters")
	}
}

func TestLoadRejectsNonPositiveWithdrawalCap(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELLER_WITHDRAWAL_CAP", "-1")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for non-positive withdrawal cap")
	}
}
