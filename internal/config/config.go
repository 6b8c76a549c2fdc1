package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const defaultBranchCode = "0001"
const defaultCurrencySymbol = "R$"
const defaultWithdrawalCap = "500.00"
const defaultWithdrawalsPerSession = 3

type Config struct {
	BranchCode            string
	CurrencySymbol        string
	WithdrawalCap         decimal.Decimal
	WithdrawalsPerSession int
	LogFile               string
}

// fileConfig mirrors Config with the field types a YAML file carries.
type fileConfig struct {
	BranchCode            string `yaml:"branchCode"`
	CurrencySymbol        string `yaml:"currencySymbol"`
	WithdrawalCap         string `yaml:"withdrawalCap"`
	WithdrawalsPerSession int    `yaml:"withdrawalsPerSession"`
	LogFile               string `yaml:"logFile"`
}

// Load resolves configuration in increasing precedence: hardcoded defaults,
// then the YAML file named by TELLER_CONFIG_FILE (if any), then environment
// variables.
func Load() (Config, error) {
	fc := fileConfig{}

	if path := strings.TrimSpace(os.Getenv("TELLER_CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	branchCode := firstNonEmpty(os.Getenv("TELLER_BRANCH_CODE"), fc.BranchCode, defaultBranchCode)
	if len(branchCode) != 4 {
		return Config{}, fmt.Errorf("branch code must be exactly 4 characters, got %q", branchCode)
	}

	currencySymbol := firstNonEmpty(os.Getenv("TELLER_CURRENCY_SYMBOL"), fc.CurrencySymbol, defaultCurrencySymbol)

	rawCap := firstNonEmpty(os.Getenv("TELLER_WITHDRAWAL_CAP"), fc.WithdrawalCap, defaultWithdrawalCap)
	withdrawalCap, err := decimal.NewFromString(rawCap)
	if err != nil {
		return Config{}, fmt.Errorf("parse withdrawal cap: %w", err)
	}
	if withdrawalCap.LessThanOrEqual(decimal.Zero) {
		return Config{}, fmt.Errorf("withdrawal cap must be greater than zero, got %s", rawCap)
	}

	withdrawalsPerSession := fc.WithdrawalsPerSession
	if raw := strings.TrimSpace(os.Getenv("TELLER_WITHDRAWALS_PER_SESSION")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse withdrawals per session: %w", err)
		}
		withdrawalsPerSession = parsed
	}
	if withdrawalsPerSession == 0 {
		withdrawalsPerSession = defaultWithdrawalsPerSession
	}
	if withdrawalsPerSession < 0 {
		return Config{}, fmt.Errorf("withdrawals per session must be positive, got %d", withdrawalsPerSession)
	}

	logFile := firstNonEmpty(os.Getenv("TELLER_LOG_FILE"), fc.LogFile, "")

	return Config{
		BranchCode:            branchCode,
		CurrencySymbol:        currencySymbol,
		WithdrawalCap:         withdrawalCap,
		WithdrawalsPerSession: withdrawalsPerSession,
		LogFile:               logFile,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}

	return ""
}
