package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID              string
	Branch          string
	Number          int64
	CustomerID      string
	Balance         decimal.Decimal
	Entries         []LedgerEntry
	WithdrawalsUsed int
	CreatedAt       time.Time
}
