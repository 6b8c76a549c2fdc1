package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryKind string

const (
	EntryKindCredit EntryKind = "CREDIT"
	EntryKindDebit  EntryKind = "DEBIT"
)

type LedgerEntry struct {
	ID          string
	Kind        EntryKind
	Description string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}
