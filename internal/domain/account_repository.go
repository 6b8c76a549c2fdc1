package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type AccountRepository interface {
	Create(ctx context.Context, account Account) (Account, error)
	GetByNumber(ctx context.Context, number int64) (Account, error)
	List(ctx context.Context) ([]Account, error)
	DepositFunds(ctx context.Context, number int64, amount decimal.Decimal) error
	WithdrawFunds(ctx context.Context, number int64, amount decimal.Decimal) error
	TransferFunds(ctx context.Context, debitNumber int64, creditNumber int64, amount decimal.Decimal) error
}
