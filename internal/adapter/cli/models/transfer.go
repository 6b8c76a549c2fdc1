package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	DebitAccountNumber  int64           `json:"debitAccountNumber"`
	CreditAccountNumber int64           `json:"creditAccountNumber"`
	Amount              decimal.Decimal `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if r.DebitAccountNumber <= 0 {
		errs = append(errs, "debitAccountNumber must be a positive integer")
	}
	if r.CreditAccountNumber <= 0 {
		errs = append(errs, "creditAccountNumber must be a positive integer")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type TransferResponse struct {
	DebitAccountNumber  int64  `json:"debitAccountNumber"`
	CreditAccountNumber int64  `json:"creditAccountNumber"`
	TransferredAmount   string `json:"transferredAmount"`
	DebitBalance        string `json:"debitBalance"`
}
