package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type OpenAccountRequest struct {
	TaxID string `json:"taxId"`
}

func (r OpenAccountRequest) Validate() error {
	if strings.TrimSpace(r.TaxID) == "" {
		return errors.New("taxId is required")
	}

	return nil
}

type OpenAccountResponse struct {
	ID            string `json:"id"`
	Branch        string `json:"branch"`
	AccountNumber int64  `json:"accountNumber"`
	OwnerName     string `json:"ownerName"`
	Balance       string `json:"balance"`
	CreatedAt     string `json:"createdAt"`
}

type DepositFundsRequest struct {
	AccountNumber int64           `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r DepositFundsRequest) Validate() error {
	if r.AccountNumber <= 0 {
		return errors.New("accountNumber must be a positive integer")
	}

	return nil
}

type DepositFundsResponse struct {
	Branch          string `json:"branch"`
	AccountNumber   int64  `json:"accountNumber"`
	DepositedAmount string `json:"depositedAmount"`
	Balance         string `json:"balance"`
}

type WithdrawFundsRequest struct {
	AccountNumber int64           `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r WithdrawFundsRequest) Validate() error {
	if r.AccountNumber <= 0 {
		return errors.New("accountNumber must be a positive integer")
	}

	return nil
}

type WithdrawFundsResponse struct {
	Branch          string `json:"branch"`
	AccountNumber   int64  `json:"accountNumber"`
	WithdrawnAmount string `json:"withdrawnAmount"`
	Balance         string `json:"balance"`
	WithdrawalsLeft int    `json:"withdrawalsLeft"`
}

type StatementResponse struct {
	Branch        string   `json:"branch"`
	AccountNumber int64    `json:"accountNumber"`
	OwnerName     string   `json:"ownerName"`
	Lines         []string `json:"lines"`
	Balance       string   `json:"balance"`
}

type AccountSummary struct {
	Branch        string `json:"branch"`
	AccountNumber int64  `json:"accountNumber"`
	OwnerName     string `json:"ownerName"`
}
