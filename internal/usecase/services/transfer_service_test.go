package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/retail-teller/internal/adapter/cli/models"
	"github.com/api-sage/retail-teller/internal/domain"
	"github.com/api-sage/retail-teller/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func TestTransferServiceValidationError(t *testing.T) {
	svc := services.NewTransferService(nil, "R$")

	_, err := svc.TransferFunds(context.Background(), models.TransferRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty transfer request")
	}
}

func TestTransferServiceRejectsSameAccount(t *testing.T) {
	svc := services.NewTransferService(nil, "R$")

	_, err := svc.TransferFunds(context.Background(), models.TransferRequest{
		DebitAccountNumber:  1,
		CreditAccountNumber: 1,
		Amount:              decimal.RequireFromString("10.00"),
	})
	if !errors.Is(err, domain.ErrSameAccount) {
		t.Fatalf("expected ErrSameAccount, got %v", err)
	}
}

func TestTransferServiceRejectsNonPositiveAmount(t *testing.T) {
	svc := services.NewTransferService(nil, "R$")

	_, err := svc.TransferFunds(context.Background(), models.TransferRequest{
		DebitAccountNumber:  1,
		CreditAccountNumber: 2,
		Amount:              decimal.Zero,
	})
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestTransferServiceMovesFundsBetweenAccounts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	source := f.openAccountFor(t, "111", "Ana Souza")
	destination := f.openAccountFor(t, "222", "Bruno Lima")

	if _, err := f.accounts.Deposit(ctx, models.DepositFundsRequest{
		AccountNumber: source,
		Amount:        decimal.RequireFromString("300.00"),
	}); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	resp, err := f.transfers.TransferFunds(ctx, models.TransferRequest{
		DebitAccountNumber:  source,
		CreditAccountNumber: destination,
		Amount:              decimal.RequireFromString("120.50"),
	})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if resp.Data.DebitBalance != "R$ 179.50" {
		t.Fatalf("expected debit balance R$ 179.50, got %q", resp.Data.DebitBalance)
	}

	destinationStatement, err := f.accounts.Statement(ctx, destination)
	if err != nil {
		t.Fatalf("destination statement: %v", err)
	}
	if destinationStatement.Data.Balance != "R$ 120.50" {
		t.Fatalf("expected destination balance R$ 120.50, got %q", destinationStatement.Data.Balance)
	}
	if len(destinationStatement.Data.Lines) != 1 {
		t.Fatalf("expected one statement line on destination, got %d", len(destinationStatement.Data.Lines))
	}
}

func TestTransferServiceInsufficientFunds(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	source := f.openAccountFor(t, "111", "Ana Souza")
	destination := f.openAccountFor(t, "222", "Bruno Lima")

	_, err := f.transfers.TransferFunds(ctx, models.TransferRequest{
		DebitAccountNumber:  source,
		CreditAccountNumber: destination,
		Amount:              decimal.RequireFromString("10.00"),
	})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}
