package services

import (
	"context"
	"errors"

	"github.com/api-sage/retail-teller/internal/adapter/cli/models"
	"github.com/api-sage/retail-teller/internal/commons"
	"github.com/api-sage/retail-teller/internal/domain"
	"github.com/api-sage/retail-teller/internal/logger"
	"github.com/shopspring/decimal"
)

type TransferService struct {
	accountRepo    domain.AccountRepository
	currencySymbol string
}

func NewTransferService(accountRepo domain.AccountRepository, currencySymbol string) *TransferService {
	return &TransferService{
		accountRepo:    accountRepo,
		currencySymbol: currencySymbol,
	}
}

func (s *TransferService) TransferFunds(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("transfer service transfer funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transfer service transfer funds validation failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	if req.DebitAccountNumber == req.CreditAccountNumber {
		err := domain.ErrSameAccount
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		err := domain.ErrInvalidAmount
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	if err := s.accountRepo.TransferFunds(ctx, req.DebitAccountNumber, req.CreditAccountNumber, req.Amount); err != nil {
		logger.Error("transfer service transfer funds failed", err, logger.Fields{
			"debitAccountNumber":  req.DebitAccountNumber,
			"creditAccountNumber": req.CreditAccountNumber,
			"amount":              req.Amount,
		})
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return commons.ErrorResponse[models.TransferResponse]("Account not found"), err
		case errors.Is(err, domain.ErrInsufficientFunds):
			return commons.ErrorResponse[models.TransferResponse]("failed to transfer funds", "Balance is not sufficient for this transfer"), err
		default:
			return commons.ErrorResponse[models.TransferResponse]("failed to transfer funds", "Unable to transfer funds right now"), err
		}
	}

	debitAccount, err := s.accountRepo.GetByNumber(ctx, req.DebitAccountNumber)
	if err != nil {
		logger.Error("transfer service get debit account after transfer failed", err, logger.Fields{
			"debitAccountNumber": req.DebitAccountNumber,
		})
		return commons.ErrorResponse[models.TransferResponse]("failed to fetch account", "Unable to fetch account right now"), err
	}

	response := models.TransferResponse{
		DebitAccountNumber:  req.DebitAccountNumber,
		CreditAccountNumber: req.CreditAccountNumber,
		TransferredAmount:   commons.FormatAmount(s.currencySymbol, req.Amount),
		DebitBalance:        commons.FormatAmount(s.currencySymbol, debitAccount.Balance),
	}

	logger.Info("transfer service transfer funds success", logger.Fields{
		"debitAccountNumber":  response.DebitAccountNumber,
		"creditAccountNumber": response.CreditAccountNumber,
		"transferredAmount":   response.TransferredAmount,
	})

	return commons.SuccessResponse("funds transferred successfully", response), nil
}
