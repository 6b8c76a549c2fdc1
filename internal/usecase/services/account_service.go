package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/retail-teller/internal/adapter/cli/models"
	"github.com/api-sage/retail-teller/internal/commons"
	"github.com/api-sage/retail-teller/internal/domain"
	"github.com/api-sage/retail-teller/internal/logger"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	accountRepo           domain.AccountRepository
	customerRepo          domain.CustomerRepository
	currencySymbol        string
	withdrawalsPerSession int
}

func NewAccountService(
	accountRepo domain.AccountRepository,
	customerRepo domain.CustomerRepository,
	currencySymbol string,
	withdrawalsPerSession int,
) *AccountService {
	return &AccountService{
		accountRepo:           accountRepo,
		customerRepo:          customerRepo,
		currencySymbol:        currencySymbol,
		withdrawalsPerSession: withdrawalsPerSession,
	}
}

func (s *AccountService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error) {
	logger.Info("account service open account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service open account validation failed", err, nil)
		return commons.ErrorResponse[models.OpenAccountResponse]("validation failed", err.Error()), err
	}

	customer, err := s.customerRepo.GetByTaxID(ctx, req.TaxID)
	if err != nil {
		logger.Error("account service open account customer lookup failed", err, nil)
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return commons.ErrorResponse[models.OpenAccountResponse]("Customer not found"), err
		}
		return commons.ErrorResponse[models.OpenAccountResponse]("failed to open account", "Unable to open account right now"), err
	}

	created, err := s.accountRepo.Create(ctx, domain.Account{CustomerID: customer.ID})
	if err != nil {
		logger.Error("account service open account repository failed", err, logger.Fields{
			"customerId": customer.ID,
		})
		return commons.ErrorResponse[models.OpenAccountResponse]("failed to open account", "Unable to open account right now"), err
	}

	response := models.OpenAccountResponse{
		ID:            created.ID,
		Branch:        created.Branch,
		AccountNumber: created.Number,
		OwnerName:     customer.FullName,
		Balance:       commons.FormatAmount(s.currencySymbol, created.Balance),
		CreatedAt:     created.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("account service open account success", logger.Fields{
		"accountId":     response.ID,
		"accountNumber": response.AccountNumber,
		"customerId":    customer.ID,
	})

	return commons.SuccessResponse("account opened successfully", response), nil
}

func (s *AccountService) Deposit(ctx context.Context, req models.DepositFundsRequest) (commons.Response[models.DepositFundsResponse], error) {
	logger.Info("account service deposit funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service deposit funds validation failed", err, nil)
		return commons.ErrorResponse[models.DepositFundsResponse]("validation failed", err.Error()), err
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		err := domain.ErrInvalidAmount
		return commons.ErrorResponse[models.DepositFundsResponse]("validation failed", err.Error()), err
	}

	if err := s.accountRepo.DepositFunds(ctx, req.AccountNumber, req.Amount); err != nil {
		logger.Error("account service deposit funds failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
			"amount":        req.Amount,
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.DepositFundsResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.DepositFundsResponse]("failed to deposit funds", "Unable to deposit funds right now"), err
	}

	account, err := s.accountRepo.GetByNumber(ctx, req.AccountNumber)
	if err != nil {
		logger.Error("account service get account after deposit failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		return commons.ErrorResponse[models.DepositFundsResponse]("failed to fetch account", "Unable to fetch account right now"), err
	}

	response := models.DepositFundsResponse{
		Branch:          account.Branch,
		AccountNumber:   account.Number,
		DepositedAmount: commons.FormatAmount(s.currencySymbol, req.Amount),
		Balance:         commons.FormatAmount(s.currencySymbol, account.Balance),
	}

	logger.Info("account service deposit funds success", logger.Fields{
		"accountNumber":   response.AccountNumber,
		"depositedAmount": response.DepositedAmount,
		"balance":         response.Balance,
	})

	return commons.SuccessResponse("funds deposited successfully", response), nil
}

func (s *AccountService) Withdraw(ctx context.Context, req models.WithdrawFundsRequest) (commons.Response[models.WithdrawFundsResponse], error) {
	logger.Info("account service withdraw funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service withdraw funds validation failed", err, nil)
		return commons.ErrorResponse[models.WithdrawFundsResponse]("validation failed", err.Error()), err
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		err := domain.ErrInvalidAmount
		return commons.ErrorResponse[models.WithdrawFundsResponse]("validation failed", err.Error()), err
	}

	if err := s.accountRepo.WithdrawFunds(ctx, req.AccountNumber, req.Amount); err != nil {
		logger.Error("account service withdraw funds failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
			"amount":        req.Amount,
		})
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return commons.ErrorResponse[models.WithdrawFundsResponse]("Account not found"), err
		case errors.Is(err, domain.ErrInsufficientFunds):
			return commons.ErrorResponse[models.WithdrawFundsResponse]("failed to withdraw funds", "Balance is not sufficient for this withdrawal"), err
		case errors.Is(err, domain.ErrWithdrawalCapExceeded):
			return commons.ErrorResponse[models.WithdrawFundsResponse]("failed to withdraw funds", "Amount exceeds the per-withdrawal cap"), err
		case errors.Is(err, domain.ErrDailyWithdrawalsReached):
			return commons.ErrorResponse[models.WithdrawFundsResponse]("failed to withdraw funds", "Daily withdrawal limit reached"), err
		default:
			return commons.ErrorResponse[models.WithdrawFundsResponse]("failed to withdraw funds", "Unable to withdraw funds right now"), err
		}
	}

	account, err := s.accountRepo.GetByNumber(ctx, req.AccountNumber)
	if err != nil {
		logger.Error("account service get account after withdrawal failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		return commons.ErrorResponse[models.WithdrawFundsResponse]("failed to fetch account", "Unable to fetch account right now"), err
	}

	response := models.WithdrawFundsResponse{
		Branch:          account.Branch,
		AccountNumber:   account.Number,
		WithdrawnAmount: commons.FormatAmount(s.currencySymbol, req.Amount),
		Balance:         commons.FormatAmount(s.currencySymbol, account.Balance),
		WithdrawalsLeft: s.withdrawalsPerSession - account.WithdrawalsUsed,
	}

	logger.Info("account service withdraw funds success", logger.Fields{
		"accountNumber":   response.AccountNumber,
		"withdrawnAmount": response.WithdrawnAmount,
		"balance":         response.Balance,
	})

	return commons.SuccessResponse("funds withdrawn successfully", response), nil
}

func (s *AccountService) Statement(ctx context.Context, accountNumber int64) (commons.Response[models.StatementResponse], error) {
	logger.Info("account service statement request", logger.Fields{
		"accountNumber": accountNumber,
	})

	if accountNumber <= 0 {
		err := fmt.Errorf("accountNumber must be a positive integer")
		return commons.ErrorResponse[models.StatementResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		logger.Error("account service statement failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.StatementResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.StatementResponse]("failed to fetch statement", "Unable to fetch statement right now"), err
	}

	ownerName := ""
	if owner, err := s.customerRepo.GetByID(ctx, account.CustomerID); err == nil {
		ownerName = owner.FullName
	}

	lines := make([]string, 0, len(account.Entries))
	for _, entry := range account.Entries {
		lines = append(lines, formatEntry(s.currencySymbol, entry))
	}

	response := models.StatementResponse{
		Branch:        account.Branch,
		AccountNumber: account.Number,
		OwnerName:     ownerName,
		Lines:         lines,
		Balance:       commons.FormatAmount(s.currencySymbol, account.Balance),
	}

	logger.Info("account service statement success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"entries":       len(response.Lines),
	})

	return commons.SuccessResponse("statement fetched successfully", response), nil
}

func (s *AccountService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountSummary], error) {
	logger.Info("account service list accounts request", nil)

	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		logger.Error("account service list accounts failed", err, nil)
		return commons.ErrorResponse[[]models.AccountSummary]("failed to list accounts", "Unable to list accounts right now"), err
	}

	summaries := make([]models.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		ownerName := ""
		if owner, err := s.customerRepo.GetByID(ctx, account.CustomerID); err == nil {
			ownerName = owner.FullName
		}
		summaries = append(summaries, models.AccountSummary{
			Branch:        account.Branch,
			AccountNumber: account.Number,
			OwnerName:     ownerName,
		})
	}

	logger.Info("account service list accounts success", logger.Fields{
		"count": len(summaries),
	})

	return commons.SuccessResponse("accounts listed successfully", summaries), nil
}

func formatEntry(symbol string, entry domain.LedgerEntry) string {
	return fmt.Sprintf("%s  %-12s %s",
		entry.CreatedAt.Format("2006-01-02 15:04:05"),
		entry.Description,
		commons.FormatAmount(symbol, entry.Amount),
	)
}
