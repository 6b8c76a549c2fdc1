package memory

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/retail-teller/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepository keeps every account of the running session in memory.
// All reads hand out snapshots so callers can never mutate the internal
// state behind the mutex.
type AccountRepository struct {
	mu                    sync.Mutex
	branchCode            string
	withdrawalCap         decimal.Decimal
	withdrawalsPerSession int
	nextNumber            int64
	accounts              []*domain.Account
}

func NewAccountRepository(branchCode string, withdrawalCap decimal.Decimal, withdrawalsPerSession int) *AccountRepository {
	return &AccountRepository{
		branchCode:            branchCode,
		withdrawalCap:         withdrawalCap,
		withdrawalsPerSession: withdrawalsPerSession,
		nextNumber:            1,
	}
}

// Create assigns the branch code and the next sequential account number.
// The number counter only advances on success.
func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account.ID = uuid.NewString()
	account.Branch = r.branchCode
	account.Number = r.nextNumber
	account.Balance = decimal.Zero
	account.Entries = nil
	account.WithdrawalsUsed = 0
	account.CreatedAt = time.Now()

	r.nextNumber++
	r.accounts = append(r.accounts, &account)

	return snapshot(&account), nil
}

func (r *AccountRepository) GetByNumber(_ context.Context, number int64) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account := r.findLocked(number)
	if account == nil {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return snapshot(account), nil
}

func (r *AccountRepository) List(_ context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, snapshot(account))
	}

	return out, nil
}

func (r *AccountRepository) DepositFunds(_ context.Context, number int64, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	account := r.findLocked(number)
	if account == nil {
		return domain.ErrAccountNotFound
	}

	account.Balance = account.Balance.Add(amount)
	account.Entries = append(account.Entries, newEntry(domain.EntryKindCredit, "deposit", amount))

	return nil
}

// WithdrawFunds applies the withdrawal policy in a fixed order: balance,
// then the per-operation cap, then the session allowance. The first failing
// check wins and nothing is mutated on failure.
func (r *AccountRepository) WithdrawFunds(_ context.Context, number int64, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	account := r.findLocked(number)
	if account == nil {
		return domain.ErrAccountNotFound
	}

	if amount.GreaterThan(account.Balance) {
		return domain.ErrInsufficientFunds
	}
	if amount.GreaterThan(r.withdrawalCap) {
		return domain.ErrWithdrawalCapExceeded
	}
	if account.WithdrawalsUsed >= r.withdrawalsPerSession {
		return domain.ErrDailyWithdrawalsReached
	}

	account.Balance = account.Balance.Sub(amount)
	account.WithdrawalsUsed++
	account.Entries = append(account.Entries, newEntry(domain.EntryKindDebit, "withdrawal", amount))

	return nil
}

// TransferFunds moves funds between two accounts under a single lock, so a
// transfer is observed either fully applied or not at all. Transfers are not
// subject to the withdrawal cap or the session allowance.
func (r *AccountRepository) TransferFunds(_ context.Context, debitNumber int64, creditNumber int64, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if debitNumber == creditNumber {
		return domain.ErrSameAccount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	debit := r.findLocked(debitNumber)
	credit := r.findLocked(creditNumber)
	if debit == nil || credit == nil {
		return domain.ErrAccountNotFound
	}

	if amount.GreaterThan(debit.Balance) {
		return domain.ErrInsufficientFunds
	}

	debit.Balance = debit.Balance.Sub(amount)
	credit.Balance = credit.Balance.Add(amount)
	debit.Entries = append(debit.Entries, newEntry(domain.EntryKindDebit, "transfer out", amount))
	credit.Entries = append(credit.Entries, newEntry(domain.EntryKindCredit, "transfer in", amount))

	return nil
}

func (r *AccountRepository) findLocked(number int64) *domain.Account {
	for _, account := range r.accounts {
		if account.Number == number {
			return account
		}
	}

	return nil
}

func snapshot(account *domain.Account) domain.Account {
	cp := *account
	cp.Entries = append([]domain.LedgerEntry(nil), account.Entries...)
	return cp
}

func newEntry(kind domain.EntryKind, description string, amount decimal.Decimal) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:          uuid.NewString(),
		Kind:        kind,
		Description: description,
		Amount:      amount,
		CreatedAt:   time.Now(),
	}
}
