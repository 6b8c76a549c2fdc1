package domain

import "errors"

var ErrDuplicateCustomer = errors.New("customer already exists for tax id")
var ErrCustomerNotFound = errors.New("customer not found")
var ErrAccountNotFound = errors.New("account not found")
var ErrInvalidAmount = errors.New("amount must be greater than zero")
var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrWithdrawalCapExceeded = errors.New("amount exceeds the per-withdrawal cap")
var ErrDailyWithdrawalsReached = errors.New("daily withdrawal limit reached")
var ErrSameAccount = errors.New("debit and credit accounts are the same")
