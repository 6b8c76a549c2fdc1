package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/api-sage/retail-teller/internal/adapter/cli/models"
	"github.com/api-sage/retail-teller/internal/commons"
	"github.com/shopspring/decimal"
)

type CustomerService interface {
	RegisterCustomer(ctx context.Context, req models.RegisterCustomerRequest) (commons.Response[models.RegisterCustomerResponse], error)
	GetCustomerByTaxID(ctx context.Context, taxID string) (commons.Response[models.GetCustomerResponse], error)
}

type AccountService interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error)
	Deposit(ctx context.Context, req models.DepositFundsRequest) (commons.Response[models.DepositFundsResponse], error)
	Withdraw(ctx context.Context, req models.WithdrawFundsRequest) (commons.Response[models.WithdrawFundsResponse], error)
	Statement(ctx context.Context, accountNumber int64) (commons.Response[models.StatementResponse], error)
	ListAccounts(ctx context.Context) (commons.Response[[]models.AccountSummary], error)
}

type TransferService interface {
	TransferFunds(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error)
}

// Menu drives the interactive teller session. It only parses raw input,
// forwards typed requests to the services and renders whatever envelope
// comes back.
type Menu struct {
	in        *bufio.Reader
	out       io.Writer
	customers CustomerService
	accounts  AccountService
	transfers TransferService
}

func NewMenu(in io.Reader, out io.Writer, customers CustomerService, accounts AccountService, transfers TransferService) *Menu {
	return &Menu{
		in:        bufio.NewReader(in),
		out:       out,
		customers: customers,
		accounts:  accounts,
		transfers: transfers,
	}
}

const menuText = `
=========== Retail Teller ===========
[d]  deposit funds
[w]  withdraw funds
[t]  transfer funds
[s]  account statement
[rc] register customer
[fc] find customer
[oa] open account
[la] list accounts
[q]  quit
=> `

func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, menuText)

		choice, err := m.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read menu option: %w", err)
		}

		switch strings.ToLower(choice) {
		case "d":
			m.deposit(ctx)
		case "w":
			m.withdraw(ctx)
		case "t":
			m.transfer(ctx)
		case "s":
			m.statement(ctx)
		case "rc":
			m.registerCustomer(ctx)
		case "fc":
			m.findCustomer(ctx)
		case "oa":
			m.openAccount(ctx)
		case "la":
			m.listAccounts(ctx)
		case "q":
			fmt.Fprintln(m.out, "Session closed.")
			return nil
		default:
			fmt.Fprintln(m.out, "Unknown option, please try again.")
		}
	}
}

func (m *Menu) registerCustomer(ctx context.Context) {
	req := models.RegisterCustomerRequest{}

	var ok bool
	if req.FullName, ok = m.prompt("Full name: "); !ok {
		return
	}
	if req.TaxID, ok = m.prompt("Tax id: "); !ok {
		return
	}
	if req.BirthDate, ok = m.prompt("Birth date: "); !ok {
		return
	}
	if req.Address, ok = m.prompt("Address: "); !ok {
		return
	}

	resp, _ := m.customers.RegisterCustomer(ctx, req)
	if !resp.Success {
		m.printFailure(resp.Message, resp.Errors)
		return
	}

	fmt.Fprintf(m.out, "%s (id %s)\n", resp.Message, resp.Data.ID)
}

func (m *Menu) findCustomer(ctx context.Context) {
	taxID, ok := m.prompt("Tax id: ")
	if !ok {
		return
	}

	resp, _ := m.customers.GetCustomerByTaxID(ctx, taxID)
	if !resp.Success {
		m.printFailure(resp.Message, resp.Errors)
		return
	}

	fmt.Fprintf(m.out, "%s\nName: %s\nTax id: %s\nRegistered: %s\n",
		resp.Message, resp.Data.FullName, resp.Data.TaxID, resp.Data.CreatedAt)
}

func (m *Menu) openAccount(ctx context.Context) {
	taxID, ok := m.prompt("Tax id of the account owner: ")
	if !ok {
		return
	}

	resp, _ := m.accounts.OpenAccount(ctx, models.OpenAccountRequest{TaxID: taxID})
	if !resp.Success {
		m.printFailure(resp.Message, resp.Errors)
		return
	}

	fmt.Fprintf(m.out, "%s\nBranch: %s\nAccount number: %d\nOwner: %s\n",
		resp.Message, resp.Data.Branch, resp.Data.AccountNumber, resp.Data.OwnerName)
}

func (m *Menu) deposit(ctx context.Context) {
	number, ok := m.promptAccountNumber("Account number: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Deposit amount: ")
	if !ok {
		return
	}

	resp, _ := m.accounts.Deposit(ctx, models.DepositFundsRequest{AccountNumber: number, Amount: amount})
	if !resp.Success {
		m.printFailure(resp.Message, resp.Errors)
		return
	}

	fmt.Fprintf(m.out, "%s\nNew balance: %s\n", resp.Message, resp.Data.Balance)
}

func (m *Menu) withdraw(ctx context.Context) {
	number, ok := m.promptAccountNumber("Account number: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Withdrawal amount: ")
	if !ok {
		return
	}

	resp, _ := m.accounts.Withdraw(ctx, models.WithdrawFundsRequest{AccountNumber: number, Amount: amount})
	if !resp.Success {
		m.printFailure(resp.Message, resp.Errors)
		return
	}

	fmt.Fprintf(m.out, "%s\nNew balance: %s\nWithdrawals left today: %d\n",
		resp.Message, resp.Data.Balance, resp.Data.WithdrawalsLeft)
}

func (m *Menu) transfer(ctx context.Context) {
	debit, ok := m.promptAccountNumber("Source account number: ")
	if !ok {
		return
	}
	credit, ok := m.promptAccountNumber("Destination account number: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Transfer amount: ")
	if !ok {
		return
	}

	resp, _ := m.transfers.TransferFunds(ctx, models.TransferRequest{
		DebitAccountNumber:  debit,
		CreditAccountNumber: credit,
		Amount:              amount,
	})
	if !resp.Success {
		m.printFailure(resp.Message, resp.Errors)
		return
	}

	fmt.Fprintf(m.out, "%s\nSource balance: %s\n", resp.Message, resp.Data.DebitBalance)
}

func (m *Menu) statement(ctx context.Context) {
	number, ok := m.promptAccountNumber("Account number: ")
	if !ok {
		return
	}

	resp, _ := m.accounts.Statement(ctx, number)
	if !resp.Success {
		m.printFailure(resp.Message, resp.Errors)
		return
	}

	fmt.Fprintf(m.out, "---------- statement ----------\nBranch %s  Account %d  %s\n",
		resp.Data.Branch, resp.Data.AccountNumber, resp.Data.OwnerName)
	if len(resp.Data.Lines) == 0 {
		fmt.Fprintln(m.out, "No movements recorded.")
	} else {
		for _, line := range resp.Data.Lines {
			fmt.Fprintln(m.out, line)
		}
	}
	fmt.Fprintf(m.out, "Balance: %s\n-------------------------------\n", resp.Data.Balance)
}

func (m *Menu) listAccounts(ctx context.Context) {
	resp, _ := m.accounts.ListAccounts(ctx)
	if !resp.Success {
		m.printFailure(resp.Message, resp.Errors)
		return
	}

	if len(*resp.Data) == 0 {
		fmt.Fprintln(m.out, "No accounts opened yet.")
		return
	}

	for _, summary := range *resp.Data {
		fmt.Fprintf(m.out, "Branch %s  Account %-6d %s\n", summary.Branch, summary.AccountNumber, summary.OwnerName)
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)

	value, err := m.readLine()
	if err != nil {
		return "", false
	}

	return value, true
}

func (m *Menu) promptAccountNumber(label string) (int64, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return 0, false
	}

	number, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || number <= 0 {
		fmt.Fprintln(m.out, "Account number must be a positive integer.")
		return 0, false
	}

	return number, true
}

func (m *Menu) promptAmount(label string) (decimal.Decimal, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		fmt.Fprintln(m.out, "Amount must be a number greater than zero.")
		return decimal.Zero, false
	}

	return amount, true
}

func (m *Menu) printFailure(message string, errs []string) {
	if len(errs) == 0 {
		fmt.Fprintln(m.out, message)
		return
	}

	fmt.Fprintf(m.out, "%s: %s\n", message, strings.Join(errs, "; "))
}

func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimSpace(line), nil
}
