package main

import (
	"context"
	"log"
	"os"

	"github.com/api-sage/retail-teller/internal/adapter/cli"
	"github.com/api-sage/retail-teller/internal/adapter/repository/memory"
	"github.com/api-sage/retail-teller/internal/config"
	"github.com/api-sage/retail-teller/internal/logger"
	"github.com/api-sage/retail-teller/internal/usecase/services"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Setup(cfg.LogFile)

	customerRepo := memory.NewCustomerRepository()
	accountRepo := memory.NewAccountRepository(cfg.BranchCode, cfg.WithdrawalCap, cfg.WithdrawalsPerSession)

	customerService := services.NewCustomerService(customerRepo)
	accountService := services.NewAccountService(accountRepo, customerRepo, cfg.CurrencySymbol, cfg.WithdrawalsPerSession)
	transferService := services.NewTransferService(accountRepo, cfg.CurrencySymbol)

	menu := cli.NewMenu(os.Stdin, os.Stdout, customerService, accountService, transferService)
	if err := menu.Run(context.Background()); err != nil {
		log.Fatalf("teller session: %v", err)
	}
}
