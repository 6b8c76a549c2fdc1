package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/retail-teller/internal/adapter/cli/models"
	"github.com/api-sage/retail-teller/internal/adapter/repository/memory"
	"github.com/api-sage/retail-teller/internal/domain"
	"github.com/api-sage/retail-teller/internal/usecase/services"
)

func TestCustomerServiceRegisterCustomerValidationError(t *testing.T) {
	svc := services.NewCustomerService(nil)

	_, err := svc.RegisterCustomer(context.Background(), models.RegisterCustomerRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty register request")
	}
}

func TestCustomerServiceRegisterCustomerSuccess(t *testing.T) {
	svc := services.NewCustomerService(memory.NewCustomerRepository())

	resp, err := svc.RegisterCustomer(context.Background(), models.RegisterCustomerRequest{
		FullName:  "Ana Souza",
		TaxID:     "111",
		BirthDate: "1990-04-12",
		Address:   "Rua das Flores 10, Recife",
	})
	if err != nil {
		t.Fatalf("register customer: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success response, got %q", resp.Message)
	}
	if resp.Data == nil || resp.Data.ID == "" {
		t.Fatal("expected response to carry the generated customer id")
	}
}

func TestCustomerServiceRegisterCustomerDuplicateTaxID(t *testing.T) {
	svc := services.NewCustomerService(memory.NewCustomerRepository())
	ctx := context.Background()

	req := models.RegisterCustomerRequest{FullName: "Ana Souza", TaxID: "111"}
	if _, err := svc.RegisterCustomer(ctx, req); err != nil {
		t.Fatalf("register first customer: %v", err)
	}

	resp, err := svc.RegisterCustomer(ctx, models.RegisterCustomerRequest{FullName: "Bruno Lima", TaxID: "111"})
	if !errors.Is(err, domain.ErrDuplicateCustomer) {
		t.Fatalf("expected ErrDuplicateCustomer, got %v", err)
	}
	if resp.Success {
		t.Fatal("expected error response for duplicate tax id")
	}
}

func TestCustomerServiceGetCustomerByTaxID(t *testing.T) {
	svc := services.NewCustomerService(memory.NewCustomerRepository())
	ctx := context.Background()

	if _, err := svc.RegisterCustomer(ctx, models.RegisterCustomerRequest{FullName: "Ana Souza", TaxID: "111"}); err != nil {
		t.Fatalf("register customer: %v", err)
	}

	resp, err := svc.GetCustomerByTaxID(ctx, "111")
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if resp.Data == nil || resp.Data.FullName != "Ana Souza" {
		t.Fatal("expected to fetch the registered customer")
	}

	_, err = svc.GetCustomerByTaxID(ctx, "222")
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}
