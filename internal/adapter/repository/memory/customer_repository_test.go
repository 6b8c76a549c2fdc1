package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/retail-teller/internal/adapter/repository/memory"
	"github.com/api-sage/retail-teller/internal/domain"
)

func TestCustomerRepositoryCreateAssignsID(t *testing.T) {
	repo := memory.NewCustomerRepository()

	created, err := repo.Create(context.Background(), domain.Customer{FullName: "Ana Souza", TaxID: "111"})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated customer id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected created at to be set")
	}

	fetched, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if fetched.FullName != "Ana Souza" {
		t.Fatalf("expected full name Ana Souza, got %q", fetched.FullName)
	}
}

func TestCustomerRepositoryRejectsDuplicateTaxID(t *testing.T) {
	repo := memory.NewCustomerRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, domain.Customer{FullName: "Ana Souza", TaxID: "111"}); err != nil {
		t.Fatalf("create first customer: %v", err)
	}

	_, err := repo.Create(ctx, domain.Customer{FullName: "Bruno Lima", TaxID: "111"})
	if !errors.Is(err, domain.ErrDuplicateCustomer) {
		t.Fatalf("expected ErrDuplicateCustomer, got %v", err)
	}

	// The second attempt must not shadow the first record.
	fetched, err := repo.GetByTaxID(ctx, "111")
	if err != nil {
		t.Fatalf("get by tax id: %v", err)
	}
	if fetched.FullName != "Ana Souza" {
		t.Fatalf("expected original customer to remain, got %q", fetched.FullName)
	}
}

func TestCustomerRepositoryGetByTaxIDNotFound(t *testing.T) {
	repo := memory.NewCustomerRepository()

	_, err := repo.GetByTaxID(context.Background(), "999")
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}
