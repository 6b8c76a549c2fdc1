package memory

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/retail-teller/internal/domain"
	"github.com/google/uuid"
)

type CustomerRepository struct {
	mu        sync.Mutex
	customers []domain.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) Create(_ context.Context, customer domain.Customer) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.customers {
		if existing.TaxID == customer.TaxID {
			return domain.Customer{}, domain.ErrDuplicateCustomer
		}
	}

	customer.ID = uuid.NewString()
	customer.CreatedAt = time.Now()
	r.customers = append(r.customers, customer)

	return customer, nil
}

func (r *CustomerRepository) GetByID(_ context.Context, id string) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, customer := range r.customers {
		if customer.ID == id {
			return customer, nil
		}
	}

	return domain.Customer{}, domain.ErrCustomerNotFound
}

func (r *CustomerRepository) GetByTaxID(_ context.Context, taxID string) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, customer := range r.customers {
		if customer.TaxID == taxID {
			return customer, nil
		}
	}

	return domain.Customer{}, domain.ErrCustomerNotFound
}
