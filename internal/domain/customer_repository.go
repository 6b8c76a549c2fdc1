package domain

import "context"

type CustomerRepository interface {
	Create(ctx context.Context, customer Customer) (Customer, error)
	GetByID(ctx context.Context, id string) (Customer, error)
	GetByTaxID(ctx context.Context, taxID string) (Customer, error)
}
