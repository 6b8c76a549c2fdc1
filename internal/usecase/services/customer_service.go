package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/retail-teller/internal/adapter/cli/models"
	"github.com/api-sage/retail-teller/internal/commons"
	"github.com/api-sage/retail-teller/internal/domain"
	"github.com/api-sage/retail-teller/internal/logger"
)

type CustomerService struct {
	customerRepo domain.CustomerRepository
}

func NewCustomerService(customerRepo domain.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

func (s *CustomerService) RegisterCustomer(ctx context.Context, req models.RegisterCustomerRequest) (commons.Response[models.RegisterCustomerResponse], error) {
	logger.Info("customer service register customer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("customer service register customer validation failed", err, nil)
		return commons.ErrorResponse[models.RegisterCustomerResponse]("validation failed", err.Error()), err
	}

	customer := domain.Customer{
		FullName:  strings.TrimSpace(req.FullName),
		TaxID:     strings.TrimSpace(req.TaxID),
		BirthDate: strings.TrimSpace(req.BirthDate),
		Address:   strings.TrimSpace(req.Address),
	}

	created, err := s.customerRepo.Create(ctx, customer)
	if err != nil {
		logger.Error("customer service register customer repository failed", err, nil)
		if errors.Is(err, domain.ErrDuplicateCustomer) {
			return commons.ErrorResponse[models.RegisterCustomerResponse]("failed to register customer", "A customer is already registered for this tax id"), err
		}
		return commons.ErrorResponse[models.RegisterCustomerResponse]("failed to register customer", "Unable to register customer right now"), err
	}

	response := models.RegisterCustomerResponse{
		ID:        created.ID,
		FullName:  created.FullName,
		TaxID:     created.TaxID,
		CreatedAt: created.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("customer service register customer success", logger.Fields{
		"customerId": response.ID,
	})

	return commons.SuccessResponse("customer registered successfully", response), nil
}

func (s *CustomerService) GetCustomerByTaxID(ctx context.Context, taxID string) (commons.Response[models.GetCustomerResponse], error) {
	logger.Info("customer service get customer request", nil)

	taxID = strings.TrimSpace(taxID)
	if taxID == "" {
		return commons.ErrorResponse[models.GetCustomerResponse]("validation failed", "taxId is required"), fmt.Errorf("taxId is required")
	}

	customer, err := s.customerRepo.GetByTaxID(ctx, taxID)
	if err != nil {
		logger.Error("customer service get customer failed", err, nil)
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return commons.ErrorResponse[models.GetCustomerResponse]("Customer not found"), err
		}
		return commons.ErrorResponse[models.GetCustomerResponse]("failed to get customer", "Unable to fetch customer right now"), err
	}

	response := models.GetCustomerResponse{
		ID:        customer.ID,
		FullName:  customer.FullName,
		TaxID:     customer.TaxID,
		BirthDate: customer.BirthDate,
		Address:   customer.Address,
		CreatedAt: customer.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("customer service get customer success", logger.Fields{
		"customerId": response.ID,
	})

	return commons.SuccessResponse("customer fetched successfully", response), nil
}
