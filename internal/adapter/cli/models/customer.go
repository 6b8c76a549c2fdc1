package models

import (
	"errors"
	"strings"
)

type RegisterCustomerRequest struct {
	FullName  string `json:"fullName"`
	TaxID     string `json:"taxId"`
	BirthDate string `json:"birthDate"`
	Address   string `json:"address"`
}

func (r RegisterCustomerRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.FullName) == "" {
		errs = append(errs, "fullName is required")
	}
	if strings.TrimSpace(r.TaxID) == "" {
		errs = append(errs, "taxId is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type RegisterCustomerResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	TaxID     string `json:"taxId"`
	CreatedAt string `json:"createdAt"`
}

type GetCustomerResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	TaxID     string `json:"taxId"`
	BirthDate string `json:"birthDate,omitempty"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"createdAt"`
}
