package domain

import "time"

type Customer struct {
	ID        string
	FullName  string
	TaxID     string
	BirthDate string
	Address   string
	CreatedAt time.Time
}
