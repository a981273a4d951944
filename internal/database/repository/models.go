package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents an account row. Category and AccessType hold the
// classifier vocabulary (current/non-current asset or liability; liquid,
// illiquid or retirement). Balance is in the account's own currency.
type Account struct {
	ID         string
	Name       string
	Category   string
	AccessType string
	Currency   string
	Balance    decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Snapshot represents a recorded point-in-time net worth.
type Snapshot struct {
	ID          string
	TakenAt     time.Time
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	NetWorth    decimal.Decimal
}
