package service

import (
	"context"

	"github.com/deepakbishnoi717/atm/internal/models"
	"github.com/deepakbishnoi717/atm/internal/repository"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Teller handles the PIN-gated ATM operations
type Teller interface {
	VerifyPIN(ctx context.Context, accountNumber int64, pin int) (bool, error)
	CheckBalance(ctx context.Context, accountNumber int64, pin int) (*BalanceResult, error)
	Withdraw(ctx context.Context, accountNumber int64, pin int, amount float64) (*MovementResult, error)
	Deposit(ctx context.Context, accountNumber int64, pin int, amount float64) (*MovementResult, error)
	GetTransactions(ctx context.Context, accountNumber int64, pin int, order repository.ListOrder) (*HistoryResult, error)
}

// AccountManager handles opening and maintaining account records
type AccountManager interface {
	Open(ctx context.Context, input AccountInput) (*models.Account, error)
	Get(ctx context.Context, accountNumber int64) (*models.Account, error)
	Update(ctx context.Context, accountNumber int64, update AccountUpdate) (*models.Account, error)
}

// Ensure concrete types implement interfaces
var (
	_ Teller         = (*ATMService)(nil)
	_ AccountManager = (*AccountService)(nil)
)
