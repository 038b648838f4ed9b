// Package repository provides data access layer implementations for the ATM API.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deepakbishnoi717/atm/internal/models"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	FindByID(ctx context.Context, accountNumber int64) (*models.Account, error)
	FindByIDForUpdate(ctx context.Context, accountNumber int64) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	Update(ctx context.Context, account *models.Account) error
	UpdateBalance(ctx context.Context, accountNumber int64, balance float64) error
}

// accountRepository implements AccountRepository
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new AccountRepository. conn may be the root
// handle or an open transaction.
func NewAccountRepository(conn *gorm.DB) AccountRepository {
	return &accountRepository{db: conn}
}

// FindByID retrieves an account by its account number
func (r *accountRepository) FindByID(ctx context.Context, accountNumber int64) (*models.Account, error) {
	return r.find(r.db.WithContext(ctx), accountNumber)
}

// FindByIDForUpdate retrieves an account and locks its row until the
// surrounding transaction ends. Outside a transaction the lock is released
// as soon as the statement completes.
func (r *accountRepository) FindByIDForUpdate(ctx context.Context, accountNumber int64) (*models.Account, error) {
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), accountNumber)
}

func (r *accountRepository) find(query *gorm.DB, accountNumber int64) (*models.Account, error) {
	var account models.Account
	err := query.Where("account = ?", accountNumber).Take(&account).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("account %d: %w", accountNumber, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by number: %w", err)
	}

	return &account, nil
}

// Create inserts a new account
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	err := r.db.WithContext(ctx).Create(account).Error
	if isUniqueViolation(err) {
		return fmt.Errorf("account %d: %w", account.AccountNumber, models.ErrDuplicateAccount)
	}
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// Update overwrites the descriptive fields and PIN of an account. The
// balance column is left alone: it only moves through UpdateBalance.
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	result := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("account = ?", account.AccountNumber).
		Select("name", "pin", "bank_name", "address", "updated_at").
		Updates(account)

	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("account %d: %w", account.AccountNumber, models.ErrNotFound)
	}

	return nil
}

// UpdateBalance stores a new balance for the account
func (r *accountRepository) UpdateBalance(ctx context.Context, accountNumber int64, balance float64) error {
	result := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("account = ?", accountNumber).
		Update("balance", balance)

	if result.Error != nil {
		return fmt.Errorf("failed to update account balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("account %d: %w", accountNumber, models.ErrNotFound)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
