package repository

import (
	"context"
	"fmt"

	"github.com/deepakbishnoi717/atm/internal/models"
	"gorm.io/gorm"
)

// ListOrder selects how a transaction listing is sorted
type ListOrder int

const (
	// OrderLedger returns entries in the order they were written.
	OrderLedger ListOrder = iota
	// OrderChronological returns entries by timestamp, oldest first.
	OrderChronological
)

// TransactionRepository defines the interface for ledger data access
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	ListByAccountID(ctx context.Context, accountID int64, order ListOrder) ([]models.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new TransactionRepository. conn may be
// the root handle or an open transaction.
func NewTransactionRepository(conn *gorm.DB) TransactionRepository {
	return &transactionRepository{db: conn}
}

// Create appends an entry to the ledger. The store assigns the ID.
func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// ListByAccountID returns every ledger entry for the account
func (r *transactionRepository) ListByAccountID(ctx context.Context, accountID int64, order ListOrder) ([]models.Transaction, error) {
	query := r.db.WithContext(ctx).Where("account_id = ?", accountID)

	switch order {
	case OrderChronological:
		query = query.Order("timestamp ASC").Order("transaction_id ASC")
	default:
		query = query.Order("transaction_id ASC")
	}

	txns := []models.Transaction{}
	if err := query.Find(&txns).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txns, nil
}
