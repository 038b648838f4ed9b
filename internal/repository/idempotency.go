package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deepakbishnoi717/atm/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IdempotencyRepository persists replayable responses keyed by
// Idempotency-Key header and request path.
type IdempotencyRepository struct {
	db *gorm.DB
}

// NewIdempotencyRepository creates a new IdempotencyRepository
func NewIdempotencyRepository(conn *gorm.DB) *IdempotencyRepository {
	return &IdempotencyRepository{db: conn}
}

// Get returns the stored response, or nil when the key has not been seen for the path.
func (r *IdempotencyRepository) Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error) {
	var idemKey models.IdempotencyKey
	err := r.db.WithContext(ctx).
		Where("key = ? AND request_path = ?", key, requestPath).
		Take(&idemKey).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get idempotency key: %w", err)
	}

	return &idemKey, nil
}

// Store saves a response. The first stored response for a key and path wins.
func (r *IdempotencyRepository) Store(ctx context.Context, idemKey *models.IdempotencyKey) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(idemKey).Error
	if err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}

	return nil
}
