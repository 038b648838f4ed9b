package repository

import (
	"context"
	"testing"

	"github.com/deepakbishnoi717/atm/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyRepository_Store_And_Get(t *testing.T) {
	database := setupTestDB(t)

	repo := NewIdempotencyRepository(database.DB)

	tests := []struct {
		name        string
		key         string
		requestPath string
		body        string
		status      int
	}{
		{
			name:        "withdrawal response",
			key:         "key-1",
			requestPath: "/atm/withdraw",
			status:      200,
			body:        `{"success":true,"new_balance":300}`,
		},
		{
			name:        "same key on a different path",
			key:         "key-1",
			requestPath: "/atm/deposit",
			status:      200,
			body:        `{"success":true,"new_balance":450}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Store(context.Background(), &models.IdempotencyKey{
				Key:            tt.key,
				RequestPath:    tt.requestPath,
				ResponseStatus: tt.status,
				ResponseBody:   tt.body,
			})
			require.NoError(t, err)

			stored, err := repo.Get(context.Background(), tt.key, tt.requestPath)
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.Equal(t, tt.status, stored.ResponseStatus)
			assert.Equal(t, tt.body, stored.ResponseBody)
		})
	}
}

func TestIdempotencyRepository_Get_Missing(t *testing.T) {
	database := setupTestDB(t)

	repo := NewIdempotencyRepository(database.DB)

	stored, err := repo.Get(context.Background(), "never-seen", "/atm/withdraw")

	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestIdempotencyRepository_Store_FirstWins(t *testing.T) {
	database := setupTestDB(t)

	repo := NewIdempotencyRepository(database.DB)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, &models.IdempotencyKey{
		Key: "dup", RequestPath: "/atm/withdraw", ResponseStatus: 200, ResponseBody: `{"first":true}`,
	}))
	require.NoError(t, repo.Store(ctx, &models.IdempotencyKey{
		Key: "dup", RequestPath: "/atm/withdraw", ResponseStatus: 200, ResponseBody: `{"first":false}`,
	}))

	stored, err := repo.Get(ctx, "dup", "/atm/withdraw")
	require.NoError(t, err)
	assert.Equal(t, `{"first":true}`, stored.ResponseBody)
}
