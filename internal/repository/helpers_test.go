package repository

import (
	"context"
	"testing"

	"github.com/deepakbishnoi717/atm/internal/db"
	"github.com/deepakbishnoi717/atm/internal/models"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	database := db.ConnectForTest(t)
	database.Truncate(t)

	return database
}

func seedAccount(t *testing.T, database *db.DB, accountNumber int64, balance float64) *models.Account {
	t.Helper()

	account := &models.Account{
		AccountNumber: accountNumber,
		Name:          "Deepak",
		PIN:           1234,
		BankName:      "State Bank",
		Address:       "Jodhpur",
		Balance:       balance,
	}
	require.NoError(t, NewAccountRepository(database.DB).Create(context.Background(), account), "failed to seed account")

	return account
}
