package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/deepakbishnoi717/atm/internal/db"
	"github.com/deepakbishnoi717/atm/internal/models"
	"github.com/deepakbishnoi717/atm/internal/repository"
)

// BalanceResult is the success variant of a balance check
type BalanceResult struct {
	AccountNumber int64
	Balance       float64
}

// MovementResult is the success variant of a withdrawal or deposit
type MovementResult struct {
	Transaction   *models.Transaction
	Message       string
	Type          models.TransactionType
	AccountNumber int64
	Amount        float64
	NewBalance    float64
}

// HistoryResult is the success variant of a transaction history lookup
type HistoryResult struct {
	Transactions  []models.Transaction
	AccountNumber int64
}

// ATMService handles PIN-gated balance checks, withdrawals, deposits and history
type ATMService struct {
	db *db.DB
}

// NewATMService creates a new ATMService
func NewATMService(database *db.DB) *ATMService {
	return &ATMService{
		db: database,
	}
}

// VerifyPIN reports whether the account exists and its PIN matches.
// A missing account and a wrong PIN both yield false.
func (s *ATMService) VerifyPIN(ctx context.Context, accountNumber int64, pin int) (bool, error) {
	return s.verifyPIN(ctx, repository.NewAccountRepository(s.db.DB), accountNumber, pin)
}

// CheckBalance returns the current balance after verifying the PIN
func (s *ATMService) CheckBalance(ctx context.Context, accountNumber int64, pin int) (*BalanceResult, error) {
	return s.checkBalance(ctx, repository.NewAccountRepository(s.db.DB), accountNumber, pin)
}

// Withdraw debits the account and records the movement in the ledger
func (s *ATMService) Withdraw(ctx context.Context, accountNumber int64, pin int, amount float64) (*MovementResult, error) {
	return s.inTransaction(ctx, func(accounts repository.AccountRepository, ledger repository.TransactionRepository) (*MovementResult, error) {
		return s.performWithdraw(ctx, accounts, ledger, accountNumber, pin, amount)
	})
}

// Deposit credits the account and records the movement in the ledger
func (s *ATMService) Deposit(ctx context.Context, accountNumber int64, pin int, amount float64) (*MovementResult, error) {
	return s.inTransaction(ctx, func(accounts repository.AccountRepository, ledger repository.TransactionRepository) (*MovementResult, error) {
		return s.performDeposit(ctx, accounts, ledger, accountNumber, pin, amount)
	})
}

// GetTransactions lists every ledger entry of the account after verifying the PIN
func (s *ATMService) GetTransactions(ctx context.Context, accountNumber int64, pin int, order repository.ListOrder) (*HistoryResult, error) {
	return s.history(
		ctx,
		repository.NewAccountRepository(s.db.DB),
		repository.NewTransactionRepository(s.db.DB),
		accountNumber, pin, order,
	)
}

// inTransaction runs op against repositories bound to one database
// transaction. The balance write and the ledger insert commit together or
// not at all.
func (s *ATMService) inTransaction(
	ctx context.Context,
	op func(repository.AccountRepository, repository.TransactionRepository) (*MovementResult, error),
) (*MovementResult, error) {
	tx := s.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if tx.Error != nil {
		return nil, storageFailure("begin transaction", tx.Error)
	}
	defer func() {
		tx.Rollback() // no-op after a successful commit
	}()

	result, err := op(repository.NewAccountRepository(tx), repository.NewTransactionRepository(tx))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, storageFailure("commit transaction", err)
	}

	return result, nil
}

func (s *ATMService) verifyPIN(ctx context.Context, accounts repository.AccountRepository, accountNumber int64, pin int) (bool, error) {
	account, err := accounts.FindByID(ctx, accountNumber)
	if errors.Is(err, models.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, storageFailure("verify pin", err)
	}

	return account.PIN == pin, nil
}

// authorize runs the PIN gate shared by every operation
func (s *ATMService) authorize(ctx context.Context, accounts repository.AccountRepository, accountNumber int64, pin int) error {
	ok, err := s.verifyPIN(ctx, accounts, accountNumber, pin)
	if err != nil {
		return err
	}
	if !ok {
		return invalidPIN()
	}
	return nil
}

func (s *ATMService) checkBalance(ctx context.Context, accounts repository.AccountRepository, accountNumber int64, pin int) (*BalanceResult, error) {
	if err := s.authorize(ctx, accounts, accountNumber, pin); err != nil {
		return nil, err
	}

	account, err := accounts.FindByID(ctx, accountNumber)
	if err != nil {
		return nil, lookupFailure("load account", err)
	}

	return &BalanceResult{AccountNumber: accountNumber, Balance: account.Balance}, nil
}

func (s *ATMService) performWithdraw(
	ctx context.Context,
	accounts repository.AccountRepository,
	ledger repository.TransactionRepository,
	accountNumber int64,
	pin int,
	amount float64,
) (*MovementResult, error) {
	return s.performMovement(ctx, accounts, ledger, accountNumber, pin, amount, models.TransactionTypeDebit)
}

func (s *ATMService) performDeposit(
	ctx context.Context,
	accounts repository.AccountRepository,
	ledger repository.TransactionRepository,
	accountNumber int64,
	pin int,
	amount float64,
) (*MovementResult, error) {
	return s.performMovement(ctx, accounts, ledger, accountNumber, pin, amount, models.TransactionTypeCredit)
}

// performMovement contains the core balance mutation logic. Checks run in a
// fixed order and the first failure wins: PIN, amount, account, funds.
func (s *ATMService) performMovement(
	ctx context.Context,
	accounts repository.AccountRepository,
	ledger repository.TransactionRepository,
	accountNumber int64,
	pin int,
	amount float64,
	txnType models.TransactionType,
) (*MovementResult, error) {
	if err := s.authorize(ctx, accounts, accountNumber, pin); err != nil {
		return nil, err
	}

	if err := ValidateAmount(amount); err != nil {
		return nil, invalidAmount()
	}

	account, err := accounts.FindByIDForUpdate(ctx, accountNumber)
	if err != nil {
		return nil, lookupFailure("lock account", err)
	}

	var newBalance float64
	var message string
	switch txnType {
	case models.TransactionTypeDebit:
		// The only guard against a negative balance. The column has no
		// CHECK constraint; the row lock above makes this check sufficient.
		if account.Balance < amount {
			return nil, insufficientBalance(account.Balance)
		}
		newBalance = account.Balance - amount
		message = fmt.Sprintf("Successfully withdrew $%.2f", amount)
	case models.TransactionTypeCredit:
		newBalance = account.Balance + amount
		// Balances stay finite.
		if math.IsInf(newBalance, 0) {
			return nil, invalidAmount()
		}
		message = fmt.Sprintf("Successfully deposited $%.2f", amount)
	default:
		return nil, fmt.Errorf("unsupported transaction type %q", txnType)
	}

	if err := accounts.UpdateBalance(ctx, accountNumber, newBalance); err != nil {
		return nil, lookupFailure("update balance", err)
	}

	txn, err := s.recordTransaction(ctx, ledger, accountNumber, txnType, amount, newBalance)
	if err != nil {
		return nil, err
	}

	return &MovementResult{
		Transaction:   txn,
		Message:       message,
		Type:          txnType,
		AccountNumber: accountNumber,
		Amount:        amount,
		NewBalance:    newBalance,
	}, nil
}

// recordTransaction appends the ledger entry for a balance change that has
// already been written.
func (s *ATMService) recordTransaction(
	ctx context.Context,
	ledger repository.TransactionRepository,
	accountNumber int64,
	txnType models.TransactionType,
	amount, balanceAfter float64,
) (*models.Transaction, error) {
	txn := &models.Transaction{
		AccountID:    accountNumber,
		Type:         txnType,
		Amount:       amount,
		BalanceAfter: balanceAfter,
	}

	if err := ledger.Create(ctx, txn); err != nil {
		return nil, storageFailure("record transaction", err)
	}

	return txn, nil
}

func (s *ATMService) history(
	ctx context.Context,
	accounts repository.AccountRepository,
	ledger repository.TransactionRepository,
	accountNumber int64,
	pin int,
	order repository.ListOrder,
) (*HistoryResult, error) {
	if err := s.authorize(ctx, accounts, accountNumber, pin); err != nil {
		return nil, err
	}

	if _, err := accounts.FindByID(ctx, accountNumber); err != nil {
		return nil, lookupFailure("load account", err)
	}

	txns, err := ledger.ListByAccountID(ctx, accountNumber, order)
	if err != nil {
		return nil, storageFailure("list transactions", err)
	}

	return &HistoryResult{AccountNumber: accountNumber, Transactions: txns}, nil
}

// lookupFailure maps a repository error to account_not_found when the row is
// missing and to storage_failure otherwise.
func lookupFailure(op string, err error) *ServiceError {
	if errors.Is(err, models.ErrNotFound) {
		return accountNotFound()
	}
	return storageFailure(op, err)
}
