package service

import (
	"context"
	"errors"

	"github.com/deepakbishnoi717/atm/internal/db"
	"github.com/deepakbishnoi717/atm/internal/models"
	"github.com/deepakbishnoi717/atm/internal/repository"
)

// AccountInput carries the fields of a new account
type AccountInput struct {
	Name          string
	BankName      string
	Address       string
	AccountNumber int64
	Balance       float64
	PIN           int
}

// AccountUpdate carries the replaceable fields of an existing account.
// The balance is not among them; it only changes through the ATM operations.
type AccountUpdate struct {
	Name     string
	BankName string
	Address  string
	PIN      int
}

// AccountService opens, reads and updates account records
type AccountService struct {
	db *db.DB
}

// NewAccountService creates a new AccountService
func NewAccountService(database *db.DB) *AccountService {
	return &AccountService{db: database}
}

// Open creates a new account with the given opening balance
func (s *AccountService) Open(ctx context.Context, input AccountInput) (*models.Account, error) {
	return s.performOpen(ctx, repository.NewAccountRepository(s.db.DB), input)
}

// Get fetches an account by number
func (s *AccountService) Get(ctx context.Context, accountNumber int64) (*models.Account, error) {
	account, err := repository.NewAccountRepository(s.db.DB).FindByID(ctx, accountNumber)
	if err != nil {
		return nil, lookupFailure("load account", err)
	}
	return account, nil
}

// Update replaces the holder details and PIN of an account
func (s *AccountService) Update(ctx context.Context, accountNumber int64, update AccountUpdate) (*models.Account, error) {
	return s.performUpdate(ctx, repository.NewAccountRepository(s.db.DB), accountNumber, update)
}

func (s *AccountService) performOpen(ctx context.Context, accounts repository.AccountRepository, input AccountInput) (*models.Account, error) {
	if err := validateAccountInput(input); err != nil {
		return nil, err
	}

	account := &models.Account{
		AccountNumber: input.AccountNumber,
		Name:          input.Name,
		PIN:           input.PIN,
		BankName:      input.BankName,
		Address:       input.Address,
		Balance:       input.Balance,
	}

	if err := accounts.Create(ctx, account); err != nil {
		if errors.Is(err, models.ErrDuplicateAccount) {
			return nil, &ServiceError{
				Code:    ErrCodeAccountExists,
				Message: MsgAccountExists,
			}
		}
		return nil, storageFailure("create account", err)
	}

	return account, nil
}

func (s *AccountService) performUpdate(
	ctx context.Context,
	accounts repository.AccountRepository,
	accountNumber int64,
	update AccountUpdate,
) (*models.Account, error) {
	if err := validateAccountUpdate(update); err != nil {
		return nil, err
	}

	err := accounts.Update(ctx, &models.Account{
		AccountNumber: accountNumber,
		Name:          update.Name,
		PIN:           update.PIN,
		BankName:      update.BankName,
		Address:       update.Address,
	})
	if err != nil {
		return nil, lookupFailure("update account", err)
	}

	account, err := accounts.FindByID(ctx, accountNumber)
	if err != nil {
		return nil, lookupFailure("load account", err)
	}

	return account, nil
}

func validateAccountInput(input AccountInput) error {
	if err := ValidateAccountNumber(input.AccountNumber); err != nil {
		return invalidRequest(err)
	}
	return validateAccountUpdate(AccountUpdate{
		Name:     input.Name,
		BankName: input.BankName,
		Address:  input.Address,
		PIN:      input.PIN,
	})
}

func validateAccountUpdate(update AccountUpdate) error {
	if err := ValidateHolderName(update.Name); err != nil {
		return invalidRequest(err)
	}
	if err := ValidatePIN(update.PIN); err != nil {
		return invalidRequest(err)
	}
	if err := ValidateBankName(update.BankName); err != nil {
		return invalidRequest(err)
	}
	return nil
}

func invalidRequest(err error) *ServiceError {
	return &ServiceError{Code: ErrCodeInvalidRequest, Message: err.Error()}
}
