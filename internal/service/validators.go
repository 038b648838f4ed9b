package service

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Account administration limits
const (
	MinAccountNumber = 10000
	MinPIN           = 1000
	MaxBankNameLen   = 100
)

// ValidateAmount checks if amount is valid (positive and finite)
func ValidateAmount(amount float64) error {
	if !(amount > 0) || math.IsInf(amount, 1) {
		return fmt.Errorf("invalid amount: must be greater than 0")
	}

	return nil
}

// ValidateAccountNumber checks the account number has at least five digits
func ValidateAccountNumber(accountNumber int64) error {
	if accountNumber < MinAccountNumber {
		return fmt.Errorf("account number must be at least 5 digits")
	}

	return nil
}

// ValidatePIN checks the PIN has at least four digits
func ValidatePIN(pin int) error {
	if pin < MinPIN {
		return fmt.Errorf("PIN must be at least 4 digits")
	}

	return nil
}

// ValidateHolderName rejects blank account holder names
func ValidateHolderName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}

	return nil
}

// ValidateBankName checks the bank name is present and fits the column
func ValidateBankName(bankName string) error {
	if strings.TrimSpace(bankName) == "" {
		return fmt.Errorf("bank name cannot be empty")
	}
	if utf8.RuneCountInString(bankName) > MaxBankNameLen {
		return fmt.Errorf("bank name must be at most %d characters", MaxBankNameLen)
	}

	return nil
}
