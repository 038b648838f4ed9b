package service

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		wantErr bool
	}{
		{name: "positive amount", amount: 200, wantErr: false},
		{name: "fractional amount", amount: 0.01, wantErr: false},
		{name: "zero amount", amount: 0, wantErr: true},
		{name: "negative amount", amount: -50, wantErr: true},
		{name: "not a number", amount: math.NaN(), wantErr: true},
		{name: "infinite amount", amount: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.amount)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAccountNumber(t *testing.T) {
	assert.NoError(t, ValidateAccountNumber(10000))
	assert.NoError(t, ValidateAccountNumber(10001))
	assert.Error(t, ValidateAccountNumber(9999))
	assert.Error(t, ValidateAccountNumber(-10001))
}

func TestValidatePIN(t *testing.T) {
	assert.NoError(t, ValidatePIN(1000))
	assert.NoError(t, ValidatePIN(1234))
	assert.Error(t, ValidatePIN(999))
	assert.Error(t, ValidatePIN(0))
}

func TestValidateHolderName(t *testing.T) {
	assert.NoError(t, ValidateHolderName("Deepak"))
	assert.Error(t, ValidateHolderName(""))
	assert.Error(t, ValidateHolderName("   "))
}

func TestValidateBankName(t *testing.T) {
	tests := []struct {
		name     string
		bankName string
		wantErr  bool
	}{
		{name: "short name", bankName: "SBI", wantErr: false},
		{name: "exactly max length", bankName: strings.Repeat("b", MaxBankNameLen), wantErr: false},
		{name: "too long", bankName: strings.Repeat("b", MaxBankNameLen+1), wantErr: true},
		{name: "empty", bankName: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBankName(tt.bankName)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
