package models

import (
	"time"

	"gorm.io/gorm"
)

// TransactionType represents the direction of a ledger entry
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "debit"
	TransactionTypeCredit TransactionType = "credit"
)

// Transaction is an append-only ledger entry for a balance change.
type Transaction struct {
	Timestamp    time.Time       `gorm:"column:timestamp;not null"`
	Type         TransactionType `gorm:"column:transaction_type;size:10;not null"`
	ID           int64           `gorm:"column:transaction_id;primaryKey;autoIncrement"`
	AccountID    int64           `gorm:"column:account_id;index;not null"`
	Amount       float64         `gorm:"column:amount;not null"`
	BalanceAfter float64         `gorm:"column:balance_after;not null"`
}

// TableName pins the ledger table name.
func (Transaction) TableName() string {
	return "transactions"
}

// BeforeCreate stamps the entry with the creation time unless the caller set one.
func (t *Transaction) BeforeCreate(_ *gorm.DB) error {
	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now()
	}
	return nil
}

// IdempotencyKey tracks processed requests to prevent duplicate withdrawals and deposits
type IdempotencyKey struct {
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	Key            string    `gorm:"column:key;primaryKey;size:255"`
	RequestPath    string    `gorm:"column:request_path;primaryKey;size:255"`
	ResponseBody   string    `gorm:"column:response_body;type:text;not null"`
	ResponseStatus int       `gorm:"column:response_status;not null"`
}

// TableName pins the idempotency cache table name.
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}
