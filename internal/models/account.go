package models

import "time"

// Account is a customer account record as persisted in the bankdata table.
type Account struct {
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
	Name          string    `gorm:"column:name;not null"`
	BankName      string    `gorm:"column:bank_name;size:100;not null"`
	Address       string    `gorm:"column:address"`
	Balance       float64   `gorm:"column:balance;not null;default:0"`
	AccountNumber int64     `gorm:"column:account;primaryKey;autoIncrement:false"`
	PIN           int       `gorm:"column:pin;not null"`
}

// TableName keeps the table name used by existing deployments.
func (Account) TableName() string {
	return "bankdata"
}
