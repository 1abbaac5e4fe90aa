package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AssetStatusActive   = "Active"
	AssetStatusInactive = "Inactive"
	AssetStatusMatured  = "Matured"
	AssetStatusClosed   = "Closed"
)

// Asset is a single financial holding registered by an owner.
// Documents holds an ordered JSON array of uploaded document URLs.
type Asset struct {
	gorm.Model
	UserID        uint            `gorm:"not null;index" json:"userId"`
	Category      string          `gorm:"not null" json:"category"` // Bank, LIC, PF, Property, Stocks, Crypto
	Institution   string          `gorm:"not null" json:"institution"`
	AccountNumber string          `gorm:"not null" json:"accountNumber"`
	CurrentValue  decimal.Decimal `gorm:"type:numeric(18,2)" json:"currentValue"`
	Status        string          `gorm:"default:'Active'" json:"status"`
	Notes         string          `gorm:"default:''" json:"notes"`
	Documents     datatypes.JSON  `json:"documents"`
	IsDeleted     bool            `gorm:"default:false" json:"-"`
}
