package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TradingStatusActive    = "Active"
	TradingStatusInactive  = "Inactive"
	TradingStatusSuspended = "Suspended"
	TradingStatusClosed    = "Closed"
)

// TradingAccount is a brokerage/demat holding. NomineeID is a weak
// reference: deleting the nominee does not touch the account.
type TradingAccount struct {
	gorm.Model
	UserID       uint            `gorm:"not null;index" json:"userId"`
	BrokerName   string          `gorm:"not null" json:"brokerName"`
	ClientID     string          `gorm:"not null" json:"clientId"`
	DematNumber  string          `gorm:"not null" json:"dematNumber"`
	NomineeID    *uint           `json:"nomineeId,omitempty"`
	CurrentValue decimal.Decimal `gorm:"type:numeric(18,2)" json:"currentValue"`
	Status       string          `gorm:"default:'Active'" json:"status"`
	IsDeleted    bool            `gorm:"default:false" json:"-"`
}
