package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name                string    `gorm:"default:''"`
	Email               string    `gorm:"unique;not null"`
	Mobile              string    `gorm:"unique;not null"`
	Role                string    `gorm:"default:'OWNER'"` // OWNER, NOMINEE, ADMIN, SUPER_ADMIN
	PinHash             string    `gorm:"not null" json:"-"`
	Address             string    `gorm:"default:''"`
	IsMobileVerified    bool      `gorm:"default:false"`
	IsActive            bool      `gorm:"default:true"`
	LastLogin           time.Time `gorm:"default:NULL"`
	FailedLoginAttempts int       `gorm:"default:0"`
	LastFailedLogin     *time.Time
	IsBlocked           bool `gorm:"default:false"`
	BlockedUntil        *time.Time
	IsDeleted           bool `gorm:"default:false"`
}
