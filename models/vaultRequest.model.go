package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	VaultStatusPending     = "PENDING"
	VaultStatusUnderReview = "UNDER_REVIEW"
	VaultStatusVerified    = "VERIFIED"
	VaultStatusRejected    = "REJECTED"
)

// VaultRequest is a nominee's claim on a deceased owner's vault.
// Lifecycle: PENDING -> UNDER_REVIEW -> VERIFIED | REJECTED, driven by
// admin review. VERIFIED additionally stamps VaultOpenedAt.
type VaultRequest struct {
	gorm.Model
	ReferenceNo         string     `gorm:"uniqueIndex;not null" json:"referenceNo"`
	NomineeID           *uint      `gorm:"index" json:"nomineeId,omitempty"`
	NomineeName         string     `gorm:"not null" json:"nomineeName"`
	RelationToDeceased  string     `gorm:"not null" json:"relationToDeceased"`
	PhoneNumber         string     `gorm:"not null" json:"phoneNumber"`
	Email               string     `gorm:"not null" json:"email"`
	DeathCertificateUrl string     `gorm:"default:''" json:"deathCertificateUrl,omitempty"`
	Status              string     `gorm:"default:'PENDING';index" json:"status"`
	AdminNotes          string     `gorm:"default:''" json:"adminNotes,omitempty"`
	ReviewedAt          *time.Time `json:"reviewedAt,omitempty"`
	ReviewedBy          *uint      `json:"reviewedBy,omitempty"`
	VaultOpenedAt       *time.Time `json:"vaultOpenedAt,omitempty"`
	IsDeleted           bool       `gorm:"default:false" json:"-"`
}
