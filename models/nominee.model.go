package models

import (
	"gorm.io/gorm"
)

// Nominee is a beneficiary designated by an owner. AllocationPercentage
// is the share of the estate the nominee can claim; the sum across an
// owner's nominees is kept at or below 100 by the nominee controller.
type Nominee struct {
	gorm.Model
	UserID               uint    `gorm:"not null;index" json:"userId"`
	Name                 string  `gorm:"not null" json:"name"`
	Relation             string  `gorm:"not null" json:"relation"` // Spouse, Child, Parent, Sibling, Other
	Mobile               string  `gorm:"not null" json:"mobile"`
	Email                string  `gorm:"not null" json:"email"`
	AllocationPercentage float64 `gorm:"not null" json:"allocationPercentage"`
	IsExecutor           bool    `gorm:"default:false" json:"isExecutor"`
	IsBackup             bool    `gorm:"default:false" json:"isBackup"`
	IsDeleted            bool    `gorm:"default:false" json:"-"`
}
