package utils

import (
	"log"
	"time"

	"github.com/lifevault/lifevault-api/config"
	"github.com/lifevault/lifevault-api/database"
	"github.com/lifevault/lifevault-api/models"

	"github.com/robfig/cron/v3"
)

// InitializeVaultScheduler sets up the daily housekeeping jobs
func InitializeVaultScheduler() {
	log.Println("[VAULT-SCHEDULER] Initializing vault scheduler...")

	c := cron.New()

	// Run daily at 9 AM to clean up OTPs and nag admins about stale claims
	c.AddFunc("0 9 * * *", func() {
		log.Println("[VAULT-SCHEDULER] Running daily housekeeping...")
		CleanupExpiredOTPs()
		SendStalePendingDigest()
	})

	c.Start()
	log.Println("[VAULT-SCHEDULER] Vault scheduler started - runs daily at 9 AM")
}

// CleanupExpiredOTPs soft-deletes OTP rows that expired without being used
func CleanupExpiredOTPs() {
	db := database.Database.Db

	result := db.Model(&models.OTP{}).
		Where("is_deleted = false AND is_used = false AND expires_at < ?", time.Now()).
		Update("is_deleted", true)

	if result.Error != nil {
		log.Printf("[VAULT-SCHEDULER] Error cleaning up OTPs: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[VAULT-SCHEDULER] Cleaned up %d expired OTPs", result.RowsAffected)
	}
}

// SendStalePendingDigest emails admins every vault request that has been
// sitting in PENDING for more than 72 hours. Status is never changed here;
// moving a claim to UNDER_REVIEW stays an explicit admin action.
func SendStalePendingDigest() {
	db := database.Database.Db
	cutoff := time.Now().Add(-72 * time.Hour)

	var stale []models.VaultRequest
	if err := db.
		Where("status = ? AND is_deleted = false AND created_at < ?", models.VaultStatusPending, cutoff).
		Order("created_at asc").
		Find(&stale).Error; err != nil {
		log.Printf("[VAULT-SCHEDULER] Error fetching stale pending requests: %v", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	log.Printf("[VAULT-SCHEDULER] Found %d stale pending requests", len(stale))

	if config.AppConfig.AdminEmail == "" {
		log.Println("[VAULT-SCHEDULER] ADMIN_EMAIL not configured, skipping digest")
		return
	}

	if err := SendPendingClaimDigest(config.AppConfig.AdminEmail, stale); err != nil {
		log.Printf("[VAULT-SCHEDULER] Error sending digest: %v", err)
	}
}
