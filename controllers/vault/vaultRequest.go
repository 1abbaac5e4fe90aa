package vaultController

import (
	"log"
	"time"

	"github.com/lifevault/lifevault-api/database"
	"github.com/lifevault/lifevault-api/middleware"
	"github.com/lifevault/lifevault-api/models"
	"github.com/lifevault/lifevault-api/utils"
	vaultValidator "github.com/lifevault/lifevault-api/validators/vault"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SubmitRequest registers a nominee's claim. The endpoint is public:
// a grieving nominee may not hold an account of their own.
func SubmitRequest(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVaultRequest").(*vaultValidator.SubmitVaultRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	request := models.VaultRequest{
		ReferenceNo:         uuid.NewString(),
		NomineeID:           reqData.NomineeID,
		NomineeName:         reqData.NomineeName,
		RelationToDeceased:  reqData.RelationToDeceased,
		PhoneNumber:         reqData.PhoneNumber,
		Email:               reqData.Email,
		DeathCertificateUrl: reqData.DeathCertificateUrl,
		Status:              models.VaultStatusPending,
	}

	if err := database.Database.Db.Create(&request).Error; err != nil {
		log.Printf("Error saving vault request: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit vault request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Vault request submitted successfully.", request)
}

// RequestList returns claims visible to the caller: admins see all,
// nominees only their own. Owners have no business here.
func RequestList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	db := database.Database.Db.Model(&models.VaultRequest{}).Where("is_deleted = false")

	switch user.Role {
	case "ADMIN", "SUPER_ADMIN":
		// all requests
	case "NOMINEE":
		db = db.Where("nominee_id = ?", userId)
	default:
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	var requests []models.VaultRequest
	if err := db.Order("created_at DESC").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch vault requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vault requests fetched successfully.", requests)
}

// ReviewRequest applies an admin decision. VERIFIED opens the vault and
// stamps the full review trail; REJECTED stamps the trail without opening;
// UNDER_REVIEW only marks the claim as being looked at. Reviewing an
// already-decided claim overwrites the previous decision.
func ReviewRequest(c *fiber.Ctx) error {
	adminId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	requestId, err := c.ParamsInt("id")
	if err != nil || requestId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*vaultValidator.ReviewVaultRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var request models.VaultRequest
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = false", requestId).
		First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vault request not found!", nil)
	}

	now := time.Now()
	request.Status = reqData.Status
	request.AdminNotes = reqData.AdminNotes

	switch reqData.Status {
	case models.VaultStatusVerified:
		request.ReviewedAt = &now
		request.ReviewedBy = &adminId
		request.VaultOpenedAt = &now
	case models.VaultStatusRejected:
		request.ReviewedAt = &now
		request.ReviewedBy = &adminId
	case models.VaultStatusUnderReview:
		// no review trail yet, the claim is merely being looked at
	}

	if err := database.Database.Db.Save(&request).Error; err != nil {
		log.Printf("Error saving vault request review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update vault request!", nil)
	}

	// Claimant notification failures must not fail the review itself
	switch reqData.Status {
	case models.VaultStatusVerified:
		go func(req models.VaultRequest) {
			if err := utils.SendClaimApprovedEmail(req.Email, req.NomineeName, req.ReferenceNo); err != nil {
				log.Printf("Error sending approval email for %s: %v", req.ReferenceNo, err)
			}
		}(request)
	case models.VaultStatusRejected:
		go func(req models.VaultRequest) {
			if err := utils.SendClaimRejectedEmail(req.Email, req.NomineeName, req.ReferenceNo, req.AdminNotes); err != nil {
				log.Printf("Error sending rejection email for %s: %v", req.ReferenceNo, err)
			}
		}(request)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vault request updated successfully.", request)
}
