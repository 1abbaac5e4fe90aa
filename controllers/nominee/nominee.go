package nomineeController

import (
	"github.com/lifevault/lifevault-api/database"
	"github.com/lifevault/lifevault-api/middleware"
	"github.com/lifevault/lifevault-api/models"
	nomineeValidator "github.com/lifevault/lifevault-api/validators/nominee"

	"github.com/gofiber/fiber/v2"
)

// allocatedTotal sums the allocation of an owner's live nominees,
// optionally excluding one row (the one being updated).
func allocatedTotal(userId uint, excludeId uint) (float64, error) {
	var total float64
	db := database.Database.Db.Model(&models.Nominee{}).
		Where("user_id = ? AND is_deleted = false", userId)
	if excludeId > 0 {
		db = db.Where("id <> ?", excludeId)
	}
	err := db.Select("COALESCE(SUM(allocation_percentage), 0)").Scan(&total).Error
	return total, err
}

func CreateNominee(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedNominee").(*nomineeValidator.CreateNomineeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// The owner's nominees can never be promised more than 100% combined
	total, err := allocatedTotal(userId, 0)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check allocations!", nil)
	}
	if total+*reqData.AllocationPercentage > 100 {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"allocationPercentage": "Total allocation across nominees cannot exceed 100%!",
		})
	}

	nominee := models.Nominee{
		UserID:               userId,
		Name:                 reqData.Name,
		Relation:             reqData.Relation,
		Mobile:               reqData.Mobile,
		Email:                reqData.Email,
		AllocationPercentage: *reqData.AllocationPercentage,
	}
	if reqData.IsExecutor != nil {
		nominee.IsExecutor = *reqData.IsExecutor
	}
	if reqData.IsBackup != nil {
		nominee.IsBackup = *reqData.IsBackup
	}

	if err := database.Database.Db.Create(&nominee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create nominee!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Nominee created successfully.", nominee)
}

func NomineeList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var nominees []models.Nominee
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userId).
		Order("created_at DESC").
		Find(&nominees).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch nominees!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Nominees fetched successfully.", nominees)
}

func UpdateNominee(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	nomineeId, err := c.ParamsInt("id")
	if err != nil || nomineeId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid nominee id!", nil)
	}

	reqData, ok := c.Locals("validatedNomineeUpdate").(*nomineeValidator.UpdateNomineeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var nominee models.Nominee
	if err := database.Database.Db.
		Where("id = ? AND user_id = ? AND is_deleted = false", nomineeId, userId).
		First(&nominee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Nominee not found!", nil)
	}

	if reqData.AllocationPercentage != nil {
		total, err := allocatedTotal(userId, nominee.ID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check allocations!", nil)
		}
		if total+*reqData.AllocationPercentage > 100 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"allocationPercentage": "Total allocation across nominees cannot exceed 100%!",
			})
		}
		nominee.AllocationPercentage = *reqData.AllocationPercentage
	}

	if reqData.Name != nil {
		nominee.Name = *reqData.Name
	}
	if reqData.Relation != nil {
		nominee.Relation = *reqData.Relation
	}
	if reqData.Mobile != nil {
		nominee.Mobile = *reqData.Mobile
	}
	if reqData.Email != nil {
		nominee.Email = *reqData.Email
	}
	if reqData.IsExecutor != nil {
		nominee.IsExecutor = *reqData.IsExecutor
	}
	if reqData.IsBackup != nil {
		nominee.IsBackup = *reqData.IsBackup
	}

	if err := database.Database.Db.Save(&nominee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update nominee!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Nominee updated successfully.", nominee)
}

func DeleteNominee(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	nomineeId, err := c.ParamsInt("id")
	if err != nil || nomineeId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid nominee id!", nil)
	}

	var nominee models.Nominee
	if err := database.Database.Db.
		Where("id = ? AND user_id = ? AND is_deleted = false", nomineeId, userId).
		First(&nominee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Nominee not found!", nil)
	}

	nominee.IsDeleted = true
	if err := database.Database.Db.Save(&nominee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete nominee!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Nominee deleted successfully.", nil)
}
