package tradingController

import (
	"github.com/lifevault/lifevault-api/database"
	"github.com/lifevault/lifevault-api/middleware"
	"github.com/lifevault/lifevault-api/models"
	tradingValidator "github.com/lifevault/lifevault-api/validators/trading"

	"github.com/gofiber/fiber/v2"
)

// ownsNominee reports whether the given nominee belongs to the owner.
// Trading accounts keep only a weak reference, but a foreign nominee id
// is still rejected at write time.
func ownsNominee(userId, nomineeId uint) bool {
	var nominee models.Nominee
	err := database.Database.Db.
		Where("id = ? AND user_id = ? AND is_deleted = false", nomineeId, userId).
		First(&nominee).Error
	return err == nil
}

func CreateTradingAccount(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedTradingAccount").(*tradingValidator.CreateTradingAccountRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.NomineeID != nil && !ownsNominee(userId, *reqData.NomineeID) {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"nomineeId": "Nominee not found!",
		})
	}

	account := models.TradingAccount{
		UserID:       userId,
		BrokerName:   reqData.BrokerName,
		ClientID:     reqData.ClientID,
		DematNumber:  reqData.DematNumber,
		NomineeID:    reqData.NomineeID,
		CurrentValue: *reqData.CurrentValue,
		Status:       models.TradingStatusActive,
	}
	if reqData.Status != nil {
		account.Status = *reqData.Status
	}

	if err := database.Database.Db.Create(&account).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create trading account!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Trading account created successfully.", account)
}

func TradingAccountList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var accounts []models.TradingAccount
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userId).
		Order("created_at DESC").
		Find(&accounts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trading accounts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trading accounts fetched successfully.", accounts)
}

func UpdateTradingAccount(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	accountId, err := c.ParamsInt("id")
	if err != nil || accountId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid trading account id!", nil)
	}

	reqData, ok := c.Locals("validatedTradingAccountUpdate").(*tradingValidator.UpdateTradingAccountRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var account models.TradingAccount
	if err := database.Database.Db.
		Where("id = ? AND user_id = ? AND is_deleted = false", accountId, userId).
		First(&account).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trading account not found!", nil)
	}

	if reqData.NomineeID != nil {
		if !ownsNominee(userId, *reqData.NomineeID) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"nomineeId": "Nominee not found!",
			})
		}
		account.NomineeID = reqData.NomineeID
	}

	if reqData.BrokerName != nil {
		account.BrokerName = *reqData.BrokerName
	}
	if reqData.ClientID != nil {
		account.ClientID = *reqData.ClientID
	}
	if reqData.DematNumber != nil {
		account.DematNumber = *reqData.DematNumber
	}
	if reqData.CurrentValue != nil {
		account.CurrentValue = *reqData.CurrentValue
	}
	if reqData.Status != nil {
		account.Status = *reqData.Status
	}

	if err := database.Database.Db.Save(&account).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update trading account!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trading account updated successfully.", account)
}

func DeleteTradingAccount(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	accountId, err := c.ParamsInt("id")
	if err != nil || accountId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid trading account id!", nil)
	}

	var account models.TradingAccount
	if err := database.Database.Db.
		Where("id = ? AND user_id = ? AND is_deleted = false", accountId, userId).
		First(&account).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trading account not found!", nil)
	}

	account.IsDeleted = true
	if err := database.Database.Db.Save(&account).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete trading account!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trading account deleted successfully.", nil)
}
