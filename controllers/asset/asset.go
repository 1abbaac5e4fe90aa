package assetController

import (
	"encoding/json"

	"github.com/lifevault/lifevault-api/database"
	"github.com/lifevault/lifevault-api/middleware"
	"github.com/lifevault/lifevault-api/models"
	assetValidator "github.com/lifevault/lifevault-api/validators/asset"

	"github.com/gofiber/fiber/v2"
)

func CreateAsset(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedAsset").(*assetValidator.CreateAssetRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	asset := models.Asset{
		UserID:        userId,
		Category:      reqData.Category,
		Institution:   reqData.Institution,
		AccountNumber: reqData.AccountNumber,
		CurrentValue:  *reqData.CurrentValue,
		Status:        models.AssetStatusActive,
	}

	if reqData.Status != nil {
		asset.Status = *reqData.Status
	}
	if reqData.Notes != nil {
		asset.Notes = *reqData.Notes
	}
	if reqData.Documents != nil {
		docs, err := json.Marshal(reqData.Documents)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to encode documents!", nil)
		}
		asset.Documents = docs
	}

	if err := database.Database.Db.Create(&asset).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create asset!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Asset created successfully.", asset)
}

func AssetList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var assets []models.Asset
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userId).
		Order("created_at DESC").
		Find(&assets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assets fetched successfully.", assets)
}

func UpdateAsset(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	assetId, err := c.ParamsInt("id")
	if err != nil || assetId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid asset id!", nil)
	}

	reqData, ok := c.Locals("validatedAssetUpdate").(*assetValidator.UpdateAssetRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var asset models.Asset
	if err := database.Database.Db.
		Where("id = ? AND user_id = ? AND is_deleted = false", assetId, userId).
		First(&asset).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Asset not found!", nil)
	}

	if reqData.Category != nil {
		asset.Category = *reqData.Category
	}
	if reqData.Institution != nil {
		asset.Institution = *reqData.Institution
	}
	if reqData.AccountNumber != nil {
		asset.AccountNumber = *reqData.AccountNumber
	}
	if reqData.CurrentValue != nil {
		asset.CurrentValue = *reqData.CurrentValue
	}
	if reqData.Status != nil {
		asset.Status = *reqData.Status
	}
	if reqData.Notes != nil {
		asset.Notes = *reqData.Notes
	}
	if reqData.Documents != nil {
		docs, err := json.Marshal(reqData.Documents)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to encode documents!", nil)
		}
		asset.Documents = docs
	}

	if err := database.Database.Db.Save(&asset).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update asset!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Asset updated successfully.", asset)
}

func DeleteAsset(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	assetId, err := c.ParamsInt("id")
	if err != nil || assetId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid asset id!", nil)
	}

	var asset models.Asset
	if err := database.Database.Db.
		Where("id = ? AND user_id = ? AND is_deleted = false", assetId, userId).
		First(&asset).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Asset not found!", nil)
	}

	asset.IsDeleted = true
	if err := database.Database.Db.Save(&asset).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete asset!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Asset deleted successfully.", nil)
}
