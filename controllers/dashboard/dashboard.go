package dashboardController

import (
	"github.com/lifevault/lifevault-api/database"
	"github.com/lifevault/lifevault-api/middleware"
	"github.com/lifevault/lifevault-api/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// chartPalette assigns slice colors deterministically by asset index so
// the frontend renders the same chart for the same portfolio every time.
var chartPalette = []string{"#2563EB", "#16A34A", "#D97706", "#DC2626", "#7C3AED", "#0D9488"}

type AllocationSlice struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
	Color      string          `json:"color"`
}

// computeStats builds the full dashboard rollup for one owner. Net worth
// counts Active assets only; everything is recomputed on each call.
func computeStats(userId uint) (fiber.Map, error) {
	db := database.Database.Db

	var activeAssets []models.Asset
	if err := db.
		Where("user_id = ? AND status = ? AND is_deleted = false", userId, models.AssetStatusActive).
		Order("created_at DESC").
		Find(&activeAssets).Error; err != nil {
		return nil, err
	}

	netWorth := decimal.Zero
	for _, asset := range activeAssets {
		netWorth = netWorth.Add(asset.CurrentValue)
	}

	hundred := decimal.NewFromInt(100)
	allocation := make([]AllocationSlice, len(activeAssets))
	for i, asset := range activeAssets {
		percentage := decimal.Zero
		if !netWorth.IsZero() {
			percentage = asset.CurrentValue.Mul(hundred).Div(netWorth)
		}
		allocation[i] = AllocationSlice{
			Name:       asset.Category,
			Amount:     asset.CurrentValue,
			Percentage: percentage,
			Color:      chartPalette[i%len(chartPalette)],
		}
	}

	var totalNominees int64
	if err := db.Model(&models.Nominee{}).
		Where("user_id = ? AND is_deleted = false", userId).
		Count(&totalNominees).Error; err != nil {
		return nil, err
	}

	var totalTradingAccounts int64
	if err := db.Model(&models.TradingAccount{}).
		Where("user_id = ? AND is_deleted = false", userId).
		Count(&totalTradingAccounts).Error; err != nil {
		return nil, err
	}

	return fiber.Map{
		"totalAssets":          len(activeAssets),
		"totalNominees":        totalNominees,
		"totalTradingAccounts": totalTradingAccounts,
		"netWorth":             netWorth,
		"assetAllocation":      allocation,
	}, nil
}

func Stats(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	stats, err := computeStats(userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute dashboard stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully.", stats)
}

// Batch bundles stats with the owner's full records so the dashboard
// hydrates from a single round trip.
func Batch(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	stats, err := computeStats(userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute dashboard stats!", nil)
	}

	db := database.Database.Db

	var assets []models.Asset
	if err := db.Where("user_id = ? AND is_deleted = false", userId).
		Order("created_at DESC").Find(&assets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assets!", nil)
	}

	var nominees []models.Nominee
	if err := db.Where("user_id = ? AND is_deleted = false", userId).
		Order("created_at DESC").Find(&nominees).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch nominees!", nil)
	}

	var tradingAccounts []models.TradingAccount
	if err := db.Where("user_id = ? AND is_deleted = false", userId).
		Order("created_at DESC").Find(&tradingAccounts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trading accounts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard batch fetched successfully.", fiber.Map{
		"stats":           stats,
		"assets":          assets,
		"nominees":        nominees,
		"tradingAccounts": tradingAccounts,
	})
}
