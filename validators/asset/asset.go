package assetValidator

import (
	"github.com/lifevault/lifevault-api/middleware"
	commonValidator "github.com/lifevault/lifevault-api/validators/common"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateAssetRequest struct {
	Category      string           `json:"category" validate:"required,oneof=Bank LIC PF Property Stocks Crypto"`
	Institution   string           `json:"institution" validate:"required"`
	AccountNumber string           `json:"accountNumber" validate:"required"`
	CurrentValue  *decimal.Decimal `json:"currentValue" validate:"required"`
	Status        *string          `json:"status" validate:"omitempty,oneof=Active Inactive Matured Closed"`
	Notes         *string          `json:"notes"`
	Documents     []string         `json:"documents"`
}

type UpdateAssetRequest struct {
	Category      *string          `json:"category" validate:"omitempty,oneof=Bank LIC PF Property Stocks Crypto"`
	Institution   *string          `json:"institution" validate:"omitempty,min=1"`
	AccountNumber *string          `json:"accountNumber" validate:"omitempty,min=1"`
	CurrentValue  *decimal.Decimal `json:"currentValue"`
	Status        *string          `json:"status" validate:"omitempty,oneof=Active Inactive Matured Closed"`
	Notes         *string          `json:"notes"`
	Documents     []string         `json:"documents"`
}

// CreateAsset validator middleware
func CreateAsset() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateAssetRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := commonValidator.Run(reqData)

		if reqData.CurrentValue != nil && reqData.CurrentValue.IsNegative() {
			errors["currentValue"] = "Current value must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAsset", reqData)
		return c.Next()
	}
}

// UpdateAsset validator middleware. Only supplied fields are re-validated.
func UpdateAsset() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateAssetRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := commonValidator.Run(reqData)

		if reqData.CurrentValue != nil && reqData.CurrentValue.IsNegative() {
			errors["currentValue"] = "Current value must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssetUpdate", reqData)
		return c.Next()
	}
}
