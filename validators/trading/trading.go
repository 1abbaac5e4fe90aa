package tradingValidator

import (
	"github.com/lifevault/lifevault-api/middleware"
	commonValidator "github.com/lifevault/lifevault-api/validators/common"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateTradingAccountRequest struct {
	BrokerName   string           `json:"brokerName" validate:"required"`
	ClientID     string           `json:"clientId" validate:"required"`
	DematNumber  string           `json:"dematNumber" validate:"required"`
	NomineeID    *uint            `json:"nomineeId"`
	CurrentValue *decimal.Decimal `json:"currentValue" validate:"required"`
	Status       *string          `json:"status" validate:"omitempty,oneof=Active Inactive Suspended Closed"`
}

type UpdateTradingAccountRequest struct {
	BrokerName   *string          `json:"brokerName" validate:"omitempty,min=1"`
	ClientID     *string          `json:"clientId" validate:"omitempty,min=1"`
	DematNumber  *string          `json:"dematNumber" validate:"omitempty,min=1"`
	NomineeID    *uint            `json:"nomineeId"`
	CurrentValue *decimal.Decimal `json:"currentValue"`
	Status       *string          `json:"status" validate:"omitempty,oneof=Active Inactive Suspended Closed"`
}

// CreateTradingAccount validator middleware
func CreateTradingAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTradingAccountRequest)
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

		c.Locals("validatedTradingAccount", reqData)
		return c.Next()
	}
}

// UpdateTradingAccount validator middleware
func UpdateTradingAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateTradingAccountRequest)
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

		c.Locals("validatedTradingAccountUpdate", reqData)
		return c.Next()
	}
}
