package nomineeValidator

import (
	"github.com/lifevault/lifevault-api/middleware"
	commonValidator "github.com/lifevault/lifevault-api/validators/common"

	"github.com/gofiber/fiber/v2"
)

type CreateNomineeRequest struct {
	Name                 string   `json:"name" validate:"required,min=2"`
	Relation             string   `json:"relation" validate:"required,oneof=Spouse Child Parent Sibling Other"`
	Mobile               string   `json:"mobile" validate:"required,min=10,max=15"`
	Email                string   `json:"email" validate:"required,email"`
	AllocationPercentage *float64 `json:"allocationPercentage" validate:"required,gte=0,lte=100"`
	IsExecutor           *bool    `json:"isExecutor"`
	IsBackup             *bool    `json:"isBackup"`
}

type UpdateNomineeRequest struct {
	Name                 *string  `json:"name" validate:"omitempty,min=2"`
	Relation             *string  `json:"relation" validate:"omitempty,oneof=Spouse Child Parent Sibling Other"`
	Mobile               *string  `json:"mobile" validate:"omitempty,min=10,max=15"`
	Email                *string  `json:"email" validate:"omitempty,email"`
	AllocationPercentage *float64 `json:"allocationPercentage" validate:"omitempty,gte=0,lte=100"`
	IsExecutor           *bool    `json:"isExecutor"`
	IsBackup             *bool    `json:"isBackup"`
}

// CreateNominee validator middleware
func CreateNominee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateNomineeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := commonValidator.Run(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNominee", reqData)
		return c.Next()
	}
}

// UpdateNominee validator middleware
func UpdateNominee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateNomineeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := commonValidator.Run(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNomineeUpdate", reqData)
		return c.Next()
	}
}
