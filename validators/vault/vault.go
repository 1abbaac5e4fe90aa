package vaultValidator

import (
	"regexp"
	"strings"

	"github.com/lifevault/lifevault-api/middleware"
	"github.com/lifevault/lifevault-api/models"

	"github.com/gofiber/fiber/v2"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Claim phone numbers arrive in whatever format the nominee types them in:
// optional leading +, spaces, dashes, dots and parentheses are accepted as
// long as at least 10 digits remain.
var phoneShapeRe = regexp.MustCompile(`^\+?[\d\s\-.()]+$`)

func isValidClaimPhone(phone string) bool {
	if !phoneShapeRe.MatchString(phone) {
		return false
	}
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10
}

type SubmitVaultRequest struct {
	NomineeName         string `json:"nomineeName"`
	RelationToDeceased  string `json:"relationToDeceased"`
	PhoneNumber         string `json:"phoneNumber"`
	Email               string `json:"email"`
	DeathCertificateUrl string `json:"deathCertificateUrl"`
	NomineeID           *uint  `json:"nomineeId"`
}

// SubmitRequest validator middleware
func SubmitRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitVaultRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.NomineeName) == "" {
			errors["nomineeName"] = "Nominee name is required!"
		}
		if strings.TrimSpace(reqData.RelationToDeceased) == "" {
			errors["relationToDeceased"] = "Relation to deceased is required!"
		}
		if strings.TrimSpace(reqData.PhoneNumber) == "" {
			errors["phoneNumber"] = "Phone number is required!"
		} else if !isValidClaimPhone(reqData.PhoneNumber) {
			errors["phoneNumber"] = "Phone number must contain at least 10 digits!"
		}
		if reqData.Email == "" || !emailRe.MatchString(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVaultRequest", reqData)
		return c.Next()
	}
}

type ReviewVaultRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}

// ReviewRequest validator middleware. Rejections must carry a reason;
// notes stay optional for every other transition.
func ReviewRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewVaultRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Status = strings.ToUpper(strings.TrimSpace(reqData.Status))
		switch reqData.Status {
		case models.VaultStatusUnderReview, models.VaultStatusVerified, models.VaultStatusRejected:
		case "":
			errors["status"] = "Status is required!"
		default:
			errors["status"] = "Invalid status! Allowed: UNDER_REVIEW, VERIFIED, REJECTED"
		}

		if reqData.Status == models.VaultStatusRejected && strings.TrimSpace(reqData.AdminNotes) == "" {
			errors["adminNotes"] = "Rejection reason is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
