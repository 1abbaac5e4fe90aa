package vaultRoutes

import (
	vaultControllers "github.com/lifevault/lifevault-api/controllers/vault"
	"github.com/lifevault/lifevault-api/middleware"
	vaultValidators "github.com/lifevault/lifevault-api/validators/vault"

	"github.com/gofiber/fiber/v2"
)

func SetupVaultRoutes(app *fiber.App) {
	vaultGroup := app.Group("/api/vault")

	// Submission is public: claimants may not hold an account
	vaultGroup.Post("/requests", vaultValidators.SubmitRequest(), vaultControllers.SubmitRequest)
	vaultGroup.Get("/requests", middleware.JWTMiddleware, vaultControllers.RequestList)
	vaultGroup.Put("/requests/:id", vaultValidators.ReviewRequest(), middleware.JWTMiddleware,
		middleware.RequireRoles("ADMIN", "SUPER_ADMIN"), vaultControllers.ReviewRequest)
}
