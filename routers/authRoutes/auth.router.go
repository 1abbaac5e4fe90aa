package authRoutes

import (
	authControllers "github.com/lifevault/lifevault-api/controllers/auth"
	"github.com/lifevault/lifevault-api/middleware"
	authValidators "github.com/lifevault/lifevault-api/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/otp/send", authValidators.SendOTP(), authControllers.SendOTP)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/login/history", authValidators.LoginHistoryList(), middleware.JWTMiddleware, authControllers.LoginHistoryList)
}
