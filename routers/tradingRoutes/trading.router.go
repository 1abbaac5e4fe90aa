package tradingRoutes

import (
	tradingControllers "github.com/lifevault/lifevault-api/controllers/trading"
	"github.com/lifevault/lifevault-api/middleware"
	tradingValidators "github.com/lifevault/lifevault-api/validators/trading"

	"github.com/gofiber/fiber/v2"
)

func SetupTradingAccountRoutes(app *fiber.App) {
	tradingGroup := app.Group("/api/trading-accounts")

	tradingGroup.Post("/", tradingValidators.CreateTradingAccount(), middleware.JWTMiddleware, tradingControllers.CreateTradingAccount)
	tradingGroup.Get("/", middleware.JWTMiddleware, tradingControllers.TradingAccountList)
	tradingGroup.Put("/:id", tradingValidators.UpdateTradingAccount(), middleware.JWTMiddleware, tradingControllers.UpdateTradingAccount)
	tradingGroup.Delete("/:id", middleware.JWTMiddleware, tradingControllers.DeleteTradingAccount)
}
