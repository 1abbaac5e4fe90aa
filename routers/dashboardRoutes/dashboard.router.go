package dashboardRoutes

import (
	dashboardControllers "github.com/lifevault/lifevault-api/controllers/dashboard"
	"github.com/lifevault/lifevault-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboardGroup := app.Group("/api/dashboard")

	dashboardGroup.Get("/stats", middleware.JWTMiddleware, dashboardControllers.Stats)
	dashboardGroup.Get("/batch", middleware.JWTMiddleware, dashboardControllers.Batch)
}
