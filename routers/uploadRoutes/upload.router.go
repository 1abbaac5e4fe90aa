package uploadRoutes

import (
	uploadControllers "github.com/lifevault/lifevault-api/controllers/upload"
	"github.com/lifevault/lifevault-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUploadRoutes(app *fiber.App) {
	app.Post("/api/upload", middleware.JWTMiddleware, uploadControllers.FileUpload)
}
