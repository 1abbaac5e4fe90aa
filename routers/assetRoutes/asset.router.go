package assetRoutes

import (
	assetControllers "github.com/lifevault/lifevault-api/controllers/asset"
	"github.com/lifevault/lifevault-api/middleware"
	assetValidators "github.com/lifevault/lifevault-api/validators/asset"

	"github.com/gofiber/fiber/v2"
)

func SetupAssetRoutes(app *fiber.App) {
	assetGroup := app.Group("/api/assets")

	assetGroup.Post("/", assetValidators.CreateAsset(), middleware.JWTMiddleware, assetControllers.CreateAsset)
	assetGroup.Get("/", middleware.JWTMiddleware, assetControllers.AssetList)
	assetGroup.Put("/:id", assetValidators.UpdateAsset(), middleware.JWTMiddleware, assetControllers.UpdateAsset)
	assetGroup.Delete("/:id", middleware.JWTMiddleware, assetControllers.DeleteAsset)
}
