package nomineeRoutes

import (
	nomineeControllers "github.com/lifevault/lifevault-api/controllers/nominee"
	"github.com/lifevault/lifevault-api/middleware"
	nomineeValidators "github.com/lifevault/lifevault-api/validators/nominee"

	"github.com/gofiber/fiber/v2"
)

func SetupNomineeRoutes(app *fiber.App) {
	nomineeGroup := app.Group("/api/nominees")

	nomineeGroup.Post("/", nomineeValidators.CreateNominee(), middleware.JWTMiddleware, nomineeControllers.CreateNominee)
	nomineeGroup.Get("/", middleware.JWTMiddleware, nomineeControllers.NomineeList)
	nomineeGroup.Put("/:id", nomineeValidators.UpdateNominee(), middleware.JWTMiddleware, nomineeControllers.UpdateNominee)
	nomineeGroup.Delete("/:id", middleware.JWTMiddleware, nomineeControllers.DeleteNominee)
}
