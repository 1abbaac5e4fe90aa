package uploadController

import (
	"log"

	"github.com/lifevault/lifevault-api/config"
	"github.com/lifevault/lifevault-api/middleware"
	"github.com/lifevault/lifevault-api/utils"

	"github.com/gofiber/fiber/v2"
)

// FileUpload stores a document (typically a death certificate scan) and
// returns the public URL to attach to an asset or vault request.
func FileUpload(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is required!", nil)
	}

	fileName, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded successfully.", fiber.Map{
		"fileName": fileName,
		"url":      utils.GetFileURL(fileName),
	})
}
