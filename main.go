package main

import (
	"github.com/lifevault/lifevault-api/config"
	"github.com/lifevault/lifevault-api/database"
	assetRoutes "github.com/lifevault/lifevault-api/routers/assetRoutes"
	authRoutes "github.com/lifevault/lifevault-api/routers/authRoutes"
	dashboardRoutes "github.com/lifevault/lifevault-api/routers/dashboardRoutes"
	nomineeRoutes "github.com/lifevault/lifevault-api/routers/nomineeRoutes"
	tradingRoutes "github.com/lifevault/lifevault-api/routers/tradingRoutes"
	uploadRoutes "github.com/lifevault/lifevault-api/routers/uploadRoutes"
	vaultRoutes "github.com/lifevault/lifevault-api/routers/vaultRoutes"
	"github.com/lifevault/lifevault-api/utils"

	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded death certificates and other documents
	app.Static("/uploads", config.AppConfig.UploadDir)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	authRoutes.SetupAuthRoutes(app)
	assetRoutes.SetupAssetRoutes(app)
	nomineeRoutes.SetupNomineeRoutes(app)
	tradingRoutes.SetupTradingAccountRoutes(app)
	vaultRoutes.SetupVaultRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)
	uploadRoutes.SetupUploadRoutes(app)

	// Daily housekeeping: expired OTP cleanup + pending claim digest
	utils.InitializeVaultScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
