package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/lifevault/lifevault-api/config"
	"github.com/lifevault/lifevault-api/database"
	"github.com/lifevault/lifevault-api/middleware"
	"github.com/lifevault/lifevault-api/models"
	assetRoutes "github.com/lifevault/lifevault-api/routers/assetRoutes"
	authRoutes "github.com/lifevault/lifevault-api/routers/authRoutes"
	dashboardRoutes "github.com/lifevault/lifevault-api/routers/dashboardRoutes"
	nomineeRoutes "github.com/lifevault/lifevault-api/routers/nomineeRoutes"
	tradingRoutes "github.com/lifevault/lifevault-api/routers/tradingRoutes"
	vaultRoutes "github.com/lifevault/lifevault-api/routers/vaultRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbCounter int64

// SetupTestApp wires the full route surface against a fresh in-memory
// sqlite database and returns the Fiber app ready for app.Test calls.
func SetupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "0",
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
		UploadDir: t.TempDir(),
	}

	// A named shared-cache database keeps the schema alive across the
	// pooled connections GORM opens, while staying private to this test.
	dsn := fmt.Sprintf("file:lifevault_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	assetRoutes.SetupAssetRoutes(app)
	nomineeRoutes.SetupNomineeRoutes(app)
	tradingRoutes.SetupTradingAccountRoutes(app)
	vaultRoutes.SetupVaultRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	return app
}

// CreateUser inserts a user with PIN "1234" and returns it with a valid token.
func CreateUser(t *testing.T, name, email, mobile, role string) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:    name,
		Email:   email,
		Mobile:  mobile,
		Role:    role,
		PinHash: string(hash),
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email, user.Mobile)
	require.NoError(t, err)

	return user, token
}

// Envelope is the standard JSON response wrapper every handler emits.
type Envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DoJSON issues a request against the app and decodes the response envelope.
func DoJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, Envelope) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope Envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &envelope), "body: %s", raw)
	}

	return resp.StatusCode, envelope
}

// Decode unmarshals an envelope's data payload into out.
func Decode(t *testing.T, data json.RawMessage, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, out))
}
