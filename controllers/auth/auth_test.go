package authController_test

import (
	"testing"
	"time"

	"github.com/lifevault/lifevault-api/database"
	"github.com/lifevault/lifevault-api/models"
	"github.com/lifevault/lifevault-api/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerBody(email, mobile string) fiber.Map {
	return fiber.Map{
		"name":    "Ravi Kumar",
		"email":   email,
		"mobile":  mobile,
		"pin":     "1234",
		"address": "42 MG Road, Pune",
	}
}

func TestRegister_NewUserGetsOwnerRoleAndToken(t *testing.T) {
	app := testutil.SetupTestApp(t)

	code, env := testutil.DoJSON(t, app, "POST", "/api/auth/register", "",
		registerBody("ravi@example.com", "9400000001"))
	require.Equal(t, fiber.StatusCreated, code, env.Message)

	var payload struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	testutil.Decode(t, env.Data, &payload)

	assert.Equal(t, "OWNER", payload.User.Role)
	assert.NotEmpty(t, payload.Token)

	// The PIN hash must never leak through the API
	var raw map[string]interface{}
	testutil.Decode(t, env.Data, &raw)
	user := raw["user"].(map[string]interface{})
	_, leaked := user["pinHash"]
	assert.False(t, leaked)
}

func TestRegister_DuplicateEmailOrMobileConflicts(t *testing.T) {
	app := testutil.SetupTestApp(t)

	code, _ := testutil.DoJSON(t, app, "POST", "/api/auth/register", "",
		registerBody("ravi@example.com", "9400000002"))
	require.Equal(t, fiber.StatusCreated, code)

	code, _ = testutil.DoJSON(t, app, "POST", "/api/auth/register", "",
		registerBody("ravi@example.com", "9400000003"))
	assert.Equal(t, fiber.StatusConflict, code)

	code, _ = testutil.DoJSON(t, app, "POST", "/api/auth/register", "",
		registerBody("someone@example.com", "9400000002"))
	assert.Equal(t, fiber.StatusConflict, code)
}

func TestRegister_RejectsShortPin(t *testing.T) {
	app := testutil.SetupTestApp(t)

	body := registerBody("ravi@example.com", "9400000004")
	body["pin"] = "12"

	code, env := testutil.DoJSON(t, app, "POST", "/api/auth/register", "", body)
	require.Equal(t, fiber.StatusBadRequest, code)

	var fieldErrors map[string]string
	testutil.Decode(t, env.Data, &fieldErrors)
	assert.Contains(t, fieldErrors, "pin")
}

func TestLogin_WithPin(t *testing.T) {
	app := testutil.SetupTestApp(t)
	testutil.CreateUser(t, "Ravi", "ravi@example.com", "9400000005", "OWNER")

	code, env := testutil.DoJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"mobile": "9400000005",
		"pin":    "1234",
	})
	require.Equal(t, fiber.StatusOK, code, env.Message)

	var payload struct {
		Token string `json:"token"`
	}
	testutil.Decode(t, env.Data, &payload)
	assert.NotEmpty(t, payload.Token)
}

func TestLogin_WrongPinIsUnauthorized(t *testing.T) {
	app := testutil.SetupTestApp(t)
	testutil.CreateUser(t, "Ravi", "ravi@example.com", "9400000006", "OWNER")

	code, _ := testutil.DoJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"mobile": "9400000006",
		"pin":    "9999",
	})
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestLogin_ThreeWrongPinsBlockTheAccount(t *testing.T) {
	app := testutil.SetupTestApp(t)
	testutil.CreateUser(t, "Ravi", "ravi@example.com", "9400000007", "OWNER")

	for i := 0; i < 3; i++ {
		code, _ := testutil.DoJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
			"mobile": "9400000007",
			"pin":    "9999",
		})
		require.Equal(t, fiber.StatusUnauthorized, code)
	}

	// The right PIN no longer helps while the block is active
	code, env := testutil.DoJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"mobile": "9400000007",
		"pin":    "1234",
	})
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Contains(t, env.Message, "blocked")
}

func TestLogin_WithSeededOtp(t *testing.T) {
	app := testutil.SetupTestApp(t)
	user, _ := testutil.CreateUser(t, "Ravi", "ravi@example.com", "9400000008", "OWNER")

	otp := models.OTP{
		UserID:    user.ID,
		Mobile:    user.Mobile,
		Code:      "654321",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	require.NoError(t, database.Database.Db.Create(&otp).Error)

	code, env := testutil.DoJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"mobile": "9400000008",
		"otp":    "654321",
	})
	require.Equal(t, fiber.StatusOK, code, env.Message)

	// A consumed OTP cannot be replayed
	code, _ = testutil.DoJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"mobile": "9400000008",
		"otp":    "654321",
	})
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestLogin_ExpiredOtpIsRejected(t *testing.T) {
	app := testutil.SetupTestApp(t)
	user, _ := testutil.CreateUser(t, "Ravi", "ravi@example.com", "9400000009", "OWNER")

	otp := models.OTP{
		UserID:    user.ID,
		Mobile:    user.Mobile,
		Code:      "111222",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, database.Database.Db.Create(&otp).Error)

	code, env := testutil.DoJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"mobile": "9400000009",
		"otp":    "111222",
	})
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Contains(t, env.Message, "expired")
}

func TestLoginHistory_RecordsSuccessfulLogins(t *testing.T) {
	app := testutil.SetupTestApp(t)
	_, token := testutil.CreateUser(t, "Ravi", "ravi@example.com", "9400000010", "OWNER")

	code, env := testutil.DoJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"mobile": "9400000010",
		"pin":    "1234",
	})
	require.Equal(t, fiber.StatusOK, code, env.Message)

	code, env = testutil.DoJSON(t, app, "GET", "/api/auth/login/history", token, nil)
	require.Equal(t, fiber.StatusOK, code, env.Message)

	var payload struct {
		LoginTracking []models.LoginTracking `json:"loginTracking"`
		Pagination    struct {
			Total int64 `json:"total"`
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
		} `json:"pagination"`
	}
	testutil.Decode(t, env.Data, &payload)

	require.Len(t, payload.LoginTracking, 1)
	assert.Equal(t, int64(1), payload.Pagination.Total)
	assert.Equal(t, 1, payload.Pagination.Page)
	assert.Equal(t, 10, payload.Pagination.Limit)
}
