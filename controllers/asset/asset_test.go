package assetController_test

import (
	"testing"

	"github.com/lifevault/lifevault-api/models"
	"github.com/lifevault/lifevault-api/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAsset_DecimalRoundTrip(t *testing.T) {
	app := testutil.SetupTestApp(t)
	_, token := testutil.CreateUser(t, "Owner", "owner@example.com", "9100000001", "OWNER")

	code, env := testutil.DoJSON(t, app, "POST", "/api/assets/", token, fiber.Map{
		"category":      "Bank",
		"institution":   "HDFC Bank",
		"accountNumber": "50100123456789",
		"currentValue":  "123456.78",
		"notes":         "salary account",
		"documents":     []string{"/uploads/passbook.pdf"},
	})
	require.Equal(t, fiber.StatusCreated, code, env.Message)

	code, env = testutil.DoJSON(t, app, "GET", "/api/assets/", token, nil)
	require.Equal(t, fiber.StatusOK, code)

	var assets []models.Asset
	testutil.Decode(t, env.Data, &assets)
	require.Len(t, assets, 1)

	expected := decimal.RequireFromString("123456.78")
	assert.True(t, assets[0].CurrentValue.Equal(expected),
		"currentValue %s did not survive the round trip", assets[0].CurrentValue)
	assert.Equal(t, "Bank", assets[0].Category)
	assert.Equal(t, models.AssetStatusActive, assets[0].Status)
}

func TestCreateAsset_RejectsNegativeValue(t *testing.T) {
	app := testutil.SetupTestApp(t)
	_, token := testutil.CreateUser(t, "Owner", "owner@example.com", "9100000002", "OWNER")

	code, env := testutil.DoJSON(t, app, "POST", "/api/assets/", token, fiber.Map{
		"category":      "Stocks",
		"institution":   "Zerodha",
		"accountNumber": "ZD1234",
		"currentValue":  "-1",
	})
	require.Equal(t, fiber.StatusBadRequest, code)

	var fieldErrors map[string]string
	testutil.Decode(t, env.Data, &fieldErrors)
	assert.Contains(t, fieldErrors, "currentValue")
}

func TestCreateAsset_RejectsUnknownCategory(t *testing.T) {
	app := testutil.SetupTestApp(t)
	_, token := testutil.CreateUser(t, "Owner", "owner@example.com", "9100000003", "OWNER")

	code, env := testutil.DoJSON(t, app, "POST", "/api/assets/", token, fiber.Map{
		"category":      "Gold",
		"institution":   "MMTC",
		"accountNumber": "G-1",
		"currentValue":  "1000",
	})
	require.Equal(t, fiber.StatusBadRequest, code)

	var fieldErrors map[string]string
	testutil.Decode(t, env.Data, &fieldErrors)
	assert.Contains(t, fieldErrors, "category")
}

func TestUpdateAsset_NotFoundForForeignRow(t *testing.T) {
	app := testutil.SetupTestApp(t)
	_, ownerToken := testutil.CreateUser(t, "Owner", "owner@example.com", "9100000004", "OWNER")
	_, otherToken := testutil.CreateUser(t, "Other", "other@example.com", "9100000005", "OWNER")

	code, env := testutil.DoJSON(t, app, "POST", "/api/assets/", ownerToken, fiber.Map{
		"category":      "PF",
		"institution":   "EPFO",
		"accountNumber": "PF-99",
		"currentValue":  "250000",
	})
	require.Equal(t, fiber.StatusCreated, code, env.Message)

	// Another owner cannot see, let alone update, the row
	code, _ = testutil.DoJSON(t, app, "PUT", "/api/assets/1", otherToken, fiber.Map{
		"notes": "hijacked",
	})
	assert.Equal(t, fiber.StatusNotFound, code)

	// A non-existent id is also a 404, never a silent success
	code, _ = testutil.DoJSON(t, app, "PUT", "/api/assets/42", ownerToken, fiber.Map{
		"notes": "missing",
	})
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestUpdateAsset_MergesSuppliedFields(t *testing.T) {
	app := testutil.SetupTestApp(t)
	_, token := testutil.CreateUser(t, "Owner", "owner@example.com", "9100000006", "OWNER")

	code, env := testutil.DoJSON(t, app, "POST", "/api/assets/", token, fiber.Map{
		"category":      "LIC",
		"institution":   "LIC of India",
		"accountNumber": "POL-555",
		"currentValue":  "800000",
	})
	require.Equal(t, fiber.StatusCreated, code, env.Message)

	code, env = testutil.DoJSON(t, app, "PUT", "/api/assets/1", token, fiber.Map{
		"status":       "Matured",
		"currentValue": "900000",
	})
	require.Equal(t, fiber.StatusOK, code, env.Message)

	var updated models.Asset
	testutil.Decode(t, env.Data, &updated)
	assert.Equal(t, models.AssetStatusMatured, updated.Status)
	assert.True(t, updated.CurrentValue.Equal(decimal.NewFromInt(900000)))
	assert.Equal(t, "LIC of India", updated.Institution) // untouched
}

func TestDeleteAsset_SecondDeleteIsNotFound(t *testing.T) {
	app := testutil.SetupTestApp(t)
	_, token := testutil.CreateUser(t, "Owner", "owner@example.com", "9100000007", "OWNER")

	code, env := testutil.DoJSON(t, app, "POST", "/api/assets/", token, fiber.Map{
		"category":      "Crypto",
		"institution":   "CoinDCX",
		"accountNumber": "W-77",
		"currentValue":  "30000",
	})
	require.Equal(t, fiber.StatusCreated, code, env.Message)

	code, _ = testutil.DoJSON(t, app, "DELETE", "/api/assets/1", token, nil)
	assert.Equal(t, fiber.StatusOK, code)

	code, _ = testutil.DoJSON(t, app, "DELETE", "/api/assets/1", token, nil)
	assert.Equal(t, fiber.StatusNotFound, code)

	// Deleted rows disappear from the list as well
	code, env = testutil.DoJSON(t, app, "GET", "/api/assets/", token, nil)
	require.Equal(t, fiber.StatusOK, code)
	var assets []models.Asset
	testutil.Decode(t, env.Data, &assets)
	assert.Empty(t, assets)
}
