package tradingController_test

import (
	"testing"

	"github.com/lifevault/lifevault-api/database"
	"github.com/lifevault/lifevault-api/models"
	"github.com/lifevault/lifevault-api/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountBody(nomineeID *uint) fiber.Map {
	body := fiber.Map{
		"brokerName":   "Zerodha",
		"clientId":     "ZD4521",
		"dematNumber":  "IN30012345678901",
		"currentValue": "450000.50",
	}
	if nomineeID != nil {
		body["nomineeId"] = *nomineeID
	}
	return body
}

func seedNominee(t *testing.T, userId uint) models.Nominee {
	t.Helper()
	nominee := models.Nominee{
		UserID: userId, Name: "Spouse", Relation: "Spouse",
		Mobile: "9876543210", Email: "spouse@example.com", AllocationPercentage: 100,
	}
	require.NoError(t, database.Database.Db.Create(&nominee).Error)
	return nominee
}

func TestCreateTradingAccount_DefaultsToActive(t *testing.T) {
	app := testutil.SetupTestApp(t)
	_, token := testutil.CreateUser(t, "Owner", "owner@example.com", "9500000001", "OWNER")

	code, env := testutil.DoJSON(t, app, "POST", "/api/trading-accounts/", token, accountBody(nil))
	require.Equal(t, fiber.StatusCreated, code, env.Message)

	var account models.TradingAccount
	testutil.Decode(t, env.Data, &account)

	assert.Equal(t, models.TradingStatusActive, account.Status)
	assert.Nil(t, account.NomineeID)
	assert.True(t, account.CurrentValue.Equal(decimal.RequireFromString("450000.50")))
}

func TestCreateTradingAccount_RejectsForeignNominee(t *testing.T) {
	app := testutil.SetupTestApp(t)
	_, token := testutil.CreateUser(t, "Owner", "owner@example.com", "9500000002", "OWNER")
	other, _ := testutil.CreateUser(t, "Other", "other@example.com", "9500000003", "OWNER")

	foreign := seedNominee(t, other.ID)

	code, env := testutil.DoJSON(t, app, "POST", "/api/trading-accounts/", token, accountBody(&foreign.ID))
	require.Equal(t, fiber.StatusBadRequest, code)

	var fieldErrors map[string]string
	testutil.Decode(t, env.Data, &fieldErrors)
	assert.Contains(t, fieldErrors, "nomineeId")
}

func TestUpdateTradingAccount_LinksOwnNominee(t *testing.T) {
	app := testutil.SetupTestApp(t)
	owner, token := testutil.CreateUser(t, "Owner", "owner@example.com", "9500000004", "OWNER")

	code, env := testutil.DoJSON(t, app, "POST", "/api/trading-accounts/", token, accountBody(nil))
	require.Equal(t, fiber.StatusCreated, code, env.Message)

	nominee := seedNominee(t, owner.ID)

	code, env = testutil.DoJSON(t, app, "PUT", "/api/trading-accounts/1", token, fiber.Map{
		"nomineeId": nominee.ID,
		"status":    "Suspended",
	})
	require.Equal(t, fiber.StatusOK, code, env.Message)

	var updated models.TradingAccount
	testutil.Decode(t, env.Data, &updated)
	require.NotNil(t, updated.NomineeID)
	assert.Equal(t, nominee.ID, *updated.NomineeID)
	assert.Equal(t, "Suspended", updated.Status)
	assert.Equal(t, "Zerodha", updated.BrokerName) // untouched
}

func TestDeleteTradingAccount_SoftDeleteIsTerminal(t *testing.T) {
	app := testutil.SetupTestApp(t)
	_, token := testutil.CreateUser(t, "Owner", "owner@example.com", "9500000005", "OWNER")

	code, _ := testutil.DoJSON(t, app, "POST", "/api/trading-accounts/", token, accountBody(nil))
	require.Equal(t, fiber.StatusCreated, code)

	code, _ = testutil.DoJSON(t, app, "DELETE", "/api/trading-accounts/1", token, nil)
	assert.Equal(t, fiber.StatusOK, code)

	code, _ = testutil.DoJSON(t, app, "DELETE", "/api/trading-accounts/1", token, nil)
	assert.Equal(t, fiber.StatusNotFound, code)

	code, env := testutil.DoJSON(t, app, "GET", "/api/trading-accounts/", token, nil)
	require.Equal(t, fiber.StatusOK, code)
	var accounts []models.TradingAccount
	testutil.Decode(t, env.Data, &accounts)
	assert.Empty(t, accounts)
}
