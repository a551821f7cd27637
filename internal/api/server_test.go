package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Gayatri-ch/UniPay/config"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := config.Config{
		DBDriver:       "sqlite",
		DatabaseDSN:    filepath.Join(t.TempDir(), "unipay.db"),
		AccessSecret:   "test-secret",
		BaseURL:        "*",
		InitialBalance: decimal.RequireFromString("1000.00"),
	}
	db, err := OpenDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return SetupApp(cfg, db, nil)
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any, wantCode int) envelope {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantCode, resp.StatusCode, "%s %s: %s", method, path, raw)

	var out envelope
	_ = json.Unmarshal(raw, &out)
	return out
}

func decode[T any](t *testing.T, e envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(e.Data, &v))
	return v
}

func signupAndLogin(t *testing.T, app *fiber.App) string {
	t.Helper()
	call(t, app, http.MethodPost, "/signup", "", fiber.Map{
		"name": "Alice", "phone": "9876543210", "password": "Passw0rd!", "unique_id": "alice01",
	}, fiber.StatusCreated)

	res := call(t, app, http.MethodPost, "/login", "", fiber.Map{
		"unique_id": "alice01", "password": "Passw0rd!",
	}, fiber.StatusOK)
	login := decode[map[string]string](t, res)
	require.NotEmpty(t, login["token"])
	return login["token"]
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSignupAndLogin(t *testing.T) {
	app := newTestApp(t)
	signupAndLogin(t, app)

	res := call(t, app, http.MethodPost, "/signup", "", fiber.Map{
		"name": "Alice", "phone": "9876543210", "password": "Passw0rd!", "unique_id": "alice01",
	}, fiber.StatusConflict)
	assert.False(t, res.Success)

	res = call(t, app, http.MethodPost, "/signup", "", fiber.Map{
		"name": "Bob", "phone": "123", "password": "Passw0rd!",
	}, fiber.StatusUnprocessableEntity)
	errs := decode[map[string]string](t, res)
	assert.Contains(t, errs, "phone")

	call(t, app, http.MethodPost, "/signup", "", fiber.Map{
		"name": "Bob", "phone": "9876543211", "password": "password",
	}, fiber.StatusBadRequest)

	res = call(t, app, http.MethodPost, "/signup", "", fiber.Map{
		"name": "   ", "phone": "9876543211", "password": "Passw0rd!",
	}, fiber.StatusBadRequest)
	assert.Equal(t, "name and phone are required", res.Message)

	call(t, app, http.MethodPost, "/login", "", fiber.Map{
		"unique_id": "alice01", "password": "wrong",
	}, fiber.StatusUnauthorized)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	app := newTestApp(t)
	call(t, app, http.MethodGet, "/api/banks", "", nil, fiber.StatusUnauthorized)
	call(t, app, http.MethodGet, "/api/wallet", "not-a-token", nil, fiber.StatusUnauthorized)
}

func TestLinkingOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := signupAndLogin(t, app)

	banks := decode[[]map[string]any](t, call(t, app, http.MethodGet, "/api/banks", token, nil, fiber.StatusOK))
	assert.Len(t, banks, 12)

	call(t, app, http.MethodPost, "/api/link/select", token, fiber.Map{"bank_code": "SBI"}, fiber.StatusForbidden)

	consent := decode[map[string]bool](t, call(t, app, http.MethodGet, "/api/consent", token, nil, fiber.StatusOK))
	assert.False(t, consent["granted"])
	call(t, app, http.MethodPost, "/api/consent", token, nil, fiber.StatusOK)

	call(t, app, http.MethodPost, "/api/link/suffix", token, fiber.Map{"ifsc_suffix": "ab"}, fiber.StatusBadRequest)
	call(t, app, http.MethodPost, "/api/link/select", token, fiber.Map{"bank_code": "XYZ"}, fiber.StatusNotFound)
	call(t, app, http.MethodPost, "/api/link/select", token, fiber.Map{"bank_code": "sbi"}, fiber.StatusOK)

	suggestion := decode[map[string]string](t, call(t, app, http.MethodPost, "/api/link/suffix", token,
		fiber.Map{"ifsc_suffix": "ab-12cd"}, fiber.StatusOK))
	assert.Equal(t, "AB12CD", suggestion["suffix"])
	assert.Equal(t, "SBINAB12CD", suggestion["ifsc"])
	assert.Equal(t, "WestBranch", suggestion["branch"])

	call(t, app, http.MethodPost, "/api/link/submit", token, fiber.Map{
		"account_number": "12345", "ifsc_suffix": "ab12cd9", "consent_given": true,
	}, fiber.StatusBadRequest)
	call(t, app, http.MethodPost, "/api/link/submit", token, fiber.Map{
		"account_number": "123456", "ifsc_suffix": "ab12cd9", "consent_given": false,
	}, fiber.StatusForbidden)

	account := decode[map[string]any](t, call(t, app, http.MethodPost, "/api/link/submit", token, fiber.Map{
		"account_number": "123456", "ifsc_suffix": "ab12cd9", "consent_given": true,
	}, fiber.StatusCreated))
	assert.Equal(t, "SBINAB12CD9", account["ifsc"])
	assert.Equal(t, "WestBranch", account["branch_name"])

	accounts := decode[[]map[string]any](t, call(t, app, http.MethodGet, "/api/link/accounts", token, nil, fiber.StatusOK))
	assert.Len(t, accounts, 1)
}

func TestWalletOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := signupAndLogin(t, app)

	wallet := decode[map[string]string](t, call(t, app, http.MethodGet, "/api/wallet", token, nil, fiber.StatusOK))
	assert.Equal(t, "1000.00", wallet["balance"])
	assert.Equal(t, "USD", wallet["currency"])

	call(t, app, http.MethodPost, "/api/wallet/pay", token, fiber.Map{"receiver": "Alice", "amount": 200}, fiber.StatusOK)
	call(t, app, http.MethodPost, "/api/wallet/pay", token, fiber.Map{"receiver": "Bob", "amount": true}, fiber.StatusBadRequest)
	call(t, app, http.MethodPost, "/api/wallet/pay", token, fiber.Map{"receiver": "Bob", "amount": "1e400000000"}, fiber.StatusBadRequest)

	res := call(t, app, http.MethodPost, "/api/wallet/pay", token, fiber.Map{"receiver": "Bob", "amount": "900"}, fiber.StatusConflict)
	failed := decode[map[string]any](t, res)
	assert.Equal(t, "Failed", failed["status"])
	assert.Equal(t, "insufficient balance", res.Message)

	call(t, app, http.MethodPost, "/api/wallet/pay", token, fiber.Map{"receiver": "Bob", "amount": "abc"}, fiber.StatusBadRequest)
	call(t, app, http.MethodPost, "/api/wallet/pay", token, fiber.Map{"receiver": "Bob", "amount": "-1"}, fiber.StatusBadRequest)
	call(t, app, http.MethodPost, "/api/wallet/pay", token, fiber.Map{"amount": "5"}, fiber.StatusUnprocessableEntity)

	wallet = decode[map[string]string](t, call(t, app, http.MethodGet, "/api/wallet", token, nil, fiber.StatusOK))
	assert.Equal(t, "800.00", wallet["balance"])

	history := decode[[]map[string]any](t, call(t, app, http.MethodGet, "/api/wallet/history", token, nil, fiber.StatusOK))
	assert.Len(t, history, 2)

	rewards := decode[[]map[string]any](t, call(t, app, http.MethodGet, "/api/wallet/rewards", token, nil, fiber.StatusOK))
	require.Len(t, rewards, 1)
	assert.Equal(t, "Alice", rewards[0]["receiver"])
}

func TestPinOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := signupAndLogin(t, app)

	call(t, app, http.MethodPost, "/api/pin/verify", token, fiber.Map{"pin": "1234"}, fiber.StatusBadRequest)
	call(t, app, http.MethodPost, "/api/pin", token, fiber.Map{"pin": "12a4"}, fiber.StatusUnprocessableEntity)
	call(t, app, http.MethodPost, "/api/pin", token, fiber.Map{"pin": "1234"}, fiber.StatusOK)
	call(t, app, http.MethodPost, "/api/pin/verify", token, fiber.Map{"pin": "4321"}, fiber.StatusUnauthorized)

	wallet := decode[map[string]string](t, call(t, app, http.MethodPost, "/api/pin/verify", token, fiber.Map{"pin": "1234"}, fiber.StatusOK))
	assert.Equal(t, "1000.00", wallet["balance"])
	assert.Equal(t, "USD", wallet["currency"])
}

func TestPinLockoutOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := signupAndLogin(t, app)
	call(t, app, http.MethodPost, "/api/pin", token, fiber.Map{"pin": "1234"}, fiber.StatusOK)

	call(t, app, http.MethodPost, "/api/pin/verify", token, fiber.Map{"pin": "0000"}, fiber.StatusUnauthorized)
	call(t, app, http.MethodPost, "/api/pin/verify", token, fiber.Map{"pin": "0000"}, fiber.StatusUnauthorized)
	call(t, app, http.MethodPost, "/api/pin/verify", token, fiber.Map{"pin": "0000"}, fiber.StatusLocked)

	res := call(t, app, http.MethodPost, "/api/pin/verify", token, fiber.Map{"pin": "1234"}, fiber.StatusLocked)
	assert.False(t, res.Success)
}

func TestSpendingSummaryOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := signupAndLogin(t, app)

	call(t, app, http.MethodPost, "/api/wallet/pay", token, fiber.Map{"receiver": "Zuzu", "amount": "100"}, fiber.StatusOK)
	call(t, app, http.MethodPost, "/api/wallet/pay", token, fiber.Map{"receiver": "Kepler", "amount": "20"}, fiber.StatusOK)
	call(t, app, http.MethodPost, "/api/wallet/pay", token, fiber.Map{"receiver": "Bob", "amount": "10"}, fiber.StatusOK)
	call(t, app, http.MethodPost, "/api/wallet/pay", token, fiber.Map{"receiver": "Zuzu", "amount": "5000"}, fiber.StatusConflict)

	summary := decode[struct {
		Balance      string `json:"balance"`
		TotalExpense string `json:"total_expense"`
		Categories   []struct {
			Category string `json:"category"`
			Total    string `json:"total"`
		} `json:"categories"`
	}](t, call(t, app, http.MethodGet, "/api/wallet/summary", token, nil, fiber.StatusOK))

	assert.Equal(t, "870", summary.Balance)
	assert.Equal(t, "130", summary.TotalExpense)
	require.Len(t, summary.Categories, 3)
	assert.Equal(t, "Food", summary.Categories[0].Category)
	assert.Equal(t, "100", summary.Categories[0].Total)
	assert.Equal(t, "Stationery", summary.Categories[1].Category)
	assert.Equal(t, "Others", summary.Categories[2].Category)
}

func TestLogoutEndsSession(t *testing.T) {
	app := newTestApp(t)
	token := signupAndLogin(t, app)

	activity := decode[[]map[string]any](t, call(t, app, http.MethodGet, "/api/activity", token, nil, fiber.StatusOK))
	assert.Empty(t, activity)

	call(t, app, http.MethodPost, "/api/logout", token, nil, fiber.StatusOK)
	call(t, app, http.MethodGet, "/api/wallet", token, nil, fiber.StatusUnauthorized)
}
