//nolint:errcheck // unchecked errors are acceptable in test files
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/deepakbishnoi717/atm/internal/config"
	"github.com/deepakbishnoi717/atm/internal/db"
	"github.com/deepakbishnoi717/atm/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testServer runs the full router against the configured PostgreSQL database.
type testServer struct {
	server *httptest.Server
}

func setupServer(t *testing.T) *testServer {
	t.Helper()

	database := db.ConnectForTest(t)
	database.Truncate(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httptest.NewServer(handlers.NewRouter(database, cfg, logger))
	t.Cleanup(server.Close)

	return &testServer{server: server}
}

func (ts *testServer) send(t *testing.T, method, path string, body any, headers map[string]string) (int, map[string]any, http.Header) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	return resp.StatusCode, decoded, resp.Header
}

func (ts *testServer) openAccount(t *testing.T, account int64, pin int, balance float64) {
	t.Helper()

	status, body, _ := ts.send(t, http.MethodPost, "/bankdata", map[string]any{
		"account":   account,
		"name":      "Deepak",
		"pin":       pin,
		"bank_name": "State Bank",
		"address":   "Jodhpur",
		"balance":   balance,
	}, nil)
	require.Equal(t, http.StatusCreated, status, body)
}

func movementBody(account int64, pin int, amount float64) map[string]any {
	return map[string]any{"account": account, "pin": pin, "amount": amount}
}

func TestATMSession(t *testing.T) {
	ts := setupServer(t)
	ts.openAccount(t, 10001, 1234, 500)

	status, body, _ := ts.send(t, http.MethodPost, "/atm/withdraw", movementBody(10001, 1234, 200), nil)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, 300.0, body["new_balance"])
	assert.Equal(t, "Successfully withdrew $200.00", body["message"])

	status, body, _ = ts.send(t, http.MethodPost, "/atm/withdraw", movementBody(10001, 1234, 10000), nil)
	require.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, "Insufficient balance", body["error"])
	assert.Equal(t, 300.0, body["current_balance"])

	status, body, _ = ts.send(t, http.MethodPost, "/atm/withdraw", movementBody(10001, 9999, 10), nil)
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid PIN", body["error"])

	status, body, _ = ts.send(t, http.MethodPost, "/atm/deposit", movementBody(10001, 1234, 0), nil)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Amount must be greater than 0", body["error"])

	status, body, _ = ts.send(t, http.MethodPost, "/atm/deposit", movementBody(10001, 1234, 150), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 450.0, body["new_balance"])

	status, body, _ = ts.send(t, http.MethodGet, "/atm/balance/10001/1234", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 450.0, body["balance"])

	status, body, _ = ts.send(t, http.MethodGet, "/atm/transactions/10001/1234", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(10001), body["account"])

	txns := body["transactions"].([]any)
	require.Len(t, txns, 2)
	first, second := txns[0].(map[string]any), txns[1].(map[string]any)
	assert.Equal(t, "debit", first["type"])
	assert.Equal(t, 300.0, first["balance_after"])
	assert.Equal(t, "credit", second["type"])
	assert.Equal(t, 450.0, second["balance_after"])
}

func TestUnknownAccountLooksLikeWrongPIN(t *testing.T) {
	ts := setupServer(t)

	status, body, _ := ts.send(t, http.MethodGet, "/atm/balance/99999/1234", nil, nil)

	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid PIN", body["error"])
}

func TestAccountAdministration(t *testing.T) {
	ts := setupServer(t)
	ts.openAccount(t, 10001, 1234, 500)

	status, body, _ := ts.send(t, http.MethodPost, "/bankdata", map[string]any{
		"account": 10001, "name": "Other", "pin": 5555, "bank_name": "B", "address": "A", "balance": 1,
	}, nil)
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Account number already exists. Please choose a different one.", body["error"])

	status, body, _ = ts.send(t, http.MethodGet, "/get_account/10001", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.NotContains(t, body, "pin")
	assert.Equal(t, 500.0, body["balance"])

	status, body, _ = ts.send(t, http.MethodPut, "/get_account/10001", map[string]any{
		"name": "Deepak", "pin": 4321, "bank_name": "State Bank", "address": "Jaipur",
	}, nil)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "Jaipur", body["address"])

	status, _, _ = ts.send(t, http.MethodGet, "/atm/balance/10001/1234", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status, "old pin no longer works")

	status, body, _ = ts.send(t, http.MethodGet, "/atm/balance/10001/4321", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 500.0, body["balance"])

	status, _, _ = ts.send(t, http.MethodGet, "/get_account/20002", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestIdempotentWithdrawal(t *testing.T) {
	ts := setupServer(t)
	ts.openAccount(t, 10001, 1234, 500)

	headers := map[string]string{"Idempotency-Key": "withdraw-once"}

	status, first, h1 := ts.send(t, http.MethodPost, "/atm/withdraw", movementBody(10001, 1234, 100), headers)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, h1.Get("X-Idempotent-Replayed"))

	status, second, h2 := ts.send(t, http.MethodPost, "/atm/withdraw", movementBody(10001, 1234, 100), headers)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "true", h2.Get("X-Idempotent-Replayed"))
	assert.Equal(t, first, second)

	_, body, _ := ts.send(t, http.MethodGet, "/atm/balance/10001/1234", nil, nil)
	assert.Equal(t, 400.0, body["balance"])
}

func TestConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
	ts := setupServer(t)
	ts.openAccount(t, 10001, 1234, 500)

	const attempts = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)

	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			raw, _ := json.Marshal(movementBody(10001, 1234, 100))
			req, _ := http.NewRequest(http.MethodPost, ts.server.URL+"/atm/withdraw", bytes.NewReader(raw))
			req.Header.Set("X-Request-ID", fmt.Sprintf("concurrent-%d", i))
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return
			}
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, succeeded)

	_, body, _ := ts.send(t, http.MethodGet, "/atm/balance/10001/1234", nil, nil)
	assert.Equal(t, 0.0, body["balance"])

	_, body, _ = ts.send(t, http.MethodGet, "/atm/transactions/10001/1234", nil, nil)
	assert.Len(t, body["transactions"], 5)
}

func TestHealth(t *testing.T) {
	ts := setupServer(t)

	status, body, _ := ts.send(t, http.MethodGet, "/health", nil, nil)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
}
