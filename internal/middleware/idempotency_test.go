package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/deepakbishnoi717/atm/internal/middleware/mocks"
	"github.com/deepakbishnoi717/atm/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body)) //nolint:errcheck // test helper
	})
}

func withdrawRequest(key string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/atm/withdraw", strings.NewReader(`{"account":10001,"pin":1234,"amount":200}`))
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	return req
}

func keyed(req *http.Request) *http.Request {
	req.Header.Set("Idempotency-Key", "some-key")
	return req
}

func TestIdempotency_Bypass(t *testing.T) {
	tests := []struct {
		name string
		req  *http.Request
	}{
		{name: "balance lookup", req: keyed(httptest.NewRequest(http.MethodGet, "/atm/balance/10001/1234", nil))},
		{name: "account creation", req: keyed(httptest.NewRequest(http.MethodPost, "/bankdata", nil))},
		{name: "no key", req: withdrawRequest("")},
		{name: "oversized key", req: withdrawRequest(strings.Repeat("k", maxIdempotencyKeyLen+1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockIdempotencyRepository(t)

			handlerCalled := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			Idempotency(repo, testLogger())(handler).ServeHTTP(httptest.NewRecorder(), tt.req)

			assert.True(t, handlerCalled)
			repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
		})
	}
}

func TestIdempotency_FirstSuccessStored(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "atm-key-1", "/atm/withdraw").Return(nil, nil)
	repo.On("Store", mock.Anything, mock.MatchedBy(func(k *models.IdempotencyKey) bool {
		return k.Key == "atm-key-1" &&
			k.RequestPath == "/atm/withdraw" &&
			k.ResponseStatus == http.StatusOK &&
			k.ResponseBody == `{"success":true,"new_balance":300}`
	})).Return(nil).Once()

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(testHandler(http.StatusOK, `{"success":true,"new_balance":300}`)).
		ServeHTTP(rec, withdrawRequest("atm-key-1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Idempotent-Replayed"))
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "atm-key-2", "/atm/deposit").Return(&models.IdempotencyKey{
		Key:            "atm-key-2",
		RequestPath:    "/atm/deposit",
		ResponseStatus: http.StatusOK,
		ResponseBody:   `{"success":true,"new_balance":450}`,
	}, nil)

	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/atm/deposit/", nil)
	req.Header.Set("Idempotency-Key", "atm-key-2")
	rec := httptest.NewRecorder()

	Idempotency(repo, testLogger())(handler).ServeHTTP(rec, req)

	assert.Zero(t, calls, "deposit must not run twice")
	assert.Equal(t, "true", rec.Header().Get("X-Idempotent-Replayed"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"success":true,"new_balance":450}`, rec.Body.String())
}

func TestIdempotency_FailuresNotStored(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusPaymentRequired, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			repo := mocks.NewMockIdempotencyRepository(t)
			repo.On("Get", mock.Anything, "retry-me", "/atm/withdraw").Return(nil, nil)

			rec := httptest.NewRecorder()
			Idempotency(repo, testLogger())(testHandler(status, `{"success":false}`)).
				ServeHTTP(rec, withdrawRequest("retry-me"))

			assert.Equal(t, status, rec.Code)
			repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
		})
	}
}

func TestIdempotency_LookupErrorFailsOpen(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "atm-key-3", "/atm/withdraw").Return(nil, errors.New("connection refused"))

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(testHandler(http.StatusOK, `{"success":true}`)).
		ServeHTTP(rec, withdrawRequest("atm-key-3"))

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestIdempotency_StoreErrorKeepsResponse(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "atm-key-4", "/atm/withdraw").Return(nil, nil)
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).Return(errors.New("disk full"))

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(testHandler(http.StatusOK, `{"success":true}`)).
		ServeHTTP(rec, withdrawRequest("atm-key-4"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"success":true}`, rec.Body.String())
}

func TestIdempotency_ConcurrentRetriesRunOnce(t *testing.T) {
	var (
		mu     sync.Mutex
		stored *models.IdempotencyKey
	)

	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "race-key", "/atm/withdraw").Return(
		func(_ context.Context, _, _ string) (*models.IdempotencyKey, error) {
			mu.Lock()
			defer mu.Unlock()
			return stored, nil
		},
	)
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).Return(
		func(_ context.Context, k *models.IdempotencyKey) error {
			mu.Lock()
			defer mu.Unlock()
			stored = k
			return nil
		},
	).Once()

	var executions atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		executions.Add(1)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true}`)) //nolint:errcheck // test helper
	})
	wrapped := Idempotency(repo, testLogger())(handler)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wrapped.ServeHTTP(httptest.NewRecorder(), withdrawRequest("race-key"))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), executions.Load())
}
