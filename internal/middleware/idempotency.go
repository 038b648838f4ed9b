// Package middleware provides HTTP middleware components for the ATM API.
package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/deepakbishnoi717/atm/internal/models"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "X-Idempotent-Replayed"
	maxIdempotencyKeyLen = 255
)

// Only balance-moving operations are replayable.
var idempotentPaths = map[string]bool{
	"/atm/withdraw": true,
	"/atm/deposit":  true,
}

// IdempotencyRepository stores the first successful response per key and path
type IdempotencyRepository interface {
	Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error)
	Store(ctx context.Context, idemKey *models.IdempotencyKey) error
}

type responseCapture struct {
	http.ResponseWriter
	body       bytes.Buffer
	statusCode int
}

func newResponseCapture(w http.ResponseWriter) *responseCapture {
	return &responseCapture{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rc *responseCapture) WriteHeader(code int) {
	rc.statusCode = code
	rc.ResponseWriter.WriteHeader(code)
}

func (rc *responseCapture) Write(b []byte) (int, error) {
	rc.body.Write(b)
	return rc.ResponseWriter.Write(b)
}

// keyLocks serializes requests that share an idempotency key within this
// process, so a retry that races the original waits for its stored response
// instead of moving money a second time.
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

func (k *keyLocks) lock(id string) func() {
	k.mu.Lock()
	l, ok := k.locks[id]
	if !ok {
		l = &keyLock{}
		k.locks[id] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}

// Idempotency replays the stored response when a withdraw or deposit arrives
// with an Idempotency-Key that has already succeeded on the same path.
// Requests without a key, and failed responses, are never cached.
func Idempotency(repo IdempotencyRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	inFlight := &keyLocks{locks: make(map[string]*keyLock)}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requiresIdempotency(r) {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get(idempotencyKeyHeader)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			if len(key) > maxIdempotencyKeyLen {
				logger.Warn("idempotency key too long, not caching", "length", len(key))
				next.ServeHTTP(w, r)
				return
			}

			requestPath := normalizeRequestPath(r.URL.Path)
			ctx := r.Context()

			unlock := inFlight.lock(requestPath + "\x00" + key)
			defer unlock()

			cached, err := repo.Get(ctx, key, requestPath)
			if err != nil {
				logger.Error("failed to check idempotency cache", "error", err, "path", requestPath)
				next.ServeHTTP(w, r)
				return
			}

			if cached != nil {
				logger.Info("replaying idempotent response",
					"key", key,
					"path", requestPath,
					"status", cached.ResponseStatus,
				)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set(replayedHeader, "true")
				w.WriteHeader(cached.ResponseStatus)
				_, _ = w.Write([]byte(cached.ResponseBody)) //nolint:errcheck // client went away
				return
			}

			capture := newResponseCapture(w)
			next.ServeHTTP(capture, r)

			if !isSuccess(capture.statusCode) {
				return
			}

			err = repo.Store(ctx, &models.IdempotencyKey{
				Key:            key,
				RequestPath:    requestPath,
				ResponseStatus: capture.statusCode,
				ResponseBody:   capture.body.String(),
				CreatedAt:      time.Now(),
			})
			if err != nil {
				logger.Error("failed to store idempotency key", "error", err, "key", key)
			}
		})
	}
}

func requiresIdempotency(r *http.Request) bool {
	return r.Method == http.MethodPost && idempotentPaths[normalizeRequestPath(r.URL.Path)]
}

func normalizeRequestPath(urlPath string) string {
	return strings.TrimSuffix(urlPath, "/")
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
