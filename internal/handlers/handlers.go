// Package handlers implements HTTP handlers for the ATM API.
package handlers

import (
	"log/slog"

	"github.com/deepakbishnoi717/atm/internal/api"
	"github.com/deepakbishnoi717/atm/internal/service"
)

// Handler implements api.StrictServerInterface for all endpoints
type Handler struct {
	teller        service.Teller
	accounts      service.AccountManager
	healthChecker service.HealthChecker
	logger        *slog.Logger
}

var _ api.StrictServerInterface = (*Handler)(nil)

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	teller service.Teller,
	accounts service.AccountManager,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		teller:        teller,
		accounts:      accounts,
		healthChecker: healthChecker,
		logger:        logger,
	}
}
