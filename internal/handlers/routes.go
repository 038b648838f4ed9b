package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/deepakbishnoi717/atm/internal/api"
	"github.com/deepakbishnoi717/atm/internal/config"
	"github.com/deepakbishnoi717/atm/internal/db"
	"github.com/deepakbishnoi717/atm/internal/middleware"
	"github.com/deepakbishnoi717/atm/internal/repository"
	"github.com/deepakbishnoi717/atm/internal/service"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	atmService := service.NewATMService(database)
	accountService := service.NewAccountService(database)

	handler := NewHandler(atmService, accountService, database, logger)
	idempotencyRepo := repository.NewIdempotencyRepository(database.DB)

	return newRouter(handler, idempotencyRepo, &cfg.CORS, logger)
}

// newRouter wires the handler into the mux and wraps it, innermost first, in
// idempotent replay, CORS and request logging.
func newRouter(
	handler api.StrictServerInterface,
	idempotencyRepo middleware.IdempotencyRepository,
	corsCfg *config.CORSConfig,
	logger *slog.Logger,
) http.Handler {
	strictHandler := api.NewStrictHandlerWithOptions(handler, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: writeRequestError,
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error("failed to write response", "path", r.URL.Path, "error", err)
			writeError(w, http.StatusInternalServerError, api.ErrorResponse{
				Error: msgInternalError,
				Code:  api.ErrorCodeStorageFailure,
			})
		},
	})

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	api.HandlerWithOptions(strictHandler, api.StdHTTPServerOptions{
		BaseRouter:       mux,
		ErrorHandlerFunc: writeRequestError,
	})

	var finalHandler http.Handler = mux

	finalHandler = middleware.Idempotency(idempotencyRepo, logger)(finalHandler)

	// "*" is answered literally, so credentials are only offered to
	// origins listed explicitly in CORS_ALLOWED_ORIGINS.
	finalHandler = cors.Handler(cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Idempotency-Key", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "X-Idempotent-Replayed"},
		AllowCredentials: !slices.Contains(corsCfg.AllowedOrigins, "*"),
		MaxAge:           300,
	})(finalHandler)

	finalHandler = middleware.RequestLog(logger)(finalHandler)

	return finalHandler
}
