package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/deepakbishnoi717/atm/internal/api"
	"github.com/deepakbishnoi717/atm/internal/models"
	"github.com/deepakbishnoi717/atm/internal/repository"
	"github.com/deepakbishnoi717/atm/internal/service"
)

const msgInternalError = "internal error"

func mapServiceErrorToCode(code string) api.ErrorCode {
	switch code {
	case service.ErrCodeInvalidPIN:
		return api.ErrorCodeInvalidPin
	case service.ErrCodeInvalidAmount:
		return api.ErrorCodeInvalidAmount
	case service.ErrCodeAccountNotFound:
		return api.ErrorCodeAccountNotFound
	case service.ErrCodeInsufficientBalance:
		return api.ErrorCodeInsufficientBalance
	case service.ErrCodeInvalidRequest:
		return api.ErrorCodeInvalidRequest
	case service.ErrCodeAccountExists:
		return api.ErrorCodeAccountExists
	default:
		return api.ErrorCodeStorageFailure
	}
}

// statusForCode is the single place ATM failure kinds meet HTTP status codes.
func statusForCode(code string) int {
	switch code {
	case service.ErrCodeInvalidPIN:
		return http.StatusUnauthorized
	case service.ErrCodeInvalidAmount, service.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case service.ErrCodeInsufficientBalance:
		return http.StatusPaymentRequired
	case service.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case service.ErrCodeAccountExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

// failure turns an operation error into a status and error body. Storage
// failures and errors outside the service taxonomy are logged here; the
// caller-facing text never carries the underlying cause.
func (h *Handler) failure(op string, err error) (int, api.ErrorResponse) {
	svcErr := extractServiceError(err)
	if svcErr == nil {
		h.logger.Error("unexpected error", "operation", op, "error", err)
		return http.StatusInternalServerError, api.ErrorResponse{
			Success: false,
			Error:   msgInternalError,
			Code:    api.ErrorCodeStorageFailure,
		}
	}

	status := statusForCode(svcErr.Code)
	if status == http.StatusInternalServerError {
		h.logger.Error("operation failed", "operation", op, "code", svcErr.Code, "error", svcErr.Err)
	}

	return status, api.ErrorResponse{
		Success:        false,
		Error:          svcErr.Message,
		Code:           mapServiceErrorToCode(svcErr.Code),
		CurrentBalance: svcErr.CurrentBalance,
	}
}

var missingMovementFields = api.ErrorResponse{
	Success: false,
	Error:   "account, pin and amount are required",
	Code:    api.ErrorCodeInvalidRequest,
}

// movementInput prefers the JSON body and falls back to the account, pin
// and amount query parameters when no body was sent.
func movementInput(body *api.MovementRequest, account *int64, pin *int, amount *float64) (api.MovementRequest, bool) {
	if body != nil {
		return *body, true
	}
	if account == nil || pin == nil || amount == nil {
		return api.MovementRequest{}, false
	}
	return api.MovementRequest{Account: *account, Pin: *pin, Amount: *amount}, true
}

func toAccountView(account *models.Account) api.Account {
	return api.Account{
		Account:   account.AccountNumber,
		Name:      account.Name,
		BankName:  account.BankName,
		Address:   account.Address,
		Balance:   account.Balance,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

func toTransactionEntries(txns []models.Transaction) []api.TransactionEntry {
	entries := make([]api.TransactionEntry, 0, len(txns))
	for _, txn := range txns {
		entries = append(entries, api.TransactionEntry{
			TransactionId: txn.ID,
			Type:          api.TransactionType(txn.Type),
			Amount:        txn.Amount,
			Timestamp:     txn.Timestamp,
			BalanceAfter:  txn.BalanceAfter,
		})
	}
	return entries
}

func listOrder(order *api.GetTransactionsParamsOrder) repository.ListOrder {
	if order != nil && *order == api.GetTransactionsParamsOrderChronological {
		return repository.OrderChronological
	}
	return repository.OrderLedger
}

func writeError(w http.ResponseWriter, status int, body api.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body) //nolint:errcheck // client went away
}

// writeRequestError answers malformed parameters and bodies with the same
// JSON error shape as every other failure.
func writeRequestError(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, api.ErrorResponse{
		Success: false,
		Error:   err.Error(),
		Code:    api.ErrorCodeInvalidRequest,
	})
}
