package handlers

import (
	"context"
	"net/http"

	"github.com/deepakbishnoi717/atm/internal/api"
	"github.com/deepakbishnoi717/atm/internal/service"
)

// GetBalance handles GET /atm/balance/{account}/{pin}
func (h *Handler) GetBalance(
	ctx context.Context,
	request api.GetBalanceRequestObject,
) (api.GetBalanceResponseObject, error) {
	result, err := h.teller.CheckBalance(ctx, request.Account, request.Pin)
	if err != nil {
		status, body := h.failure("check_balance", err)
		switch status {
		case http.StatusUnauthorized:
			return api.GetBalance401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
		case http.StatusNotFound:
			return api.GetBalance404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		default:
			return api.GetBalance500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
		}
	}

	return api.GetBalance200JSONResponse{
		Success: true,
		Account: result.AccountNumber,
		Balance: result.Balance,
	}, nil
}

// Withdraw handles POST /atm/withdraw
func (h *Handler) Withdraw(
	ctx context.Context,
	request api.WithdrawRequestObject,
) (api.WithdrawResponseObject, error) {
	input, ok := movementInput(request.Body, request.Params.Account, request.Params.Pin, request.Params.Amount)
	if !ok {
		return api.Withdraw400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(missingMovementFields)}, nil
	}

	result, err := h.teller.Withdraw(ctx, input.Account, input.Pin, input.Amount)
	if err != nil {
		status, errBody := h.failure("withdraw", err)
		switch status {
		case http.StatusBadRequest:
			return api.Withdraw400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(errBody)}, nil
		case http.StatusUnauthorized:
			return api.Withdraw401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(errBody)}, nil
		case http.StatusPaymentRequired:
			return api.Withdraw402JSONResponse{PaymentRequiredJSONResponse: api.PaymentRequiredJSONResponse(errBody)}, nil
		case http.StatusNotFound:
			return api.Withdraw404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(errBody)}, nil
		default:
			return api.Withdraw500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(errBody)}, nil
		}
	}

	h.logger.Info("withdrawal completed",
		"account", result.AccountNumber,
		"amount", result.Amount,
		"transaction_id", result.Transaction.ID,
	)

	return api.Withdraw200JSONResponse(movementResponse(result)), nil
}

// Deposit handles POST /atm/deposit
func (h *Handler) Deposit(
	ctx context.Context,
	request api.DepositRequestObject,
) (api.DepositResponseObject, error) {
	input, ok := movementInput(request.Body, request.Params.Account, request.Params.Pin, request.Params.Amount)
	if !ok {
		return api.Deposit400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(missingMovementFields)}, nil
	}

	result, err := h.teller.Deposit(ctx, input.Account, input.Pin, input.Amount)
	if err != nil {
		status, errBody := h.failure("deposit", err)
		switch status {
		case http.StatusBadRequest:
			return api.Deposit400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(errBody)}, nil
		case http.StatusUnauthorized:
			return api.Deposit401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(errBody)}, nil
		case http.StatusNotFound:
			return api.Deposit404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(errBody)}, nil
		default:
			return api.Deposit500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(errBody)}, nil
		}
	}

	h.logger.Info("deposit completed",
		"account", result.AccountNumber,
		"amount", result.Amount,
		"transaction_id", result.Transaction.ID,
	)

	return api.Deposit200JSONResponse(movementResponse(result)), nil
}

// GetTransactions handles GET /atm/transactions/{account}/{pin}
func (h *Handler) GetTransactions(
	ctx context.Context,
	request api.GetTransactionsRequestObject,
) (api.GetTransactionsResponseObject, error) {
	result, err := h.teller.GetTransactions(ctx, request.Account, request.Pin, listOrder(request.Params.Order))
	if err != nil {
		status, body := h.failure("get_transactions", err)
		switch status {
		case http.StatusUnauthorized:
			return api.GetTransactions401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
		case http.StatusNotFound:
			return api.GetTransactions404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		default:
			return api.GetTransactions500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
		}
	}

	return api.GetTransactions200JSONResponse{
		Success:      true,
		Account:      result.AccountNumber,
		Transactions: toTransactionEntries(result.Transactions),
	}, nil
}

func movementResponse(result *service.MovementResult) api.MovementResponse {
	return api.MovementResponse{
		Success:       true,
		Message:       result.Message,
		NewBalance:    result.NewBalance,
		TransactionId: result.Transaction.ID,
	}
}
