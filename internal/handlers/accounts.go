package handlers

import (
	"context"
	"net/http"

	"github.com/deepakbishnoi717/atm/internal/api"
	"github.com/deepakbishnoi717/atm/internal/service"
)

// CreateAccount handles POST /bankdata
func (h *Handler) CreateAccount(
	ctx context.Context,
	request api.CreateAccountRequestObject,
) (api.CreateAccountResponseObject, error) {
	body := request.Body
	account, err := h.accounts.Open(ctx, service.AccountInput{
		AccountNumber: body.Account,
		Name:          body.Name,
		PIN:           body.Pin,
		BankName:      body.BankName,
		Address:       body.Address,
		Balance:       body.Balance,
	})
	if err != nil {
		status, errBody := h.failure("open_account", err)
		switch status {
		case http.StatusBadRequest:
			return api.CreateAccount400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(errBody)}, nil
		case http.StatusConflict:
			return api.CreateAccount409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse(errBody)}, nil
		default:
			return api.CreateAccount500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(errBody)}, nil
		}
	}

	h.logger.Info("account opened", "account", account.AccountNumber)

	return api.CreateAccount201JSONResponse(toAccountView(account)), nil
}

// GetAccount handles GET /get_account/{account}
func (h *Handler) GetAccount(
	ctx context.Context,
	request api.GetAccountRequestObject,
) (api.GetAccountResponseObject, error) {
	account, err := h.accounts.Get(ctx, request.Account)
	if err != nil {
		status, body := h.failure("get_account", err)
		if status == http.StatusNotFound {
			return api.GetAccount404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		}
		return api.GetAccount500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.GetAccount200JSONResponse(toAccountView(account)), nil
}

// UpdateAccount handles PUT /get_account/{account}
func (h *Handler) UpdateAccount(
	ctx context.Context,
	request api.UpdateAccountRequestObject,
) (api.UpdateAccountResponseObject, error) {
	body := request.Body
	account, err := h.accounts.Update(ctx, request.Account, service.AccountUpdate{
		Name:     body.Name,
		PIN:      body.Pin,
		BankName: body.BankName,
		Address:  body.Address,
	})
	if err != nil {
		status, errBody := h.failure("update_account", err)
		switch status {
		case http.StatusBadRequest:
			return api.UpdateAccount400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(errBody)}, nil
		case http.StatusNotFound:
			return api.UpdateAccount404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(errBody)}, nil
		default:
			return api.UpdateAccount500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(errBody)}, nil
		}
	}

	return api.UpdateAccount200JSONResponse(toAccountView(account)), nil
}
