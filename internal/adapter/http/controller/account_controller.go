package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/ledger-core/internal/adapter/http/models"
	"github.com/api-sage/ledger-core/internal/domain"
	"github.com/api-sage/ledger-core/internal/usecase/service_interfaces"
)

type accountTransactionLister interface {
	GetByAccount(ctx context.Context, accountNo string) ([]domain.Transaction, error)
}

type AccountController struct {
	accountService     service_interfaces.AccountService
	transactionService accountTransactionLister
}

func NewAccountController(
	accountService service_interfaces.AccountService,
	transactionService accountTransactionLister,
) *AccountController {
	return &AccountController{
		accountService:     accountService,
		transactionService: transactionService,
	}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("POST /api/accounts", wrap(c.createAccount))
	mux.Handle("GET /api/accounts/{accountNo}/balance", wrap(c.getBalance))
	mux.Handle("GET /api/accounts/{accountNo}/transactions", wrap(c.listTransactions))
	mux.Handle("DELETE /api/accounts/{accountNo}", wrap(c.deleteAccount))
}

func (c *AccountController) createAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse[models.AccountResponse]("validation failed", err.Error()))
		return
	}

	account, err := c.accountService.CreateAccount(r.Context(), req.AccountNo, req.Balance())
	if err != nil {
		writeError[models.AccountResponse](w, r, "failed to create account", err)
		return
	}

	writeJSON(w, http.StatusCreated, models.SuccessResponse("account created successfully", models.AccountResponseFromDomain(account)))
	logResponse(r, http.StatusCreated, start)
}

func (c *AccountController) getBalance(w http.ResponseWriter, r *http.Request) {
	accountNo := r.PathValue("accountNo")

	balance, err := c.accountService.GetBalance(r.Context(), accountNo)
	if err != nil {
		writeError[models.BalanceResponse](w, r, "failed to get balance", err)
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse("balance retrieved", models.BalanceResponse{
		AccountNo: accountNo,
		Balance:   balance.String(),
	}))
}

func (c *AccountController) listTransactions(w http.ResponseWriter, r *http.Request) {
	accountNo := r.PathValue("accountNo")

	transactions, err := c.transactionService.GetByAccount(r.Context(), accountNo)
	if err != nil {
		writeError[[]models.TransactionResponse](w, r, "failed to list transactions", err)
		return
	}

	out := make([]models.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, models.TransactionResponseFromDomain(tx))
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse("transactions retrieved", out))
}

func (c *AccountController) deleteAccount(w http.ResponseWriter, r *http.Request) {
	accountNo := r.PathValue("accountNo")
	logRequest(r, nil)

	if err := c.accountService.DeleteAccount(r.Context(), accountNo); err != nil {
		writeError[struct{}](w, r, "failed to delete account", err)
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse("account deleted", struct{}{}))
}
