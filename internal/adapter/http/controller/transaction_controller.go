package controller

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/api-sage/ledger-core/internal/adapter/http/models"
	"github.com/api-sage/ledger-core/internal/domain"
	"github.com/api-sage/ledger-core/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

type TransactionController struct {
	transactionService service_interfaces.TransactionService
	defaultPageSize    int
}

func NewTransactionController(transactionService service_interfaces.TransactionService, defaultPageSize int) *TransactionController {
	if defaultPageSize < 1 {
		defaultPageSize = 10
	}
	return &TransactionController{
		transactionService: transactionService,
		defaultPageSize:    defaultPageSize,
	}
}

func (c *TransactionController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("POST /api/transactions", wrap(c.createTransaction))
	mux.Handle("GET /api/transactions", wrap(c.queryTransactions))
	mux.Handle("GET /api/transactions/{id}", wrap(c.getTransaction))
	mux.Handle("PUT /api/transactions/{id}", wrap(c.updateTransaction))
	mux.Handle("PUT /api/transactions/{id}/status", wrap(c.updateTransactionStatus))
	mux.Handle("DELETE /api/transactions/{id}", wrap(c.deleteTransaction))
}

func (c *TransactionController) createTransaction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse[models.TransactionResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()))
		return
	}

	created, err := c.transactionService.Create(r.Context(), req.ToDomain())
	if err != nil {
		writeError[models.TransactionResponse](w, r, "failed to create transaction", err)
		return
	}

	writeJSON(w, http.StatusCreated, models.SuccessResponse("transaction created", models.TransactionResponseFromDomain(created)))
	logResponse(r, http.StatusCreated, start)
}

func (c *TransactionController) getTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := c.transactionService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError[models.TransactionResponse](w, r, "failed to get transaction", err)
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse("transaction retrieved", models.TransactionResponseFromDomain(tx)))
}

func (c *TransactionController) queryTransactions(w http.ResponseWriter, r *http.Request) {
	logRequest(r, nil)

	filter, page, size, err := c.parseQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse[models.TransactionPageResponse]("validation failed", err.Error()))
		return
	}

	result, err := c.transactionService.Query(r.Context(), filter, page, size)
	if err != nil {
		writeError[models.TransactionPageResponse](w, r, "failed to query transactions", err)
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse("transactions retrieved", models.TransactionPageFromDomain(result)))
}

func (c *TransactionController) updateTransaction(w http.ResponseWriter, r *http.Request) {
	var req models.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse[models.TransactionResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()))
		return
	}

	updated, err := c.transactionService.Update(r.Context(), r.PathValue("id"), req.ToDomain())
	if err != nil {
		writeError[models.TransactionResponse](w, r, "failed to update transaction", err)
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse("transaction updated", models.TransactionResponseFromDomain(updated)))
}

func (c *TransactionController) updateTransactionStatus(w http.ResponseWriter, r *http.Request) {
	logRequest(r, nil)

	status, err := domain.ParseStatus(r.URL.Query().Get("status"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()))
		return
	}

	updated, err := c.transactionService.UpdateStatus(r.Context(), r.PathValue("id"), status)
	if err != nil {
		writeError[models.TransactionResponse](w, r, "failed to update transaction status", err)
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse("transaction status updated", models.TransactionResponseFromDomain(updated)))
}

func (c *TransactionController) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	logRequest(r, nil)

	if err := c.transactionService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError[struct{}](w, r, "failed to delete transaction", err)
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse("transaction deleted", struct{}{}))
}

func (c *TransactionController) parseQuery(r *http.Request) (*domain.TransactionFilter, int, int, error) {
	q := r.URL.Query()
	filter := &domain.TransactionFilter{AccountNo: strings.TrimSpace(q.Get("accountNo"))}

	if raw := q.Get("direction"); raw != "" {
		direction, err := domain.ParseDirection(raw)
		if err != nil {
			return nil, 0, 0, err
		}
		filter.Direction = &direction
	}
	if raw := q.Get("status"); raw != "" {
		status, err := domain.ParseStatus(raw)
		if err != nil {
			return nil, 0, 0, err
		}
		filter.Status = &status
	}
	if raw := q.Get("minAmount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, 0, 0, err
		}
		filter.MinAmount = &amount
	}
	if raw := q.Get("maxAmount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, 0, 0, err
		}
		filter.MaxAmount = &amount
	}
	if raw := q.Get("fromDate"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, 0, 0, err
		}
		filter.From = &from
	}
	if raw := q.Get("toDate"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, 0, 0, err
		}
		filter.To = &to
	}

	page := 0
	if raw := q.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, 0, 0, err
		}
		page = parsed
	}

	size := c.defaultPageSize
	if raw := q.Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, 0, 0, err
		}
		size = parsed
	}

	return filter, page, size, nil
}
