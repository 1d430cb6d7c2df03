package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/ledger-core/internal/adapter/http/models"
	"github.com/api-sage/ledger-core/internal/usecase/service_interfaces"
)

type BusinessController struct {
	businessService service_interfaces.BusinessService
	transferService service_interfaces.TransferService
}

func NewBusinessController(
	businessService service_interfaces.BusinessService,
	transferService service_interfaces.TransferService,
) *BusinessController {
	return &BusinessController{
		businessService: businessService,
		transferService: transferService,
	}
}

func (c *BusinessController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("POST /api/business/combine", wrap(c.combine))
	mux.Handle("POST /api/business/transfer", wrap(c.transfer))
}

func (c *BusinessController) combine(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CombineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse[struct{}]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse[struct{}]("validation failed", err.Error()))
		return
	}

	if err := c.businessService.Combine(r.Context(), req.ToDomain()); err != nil {
		writeError[struct{}](w, r, "combine failed", err)
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse("batch applied", struct{}{}))
	logResponse(r, http.StatusOK, start)
}

func (c *BusinessController) transfer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse[struct{}]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse[struct{}]("validation failed", err.Error()))
		return
	}

	if err := c.transferService.Transfer(r.Context(), req.FromAccount, req.ToAccount, req.ParsedAmount(), req.Description); err != nil {
		writeError[struct{}](w, r, "transfer failed", err)
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse("transfer completed", struct{}{}))
	logResponse(r, http.StatusOK, start)
}
