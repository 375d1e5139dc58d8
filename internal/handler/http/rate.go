package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rosterly/payrun-backend-go/internal/domain/rate"
	"github.com/rosterly/payrun-backend-go/internal/handler/http/response"
	"github.com/rosterly/payrun-backend-go/internal/pkg/validator"
)

type RateHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type rateHandlerImpl struct {
	rateService rate.RateService
}

func NewRateHandler(rateService rate.RateService) RateHandler {
	return &rateHandlerImpl{rateService: rateService}
}

func (h *rateHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, userID, ok := requestIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	employeeID := chi.URLParam(r, "employeeId")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "Employee ID must be a valid UUID", nil)
		return
	}

	var req rate.CreateRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.rateService.CreateEntry(r.Context(), tenantID, userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Rate history entry created", result)
}

func (h *rateHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	employeeID := chi.URLParam(r, "employeeId")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "Employee ID must be a valid UUID", nil)
		return
	}

	result, err := h.rateService.ListByEmployee(r.Context(), employeeID, tenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *rateHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Rate entry ID must be a valid UUID", nil)
		return
	}

	if err := h.rateService.DeleteEntry(r.Context(), id, tenantID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rate history entry deleted successfully", nil)
}
