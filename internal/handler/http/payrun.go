package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rosterly/payrun-backend-go/internal/domain/payrun"
	"github.com/rosterly/payrun-backend-go/internal/handler/http/response"
	"github.com/rosterly/payrun-backend-go/internal/pkg/validator"
)

type PayRunHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	TransitionStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	EditLine(w http.ResponseWriter, r *http.Request)
	ListLineChanges(w http.ResponseWriter, r *http.Request)
}

type payRunHandlerImpl struct {
	payRunService payrun.PayRunService
}

func NewPayRunHandler(payRunService payrun.PayRunService) PayRunHandler {
	return &payRunHandlerImpl{payRunService: payRunService}
}

// ========== RUNS ==========

func (h *payRunHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, userID, ok := requestIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	var req payrun.CreatePayRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payRunService.Create(r.Context(), tenantID, userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pay run created", result)
}

func (h *payRunHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Pay run ID must be a valid UUID", nil)
		return
	}

	result, err := h.payRunService.Get(r.Context(), id, tenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payRunHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	filter := payrun.PayRunFilter{
		Page:  1,
		Limit: 20,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = status
	}

	result, err := h.payRunService.List(r.Context(), tenantID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int((result.TotalCount + int64(filter.Limit) - 1) / int64(filter.Limit))
	}
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

func (h *payRunHandlerImpl) TransitionStatus(w http.ResponseWriter, r *http.Request) {
	tenantID, userID, ok := requestIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Pay run ID must be a valid UUID", nil)
		return
	}

	var req payrun.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payRunService.Transition(r.Context(), id, tenantID, userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payRunHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Pay run ID must be a valid UUID", nil)
		return
	}

	if err := h.payRunService.Delete(r.Context(), id, tenantID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay run deleted successfully", nil)
}

// ========== LINES ==========

func (h *payRunHandlerImpl) EditLine(w http.ResponseWriter, r *http.Request) {
	tenantID, userID, ok := requestIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Pay run line ID must be a valid UUID", nil)
		return
	}

	var req payrun.EditLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payRunService.EditLine(r.Context(), id, tenantID, userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payRunHandlerImpl) ListLineChanges(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Pay run line ID must be a valid UUID", nil)
		return
	}

	result, err := h.payRunService.ListLineChanges(r.Context(), id, tenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
