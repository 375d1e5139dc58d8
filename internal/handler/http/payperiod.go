package http

import (
	"encoding/json"
	"net/http"

	"github.com/rosterly/payrun-backend-go/internal/domain/payperiod"
	"github.com/rosterly/payrun-backend-go/internal/handler/http/response"
)

type PayPeriodHandler interface {
	Compute(w http.ResponseWriter, r *http.Request)
}

type payPeriodHandlerImpl struct {
	defaultTimezone string
}

func NewPayPeriodHandler(defaultTimezone string) PayPeriodHandler {
	return &payPeriodHandlerImpl{defaultTimezone: defaultTimezone}
}

// Compute resolves the pay period containing the reference date. Pure
// calendar arithmetic, no tenant data is touched. Requests that omit the
// timezone fall back to the server default.
func (h *payPeriodHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	var req payperiod.ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.Timezone == "" {
		req.Timezone = h.defaultTimezone
	}

	reference, scheme, err := req.Parse()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	period, err := payperiod.Compute(reference, scheme, req.Timezone)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payperiod.NewPeriodResponse(period, req.Timezone, scheme.Kind))
}
