package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterly/payrun-backend-go/internal/pkg/jwt"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) (jwt.Service, http.Handler) {
	t.Helper()
	jwtSvc := jwt.NewJWTService("test-secret", "1h")
	router := NewRouter(
		jwtSvc,
		NewPayPeriodHandler("Australia/Sydney"),
		NewPayRunHandler(nil),
		NewRateHandler(nil),
		"http://localhost:3000",
		"test",
	)
	return jwtSvc, router
}

func bearerToken(t *testing.T, svc jwt.Service) string {
	t.Helper()
	token, _, err := svc.GenerateAccessToken("user-1", "user@example.com", "tenant-1")
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestRouter_RejectsMissingToken(t *testing.T) {
	t.Parallel()

	_, router := newTestRouter(t)
	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/pay-periods/compute", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
}

func TestRouter_RejectsNonAccessToken(t *testing.T) {
	t.Parallel()

	jwtSvc, router := newTestRouter(t)
	_, token, err := jwtSvc.JWTAuth().Encode(map[string]interface{}{
		"user_id": "user-1",
		"type":    "refresh",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/pay-periods/compute", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RejectsTokenWithoutTenant(t *testing.T) {
	t.Parallel()

	jwtSvc, router := newTestRouter(t)
	_, token, err := jwtSvc.JWTAuth().Encode(map[string]interface{}{
		"user_id": "user-1",
		"email":   "user@example.com",
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/pay-periods/compute", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_ComputePayPeriod(t *testing.T) {
	t.Parallel()

	jwtSvc, router := newTestRouter(t)
	token := bearerToken(t, jwtSvc)

	startDay := 1 // Monday
	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/pay-periods/compute", token, map[string]interface{}{
		"reference_date":    "2024-03-14",
		"timezone":          "Australia/Sydney",
		"scheme_kind":       "weekly",
		"start_day_of_week": startDay,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "2024-03-11", data["start_date"])
	assert.Equal(t, "2024-03-18", data["end_date"])
	assert.Equal(t, "Australia/Sydney", data["timezone"])
}

func TestRouter_ComputePayPeriod_DefaultsTimezone(t *testing.T) {
	t.Parallel()

	jwtSvc, router := newTestRouter(t)
	token := bearerToken(t, jwtSvc)

	startDay := 1
	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/pay-periods/compute", token, map[string]interface{}{
		"reference_date":    "2024-03-14",
		"scheme_kind":       "weekly",
		"start_day_of_week": startDay,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Australia/Sydney", data["timezone"])
}

func TestRouter_ComputePayPeriod_UnknownTimezone(t *testing.T) {
	t.Parallel()

	jwtSvc, router := newTestRouter(t)
	token := bearerToken(t, jwtSvc)

	startDay := 1
	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/pay-periods/compute", token, map[string]interface{}{
		"reference_date":    "2024-03-14",
		"timezone":          "Mars/Olympus_Mons",
		"scheme_kind":       "weekly",
		"start_day_of_week": startDay,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, env.Success)
}

func TestRouter_PayRunIDMustBeUUID(t *testing.T) {
	t.Parallel()

	jwtSvc, router := newTestRouter(t)
	token := bearerToken(t, jwtSvc)

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/pay-runs/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Pay run ID must be a valid UUID", env.Error.Message)
}

func TestRouter_RateEntryIDMustBeUUID(t *testing.T) {
	t.Parallel()

	jwtSvc, router := newTestRouter(t)
	token := bearerToken(t, jwtSvc)

	rec, _ := doJSON(t, router, http.MethodDelete, "/api/v1/rates/12345", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
