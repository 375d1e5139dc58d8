package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/rosterly/payrun-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose verified token is missing or is not an
// access token. It runs after jwtauth.Verifier, which parses the bearer token
// into the request context.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())

		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		if token == nil {
			response.Unauthorized(w, "Invalid token")
			return
		}

		claims, err := token.AsMap(r.Context())
		if err != nil {
			response.Unauthorized(w, "Invalid token")
			return
		}
		tokenType, ok := claims["type"].(string)
		if tokenType != "access" || !ok {
			response.Unauthorized(w, "Invalid token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireTenant rejects tokens that carry no tenant binding. Every payroll
// route is tenant scoped, so an unbound token has nothing it may touch.
func RequireTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		tenantID, ok := claims["tenant_id"].(string)
		if !ok || tenantID == "" {
			response.Forbidden(w, "Token is not bound to a tenant")
			return
		}

		next.ServeHTTP(w, r)
	})
}
