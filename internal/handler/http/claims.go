package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// requestIdentity resolves the tenant and actor from the verified token. The
// auth middleware has already rejected requests without a valid access token,
// so a failure here means a malformed claim set, not a missing one.
func requestIdentity(r *http.Request) (tenantID string, userID string, ok bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", false
	}

	tenantID, tenantOK := claims["tenant_id"].(string)
	userID, userOK := claims["user_id"].(string)
	if !tenantOK || !userOK || tenantID == "" || userID == "" {
		return "", "", false
	}
	return tenantID, userID, true
}
