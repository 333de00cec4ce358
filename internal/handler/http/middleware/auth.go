package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub/portal-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests without a verified token. It runs after
// jwtauth.Verifier, which parses the token into the request context.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.Unauthorized(w, "Authentication required")
			return
		}

		if _, ok := claims["company_id"].(string); !ok {
			response.Unauthorized(w, "Token is missing company scope")
			return
		}

		next.ServeHTTP(w, r)
	})
}
