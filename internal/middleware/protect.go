package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/auth"
	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/user"
)

// Protect requires a valid bearer token and resolves it to a user account.
// The user is stored in the request context for GetUser. Every failure is
// a 401 with the uniform message body.
func Protect(tokens *auth.TokenIssuer, users user.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeMessage(w, http.StatusUnauthorized, "not authorized, no token")
				return
			}

			userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "not authorized, token failed")
				return
			}

			u, err := users.GetByID(r.Context(), userID)
			if errors.Is(err, user.ErrNotFound) {
				// Token for a deleted account.
				writeMessage(w, http.StatusUnauthorized, "not authorized, token failed")
				return
			}
			if err != nil {
				writeMessage(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), ctxUser, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
