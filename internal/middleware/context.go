package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/user"
)

type ctxKey string

const (
	ctxCorrelationID ctxKey = "correlation_id"
	ctxUser          ctxKey = "user"
)

// GetUser returns the authenticated user stored by Protect, or nil outside
// a protected route.
func GetUser(ctx context.Context) *user.User {
	if v := ctx.Value(ctxUser); v != nil {
		if u, ok := v.(*user.User); ok {
			return u
		}
	}
	return nil
}

func GetCorrelationID(ctx context.Context) string {
	if v := ctx.Value(ctxCorrelationID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(messageResponse{Message: msg})
}
