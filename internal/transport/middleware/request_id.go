package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/house-inventory-backend/pkg/ctxutil"
)

const maxRequestIDLength = 128

// RequestID propagates X-Request-Id, generating a UUIDv7 when the header is
// missing or unreasonably long.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" || len(id) > maxRequestIDLength {
			id = newRequestID()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
