package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/house-inventory-backend/internal/domain"
	"github.com/heartmarshall/house-inventory-backend/internal/transport/middleware"
	"github.com/heartmarshall/house-inventory-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

var errMissingActor = fmt.Errorf("missing actor: %w", domain.ErrUnauthorized)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// decodeJSON reads a single JSON object from the body. Unknown fields are
// rejected so typos in patch keys do not silently become no-ops.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	if dec.More() {
		return domain.NewValidationError("body", "must contain a single JSON object")
	}
	return nil
}

func actorFrom(r *http.Request) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		return uuid.Nil, errMissingActor
	}
	return id, nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

// statusFor maps the domain error taxonomy onto HTTP.
func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindNotAllowed:
		return http.StatusForbidden
	case domain.KindInvalidArgument:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError renders err as the JSON error envelope. Storage and
// integrity failures are logged and hidden behind a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	kind := domain.KindOf(err)
	status := statusFor(kind)

	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
		middleware.WriteError(w, status, middleware.ErrorDetail{Code: "INTERNAL", Message: "internal server error"})
		return
	}

	detail := middleware.ErrorDetail{Code: string(kind), Message: err.Error()}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		detail.Message = "validation failed"
		for _, fe := range ve.Errors {
			detail.Fields = append(detail.Fields, middleware.FieldIssue{Field: fe.Field, Message: fe.Message})
		}
	}
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	middleware.WriteError(w, status, detail)
}
