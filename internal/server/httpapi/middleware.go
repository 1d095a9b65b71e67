package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sgurov/authgate/internal/server/accounts"
)

type ctxKey string

const accountKey ctxKey = "account"

// accountFromContext returns the authorized account placed by requireToken,
// or nil for unauthenticated requests.
func accountFromContext(ctx context.Context) *accounts.Account {
	account, _ := ctx.Value(accountKey).(*accounts.Account)
	return account
}

// extractBearerToken pulls the token out of an Authorization header of the
// form "Bearer <token>", splitting on whitespace. An absent header or a
// header without a token yields the empty string.
func extractBearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// requireToken authenticates the request's bearer credential and stores the
// resolved account in the request context. Failures are mapped to the token
// taxonomy: no token 401, bad or expired token 403, vanished account 404.
func (s *HTTPServer) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r.Header.Get("Authorization"))

		account, err := s.accounts.Authorize(r.Context(), token)
		if err != nil {
			s.writeDomainError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), accountKey, account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the response status for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestLog tags every request with an id and writes one structured
// access-log line when it completes.
func (s *HTTPServer) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}
