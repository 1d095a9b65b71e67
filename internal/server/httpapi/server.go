// Package httpapi binds the authentication core to its HTTP/JSON transport.
// All domain errors are translated to wire responses here; nothing below
// this layer formats user-facing messages.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sgurov/authgate/internal/logging"
	"github.com/sgurov/authgate/internal/server/accounts"
)

type HTTPServer struct {
	address  string
	logger   logging.Logger
	accounts *accounts.Service
}

func NewHTTPServer(a string, l logging.Logger, as *accounts.Service) *HTTPServer {
	return &HTTPServer{
		address:  a,
		logger:   l.With("module", "http_server"),
		accounts: as,
	}
}

// Routes builds the endpoint mux. Protected routes are wrapped with the
// bearer-token middleware; every route gets a request id and access log.
func (s *HTTPServer) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.Handle("GET /profile", s.requireToken(http.HandlerFunc(s.handleProfile)))
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withRequestLog(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
