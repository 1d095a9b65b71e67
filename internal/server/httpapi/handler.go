package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sgurov/authgate/internal/common"
)

// maxBodySize caps request bodies, matching the transport's JSON limit.
const maxBodySize = 10 << 20 // 10 MB

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Users     int64  `json:"users"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeDomainError maps a domain error to the transport taxonomy. Unknown
// errors become an opaque 500; internal detail never reaches the caller.
func (s *HTTPServer) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var message string

	switch {
	case errors.Is(err, common.ErrorMissingFields):
		status, message = http.StatusBadRequest, "All fields are required"
	case errors.Is(err, common.ErrorInvalidEmail):
		status, message = http.StatusBadRequest, "Invalid email format"
	case errors.Is(err, common.ErrorWeakPassword):
		status, message = http.StatusBadRequest, "Password must be at least 8 characters"
	case errors.Is(err, common.ErrorAlreadyExists):
		status, message = http.StatusConflict, "User already exists"
	case errors.Is(err, common.ErrorInvalidCredentials):
		status, message = http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, common.ErrorMissingToken):
		status, message = http.StatusUnauthorized, "Access token required"
	case errors.Is(err, common.ErrorInvalidToken):
		status, message = http.StatusForbidden, "Invalid or expired token"
	case errors.Is(err, common.ErrorNotFound):
		status, message = http.StatusNotFound, "User not found"
	default:
		status, message = http.StatusInternalServerError, "Internal server error"
		s.logger.Error(r.Context(), "internal error", "error", err.Error())
	}

	writeJSON(w, status, errorResponse{Error: message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	return json.NewDecoder(r.Body).Decode(dst)
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	account, err := s.accounts.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "account_id", account.ID)
	writeJSON(w, http.StatusCreated, account)
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	result, err := s.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Required-field failures keep their 400; a lookup or password
		// mismatch is always the same 401.
		if errors.Is(err, common.ErrorMissingFields) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Email and password are required"})
			return
		}
		s.writeDomainError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Logged in", "account_id", result.AccountID)
	writeJSON(w, http.StatusOK, loginResponse{Token: result.Token, UserID: result.AccountID})
}

func (s *HTTPServer) handleProfile(w http.ResponseWriter, r *http.Request) {

	account := accountFromContext(r.Context())
	if account == nil {
		// requireToken always runs first; reaching here without an account
		// is a programming error, reported generically.
		s.writeDomainError(w, r, common.ErrorInternal)
		return
	}

	writeJSON(w, http.StatusOK, account)
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {

	count, err := s.accounts.Count(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Users:     count,
	})
}
