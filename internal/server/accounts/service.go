package accounts

import (
	"context"
	"errors"
	"time"

	"github.com/sgurov/authgate/internal/common"
	"github.com/sgurov/authgate/internal/server/auth"
	"github.com/sgurov/authgate/internal/server/config"
	"github.com/sgurov/authgate/internal/server/password"
	"github.com/sgurov/authgate/internal/server/validate"
)

// LoginResult carries the minted session token and the authenticated
// account's id.
type LoginResult struct {
	Token     string
	AccountID int64
}

// Service orchestrates registration, login and request authorization. It is
// the only layer that decides which domain error a caller sees; transports
// above it map those errors to wire responses without reinterpreting them.
type Service struct {
	repo                  Repository
	hasher                password.Hasher
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, hasher password.Hasher, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		hasher:                hasher,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register validates the input, hashes the password and inserts a new
// account. Validation failures are reported before any mutation; hashing
// happens outside the directory's critical section, the uniqueness check
// and insert inside it (Repository.Create).
func (s *Service) Register(ctx context.Context, username, email, plaintext string) (*Account, error) {

	if username == "" || email == "" || plaintext == "" {
		return nil, common.ErrorMissingFields
	}

	if err := validate.Email(email); err != nil {
		return nil, err
	}

	if err := validate.Password(plaintext); err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(plaintext)
	if err != nil {
		// Never propagate why hashing failed.
		return nil, common.ErrorInternal
	}

	account := &Account{
		Username:       validate.SanitizeUsername(username),
		Email:          validate.NormalizeEmail(email),
		PasswordDigest: digest,
		CreatedAt:      time.Now(),
	}

	account, err = s.repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return account, nil
}

// Login verifies the credentials and mints a session token. Unknown email
// and wrong password produce the same ErrorInvalidCredentials; on a missing
// account a dummy digest is still verified so response timing does not
// reveal whether the email is registered.
func (s *Service) Login(ctx context.Context, email, plaintext string) (*LoginResult, error) {

	if email == "" || plaintext == "" {
		return nil, common.ErrorMissingFields
	}

	account, err := s.repo.GetByEmail(ctx, validate.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Verify(plaintext, password.DummyDigest)
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify(plaintext, account.PasswordDigest) {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(account.ID, account.Email, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{Token: token, AccountID: account.ID}, nil
}

// Authorize verifies a presented bearer token and resolves the account it
// names. An empty token is ErrorMissingToken; a bad or expired one is
// ErrorInvalidToken; a valid token for a vanished account is ErrorNotFound.
func (s *Service) Authorize(ctx context.Context, token string) (*Account, error) {

	if token == "" {
		return nil, common.ErrorMissingToken
	}

	accountID, _, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorInvalidToken
	}

	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return account, nil
}

// Count reports the number of registered accounts, for the health endpoint.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
