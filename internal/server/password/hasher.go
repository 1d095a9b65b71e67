// Package password provides one-way password hashing and verification.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher turns plaintext passwords into storage-safe digests and checks
// candidates against stored digests.
type Hasher interface {
	// Hash produces a salted digest of the password. Each call embeds a
	// fresh random salt, so two digests of the same input differ.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the stored digest. A
	// malformed digest yields false, never an error.
	Verify(plaintext, digest string) bool
}

// BcryptHasher implements Hasher using bcrypt with a fixed work factor.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the given cost. Costs outside
// bcrypt's supported range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// DummyDigest is a well-formed bcrypt digest (cost 12) that matches no real
// password. Login flows compare against it when the account does not exist,
// so the response time does not reveal whether the email is registered.
const DummyDigest = "$2a$12$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
