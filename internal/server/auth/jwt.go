// Package auth issues and verifies the signed session tokens that prove a
// successful prior login. Tokens are self-contained: validity is determined
// purely by signature and expiration, with no server-side session state.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sgurov/authgate/internal/common"
)

// Claims includes the registered claims plus the authenticated account's
// email. The account id travels in the Subject claim.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// GenerateToken mints an HS256-signed token for the given account, expiring
// validityDuration after issuance.
func GenerateToken(accountID int64, email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(accountID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates signature and expiration and returns the account id
// and email encoded in the token. Every failure mode (bad signature,
// malformed payload, elapsed expiration) maps to common.ErrorInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (int64, string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		return 0, "", common.ErrorInvalidToken
	}

	if !token.Valid {
		return 0, "", common.ErrorInvalidToken
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", common.ErrorInvalidToken
	}

	return accountID, claims.Email, nil
}
