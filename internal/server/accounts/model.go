package accounts

import "time"

// Account is a registered user. Email holds the normalized form used for
// uniqueness comparison. PasswordDigest is opaque and must never appear in
// any outward representation; the json tag enforces the omission on every
// marshalling path.
type Account struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}
