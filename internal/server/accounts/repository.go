package accounts

import (
	"context"
)

// Repository is the user directory: the set of all accounts, keyed by
// normalized email for uniqueness and by id for lookup.
//
// Create assigns the next identity value (strictly increasing from 1, never
// reused) and fails with common.ErrorAlreadyExists when an account with the
// same normalized email is present. The existence check and the insert are
// a single atomic unit with respect to concurrent Create calls.
type Repository interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id int64) (*Account, error)
	Count(ctx context.Context) (int64, error)
}
