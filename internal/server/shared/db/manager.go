// Package db selects and wires the storage backend for the account
// directory: volatile in-memory by default, PostgreSQL when a DSN is
// configured.
package db

import (
	"context"
	"database/sql"

	"github.com/sgurov/authgate/internal/server/accounts"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Accounts() accounts.Repository
}
