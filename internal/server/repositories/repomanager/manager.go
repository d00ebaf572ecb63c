// Package repomanager wires repositories to a shared database handle.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/newsgate/internal/dbx"
	"github.com/dmitrijs2005/newsgate/internal/server/repositories/news"
	"github.com/dmitrijs2005/newsgate/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to an arbitrary DBTX, so
// services can run them against the pool or inside a transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	News(db dbx.DBTX) news.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
