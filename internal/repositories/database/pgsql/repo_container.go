package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/spendwise/spendwise_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntryRepo:    newPgxEntryRepository(dbPool),
		StateRepo:    newPgxStateRepository(dbPool),
		CategoryRepo: newPgxCategoryRepository(dbPool),
	}
}
