package components

import (
	"context"

	"rugboost-api/internal/infra/db"
	"rugboost-api/internal/infra/kvstore"
	"rugboost-api/internal/infra/socialstore"
	"rugboost-api/internal/infra/uow"
	"rugboost-api/internal/pkg/config"
	"rugboost-api/internal/pkg/errs"
	"rugboost-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const (
	socialStoreSQLite   = "sqlite"
	socialStorePostgres = "postgres"
)

var errUnknownSocialStore = errs.New("unknown social store")

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
	kvstoreModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

var kvstoreModule = fx.Module("persistence/kvstore",
	fx.Provide(
		NewKVStore,
		fx.Annotate(
			socialstore.NewKVPostStore,
			fx.As(new(shared.PostStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// NewKVStore selects the backend for the social planner document.
func NewKVStore(lc fx.Lifecycle, cfg config.Config, dbtx db.DBTX) (kvstore.Store, error) {
	switch cfg.Social.Store {
	case socialStorePostgres:
		return kvstore.NewPostgresStore(dbtx), nil
	case socialStoreSQLite:
		store, err := kvstore.OpenSQLite(cfg.Social.SQLitePath)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return store.Close()
			},
		})
		return store, nil
	default:
		return nil, errs.Wrapf(errUnknownSocialStore, "%q", cfg.Social.Store)
	}
}

