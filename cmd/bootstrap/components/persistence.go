package components

import (
	"coupon-ledger/internal/infra/memstore"
	"coupon-ledger/internal/infra/readstore"
	sqlc "coupon-ledger/internal/infra/sqlc/generated"
	"coupon-ledger/internal/infra/uow"
	"coupon-ledger/internal/usecase/queries"
	"coupon-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Wallet
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.WalletReadQueries)),
		),
		fx.Annotate(
			readstore.NewWalletReadStore,
			fx.As(new(queries.WalletReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		fx.Annotate(
			memstore.New,
			fx.As(new(shared.UnitOfWork)),
			fx.As(new(queries.WalletReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
