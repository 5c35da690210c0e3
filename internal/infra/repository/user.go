package repository

import (
	"context"

	"coupon-ledger/internal/domain/user"
	"coupon-ledger/internal/infra"
	sqlc "coupon-ledger/internal/infra/sqlc/generated"
	"coupon-ledger/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	UpsertUserByPhone(ctx context.Context, db sqlc.DBTX, phone string) (sqlc.Users, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) GetOrCreateByPhone(ctx context.Context, phone user.Phone) (*user.User, error) {
	row, err := r.queries.UpsertUserByPhone(ctx, r.db, phone.Value())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert user by phone", err)
	}
	return toDomainUser(row)
}

func toDomainUser(row sqlc.Users) (*user.User, error) {
	phone, err := user.NewPhone(row.Phone)
	if err != nil {
		return nil, infra.WrapRepoErr("stored phone is invalid", err, infra.KindDBFailure)
	}
	return user.Reconstruct(row.ID, phone, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
