package repository

import (
	"context"

	sqlc "coupon-ledger/internal/infra/sqlc/generated"

	"github.com/stretchr/testify/mock"
)

type MockWriteQueries struct {
	mock.Mock
}

func (m *MockWriteQueries) CreateBatch(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBatchParams) (sqlc.Batches, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Batches), args.Error(1)
}

func (m *MockWriteQueries) InsertCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCouponParams) (sqlc.Coupons, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Coupons), args.Error(1)
}

func (m *MockWriteQueries) MarkCouponRedeemed(ctx context.Context, db sqlc.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) InsertScan(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertScanParams) (sqlc.Scans, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Scans), args.Error(1)
}

func (m *MockWriteQueries) InsertTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertTransactionParams) (sqlc.Transactions, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Transactions), args.Error(1)
}

func (m *MockWriteQueries) UpsertUserByPhone(ctx context.Context, db sqlc.DBTX, phone string) (sqlc.Users, error) {
	args := m.Called(ctx, db, phone)
	return args.Get(0).(sqlc.Users), args.Error(1)
}
