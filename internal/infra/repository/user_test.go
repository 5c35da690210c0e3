package repository

import (
	"context"
	"testing"
	"time"

	"coupon-ledger/internal/domain/coupon"
	"coupon-ledger/internal/domain/user"
	"coupon-ledger/internal/infra"
	sqlc "coupon-ledger/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetOrCreateByPhone(t *testing.T) {
	phone, err := user.NewPhone("09012345678")
	require.NoError(t, err)
	created := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockRow   sqlc.Users
		mockError error
		wantID    int64
		wantError bool
	}{
		{
			name:    "success",
			mockRow: sqlc.Users{ID: 4, Phone: "09012345678", CreatedAt: pgtype.Timestamptz{Time: created, Valid: true}},
			wantID:  4,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockWriteQueries)
			q.On("UpsertUserByPhone", mock.Anything, mock.Anything, "09012345678").Return(tt.mockRow, tt.mockError)

			u, err := NewUserRepository(q, nil).GetOrCreateByPhone(context.Background(), phone)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, u.ID())
				assert.Equal(t, phone, u.Phone())
				assert.Equal(t, created, u.CreatedAt())
			}
			q.AssertExpectations(t)
		})
	}
}

func TestBatchRepository_Create(t *testing.T) {
	b := coupon.NewBatch("Spring", "SKU-1", time.Now())

	q := new(MockWriteQueries)
	q.On("CreateBatch", mock.Anything, mock.Anything, sqlc.CreateBatchParams{Name: "Spring", Sku: "SKU-1"}).
		Return(sqlc.Batches{ID: 2}, nil).Once()
	q.On("CreateBatch", mock.Anything, mock.Anything, mock.Anything).
		Return(sqlc.Batches{}, assert.AnError).Once()

	repo := NewBatchRepository(q, nil)

	id, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)

	_, err = repo.Create(context.Background(), b)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))

	q.AssertExpectations(t)
}
