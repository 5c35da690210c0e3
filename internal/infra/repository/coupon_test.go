package repository

import (
	"context"
	"testing"
	"time"

	"coupon-ledger/internal/domain/coupon"
	"coupon-ledger/internal/infra"
	sqlc "coupon-ledger/internal/infra/sqlc/generated"
	"coupon-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCouponRepository_Insert(t *testing.T) {
	c := coupon.NewCoupon("tok-1", 3, 100, time.Now())
	params := sqlc.InsertCouponParams{Token: "tok-1", BatchID: 3, Points: 100}

	tests := []struct {
		name      string
		mockRow   sqlc.Coupons
		mockError error
		wantID    int64
		check     func(t *testing.T, err error)
	}{
		{
			name:    "success",
			mockRow: sqlc.Coupons{ID: 11},
			wantID:  11,
		},
		{
			name:      "error: token collision",
			mockError: pgx.ErrNoRows,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, shared.ErrTokenCollision)
				assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
			},
		},
		{
			name:      "error: database failure",
			mockError: assert.AnError,
			check: func(t *testing.T, err error) {
				assert.NotErrorIs(t, err, shared.ErrTokenCollision)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockWriteQueries)
			q.On("InsertCoupon", mock.Anything, mock.Anything, params).Return(tt.mockRow, tt.mockError)

			id, err := NewCouponRepository(q, nil).Insert(context.Background(), c)

			if tt.check != nil {
				assert.Error(t, err)
				tt.check(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestCouponRepository_MarkRedeemed(t *testing.T) {
	tests := []struct {
		name      string
		rows      int64
		mockError error
		wantErr   error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", rows: 1},
		{name: "error: coupon missing", rows: 0, wantErr: shared.ErrCouponNotFound, wantKind: infra.KindNotFound},
		{name: "error: database failure", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockWriteQueries)
			q.On("MarkCouponRedeemed", mock.Anything, mock.Anything, int64(5)).Return(tt.rows, tt.mockError)

			err := NewCouponRepository(q, nil).MarkRedeemed(context.Background(), 5)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			q.AssertExpectations(t)
		})
	}
}
