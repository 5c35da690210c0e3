package repository

import (
	"context"
	"testing"
	"time"

	"coupon-ledger/internal/domain/scan"
	"coupon-ledger/internal/infra"
	sqlc "coupon-ledger/internal/infra/sqlc/generated"
	"coupon-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScanRepository_Claim(t *testing.T) {
	s, err := scan.NewScan(9, 4, "dev1", "", time.Now())
	require.NoError(t, err)

	params := sqlc.InsertScanParams{
		CouponID: 9,
		UserID:   4,
		DeviceID: pgtype.Text{String: "dev1", Valid: true},
		Location: pgtype.Text{},
	}

	tests := []struct {
		name      string
		mockRow   sqlc.Scans
		mockError error
		wantID    int64
		wantErr   error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:    "success",
			mockRow: sqlc.Scans{ID: 21},
			wantID:  21,
		},
		{
			name:      "error: coupon already claimed",
			mockError: &pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintScanCoupon},
			wantErr:   shared.ErrCouponAlreadyClaimed,
			wantKind:  infra.KindDuplicateKey,
		},
		{
			name:      "error: unknown user",
			mockError: &pgconn.PgError{Code: "23503", ConstraintName: infra.ConstraintScanUserFK},
			wantErr:   shared.ErrUnknownUser,
			wantKind:  infra.KindForeignKeyViolated,
		},
		{
			name:      "error: unknown coupon",
			mockError: &pgconn.PgError{Code: "23503", ConstraintName: infra.ConstraintScanCouponFK},
			wantErr:   shared.ErrCouponNotFound,
			wantKind:  infra.KindForeignKeyViolated,
		},
		{
			name:      "error: database failure",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockWriteQueries)
			q.On("InsertScan", mock.Anything, mock.Anything, params).Return(tt.mockRow, tt.mockError)

			id, err := NewScanRepository(q, nil).Claim(context.Background(), s)

			if tt.wantKind == "" {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			q.AssertExpectations(t)
		})
	}
}
