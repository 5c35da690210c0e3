package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	sqlc "coupon-ledger/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, phone string) int64 {
	t.Helper()

	var userID int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO users (phone) VALUES ($1)
		 ON CONFLICT (phone) DO UPDATE SET phone = EXCLUDED.phone
		 RETURNING id`, phone).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// ScanForToken returns the scan row that claimed the coupon behind token.
func ScanForToken(t *testing.T, db sqlc.DBTX, token string) sqlc.Scans {
	t.Helper()

	q := sqlc.New()
	c, err := q.FindCouponByToken(context.Background(), db, token)
	require.NoError(t, err)
	s, err := q.FindScanByCouponID(context.Background(), db, c.ID)
	require.NoError(t, err)
	return s
}

func CouponsInBatch(t *testing.T, db sqlc.DBTX, batchID int64) []sqlc.Coupons {
	t.Helper()

	rows, err := sqlc.New().ListCouponsByBatch(context.Background(), db, batchID)
	require.NoError(t, err)
	return rows
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and restarts identities
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
