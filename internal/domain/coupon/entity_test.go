package coupon_test

import (
	"strings"
	"testing"
	"time"

	"coupon-ledger/internal/domain/coupon"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

type couponSnapshot struct {
	Token   string
	BatchID int64
	Points  int64
	Status  string
}

func snapshot(c *coupon.Coupon) couponSnapshot {
	return couponSnapshot{
		Token:   c.Token().String(),
		BatchID: c.BatchID(),
		Points:  c.Points().Int64(),
		Status:  c.Status().String(),
	}
}

func TestNewCoupon(t *testing.T) {
	tok, err := coupon.NewToken("abc123")
	require.NoError(t, err)
	pts, err := coupon.NewPoints(100)
	require.NoError(t, err)

	c := coupon.NewCoupon(tok, 7, pts, now)

	want := couponSnapshot{Token: "abc123", BatchID: 7, Points: 100, Status: "issued"}
	if diff := cmp.Diff(want, snapshot(c)); diff != "" {
		t.Errorf("Coupon mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, c.IsRedeemed())
}

func TestNewToken_KeepsSurroundingWhitespace(t *testing.T) {
	tok, err := coupon.NewToken(" abc ")
	require.NoError(t, err)
	assert.Equal(t, coupon.Token(" abc "), tok)
}

func TestCoupon_Redeem(t *testing.T) {
	c := coupon.NewCoupon("tok", 1, 50, now)

	require.NoError(t, c.Redeem())
	assert.True(t, c.IsRedeemed())

	assert.ErrorIs(t, c.Redeem(), coupon.ErrAlreadyRedeemed)
	assert.Equal(t, coupon.StatusRedeemed, c.Status())
}

func TestValueObjects(t *testing.T) {
	tests := []struct {
		name  string
		run   func() error
		errIs error
	}{
		{name: "success: points 1", run: func() error { _, err := coupon.NewPoints(1); return err }},
		{name: "error: points 0", run: func() error { _, err := coupon.NewPoints(0); return err }, errIs: coupon.ErrInvalidPoints},
		{name: "error: negative points", run: func() error { _, err := coupon.NewPoints(-5); return err }, errIs: coupon.ErrInvalidPoints},
		{name: "error: empty token", run: func() error { _, err := coupon.NewToken("   "); return err }, errIs: coupon.ErrInvalidToken},
		{name: "success: token 64 chars", run: func() error { _, err := coupon.NewToken(strings.Repeat("a", 64)); return err }},
		{name: "error: oversized token", run: func() error { _, err := coupon.NewToken(strings.Repeat("a", 65)); return err }, errIs: coupon.ErrTokenTooLong},
		{name: "success: batch name 255 chars", run: func() error { _, err := coupon.NewBatchName(strings.Repeat("b", 255)); return err }},
		{name: "error: batch name 256 chars", run: func() error { _, err := coupon.NewBatchName(strings.Repeat("b", 256)); return err }, errIs: coupon.ErrInvalidBatchName},
		{name: "error: blank batch name", run: func() error { _, err := coupon.NewBatchName(" "); return err }, errIs: coupon.ErrInvalidBatchName},
		{name: "error: empty sku", run: func() error { _, err := coupon.NewSKU(""); return err }, errIs: coupon.ErrInvalidSKU},
		{name: "success: count at limit", run: func() error { _, err := coupon.NewCount(10, 10); return err }},
		{name: "error: count 0", run: func() error { _, err := coupon.NewCount(0, 10); return err }, errIs: coupon.ErrInvalidCount},
		{name: "error: count over limit", run: func() error { _, err := coupon.NewCount(11, 10); return err }, errIs: coupon.ErrInvalidCount},
		{name: "error: unknown status", run: func() error { _, err := coupon.ParseStatus("void"); return err }, errIs: coupon.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}
