package commands

import (
	"context"
	"sync"
	"testing"
	"time"

	"coupon-ledger/internal/domain/user"
	"coupon-ledger/internal/infra/memstore"
	"coupon-ledger/internal/pkg/clock"
	"coupon-ledger/internal/pkg/config"
	"coupon-ledger/internal/pkg/metrics"
	"coupon-ledger/internal/pkg/tokengen"
	"coupon-ledger/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store   *memstore.Store
	clock   *clock.MockClock
	metrics *metrics.Collector
	issuer  CouponCommands
	redeem  RedemptionCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clk := clock.NewMockClock(testNow)
	store := memstore.New(clk)
	collector := metrics.NewCollector("test", "test")
	cfg := config.NewTestConfig().Coupon

	return &fixture{
		store:   store,
		clock:   clk,
		metrics: collector,
		issuer:  NewCouponCommands(store, tokengen.NewRandomGenerator(), clk, collector, cfg),
		redeem:  NewRedemptionCommands(store, nil, clk, collector),
	}
}

func (f *fixture) issue(t *testing.T, count int, points int64) []string {
	t.Helper()
	res, err := f.issuer.IssueCoupons(context.Background(), IssueCouponsInput{
		BatchName: "Spring",
		SKU:       "SKU-1",
		Count:     count,
		Points:    points,
	})
	require.NoError(t, err)
	return res.Tokens
}

func (f *fixture) user(t *testing.T, raw string) int64 {
	t.Helper()
	phone, err := user.NewPhone(raw)
	require.NoError(t, err)

	var id int64
	err = f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().GetOrCreateByPhone(ctx, phone)
		if err != nil {
			return err
		}
		id = u.ID()
		return nil
	})
	require.NoError(t, err)
	return id
}

func (f *fixture) balance(t *testing.T, userID int64) int64 {
	t.Helper()
	txs, err := f.store.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	var sum int64
	for _, tx := range txs {
		sum += tx.SignedAmount()
	}
	return sum
}

// sequenceGenerator replays fixed tokens, then falls back to a random generator.
type sequenceGenerator struct {
	mu     sync.Mutex
	tokens []string
	err    error
	next   tokengen.Generator
}

func (g *sequenceGenerator) NewToken() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return "", g.err
	}
	if len(g.tokens) == 0 {
		return g.next.NewToken()
	}
	tok := g.tokens[0]
	g.tokens = g.tokens[1:]
	return tok, nil
}

// hookGenerator runs hook just before handing out the at-th token.
type hookGenerator struct {
	inner *sequenceGenerator
	calls int
	at    int
	hook  func()
}

func (g *hookGenerator) NewToken() (string, error) {
	g.calls++
	if g.calls == g.at {
		g.hook()
	}
	return g.inner.NewToken()
}

type failingUoW struct {
	shared.UnitOfWork
	err error
}

func (u failingUoW) Within(context.Context, func(context.Context, shared.Tx) error) error {
	return u.err
}

func (f *fixture) issueWith(t *testing.T, tokens []string) {
	t.Helper()
	gen := &sequenceGenerator{tokens: tokens}
	issuer := NewCouponCommands(f.store, gen, f.clock, nil, config.NewTestConfig().Coupon)
	_, err := issuer.IssueCoupons(context.Background(), IssueCouponsInput{
		BatchName: "Seed",
		SKU:       "SKU-0",
		Count:     len(tokens),
		Points:    10,
	})
	require.NoError(t, err)
}
