package commands

import (
	"context"
	"log/slog"

	"coupon-ledger/internal/domain/coupon"
	"coupon-ledger/internal/pkg/clock"
	"coupon-ledger/internal/pkg/config"
	"coupon-ledger/internal/pkg/errs"
	"coupon-ledger/internal/pkg/metrics"
	"coupon-ledger/internal/pkg/tokengen"
	"coupon-ledger/internal/usecase/shared"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
)

type IssueCouponsInput struct {
	BatchName string
	SKU       string
	Count     int
	Points    int64
}

type IssueCouponsResult struct {
	BatchID int64
	// Tokens are in issuance order.
	Tokens []string
}

type CouponCommands interface {
	IssueCoupons(ctx context.Context, in IssueCouponsInput) (*IssueCouponsResult, error)
}

type couponCommandsImpl struct {
	uow         shared.UnitOfWork
	tokens      tokengen.Generator
	clock       clock.Clock
	metrics     *metrics.Collector
	maxPerBatch int
	retry       retrypolicy.RetryPolicy[int64]
}

func NewCouponCommands(
	uow shared.UnitOfWork,
	tokens tokengen.Generator,
	clk clock.Clock,
	collector *metrics.Collector,
	cfg config.CouponConfig,
) CouponCommands {
	retry := retrypolicy.NewBuilder[int64]().
		HandleIf(func(_ int64, err error) bool {
			return errs.Is(err, shared.ErrTokenCollision)
		}).
		WithMaxRetries(cfg.TokenMaxRetries).
		ReturnLastFailure().
		Build()

	return &couponCommandsImpl{
		uow:         uow,
		tokens:      tokens,
		clock:       clk,
		metrics:     collector,
		maxPerBatch: cfg.MaxPerBatch,
		retry:       retry,
	}
}

func (c *couponCommandsImpl) IssueCoupons(ctx context.Context, in IssueCouponsInput) (*IssueCouponsResult, error) {
	batch, count, points, err := c.validate(in)
	if err != nil {
		return nil, err
	}

	var result *IssueCouponsResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		batchID, err := tx.Batches().Create(ctx, batch)
		if err != nil {
			return err
		}

		tokens := make([]string, 0, int(count))
		for i := 0; i < int(count); i++ {
			token, err := c.insertCoupon(ctx, tx, batchID, points)
			if err != nil {
				return err
			}
			tokens = append(tokens, token.String())
		}

		result = &IssueCouponsResult{BatchID: batchID, Tokens: tokens}
		return nil
	})
	if err != nil {
		if errs.Is(err, ErrTokenGenerationFailed) {
			return nil, err
		}
		if errs.Is(err, shared.ErrTokenCollision) {
			return nil, errs.Mark(err, ErrTokenGenerationFailed)
		}
		slog.Error("coupon issuance failed", "batch_name", in.BatchName, "count", in.Count, "error", err.Error())
		return nil, errs.Mark(err, ErrInternal)
	}

	c.metrics.AddCouponsIssued(len(result.Tokens))
	slog.Info("coupons issued", "batch_id", result.BatchID, "count", len(result.Tokens), "points", points.Int64())
	return result, nil
}

func (c *couponCommandsImpl) validate(in IssueCouponsInput) (*coupon.Batch, coupon.Count, coupon.Points, error) {
	name, err := coupon.NewBatchName(in.BatchName)
	if err != nil {
		return nil, 0, 0, errs.Mark(err, ErrValidation)
	}
	sku, err := coupon.NewSKU(in.SKU)
	if err != nil {
		return nil, 0, 0, errs.Mark(err, ErrValidation)
	}
	count, err := coupon.NewCount(in.Count, c.maxPerBatch)
	if err != nil {
		return nil, 0, 0, errs.Mark(err, ErrValidation)
	}
	points, err := coupon.NewPoints(in.Points)
	if err != nil {
		return nil, 0, 0, errs.Mark(err, ErrValidation)
	}
	return coupon.NewBatch(name, sku, c.clock.Now()), count, points, nil
}

// insertCoupon draws a fresh token on every attempt; only collisions are retried.
func (c *couponCommandsImpl) insertCoupon(ctx context.Context, tx shared.Tx, batchID int64, points coupon.Points) (coupon.Token, error) {
	var token coupon.Token
	_, err := failsafe.With(c.retry).WithContext(ctx).Get(func() (int64, error) {
		raw, err := c.tokens.NewToken()
		if err != nil {
			return 0, errs.Mark(err, ErrTokenGenerationFailed)
		}
		token, err = coupon.NewToken(raw)
		if err != nil {
			return 0, errs.Mark(err, ErrTokenGenerationFailed)
		}

		id, err := tx.Coupons().Insert(ctx, coupon.NewCoupon(token, batchID, points, c.clock.Now()))
		if errs.Is(err, shared.ErrTokenCollision) {
			c.metrics.IncTokenCollision()
			slog.Warn("coupon token collision", "batch_id", batchID)
		}
		return id, err
	})
	if err != nil {
		if errs.Is(err, shared.ErrTokenCollision) {
			return "", errs.Mark(err, ErrTokenGenerationFailed)
		}
		return "", err
	}
	return token, nil
}
