package commands

import (
	"context"
	"log/slog"

	"coupon-ledger/internal/domain/coupon"
	"coupon-ledger/internal/domain/ledger"
	"coupon-ledger/internal/domain/scan"
	"coupon-ledger/internal/pkg/clock"
	"coupon-ledger/internal/pkg/errs"
	"coupon-ledger/internal/pkg/metrics"
	"coupon-ledger/internal/usecase/shared"
)

type RedeemInput struct {
	Token    string
	UserID   int64
	DeviceID string
	Location string
}

type RedeemResult struct {
	PointsCredited int64
	CouponID       int64
	ScanID         int64
}

type RedemptionCommands interface {
	Redeem(ctx context.Context, in RedeemInput) (*RedeemResult, error)
}

type redemptionCommandsImpl struct {
	uow     shared.UnitOfWork
	marker  shared.RedeemedMarker
	clock   clock.Clock
	metrics *metrics.Collector
}

func NewRedemptionCommands(
	uow shared.UnitOfWork,
	marker shared.RedeemedMarker,
	clk clock.Clock,
	collector *metrics.Collector,
) RedemptionCommands {
	if marker == nil {
		marker = shared.NopRedeemedMarker{}
	}
	return &redemptionCommandsImpl{
		uow:     uow,
		marker:  marker,
		clock:   clk,
		metrics: collector,
	}
}

// Redeem credits the coupon's points to the user at most once per coupon. The
// pre-check only rejects early; the scan insert inside the claim transaction decides.
func (r *redemptionCommandsImpl) Redeem(ctx context.Context, in RedeemInput) (*RedeemResult, error) {
	snap, err := r.precheck(ctx, in)
	if err != nil {
		r.metrics.ObserveRedemption(outcomeOf(err))
		return nil, err
	}

	result, err := r.claim(ctx, snap, in)
	if err != nil {
		r.metrics.ObserveRedemption(outcomeOf(err))
		return nil, err
	}

	if err := r.marker.MarkRedeemed(ctx, snap.Token); err != nil {
		slog.Warn("failed to update redeemed marker", "coupon_id", snap.ID, "error", err.Error())
	}

	r.metrics.ObserveRedemption(metrics.OutcomeSuccess)
	slog.Info("coupon redeemed",
		"coupon_id", result.CouponID,
		"scan_id", result.ScanID,
		"user_id", in.UserID,
		"points", result.PointsCredited)
	return result, nil
}

func (r *redemptionCommandsImpl) precheck(ctx context.Context, in RedeemInput) (*shared.CouponSnapshot, error) {
	token, err := coupon.NewToken(in.Token)
	if err != nil && !errs.Is(err, coupon.ErrTokenTooLong) {
		return nil, errs.Mark(err, ErrValidation)
	}
	if in.UserID <= 0 {
		return nil, ErrUnauthorized
	}
	// no issued token is that long, so it cannot match a coupon
	if err != nil {
		return nil, errs.Mark(err, ErrCouponNotFound)
	}

	redeemed, err := r.marker.IsRedeemed(ctx, token)
	if err != nil {
		slog.Warn("redeemed marker lookup failed", "error", err.Error())
	} else if redeemed {
		return nil, ErrAlreadyRedeemed
	}

	snap, err := r.uow.CommandReads().CouponByToken(ctx, token)
	if err != nil {
		if errs.Is(err, shared.ErrCouponNotFound) {
			return nil, ErrCouponNotFound
		}
		slog.Error("coupon lookup failed", "error", err.Error())
		return nil, errs.Mark(err, ErrInternal)
	}
	if snap.Status == coupon.StatusRedeemed {
		return nil, ErrAlreadyRedeemed
	}
	return snap, nil
}

func (r *redemptionCommandsImpl) claim(ctx context.Context, snap *shared.CouponSnapshot, in RedeemInput) (*RedeemResult, error) {
	now := r.clock.Now()
	s, err := scan.NewScan(snap.ID, in.UserID, in.DeviceID, in.Location, now)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	var result *RedeemResult
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		scanID, err := tx.Scans().Claim(ctx, s)
		if err != nil {
			return err
		}
		if err := tx.Coupons().MarkRedeemed(ctx, snap.ID); err != nil {
			return err
		}

		credit, err := ledger.NewCredit(in.UserID, snap.Points.Int64(), &scanID, now)
		if err != nil {
			return err
		}
		if _, err := tx.Transactions().Append(ctx, credit); err != nil {
			return err
		}

		result = &RedeemResult{
			PointsCredited: snap.Points.Int64(),
			CouponID:       snap.ID,
			ScanID:         scanID,
		}
		return nil
	})
	if err == nil {
		return result, nil
	}

	switch {
	case errs.Is(err, shared.ErrCouponAlreadyClaimed):
		slog.Info("redemption lost race", "coupon_id", snap.ID, "user_id", in.UserID)
		return nil, ErrRedemptionConflict
	case errs.Is(err, shared.ErrUnknownUser):
		return nil, ErrUnauthorized
	case errs.Is(err, shared.ErrCouponNotFound):
		return nil, ErrCouponNotFound
	default:
		slog.Error("redemption claim failed", "coupon_id", snap.ID, "user_id", in.UserID, "error", err.Error())
		return nil, errs.Mark(err, ErrInternal)
	}
}

func outcomeOf(err error) string {
	switch {
	case errs.Is(err, ErrCouponNotFound):
		return metrics.OutcomeNotFound
	case errs.Is(err, ErrAlreadyRedeemed):
		return metrics.OutcomeAlreadyRedeemed
	case errs.Is(err, ErrRedemptionConflict):
		return metrics.OutcomeConflict
	case errs.Is(err, ErrValidation), errs.Is(err, ErrUnauthorized):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}
