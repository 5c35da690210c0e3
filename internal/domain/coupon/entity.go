package coupon

import (
	"errors"
	"time"
)

var ErrAlreadyRedeemed = errors.New("coupon already redeemed")

type Batch struct {
	id        int64
	name      BatchName
	sku       SKU
	createdAt time.Time
}

func NewBatch(name BatchName, sku SKU, now time.Time) *Batch {
	return &Batch{
		name:      name,
		sku:       sku,
		createdAt: now,
	}
}

func ReconstructBatch(id int64, name BatchName, sku SKU, createdAt time.Time) *Batch {
	return &Batch{id: id, name: name, sku: sku, createdAt: createdAt}
}

func (b *Batch) ID() int64            { return b.id }
func (b *Batch) Name() BatchName      { return b.name }
func (b *Batch) SKU() SKU             { return b.sku }
func (b *Batch) CreatedAt() time.Time { return b.createdAt }

// Coupon moves from issued to redeemed exactly once and never back.
type Coupon struct {
	id        int64
	token     Token
	batchID   int64
	points    Points
	status    Status
	createdAt time.Time
}

func NewCoupon(token Token, batchID int64, points Points, now time.Time) *Coupon {
	return &Coupon{
		token:     token,
		batchID:   batchID,
		points:    points,
		status:    StatusIssued,
		createdAt: now,
	}
}

func ReconstructCoupon(id int64, token Token, batchID int64, points Points, status Status, createdAt time.Time) *Coupon {
	return &Coupon{
		id:        id,
		token:     token,
		batchID:   batchID,
		points:    points,
		status:    status,
		createdAt: createdAt,
	}
}

func (c *Coupon) Redeem() error {
	if c.status == StatusRedeemed {
		return ErrAlreadyRedeemed
	}
	c.status = StatusRedeemed
	return nil
}

func (c *Coupon) IsRedeemed() bool { return c.status == StatusRedeemed }

func (c *Coupon) ID() int64            { return c.id }
func (c *Coupon) Token() Token         { return c.token }
func (c *Coupon) BatchID() int64       { return c.batchID }
func (c *Coupon) Points() Points       { return c.points }
func (c *Coupon) Status() Status       { return c.status }
func (c *Coupon) CreatedAt() time.Time { return c.createdAt }
