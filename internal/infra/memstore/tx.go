package memstore

import (
	"context"

	"coupon-ledger/internal/domain/coupon"
	"coupon-ledger/internal/domain/ledger"
	"coupon-ledger/internal/domain/scan"
	"coupon-ledger/internal/domain/user"
	"coupon-ledger/internal/pkg/errs"
	"coupon-ledger/internal/usecase/shared"
)

// memTx stages writes until commit. Reads see committed state plus its own writes.
type memTx struct {
	store *Store

	users        []*userRow
	batches      map[int64]*coupon.Batch
	coupons      []*couponRow
	redeemed     map[int64]struct{}
	scans        []scanRow
	transactions []*ledger.Transaction
}

func newMemTx(s *Store) *memTx {
	return &memTx{
		store:    s,
		batches:  make(map[int64]*coupon.Batch),
		redeemed: make(map[int64]struct{}),
	}
}

func (t *memTx) Batches() shared.BatchRepository            { return batchRepo{t} }
func (t *memTx) Coupons() shared.CouponRepository           { return couponRepo{t} }
func (t *memTx) Scans() shared.ScanRepository               { return scanRepo{t} }
func (t *memTx) Transactions() shared.TransactionRepository { return transactionRepo{t} }
func (t *memTx) Users() shared.UserRepository               { return userRepo{t} }

func (t *memTx) couponExists(id int64) bool {
	for _, c := range t.coupons {
		if c.id == id {
			return true
		}
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	_, ok := t.store.coupons[id]
	return ok
}

func (t *memTx) userExists(id int64) bool {
	for _, u := range t.users {
		if u.id == id {
			return true
		}
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	_, ok := t.store.users[id]
	return ok
}

type batchRepo struct{ tx *memTx }

func (r batchRepo) Create(_ context.Context, b *coupon.Batch) (int64, error) {
	id := r.tx.store.batchSeq.Add(1)
	r.tx.batches[id] = coupon.ReconstructBatch(id, b.Name(), b.SKU(), b.CreatedAt())
	return id, nil
}

type couponRepo struct{ tx *memTx }

func (r couponRepo) Insert(_ context.Context, c *coupon.Coupon) (int64, error) {
	for _, staged := range r.tx.coupons {
		if staged.token == c.Token() {
			return 0, errs.Wrapf(shared.ErrTokenCollision, "token %q", c.Token())
		}
	}

	s := r.tx.store
	s.mu.RLock()
	_, taken := s.couponsByToken[c.Token()]
	_, batchCommitted := s.batches[c.BatchID()]
	s.mu.RUnlock()
	if taken {
		return 0, errs.Wrapf(shared.ErrTokenCollision, "token %q", c.Token())
	}
	if _, staged := r.tx.batches[c.BatchID()]; !staged && !batchCommitted {
		return 0, errs.Newf("batch %d does not exist", c.BatchID())
	}

	id := s.couponSeq.Add(1)
	r.tx.coupons = append(r.tx.coupons, &couponRow{
		id:      id,
		token:   c.Token(),
		batchID: c.BatchID(),
		points:  c.Points(),
		status:  c.Status(),
	})
	return id, nil
}

func (r couponRepo) MarkRedeemed(_ context.Context, couponID int64) error {
	if !r.tx.couponExists(couponID) {
		return errs.Wrapf(shared.ErrCouponNotFound, "coupon %d", couponID)
	}
	r.tx.redeemed[couponID] = struct{}{}
	return nil
}

type scanRepo struct{ tx *memTx }

func (r scanRepo) Claim(_ context.Context, sc *scan.Scan) (int64, error) {
	if !r.tx.couponExists(sc.CouponID()) {
		return 0, errs.Wrapf(shared.ErrCouponNotFound, "coupon %d", sc.CouponID())
	}
	if !r.tx.userExists(sc.UserID()) {
		return 0, errs.Wrapf(shared.ErrUnknownUser, "user %d", sc.UserID())
	}
	for _, staged := range r.tx.scans {
		if staged.couponID == sc.CouponID() {
			return 0, errs.Wrapf(shared.ErrCouponAlreadyClaimed, "coupon %d", sc.CouponID())
		}
	}

	s := r.tx.store
	s.mu.RLock()
	_, claimed := s.scansByCoupon[sc.CouponID()]
	s.mu.RUnlock()
	if claimed {
		return 0, errs.Wrapf(shared.ErrCouponAlreadyClaimed, "coupon %d", sc.CouponID())
	}

	id := s.scanSeq.Add(1)
	r.tx.scans = append(r.tx.scans, scanRow{id: id, couponID: sc.CouponID(), userID: sc.UserID()})
	return id, nil
}

type transactionRepo struct{ tx *memTx }

func (r transactionRepo) Append(_ context.Context, t *ledger.Transaction) (int64, error) {
	if !r.tx.userExists(t.UserID()) {
		return 0, errs.Wrapf(shared.ErrUnknownUser, "user %d", t.UserID())
	}
	id := r.tx.store.txSeq.Add(1)
	r.tx.transactions = append(r.tx.transactions,
		ledger.Reconstruct(id, t.UserID(), t.Amount(), t.Type(), t.ScanID(), t.CreatedAt()))
	return id, nil
}

type userRepo struct{ tx *memTx }

func (r userRepo) GetOrCreateByPhone(_ context.Context, phone user.Phone) (*user.User, error) {
	for _, u := range r.tx.users {
		if u.phone == phone.Value() {
			return user.Reconstruct(u.id, phone, u.createdAt), nil
		}
	}

	s := r.tx.store
	s.mu.RLock()
	if id, ok := s.usersByPhone[phone.Value()]; ok {
		u := s.users[id]
		s.mu.RUnlock()
		return user.Reconstruct(u.id, phone, u.createdAt), nil
	}
	s.mu.RUnlock()

	u := &userRow{id: s.userSeq.Add(1), phone: phone.Value(), createdAt: s.clock.Now()}
	r.tx.users = append(r.tx.users, u)
	return user.Reconstruct(u.id, phone, u.createdAt), nil
}
