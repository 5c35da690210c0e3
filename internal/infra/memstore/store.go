// Package memstore is a process-local implementation of the write and read stores.
// It keeps the same exactly-once guarantees as Postgres: every write is staged in
// the transaction and re-validated against committed state under one lock at commit.
package memstore

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"coupon-ledger/internal/domain/coupon"
	"coupon-ledger/internal/domain/ledger"
	"coupon-ledger/internal/pkg/clock"
	"coupon-ledger/internal/pkg/errs"
	"coupon-ledger/internal/usecase/shared"
)

const maxCommitRetries = 3

var errPhoneTaken = errs.New("phone registered by a concurrent transaction")

type userRow struct {
	id        int64
	phone     string
	createdAt time.Time
}

type couponRow struct {
	id      int64
	token   coupon.Token
	batchID int64
	points  coupon.Points
	status  coupon.Status
}

type scanRow struct {
	id       int64
	couponID int64
	userID   int64
}

type Store struct {
	clock clock.Clock

	mu             sync.RWMutex
	users          map[int64]*userRow
	usersByPhone   map[string]int64
	batches        map[int64]*coupon.Batch
	coupons        map[int64]*couponRow
	couponsByToken map[coupon.Token]int64
	scansByCoupon  map[int64]scanRow
	transactions   []*ledger.Transaction

	userSeq   atomic.Int64
	batchSeq  atomic.Int64
	couponSeq atomic.Int64
	scanSeq   atomic.Int64
	txSeq     atomic.Int64
}

func New(clk clock.Clock) *Store {
	return &Store{
		clock:          clk,
		users:          make(map[int64]*userRow),
		usersByPhone:   make(map[string]int64),
		batches:        make(map[int64]*coupon.Batch),
		coupons:        make(map[int64]*couponRow),
		couponsByToken: make(map[coupon.Token]int64),
		scansByCoupon:  make(map[int64]scanRow),
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		tx := newMemTx(s)
		if err := fn(ctx, tx); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		// a concurrent commit took a phone or token this tx staged; fn runs again on fresh state
		err := s.commit(tx)
		if retryableCommitErr(err) && attempt < maxCommitRetries {
			continue
		}
		return err
	}
}

func retryableCommitErr(err error) bool {
	return errs.Is(err, errPhoneTaken) || errs.Is(err, shared.ErrTokenCollision)
}

func (s *Store) CommandReads() shared.CommandReads {
	return s
}

func (s *Store) CouponByToken(_ context.Context, token coupon.Token) (*shared.CouponSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.couponsByToken[token]
	if !ok {
		return nil, errs.Wrapf(shared.ErrCouponNotFound, "token %q", token)
	}
	c := s.coupons[id]
	return &shared.CouponSnapshot{
		ID:      c.id,
		Token:   c.token,
		BatchID: c.batchID,
		Points:  c.points,
		Status:  c.status,
	}, nil
}

// ListByUser returns committed transactions newest first.
func (s *Store) ListByUser(_ context.Context, userID int64) ([]*ledger.Transaction, error) {
	s.mu.RLock()
	out := make([]*ledger.Transaction, 0)
	for _, t := range s.transactions {
		if t.UserID() == userID {
			out = append(out, t)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b *ledger.Transaction) int {
		if c := b.CreatedAt().Compare(a.CreatedAt()); c != 0 {
			return c
		}
		switch {
		case a.ID() > b.ID():
			return -1
		case a.ID() < b.ID():
			return 1
		default:
			return 0
		}
	})
	return out, nil
}

func (s *Store) commit(tx *memTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range tx.users {
		if _, taken := s.usersByPhone[u.phone]; taken {
			return errPhoneTaken
		}
	}
	for _, c := range tx.coupons {
		if _, taken := s.couponsByToken[c.token]; taken {
			return errs.Wrapf(shared.ErrTokenCollision, "token %q", c.token)
		}
	}
	for _, sc := range tx.scans {
		if _, claimed := s.scansByCoupon[sc.couponID]; claimed {
			return errs.Wrapf(shared.ErrCouponAlreadyClaimed, "coupon %d", sc.couponID)
		}
	}

	for _, u := range tx.users {
		s.users[u.id] = u
		s.usersByPhone[u.phone] = u.id
	}
	for id, b := range tx.batches {
		s.batches[id] = b
	}
	for _, c := range tx.coupons {
		s.coupons[c.id] = c
		s.couponsByToken[c.token] = c.id
	}
	for id := range tx.redeemed {
		s.coupons[id].status = coupon.StatusRedeemed
	}
	for _, sc := range tx.scans {
		s.scansByCoupon[sc.couponID] = sc
	}
	s.transactions = append(s.transactions, tx.transactions...)
	return nil
}
