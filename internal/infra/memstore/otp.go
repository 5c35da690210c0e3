package memstore

import (
	"context"
	"sync"
	"time"

	"coupon-ledger/internal/pkg/clock"
	"coupon-ledger/internal/pkg/errs"
	"coupon-ledger/internal/usecase/shared"
)

type otpEntry struct {
	hash      string
	expiresAt time.Time
}

// OTPStore keeps OTP hashes in process memory. Used when no Redis is configured.
type OTPStore struct {
	clock clock.Clock

	mu      sync.Mutex
	entries map[string]otpEntry
}

func NewOTPStore(clk clock.Clock) *OTPStore {
	return &OTPStore{
		clock:   clk,
		entries: make(map[string]otpEntry),
	}
}

func (s *OTPStore) Save(_ context.Context, phone, codeHash string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[phone] = otpEntry{hash: codeHash, expiresAt: s.clock.Now().Add(ttl)}
	return nil
}

func (s *OTPStore) Take(_ context.Context, phone string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[phone]
	delete(s.entries, phone)
	if !ok || !s.clock.Now().Before(e.expiresAt) {
		return "", errs.Wrapf(shared.ErrOTPNotFound, "phone %s", phone)
	}
	return e.hash, nil
}
