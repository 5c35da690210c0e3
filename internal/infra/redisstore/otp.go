package redisstore

import (
	"context"
	"errors"
	"time"

	"coupon-ledger/internal/pkg/errs"
	"coupon-ledger/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

type OTPStore struct {
	client redis.Cmdable
}

func NewOTPStore(client redis.Cmdable) *OTPStore {
	return &OTPStore{client: client}
}

func otpKey(phone string) string {
	return keyPrefix + "otp:" + phone
}

func (s *OTPStore) Save(ctx context.Context, phone, codeHash string, ttl time.Duration) error {
	if err := s.client.Set(ctx, otpKey(phone), codeHash, ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to save otp")
	}
	return nil
}

// Take is a single GETDEL, so two verifications can never both see the code.
func (s *OTPStore) Take(ctx context.Context, phone string) (string, error) {
	hash, err := s.client.GetDel(ctx, otpKey(phone)).Result()
	if errors.Is(err, redis.Nil) {
		return "", errs.Wrapf(shared.ErrOTPNotFound, "phone %s", phone)
	}
	if err != nil {
		return "", errs.Wrap(err, "failed to take otp")
	}
	return hash, nil
}
