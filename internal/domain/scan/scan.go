package scan

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var ErrInvalidScan = errors.New("scan requires a coupon and a user")

// MaxFieldLength is counted in characters, matching the request binding limit.
const MaxFieldLength = 255

// Scan records the single successful claim of a coupon.
type Scan struct {
	id        int64
	couponID  int64
	userID    int64
	deviceID  string
	location  string
	createdAt time.Time
}

func NewScan(couponID, userID int64, deviceID, location string, now time.Time) (*Scan, error) {
	if couponID <= 0 || userID <= 0 {
		return nil, ErrInvalidScan
	}
	return &Scan{
		couponID:  couponID,
		userID:    userID,
		deviceID:  clip(deviceID),
		location:  clip(location),
		createdAt: now,
	}, nil
}

func Reconstruct(id, couponID, userID int64, deviceID, location string, createdAt time.Time) *Scan {
	return &Scan{
		id:        id,
		couponID:  couponID,
		userID:    userID,
		deviceID:  deviceID,
		location:  location,
		createdAt: createdAt,
	}
}

func (s *Scan) ID() int64            { return s.id }
func (s *Scan) CouponID() int64      { return s.couponID }
func (s *Scan) UserID() int64        { return s.userID }
func (s *Scan) DeviceID() string     { return s.deviceID }
func (s *Scan) Location() string     { return s.location }
func (s *Scan) CreatedAt() time.Time { return s.createdAt }

// device metadata is informational; oversized values are truncated on a rune boundary
func clip(v string) string {
	v = strings.TrimSpace(v)
	if utf8.RuneCountInString(v) <= MaxFieldLength {
		return v
	}
	n := 0
	for i := range v {
		if n == MaxFieldLength {
			return v[:i]
		}
		n++
	}
	return v
}
