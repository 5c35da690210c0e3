package coupon

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidToken     = errors.New("invalid coupon token")
	ErrTokenTooLong     = errors.New("coupon token longer than any issued token")
	ErrInvalidPoints    = errors.New("points must be a positive integer")
	ErrInvalidBatchName = errors.New("batch name must be 1-255 characters")
	ErrInvalidSKU       = errors.New("sku must be 1-255 characters")
	ErrInvalidCount     = errors.New("coupon count out of range")
	ErrInvalidStatus    = errors.New("invalid coupon status")
)

const (
	maxLabelLength = 255
	maxTokenLength = 64
)

type Token string

// NewToken keeps the token byte-for-byte; tokens are compared exactly.
func NewToken(raw string) (Token, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrInvalidToken
	}
	if len(raw) > maxTokenLength {
		return "", ErrTokenTooLong
	}
	return Token(raw), nil
}

func (t Token) String() string {
	return string(t)
}

type Points int64

func NewPoints(v int64) (Points, error) {
	if v < 1 {
		return 0, ErrInvalidPoints
	}
	return Points(v), nil
}

func (p Points) Int64() int64 {
	return int64(p)
}

type BatchName string

func NewBatchName(raw string) (BatchName, error) {
	v, ok := label(raw)
	if !ok {
		return "", ErrInvalidBatchName
	}
	return BatchName(v), nil
}

func (n BatchName) String() string {
	return string(n)
}

type SKU string

func NewSKU(raw string) (SKU, error) {
	v, ok := label(raw)
	if !ok {
		return "", ErrInvalidSKU
	}
	return SKU(v), nil
}

func (s SKU) String() string {
	return string(s)
}

// Count is the number of coupons in one issuance request.
type Count int

func NewCount(v, maxPerBatch int) (Count, error) {
	if v < 1 || v > maxPerBatch {
		return 0, ErrInvalidCount
	}
	return Count(v), nil
}

type Status string

const (
	StatusIssued   Status = "issued"
	StatusRedeemed Status = "redeemed"
)

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusIssued, StatusRedeemed:
		return Status(raw), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

func label(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	if v == "" || utf8.RuneCountInString(v) > maxLabelLength {
		return "", false
	}
	return v, true
}
