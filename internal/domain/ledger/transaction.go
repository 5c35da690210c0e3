package ledger

import (
	"errors"
	"time"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidUser   = errors.New("invalid user id")
)

type Type string

const (
	TypeCredit Type = "credit"
	TypeDebit  Type = "debit"
)

func ParseType(raw string) (Type, error) {
	switch Type(raw) {
	case TypeCredit, TypeDebit:
		return Type(raw), nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string { return string(t) }

// Transaction is an append-only ledger entry. Amount is always a positive magnitude.
type Transaction struct {
	id        int64
	userID    int64
	amount    int64
	txType    Type
	scanID    *int64
	createdAt time.Time
}

func NewCredit(userID, amount int64, scanID *int64, now time.Time) (*Transaction, error) {
	return newTransaction(userID, amount, TypeCredit, scanID, now)
}

func NewDebit(userID, amount int64, now time.Time) (*Transaction, error) {
	return newTransaction(userID, amount, TypeDebit, nil, now)
}

func newTransaction(userID, amount int64, t Type, scanID *int64, now time.Time) (*Transaction, error) {
	if userID <= 0 {
		return nil, ErrInvalidUser
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Transaction{
		userID:    userID,
		amount:    amount,
		txType:    t,
		scanID:    scanID,
		createdAt: now,
	}, nil
}

func Reconstruct(id, userID, amount int64, t Type, scanID *int64, createdAt time.Time) *Transaction {
	return &Transaction{
		id:        id,
		userID:    userID,
		amount:    amount,
		txType:    t,
		scanID:    scanID,
		createdAt: createdAt,
	}
}

// SignedAmount is +amount for credits and -amount for debits.
func (t *Transaction) SignedAmount() int64 {
	if t.txType == TypeDebit {
		return -t.amount
	}
	return t.amount
}

func (t *Transaction) ID() int64            { return t.id }
func (t *Transaction) UserID() int64        { return t.userID }
func (t *Transaction) Amount() int64        { return t.amount }
func (t *Transaction) Type() Type           { return t.txType }
func (t *Transaction) ScanID() *int64       { return t.scanID }
func (t *Transaction) CreatedAt() time.Time { return t.createdAt }

// Balance folds signed amounts. An empty ledger has balance 0.
func Balance(txs []*Transaction) int64 {
	var total int64
	for _, tx := range txs {
		total += tx.SignedAmount()
	}
	return total
}
