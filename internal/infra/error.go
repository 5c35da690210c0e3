package infra

import (
	"errors"

	"coupon-ledger/internal/pkg/errs"
	"coupon-ledger/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	// Constraint is set for DUPLICATE_KEY and FOREIGN_KEY_VIOLATED.
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err from its Postgres error code unless kind is given.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k, constraint := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, Constraint: constraint, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func IsConstraint(err error, constraint string) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint == constraint
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// Constraint names from migrations/001_initial_schema.sql.
const (
	ConstraintCouponToken   = "coupons_token_key"
	ConstraintScanCoupon    = "scans_coupon_id_key"
	ConstraintUserPhone     = "users_phone_key"
	ConstraintScanUserFK    = "scans_user_id_fkey"
	ConstraintScanCouponFK  = "scans_coupon_id_fkey"
	ConstraintTxUserFK      = "transactions_user_id_fkey"
	ConstraintTxScanFK      = "transactions_scan_id_fkey"
	ConstraintCouponBatchFK = "coupons_batch_id_fkey"
)

func classify(err error) (RepositoryErrorKind, string) {
	if err == nil {
		return KindDBFailure, ""
	}
	if pgconv.IsNoRows(err) {
		return KindNotFound, ""
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return KindDuplicateKey, pgErr.ConstraintName
		case pgErrCodeForeignKeyViolation:
			return KindForeignKeyViolated, pgErr.ConstraintName
		}
	}
	return KindDBFailure, ""
}
