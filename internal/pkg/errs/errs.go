package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark keeps err as the cause while making errors.Is(result, markErr) true.
// Marks match by type and message, so sentinels need distinct messages.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: cr.Mark(err, markErr)}
}

// Is reports marks as well as the wrapped chain.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

type marked struct {
	cause error
}

func (m *marked) Error() string { return m.cause.Error() }
func (m *marked) Unwrap() error { return m.cause }

// Is lets the standard library errors.Is see marks.
func (m *marked) Is(target error) bool { return cr.Is(m.cause, target) }

func (m *marked) Format(s fmt.State, verb rune) { cr.FormatError(m.cause, s, verb) }

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
