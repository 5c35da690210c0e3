package user

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidPhone = errors.New("invalid phone number")

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

type Phone struct {
	value string
}

// NewPhone strips common separators before validating.
func NewPhone(s string) (Phone, error) {
	s = phoneSeparators.Replace(strings.TrimSpace(s))
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}
