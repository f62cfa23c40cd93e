package service

import (
	"fmt"
	"unicode"

	"vaani_web/internal/common"
)

// PasswordPolicy controls the strength checks applied at registration.
// With Enforce off only a non-empty password is required.
type PasswordPolicy struct {
	Enforce bool
}

const minPasswordLen = 8

// Validate checks a candidate password against the policy. Failures wrap
// common.ErrWeakPassword with the specific reason.
func (p PasswordPolicy) Validate(password string) error {
	if !p.Enforce {
		return nil
	}

	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: must be at least %d characters long", common.ErrWeakPassword, minPasswordLen)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return fmt.Errorf("%w: must not contain spaces", common.ErrWeakPassword)
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return fmt.Errorf("%w: must contain at least one uppercase letter", common.ErrWeakPassword)
	case !hasLower:
		return fmt.Errorf("%w: must contain at least one lowercase letter", common.ErrWeakPassword)
	case !hasDigit:
		return fmt.Errorf("%w: must contain at least one number", common.ErrWeakPassword)
	case !hasSpecial:
		return fmt.Errorf("%w: must contain at least one special character", common.ErrWeakPassword)
	}

	return nil
}
