// Package validate holds the form field checks shared by web modules. Every
// check returns a field-bound invalid-input error or nil.
package validate

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
)

// EmailMaxLength is the longest accepted email address in bytes.
const EmailMaxLength = 254

// Localization keys of the shared checks.
const (
	KeyRequired     = "form.error.required"
	KeyTooLong      = "form.error.too_long"
	KeyEmailInvalid = "form.error.email_invalid"
)

// Required rejects blank values.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.Field(field, KeyRequired, field+" is required")
	}
	return nil
}

// MaxRunes rejects values longer than limit characters.
func MaxRunes(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return apperrors.Field(field, KeyTooLong, field+" is too long")
	}
	return nil
}

// Email accepts exactly one bare RFC 5322 address. Blank values are
// reported as missing.
func Email(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return Required(field, value)
	}
	if len(value) > EmailMaxLength {
		return apperrors.Field(field, KeyTooLong, field+" is too long")
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || !strings.Contains(addr.Address, "@") {
		return apperrors.Field(field, KeyEmailInvalid, field+" is not a valid email address")
	}
	return nil
}
