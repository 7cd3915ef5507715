package domain

import (
	"net/mail"
	"regexp"
)

var (
	loginNameRe     = regexp.MustCompile(`^[A-Za-z0-9_]{3,}$`)
	equipmentCodeRe = regexp.MustCompile(`^[A-Z0-9-]{3,}$`)
	dateRe          = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidateEmail checks that the string is a bare, syntactically valid
// email address.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateLoginName checks the login name rule: at least 3 characters,
// alphanumeric or underscore only.
func ValidateLoginName(loginName string) error {
	if !loginNameRe.MatchString(loginName) {
		return ErrInvalidLoginName
	}
	return nil
}

// ValidateEquipmentCode checks the inventory code rule: at least 3
// characters, uppercase letters, digits and hyphens only.
func ValidateEquipmentCode(code string) error {
	if !equipmentCodeRe.MatchString(code) {
		return ErrInvalidEquipmentCode
	}
	return nil
}

// ValidDate reports whether the string is in YYYY-MM-DD form. Dates are
// kept as strings throughout so that range filters can compare them
// lexically, inclusive at both ends.
func ValidDate(date string) bool {
	return dateRe.MatchString(date)
}

// ValidateDateRange checks that both bounds are well-formed dates and
// that from does not come after to.
func ValidateDateRange(from, to string) error {
	if !ValidDate(from) || !ValidDate(to) {
		return ErrInvalidDateRange
	}
	if from > to {
		return ErrInvalidDateRange
	}
	return nil
}
