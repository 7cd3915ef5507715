package domain

import "errors"

// Validation errors reported by entity-level checks.
var (
	ErrCedulaFormat         = errors.New("cédula must be exactly 10 digits")
	ErrCedulaChecksum       = errors.New("cédula check digit does not match")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrInvalidLoginName     = errors.New("invalid login name: must be at least 3 characters, alphanumeric or underscore")
	ErrInvalidEquipmentCode = errors.New("invalid equipment code: must be at least 3 characters, uppercase letters, digits or hyphens")
	ErrInvalidRole          = errors.New("unknown role")
	ErrInvalidStatus        = errors.New("unknown account status")
	ErrInvalidMovementKind  = errors.New("unknown movement kind")
	ErrInvalidDateRange     = errors.New("invalid date range")
	ErrNegativeValue        = errors.New("purchase value must not be negative")
)
