package domain

import (
	"github.com/google/uuid"
)

// Equipment represents a registered piece of machinery.
// The code is unique across all equipment; records are immutable after
// registration.
type Equipment struct {
	// ID is the unique identifier (generated at registration).
	ID string `json:"id"`

	// Code is the unique inventory code, e.g. "EXC-001".
	Code string `json:"code"`

	// Descriptive fields supplied at registration.
	Name         string `json:"name"`
	Type         string `json:"type"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	SerialNumber string `json:"serial_number"`
	Condition    string `json:"condition"`
	Location     string `json:"location"`
	Description  string `json:"description"`

	// PurchaseValue is the acquisition cost. Never negative.
	PurchaseValue float64 `json:"purchase_value"`

	// RegisteredAt is the registration date in YYYY-MM-DD form.
	RegisteredAt string `json:"registered_at"`
}

// NewEquipment creates an equipment record with a fresh identity.
func NewEquipment(code string, registeredAt string) *Equipment {
	return &Equipment{
		ID:           uuid.NewString(),
		Code:         code,
		RegisteredAt: registeredAt,
	}
}
