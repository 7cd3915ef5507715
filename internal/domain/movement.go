package domain

import (
	"github.com/google/uuid"
)

// MovementKind distinguishes equipment arriving at or leaving a site.
type MovementKind string

// Movement kinds.
const (
	MovementEntry MovementKind = "entry"
	MovementExit  MovementKind = "exit"
)

// Valid reports whether the kind is one of the recognized values.
func (k MovementKind) Valid() bool {
	return k == MovementEntry || k == MovementExit
}

// MovementRecord is a logged entry/exit event for a piece of equipment
// at a site. Records are immutable and never deleted. EquipmentName is a
// denormalized snapshot of the equipment's display name at creation time,
// and Actor is the login name of the user who logged the movement.
type MovementRecord struct {
	// ID is the unique identifier (generated at creation).
	ID string `json:"id"`

	// EquipmentID references the Equipment the movement concerns.
	// Must resolve at creation time.
	EquipmentID string `json:"equipment_id"`

	// EquipmentName is the equipment display name snapshotted at creation.
	EquipmentName string `json:"equipment_name"`

	// Kind is entry or exit.
	Kind MovementKind `json:"kind"`

	// Site is the site or project the equipment moved to or from.
	Site string `json:"site"`

	// Date is the movement date in YYYY-MM-DD form, stamped at creation.
	Date string `json:"date"`

	// Actor is the login name of the authenticated user at creation.
	Actor string `json:"actor"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`
}

// NewMovementRecord creates a movement record with a fresh identity.
func NewMovementRecord(equipmentID, equipmentName string, kind MovementKind, site, date, actor, notes string) *MovementRecord {
	return &MovementRecord{
		ID:            uuid.NewString(),
		EquipmentID:   equipmentID,
		EquipmentName: equipmentName,
		Kind:          kind,
		Site:          site,
		Date:          date,
		Actor:         actor,
		Notes:         notes,
	}
}
