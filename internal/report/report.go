// Package report turns filtered movement records into downloadable
// artifacts. Rendering and storage are collaborator seams: the shipped
// renderer produces a plain-text summary and the shipped store keeps
// artifacts in memory, referenced by ID.
package report

import (
	"time"

	"github.com/prn-tf/mira-movil/internal/domain"
)

// Artifact is a generated report held for download.
type Artifact struct {
	// ID is the unique reference handed back to the caller.
	ID string `json:"id"`

	// Filename is a suggested download name.
	Filename string `json:"filename"`

	// ContentType is the MIME type of Content.
	ContentType string `json:"content_type"`

	// Content is the rendered report body.
	Content []byte `json:"-"`

	// CreatedAt is when the artifact was generated.
	CreatedAt time.Time `json:"created_at"`
}

// Filters are the report query constraints. Dates are YYYY-MM-DD strings
// compared lexically, inclusive at both ends. Project matches the site
// field as a case-insensitive substring; EquipmentType matches the
// referenced equipment's type exactly. Empty optional filters match
// everything.
type Filters struct {
	DateFrom      string `json:"date_from"`
	DateTo        string `json:"date_to"`
	Project       string `json:"project,omitempty"`
	EquipmentType string `json:"equipment_type,omitempty"`
}

// Renderer produces a report artifact from the matched movements.
type Renderer interface {
	// Render builds the artifact body. movements is never empty.
	Render(filters Filters, movements []*domain.MovementRecord, generatedAt time.Time) ([]byte, string, error)
}

// Store holds generated artifacts for later download.
type Store interface {
	// Put stores the artifact under its ID.
	Put(artifact *Artifact) error

	// Get retrieves an artifact by ID.
	Get(id string) (*Artifact, error)
}
