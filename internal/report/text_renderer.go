package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/prn-tf/mira-movil/internal/domain"
)

// TextRenderer renders reports as a plain-text movement listing.
type TextRenderer struct{}

// NewTextRenderer creates a plain-text renderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render builds the report body and returns it with its content type.
func (TextRenderer) Render(filters Filters, movements []*domain.MovementRecord, generatedAt time.Time) ([]byte, string, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Movement report\n")
	fmt.Fprintf(&buf, "Generated: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&buf, "Range: %s to %s\n", filters.DateFrom, filters.DateTo)
	if filters.Project != "" {
		fmt.Fprintf(&buf, "Project: %s\n", filters.Project)
	}
	if filters.EquipmentType != "" {
		fmt.Fprintf(&buf, "Equipment type: %s\n", filters.EquipmentType)
	}
	fmt.Fprintf(&buf, "Movements: %d\n\n", len(movements))

	for _, m := range movements {
		fmt.Fprintf(&buf, "%s  %-5s  %-30s  site=%s  by=%s", m.Date, m.Kind, m.EquipmentName, m.Site, m.Actor)
		if m.Notes != "" {
			fmt.Fprintf(&buf, "  notes=%s", m.Notes)
		}
		buf.WriteByte('\n')
	}

	return buf.Bytes(), "text/plain; charset=utf-8", nil
}

var _ Renderer = (*TextRenderer)(nil)
