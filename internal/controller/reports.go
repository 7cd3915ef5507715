package controller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prn-tf/mira-movil/internal/domain"
	"github.com/prn-tf/mira-movil/internal/report"
)

// GenerateReport filters movement records and renders the matches into a
// downloadable artifact. A record matches when its date falls inside the
// inclusive range, its site contains the project filter as a
// case-insensitive substring, and its equipment's type equals the type
// filter exactly; empty optional filters match everything. An empty match
// set is a soft failure, not an error.
func (c *Controller) GenerateReport(ctx context.Context, filters report.Filters) ReportResult {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	start := time.Now()
	c.busy.Store(true)
	defer c.busy.Store(false)
	c.simulate()

	if err := domain.ValidateDateRange(filters.DateFrom, filters.DateTo); err != nil {
		c.observe("generate_report", start, false)
		return ReportResult{Result: fail(KindInvalidFormat, "Invalid date range.")}
	}

	movements, err := c.movements.List(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to list movements")
		return ReportResult{Result: fail(KindInternal, "Could not generate the report.")}
	}

	// Equipment type lookup for the optional type filter.
	typeByID := map[string]string{}
	if filters.EquipmentType != "" {
		equipment, err := c.equipment.List(ctx)
		if err != nil {
			c.logger.Error().Err(err).Msg("failed to list equipment")
			return ReportResult{Result: fail(KindInternal, "Could not generate the report.")}
		}
		for _, eq := range equipment {
			typeByID[eq.ID] = eq.Type
		}
	}

	project := strings.ToLower(filters.Project)
	var matched []*domain.MovementRecord
	for _, m := range movements {
		if m.Date < filters.DateFrom || m.Date > filters.DateTo {
			continue
		}
		if project != "" && !strings.Contains(strings.ToLower(m.Site), project) {
			continue
		}
		if filters.EquipmentType != "" && typeByID[m.EquipmentID] != filters.EquipmentType {
			continue
		}
		matched = append(matched, m)
	}

	if len(matched) == 0 {
		c.observe("generate_report", start, false)
		return ReportResult{Result: fail(KindNoResults, "No movements matched the selected filters.")}
	}

	generatedAt := c.now()
	content, contentType, err := c.renderer.Render(filters, matched, generatedAt)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to render report")
		return ReportResult{Result: fail(KindInternal, "Could not generate the report.")}
	}

	artifact := &report.Artifact{
		ID:          uuid.NewString(),
		Filename:    fmt.Sprintf("movement-report-%s.txt", generatedAt.Format("2006-01-02")),
		ContentType: contentType,
		Content:     content,
		CreatedAt:   generatedAt,
	}
	if err := c.artifacts.Put(artifact); err != nil {
		c.logger.Error().Err(err).Msg("failed to store report artifact")
		return ReportResult{Result: fail(KindInternal, "Could not generate the report.")}
	}

	c.observe("generate_report", start, true)
	c.logger.Info().
		Str("artifact_id", artifact.ID).
		Int("movements", len(matched)).
		Msg("report generated")
	return ReportResult{
		Result:     ok(fmt.Sprintf("Report generated: %d movement(s) found.", len(matched))),
		Count:      len(matched),
		ArtifactID: artifact.ID,
	}
}

// GetReportArtifact retrieves a previously generated artifact.
func (c *Controller) GetReportArtifact(id string) (*report.Artifact, error) {
	return c.artifacts.Get(id)
}
