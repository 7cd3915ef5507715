package controller

import (
	"context"
	"time"

	"github.com/prn-tf/mira-movil/internal/domain"
)

// RegisterEquipmentInput contains the fields for a new equipment record.
type RegisterEquipmentInput struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Year          int     `json:"year"`
	SerialNumber  string  `json:"serial_number"`
	Condition     string  `json:"condition"`
	Location      string  `json:"location"`
	Description   string  `json:"description"`
	PurchaseValue float64 `json:"purchase_value"`
}

// RegisterEquipment stores a new equipment record dated today. The code
// must be well-formed and not already registered; codes are matched
// case-sensitively. Equipment is immutable after registration.
func (c *Controller) RegisterEquipment(ctx context.Context, input RegisterEquipmentInput) Result {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	start := time.Now()
	c.busy.Store(true)
	defer c.busy.Store(false)
	c.simulate()

	if err := domain.ValidateEquipmentCode(input.Code); err != nil {
		c.observe("register_equipment", start, false)
		return fail(KindInvalidFormat, "Invalid equipment code: at least 3 characters, uppercase letters, digits or hyphens.")
	}

	if input.PurchaseValue < 0 {
		c.observe("register_equipment", start, false)
		return fail(KindInvalidFormat, "Purchase value must not be negative.")
	}

	exists, err := c.equipment.ExistsByCode(ctx, input.Code)
	if err != nil {
		c.logger.Error().Err(err).Str("code", input.Code).Msg("failed to check equipment code")
		return fail(KindInternal, "Could not register the equipment.")
	}
	if exists {
		c.observe("register_equipment", start, false)
		return fail(KindDuplicateField, "Equipment code already exists.")
	}

	eq := domain.NewEquipment(input.Code, c.today())
	eq.Name = input.Name
	eq.Type = input.Type
	eq.Brand = input.Brand
	eq.Model = input.Model
	eq.Year = input.Year
	eq.SerialNumber = input.SerialNumber
	eq.Condition = input.Condition
	eq.Location = input.Location
	eq.Description = input.Description
	eq.PurchaseValue = input.PurchaseValue

	if err := c.equipment.Create(ctx, eq); err != nil {
		c.logger.Error().Err(err).Str("code", input.Code).Msg("failed to create equipment")
		return fail(KindInternal, "Could not register the equipment.")
	}

	c.observe("register_equipment", start, true)
	c.logger.Info().
		Str("equipment_id", eq.ID).
		Str("code", eq.Code).
		Msg("equipment registered")
	return ok("Equipment registered successfully.")
}

// ListEquipment returns a snapshot of all equipment in insertion order.
func (c *Controller) ListEquipment(ctx context.Context) ([]*domain.Equipment, error) {
	return c.equipment.List(ctx)
}
