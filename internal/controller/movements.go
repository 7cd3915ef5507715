package controller

import (
	"context"
	"time"

	"github.com/prn-tf/mira-movil/internal/domain"
	"github.com/prn-tf/mira-movil/internal/repository"
)

// RegisterMovementInput contains the fields for a new movement record.
// Date, actor and equipment name are stamped by the controller.
type RegisterMovementInput struct {
	EquipmentID string              `json:"equipment_id"`
	Kind        domain.MovementKind `json:"kind"`
	Site        string              `json:"site"`
	Notes       string              `json:"notes,omitempty"`
}

// RegisterMovement logs an entry/exit event for a piece of equipment.
// The referenced equipment must exist, and an authenticated session is
// required: the record stores the acting user's login name, and an empty
// actor would be indistinguishable from no session. The equipment display
// name is snapshotted into the record at creation.
func (c *Controller) RegisterMovement(ctx context.Context, input RegisterMovementInput) Result {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	start := time.Now()
	c.busy.Store(true)
	defer c.busy.Store(false)
	c.simulate()

	actor := c.sessionUser()
	if actor == nil {
		c.observe("register_movement", start, false)
		return fail(KindNoSession, "No active session: sign in to register movements.")
	}

	if !input.Kind.Valid() {
		c.observe("register_movement", start, false)
		return fail(KindInvalidFormat, "Movement kind must be entry or exit.")
	}

	if input.Site == "" {
		c.observe("register_movement", start, false)
		return fail(KindInvalidFormat, "Site is required.")
	}

	eq, err := c.equipment.GetByID(ctx, input.EquipmentID)
	switch {
	case err == repository.ErrNotFound:
		c.observe("register_movement", start, false)
		return fail(KindNotFound, "Equipment not found.")
	case err != nil:
		c.logger.Error().Err(err).Str("equipment_id", input.EquipmentID).Msg("failed to get equipment")
		return fail(KindInternal, "Could not register the movement.")
	}

	mv := domain.NewMovementRecord(
		eq.ID, eq.Name, input.Kind, input.Site,
		c.today(), actor.LoginName, input.Notes,
	)

	if err := c.movements.Create(ctx, mv); err != nil {
		c.logger.Error().Err(err).Str("equipment_id", eq.ID).Msg("failed to create movement")
		return fail(KindInternal, "Could not register the movement.")
	}

	c.observe("register_movement", start, true)
	c.logger.Info().
		Str("movement_id", mv.ID).
		Str("equipment_code", eq.Code).
		Str("kind", string(mv.Kind)).
		Str("site", mv.Site).
		Str("actor", mv.Actor).
		Msg("movement registered")
	return ok("Movement registered successfully.")
}

// ListMovements returns a snapshot of all movement records in insertion
// order.
func (c *Controller) ListMovements(ctx context.Context) ([]*domain.MovementRecord, error) {
	return c.movements.List(ctx)
}
