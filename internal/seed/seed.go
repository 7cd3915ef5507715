// Package seed loads the demo fixtures the mobile client ships with: two
// user accounts, two pieces of equipment and a pair of movement records.
// All state is transient, so the fixtures are loaded on every start when
// enabled.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/prn-tf/mira-movil/internal/credentials"
	"github.com/prn-tf/mira-movil/internal/domain"
	"github.com/prn-tf/mira-movil/internal/repository"
)

// Demo populates the repositories with the demo data set. Passwords equal
// the login name; under the bcrypt scheme the hash is derived through the
// verifier so the demo accounts stay usable.
func Demo(
	ctx context.Context,
	users repository.UserRepository,
	equipment repository.EquipmentRepository,
	movements repository.MovementRepository,
	verifier credentials.Verifier,
	logger zerolog.Logger,
) error {
	jperez := domain.NewUserAccount("Juan", "Pérez", "1710034065", "juan.perez@empresa.com", "jperez", domain.RolePurchasingLead, "2024-01-15")
	mgonzalez := domain.NewUserAccount("María", "González", "1710034560", "maria.gonzalez@empresa.com", "mgonzalez", domain.RoleWarehouseKeeper, "2024-02-10")

	for _, u := range []*domain.UserAccount{jperez, mgonzalez} {
		hash, err := verifier.Hash(u.LoginName)
		if err != nil {
			return fmt.Errorf("hash demo password for %s: %w", u.LoginName, err)
		}
		u.PasswordHash = hash
		if err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.LoginName, err)
		}
	}

	excavator := domain.NewEquipment("EXC-001", "2024-01-10")
	excavator.Name = "Excavadora Principal"
	excavator.Type = "Excavadora"
	excavator.Brand = "Caterpillar"
	excavator.Model = "320D"
	excavator.Year = 2019
	excavator.Condition = "Operativa"
	excavator.Location = "Proyecto Norte"
	excavator.PurchaseValue = 185000

	crane := domain.NewEquipment("GRU-001", "2024-01-15")
	crane.Name = "Grúa Torre"
	crane.Type = "Grúa"
	crane.Brand = "Liebherr"
	crane.Model = "85 EC-B 5"
	crane.Year = 2021
	crane.Condition = "Operativa"
	crane.Location = "Bodega Central"
	crane.PurchaseValue = 420000

	for _, e := range []*domain.Equipment{excavator, crane} {
		if err := equipment.Create(ctx, e); err != nil {
			return fmt.Errorf("seed equipment %s: %w", e.Code, err)
		}
	}

	demoMovements := []*domain.MovementRecord{
		domain.NewMovementRecord(excavator.ID, excavator.Name, domain.MovementExit, "Proyecto Norte", "2024-07-20", "jperez", "Inicio de excavación"),
		domain.NewMovementRecord(crane.ID, crane.Name, domain.MovementEntry, "Bodega Central", "2024-07-22", "mgonzalez", ""),
	}
	for _, mv := range demoMovements {
		if err := movements.Create(ctx, mv); err != nil {
			return fmt.Errorf("seed movement for %s: %w", mv.EquipmentName, err)
		}
	}

	logger.Info().
		Int("users", 2).
		Int("equipment", 2).
		Int("movements", 2).
		Msg("demo fixtures loaded")
	return nil
}
