// Package repository defines data access interfaces for MIRA MÓVIL.
// These interfaces abstract entity storage, keeping the controller clean
// of storage concerns. The only shipped implementation is in-memory: every
// entity set is transient mock state by design.
package repository

import (
	"context"

	"github.com/prn-tf/mira-movil/internal/domain"
)

// UserRepository defines the interface for user account access.
type UserRepository interface {
	// Create stores a new account.
	Create(ctx context.Context, user *domain.UserAccount) error

	// GetByID retrieves an account by ID.
	GetByID(ctx context.Context, id string) (*domain.UserAccount, error)

	// GetByLoginName retrieves an account by login name.
	GetByLoginName(ctx context.Context, loginName string) (*domain.UserAccount, error)

	// GetByEmail retrieves an account by email, regardless of status.
	GetByEmail(ctx context.Context, email string) (*domain.UserAccount, error)

	// Update replaces an existing account.
	Update(ctx context.Context, user *domain.UserAccount) error

	// Delete removes an account by ID.
	Delete(ctx context.Context, id string) error

	// List returns every account in insertion order.
	List(ctx context.Context) ([]*domain.UserAccount, error)

	// ExistsByLoginName checks if an account with the login name exists.
	ExistsByLoginName(ctx context.Context, loginName string) (bool, error)

	// ExistsByCedula checks if an account with the cédula exists.
	ExistsByCedula(ctx context.Context, cedula string) (bool, error)

	// ExistsByEmail checks if an account with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// EquipmentRepository defines the interface for equipment access.
type EquipmentRepository interface {
	// Create stores a new equipment record.
	Create(ctx context.Context, eq *domain.Equipment) error

	// GetByID retrieves equipment by ID.
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)

	// List returns all equipment in insertion order.
	List(ctx context.Context) ([]*domain.Equipment, error)

	// ExistsByCode checks if equipment with the code exists.
	// Codes are matched case-sensitively.
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// MovementRepository defines the interface for movement record access.
// Movement records are immutable and never deleted, so the interface has
// no update or delete operations.
type MovementRepository interface {
	// Create stores a new movement record.
	Create(ctx context.Context, mv *domain.MovementRecord) error

	// List returns all movement records in insertion order.
	List(ctx context.Context) ([]*domain.MovementRecord, error)

	// ExistsByActor checks if any record was logged by the login name.
	ExistsByActor(ctx context.Context, loginName string) (bool, error)
}
