// Package domain contains the core business entities for MIRA MÓVIL.
// These are pure Go structs with no external dependencies, representing
// the fundamental concepts of the equipment tracking system.
package domain

import (
	"github.com/google/uuid"
)

// Role identifies the job function of a user account.
type Role string

// Roles recognized by the system.
const (
	RolePurchasingLead  Role = "purchasing_lead"
	RoleWarehouseKeeper Role = "warehouse_keeper"
)

// Valid reports whether the role is one of the recognized values.
func (r Role) Valid() bool {
	return r == RolePurchasingLead || r == RoleWarehouseKeeper
}

// AccountStatus is the lifecycle state of a user account.
type AccountStatus string

// Account statuses.
const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
)

// Valid reports whether the status is one of the recognized values.
func (s AccountStatus) Valid() bool {
	return s == AccountActive || s == AccountInactive
}

// UserAccount represents a registered user in the system.
// Login name, cédula and email are each unique across all accounts.
// After creation only Role and Status may change.
type UserAccount struct {
	// ID is the unique identifier for the account (generated at creation).
	ID string `json:"id"`

	// FirstName and LastName form the legal name of the holder.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Cedula is the Ecuadorian national identity number: exactly 10
	// digits with an embedded check digit.
	Cedula string `json:"cedula"`

	// Email is the unique email address for the account.
	Email string `json:"email"`

	// LoginName is the unique name used to sign in.
	// Constraints: at least 3 characters, alphanumeric or underscore.
	LoginName string `json:"login_name"`

	// Role is the job function assigned to the account.
	Role Role `json:"role"`

	// Status controls whether the account may authenticate.
	Status AccountStatus `json:"status"`

	// PasswordHash is the stored credential for hash-based verifiers.
	// Empty under the placeholder credential scheme.
	PasswordHash string `json:"-"`

	// CreatedAt is the creation date in YYYY-MM-DD form.
	CreatedAt string `json:"created_at"`
}

// NewUserAccount creates an active account with a fresh identity.
func NewUserAccount(firstName, lastName, cedula, email, loginName string, role Role, createdAt string) *UserAccount {
	return &UserAccount{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Cedula:    cedula,
		Email:     email,
		LoginName: loginName,
		Role:      role,
		Status:    AccountActive,
		CreatedAt: createdAt,
	}
}

// CanAuthenticate returns true if the account is allowed to sign in.
func (u *UserAccount) CanAuthenticate() bool {
	return u.Status == AccountActive
}
