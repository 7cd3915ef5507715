// Package memory provides in-memory repository implementations.
// All entity state in MIRA MÓVIL is transient by design: slices keep
// insertion order, and reads hand out copies so callers can never mutate
// stored state directly.
package memory

import (
	"context"
	"sync"

	"github.com/prn-tf/mira-movil/internal/domain"
	"github.com/prn-tf/mira-movil/internal/repository"
)

// UserRepository implements repository.UserRepository in memory.
type UserRepository struct {
	mu    sync.RWMutex
	users []*domain.UserAccount
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Create stores a new account.
func (r *UserRepository) Create(ctx context.Context, user *domain.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == user.ID {
			return repository.ErrAlreadyExists
		}
	}

	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

// GetByID retrieves an account by ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetByLoginName retrieves an account by login name.
func (r *UserRepository) GetByLoginName(ctx context.Context, loginName string) (*domain.UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.LoginName == loginName {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetByEmail retrieves an account by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Update replaces an existing account.
func (r *UserRepository) Update(ctx context.Context, user *domain.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == user.ID {
			cp := *user
			r.users[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes an account by ID, preserving the order of the rest.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// List returns every account in insertion order.
func (r *UserRepository) List(ctx context.Context) ([]*domain.UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.UserAccount, len(r.users))
	for i, u := range r.users {
		cp := *u
		out[i] = &cp
	}
	return out, nil
}

// ExistsByLoginName checks if an account with the login name exists.
func (r *UserRepository) ExistsByLoginName(ctx context.Context, loginName string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.LoginName == loginName {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByCedula checks if an account with the cédula exists.
func (r *UserRepository) ExistsByCedula(ctx context.Context, cedula string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Cedula == cedula {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByEmail checks if an account with the email exists.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
