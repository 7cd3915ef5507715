package memory

import (
	"context"
	"sync"

	"github.com/prn-tf/mira-movil/internal/domain"
	"github.com/prn-tf/mira-movil/internal/repository"
)

// MovementRepository implements repository.MovementRepository in memory.
type MovementRepository struct {
	mu        sync.RWMutex
	movements []*domain.MovementRecord
}

// NewMovementRepository creates an empty in-memory movement repository.
func NewMovementRepository() *MovementRepository {
	return &MovementRepository{}
}

// Create stores a new movement record.
func (r *MovementRepository) Create(ctx context.Context, mv *domain.MovementRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.movements {
		if m.ID == mv.ID {
			return repository.ErrAlreadyExists
		}
	}

	cp := *mv
	r.movements = append(r.movements, &cp)
	return nil
}

// List returns all movement records in insertion order.
func (r *MovementRepository) List(ctx context.Context) ([]*domain.MovementRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.MovementRecord, len(r.movements))
	for i, m := range r.movements {
		cp := *m
		out[i] = &cp
	}
	return out, nil
}

// ExistsByActor checks if any record was logged by the login name.
func (r *MovementRepository) ExistsByActor(ctx context.Context, loginName string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.movements {
		if m.Actor == loginName {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.MovementRepository = (*MovementRepository)(nil)
