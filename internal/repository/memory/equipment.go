package memory

import (
	"context"
	"sync"

	"github.com/prn-tf/mira-movil/internal/domain"
	"github.com/prn-tf/mira-movil/internal/repository"
)

// EquipmentRepository implements repository.EquipmentRepository in memory.
type EquipmentRepository struct {
	mu        sync.RWMutex
	equipment []*domain.Equipment
}

// NewEquipmentRepository creates an empty in-memory equipment repository.
func NewEquipmentRepository() *EquipmentRepository {
	return &EquipmentRepository{}
}

// Create stores a new equipment record.
func (r *EquipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.equipment {
		if e.ID == eq.ID {
			return repository.ErrAlreadyExists
		}
	}

	cp := *eq
	r.equipment = append(r.equipment, &cp)
	return nil
}

// GetByID retrieves equipment by ID.
func (r *EquipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.equipment {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

// List returns all equipment in insertion order.
func (r *EquipmentRepository) List(ctx context.Context) ([]*domain.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Equipment, len(r.equipment))
	for i, e := range r.equipment {
		cp := *e
		out[i] = &cp
	}
	return out, nil
}

// ExistsByCode checks if equipment with the code exists. Matching is
// case-sensitive and exact.
func (r *EquipmentRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.equipment {
		if e.Code == code {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.EquipmentRepository = (*EquipmentRepository)(nil)
