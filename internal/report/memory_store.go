package report

import (
	"errors"
	"sync"
)

// ErrArtifactNotFound indicates the requested artifact does not exist.
var ErrArtifactNotFound = errors.New("report artifact not found")

// MemoryStore implements Store in memory. Artifacts live for the life of
// the process only.
type MemoryStore struct {
	mu        sync.RWMutex
	artifacts map[string]*Artifact
}

// NewMemoryStore creates an empty in-memory artifact store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		artifacts: make(map[string]*Artifact),
	}
}

// Put stores the artifact under its ID.
func (s *MemoryStore) Put(artifact *Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.artifacts[artifact.ID] = artifact
	return nil
}

// Get retrieves an artifact by ID.
func (s *MemoryStore) Get(id string) (*Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	artifact, ok := s.artifacts[id]
	if !ok {
		return nil, ErrArtifactNotFound
	}
	return artifact, nil
}

var _ Store = (*MemoryStore)(nil)
