package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/dougbrunos/go-rest-apis/internal/domain"
)

// PersonStore defines the storage operations for Person entities.
type PersonStore interface {
	// Create stores a new person, assigning a fresh ID.
	// Returns ErrInvalidEntity (wrapping the validation error) when the
	// entity fails validation.
	Create(ctx context.Context, person *domain.Person) (*domain.Person, error)

	// GetByID retrieves a person by ID.
	// Returns ErrPersonNotFound when no record exists.
	GetByID(ctx context.Context, id int64) (*domain.Person, error)

	// List returns all stored persons in ascending ID order.
	List(ctx context.Context) ([]*domain.Person, error)

	// Update replaces the stored person identified by person.ID.
	// Returns ErrPersonNotFound when no record exists.
	Update(ctx context.Context, person *domain.Person) (*domain.Person, error)

	// Delete removes the person with the given ID.
	// Returns ErrPersonNotFound when no record exists.
	Delete(ctx context.Context, id int64) error
}

// MemoryPersonStore is an in-memory PersonStore implementation.
// IDs are synthesized from an atomic counter, safe for concurrent creates.
type MemoryPersonStore struct {
	counter atomic.Int64

	mu      sync.RWMutex
	records map[int64]domain.Person
}

// Statically verify the interface is satisfied.
var _ PersonStore = (*MemoryPersonStore)(nil)

// NewMemoryPersonStore creates an empty in-memory person store.
func NewMemoryPersonStore() *MemoryPersonStore {
	return &MemoryPersonStore{
		records: make(map[int64]domain.Person),
	}
}

func (s *MemoryPersonStore) Create(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	if err := person.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEntity, err)
	}

	stored := *person
	stored.ID = s.counter.Add(1)

	s.mu.Lock()
	s.records[stored.ID] = stored
	s.mu.Unlock()

	return &stored, nil
}

func (s *MemoryPersonStore) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	s.mu.RLock()
	stored, ok := s.records[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrPersonNotFound
	}
	return &stored, nil
}

func (s *MemoryPersonStore) List(ctx context.Context) ([]*domain.Person, error) {
	s.mu.RLock()
	persons := make([]*domain.Person, 0, len(s.records))
	for _, stored := range s.records {
		record := stored
		persons = append(persons, &record)
	}
	s.mu.RUnlock()

	sort.Slice(persons, func(i, j int) bool { return persons[i].ID < persons[j].ID })
	return persons, nil
}

func (s *MemoryPersonStore) Update(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	if err := person.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[person.ID]; !ok {
		return nil, ErrPersonNotFound
	}

	stored := *person
	s.records[stored.ID] = stored
	return &stored, nil
}

func (s *MemoryPersonStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrPersonNotFound
	}

	delete(s.records, id)
	return nil
}
