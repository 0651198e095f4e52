package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/dougbrunos/go-rest-apis/internal/domain"
)

// BookStore defines the storage operations for Book entities.
// The contract matches PersonStore: sentinel errors for missing records,
// ascending ID order for listings.
type BookStore interface {
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	List(ctx context.Context) ([]*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) (*domain.Book, error)
	Delete(ctx context.Context, id int64) error
}

// MemoryBookStore is an in-memory BookStore implementation.
type MemoryBookStore struct {
	counter atomic.Int64

	mu      sync.RWMutex
	records map[int64]domain.Book
}

var _ BookStore = (*MemoryBookStore)(nil)

// NewMemoryBookStore creates an empty in-memory book store.
func NewMemoryBookStore() *MemoryBookStore {
	return &MemoryBookStore{
		records: make(map[int64]domain.Book),
	}
}

func (s *MemoryBookStore) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if err := book.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEntity, err)
	}

	stored := *book
	stored.ID = s.counter.Add(1)

	s.mu.Lock()
	s.records[stored.ID] = stored
	s.mu.Unlock()

	return &stored, nil
}

func (s *MemoryBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	s.mu.RLock()
	stored, ok := s.records[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrBookNotFound
	}
	return &stored, nil
}

func (s *MemoryBookStore) List(ctx context.Context) ([]*domain.Book, error) {
	s.mu.RLock()
	books := make([]*domain.Book, 0, len(s.records))
	for _, stored := range s.records {
		record := stored
		books = append(books, &record)
	}
	s.mu.RUnlock()

	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books, nil
}

func (s *MemoryBookStore) Update(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if err := book.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[book.ID]; !ok {
		return nil, ErrBookNotFound
	}

	stored := *book
	s.records[stored.ID] = stored
	return &stored, nil
}

func (s *MemoryBookStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrBookNotFound
	}

	delete(s.records, id)
	return nil
}
