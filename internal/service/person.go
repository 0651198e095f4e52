package service

import (
	"context"
	"log/slog"

	"github.com/dougbrunos/go-rest-apis/internal/domain"
	"github.com/dougbrunos/go-rest-apis/internal/store"
)

// PersonService implements the business operations for Person resources.
type PersonService struct {
	personStore store.PersonStore
	logger      *slog.Logger
}

// NewPersonService creates a new PersonService.
func NewPersonService(personStore store.PersonStore, logger *slog.Logger) *PersonService {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PersonService")
	}

	return &PersonService{
		personStore: personStore,
		logger:      logger.With(slog.String("component", "person_service")),
	}
}

// FindAll returns every stored person in ascending ID order.
func (s *PersonService) FindAll(ctx context.Context) ([]*domain.Person, error) {
	s.logger.Debug("finding all persons")
	return s.personStore.List(ctx)
}

// FindByID returns the person with the given ID.
// Returns store.ErrPersonNotFound when no record exists.
func (s *PersonService) FindByID(ctx context.Context, id int64) (*domain.Person, error) {
	s.logger.Debug("finding one person", slog.Int64("person_id", id))
	return s.personStore.GetByID(ctx, id)
}

// Create validates and stores a new person, returning the stored copy
// with its assigned ID.
func (s *PersonService) Create(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	s.logger.Debug("creating person")

	created, err := s.personStore.Create(ctx, person)
	if err != nil {
		return nil, err
	}

	s.logger.Info("person created", slog.Int64("person_id", created.ID))
	return created, nil
}

// Update replaces the stored person identified by person.ID.
// Returns store.ErrPersonNotFound when no record exists.
func (s *PersonService) Update(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	s.logger.Debug("updating person", slog.Int64("person_id", person.ID))

	updated, err := s.personStore.Update(ctx, person)
	if err != nil {
		return nil, err
	}

	s.logger.Info("person updated", slog.Int64("person_id", updated.ID))
	return updated, nil
}

// Delete removes the person with the given ID.
// Returns store.ErrPersonNotFound when no record exists.
func (s *PersonService) Delete(ctx context.Context, id int64) error {
	s.logger.Debug("deleting person", slog.Int64("person_id", id))

	if err := s.personStore.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("person deleted", slog.Int64("person_id", id))
	return nil
}
