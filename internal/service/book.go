package service

import (
	"context"
	"log/slog"

	"github.com/dougbrunos/go-rest-apis/internal/domain"
	"github.com/dougbrunos/go-rest-apis/internal/store"
)

// BookService implements the business operations for Book resources.
// The contract mirrors PersonService.
type BookService struct {
	bookStore store.BookStore
	logger    *slog.Logger
}

// NewBookService creates a new BookService.
func NewBookService(bookStore store.BookStore, logger *slog.Logger) *BookService {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for BookService")
	}

	return &BookService{
		bookStore: bookStore,
		logger:    logger.With(slog.String("component", "book_service")),
	}
}

// FindAll returns every stored book in ascending ID order.
func (s *BookService) FindAll(ctx context.Context) ([]*domain.Book, error) {
	s.logger.Debug("finding all books")
	return s.bookStore.List(ctx)
}

// FindByID returns the book with the given ID.
func (s *BookService) FindByID(ctx context.Context, id int64) (*domain.Book, error) {
	s.logger.Debug("finding one book", slog.Int64("book_id", id))
	return s.bookStore.GetByID(ctx, id)
}

// Create validates and stores a new book.
func (s *BookService) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	s.logger.Debug("creating book")

	created, err := s.bookStore.Create(ctx, book)
	if err != nil {
		return nil, err
	}

	s.logger.Info("book created", slog.Int64("book_id", created.ID))
	return created, nil
}

// Update replaces the stored book identified by book.ID.
func (s *BookService) Update(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	s.logger.Debug("updating book", slog.Int64("book_id", book.ID))

	updated, err := s.bookStore.Update(ctx, book)
	if err != nil {
		return nil, err
	}

	s.logger.Info("book updated", slog.Int64("book_id", updated.ID))
	return updated, nil
}

// Delete removes the book with the given ID.
func (s *BookService) Delete(ctx context.Context, id int64) error {
	s.logger.Debug("deleting book", slog.Int64("book_id", id))

	if err := s.bookStore.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("book deleted", slog.Int64("book_id", id))
	return nil
}
