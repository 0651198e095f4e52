package main

import (
	"log/slog"

	"github.com/dougbrunos/go-rest-apis/internal/config"
	"github.com/dougbrunos/go-rest-apis/internal/service"
	"github.com/dougbrunos/go-rest-apis/internal/store"
)

// application holds the wired dependencies for the HTTP server.
type application struct {
	config *config.Config
	logger *slog.Logger

	personService *service.PersonService
	bookService   *service.BookService
	calculator    *service.Calculator
}

// newApplication wires stores and services into an application.
// Storage is in-memory; every boot starts from an empty dataset.
func newApplication(cfg *config.Config, log *slog.Logger) *application {
	personStore := store.NewMemoryPersonStore()
	bookStore := store.NewMemoryBookStore()

	return &application{
		config:        cfg,
		logger:        log,
		personService: service.NewPersonService(personStore, log),
		bookService:   service.NewBookService(bookStore, log),
		calculator:    service.NewCalculator(),
	}
}
