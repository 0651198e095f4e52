package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dougbrunos/go-rest-apis/internal/api/shared"
	"github.com/dougbrunos/go-rest-apis/internal/domain"
	"github.com/dougbrunos/go-rest-apis/internal/platform/logger"
	"github.com/dougbrunos/go-rest-apis/internal/service"
)

// BookHandler handles book-related HTTP requests.
type BookHandler struct {
	bookService *service.BookService
	logger      *slog.Logger
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(bookService *service.BookService, log *slog.Logger) *BookHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for BookHandler")
	}

	return &BookHandler{
		bookService: bookService,
		logger:      log.With(slog.String("component", "book_handler")),
	}
}

// List handles GET /api/book/v1 requests.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.FindAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list books")
		return
	}

	shared.Respond(w, r, http.StatusOK, toBookDTOs(books))
}

// GetByID handles GET /api/book/v1/{id} requests.
func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	book, err := h.bookService.FindByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get book")
		return
	}

	shared.Respond(w, r, http.StatusOK, toBookDTO(book))
}

// Create handles POST /api/book/v1 requests.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto BookDTO
	if !h.decodeAndValidate(w, r, &dto) {
		return
	}

	created, err := h.bookService.Create(r.Context(), toBookEntity(dto))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create book")
		return
	}

	shared.Respond(w, r, http.StatusCreated, toBookDTO(created))
}

// Update handles PUT /api/book/v1 requests. The record to replace is
// identified by the ID carried in the request body.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var dto BookDTO
	if !h.decodeAndValidate(w, r, &dto) {
		return
	}

	if dto.ID <= 0 {
		HandleAPIError(w, r, domain.ErrInvalidID, "")
		return
	}

	updated, err := h.bookService.Update(r.Context(), toBookEntity(dto))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update book")
		return
	}

	shared.Respond(w, r, http.StatusOK, toBookDTO(updated))
}

// Delete handles DELETE /api/book/v1/{id} requests.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.bookService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete book")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeAndValidate reads the negotiated request body into dto and
// validates it, writing the error response itself on failure.
func (h *BookHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dto *BookDTO) bool {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := shared.DecodeBody(r, dto); err != nil {
		if errors.Is(err, shared.ErrUnsupportedMediaType) {
			HandleAPIError(w, r, err, "")
			return false
		}
		log.Debug("failed to decode request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if err := shared.ValidateRequest(dto); err != nil {
		log.Debug("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return false
	}

	return true
}
