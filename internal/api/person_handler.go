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

// PersonHandler handles person-related HTTP requests, in both the v1 and
// v2 DTO shapes.
type PersonHandler struct {
	personService *service.PersonService
	logger        *slog.Logger
}

// NewPersonHandler creates a new PersonHandler.
func NewPersonHandler(personService *service.PersonService, log *slog.Logger) *PersonHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PersonHandler")
	}

	return &PersonHandler{
		personService: personService,
		logger:        log.With(slog.String("component", "person_handler")),
	}
}

// List handles GET /api/person/v1 requests.
func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	persons, err := h.personService.FindAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list persons")
		return
	}

	log.Debug("listing persons", slog.Int("count", len(persons)))
	shared.Respond(w, r, http.StatusOK, toPersonDTOs(persons))
}

// GetByID handles GET /api/person/v1/{id} requests.
func (h *PersonHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	person, err := h.personService.FindByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get person")
		return
	}

	shared.Respond(w, r, http.StatusOK, toPersonDTO(person))
}

// Create handles POST /api/person/v1 requests.
func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto PersonDTO
	if !h.decodeAndValidate(w, r, &dto) {
		return
	}

	created, err := h.personService.Create(r.Context(), toPersonEntity(dto))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create person")
		return
	}

	shared.Respond(w, r, http.StatusCreated, toPersonDTO(created))
}

// Update handles PUT /api/person/v1 requests. The record to replace is
// identified by the ID carried in the request body.
func (h *PersonHandler) Update(w http.ResponseWriter, r *http.Request) {
	var dto PersonDTO
	if !h.decodeAndValidate(w, r, &dto) {
		return
	}

	if dto.ID <= 0 {
		HandleAPIError(w, r, domain.ErrInvalidID, "")
		return
	}

	updated, err := h.personService.Update(r.Context(), toPersonEntity(dto))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update person")
		return
	}

	shared.Respond(w, r, http.StatusOK, toPersonDTO(updated))
}

// Delete handles DELETE /api/person/v1/{id} requests.
func (h *PersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.personService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete person")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateV2 handles POST /api/person/v2 requests, accepting the v2 DTO
// with its birth day field.
func (h *PersonHandler) CreateV2(w http.ResponseWriter, r *http.Request) {
	var dto PersonDTOV2
	if !h.decodeAndValidate(w, r, &dto) {
		return
	}

	created, err := h.personService.Create(r.Context(), toPersonEntityV2(dto))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create person")
		return
	}

	shared.Respond(w, r, http.StatusCreated, toPersonDTOV2(created))
}

// GetByIDV2 handles GET /api/person/v2/{id} requests.
func (h *PersonHandler) GetByIDV2(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	person, err := h.personService.FindByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get person")
		return
	}

	shared.Respond(w, r, http.StatusOK, toPersonDTOV2(person))
}

// decodeAndValidate reads the negotiated request body into dto and
// validates it, writing the error response itself on failure.
func (h *PersonHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dto interface{}) bool {
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
