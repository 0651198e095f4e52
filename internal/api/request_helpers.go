package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dougbrunos/go-rest-apis/internal/domain"
)

// getPathID extracts a numeric ID from the URL path parameters.
// Non-numeric values yield domain.ErrInvalidID so handlers answer 400,
// never 404, for a malformed ID.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: missing %s", domain.ErrInvalidID, paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, pathParam)
	}

	return id, nil
}
