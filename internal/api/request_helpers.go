package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ehatamm/project/internal/api/shared"
	"github.com/ehatamm/project/internal/domain"
	"github.com/go-chi/chi/v5"
)

// getPathID extracts a positive integer id from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, NewInvalidArgumentError(fmt.Sprintf("Path parameter '%s' is required", paramName), nil)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err == nil && id <= 0 {
		err = domain.ErrInvalidID
	}
	if err != nil {
		return 0, NewInvalidArgumentError(fmt.Sprintf("Invalid %s: %s", paramName, raw), err)
	}
	return id, nil
}

// decodeBody decodes the JSON request body into v, reporting any failure as
// an invalid argument.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		return NewInvalidArgumentError("Malformed JSON request body", err)
	}
	return nil
}
