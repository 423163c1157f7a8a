package rest

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// queryInt reads a required integer query parameter, writing a 400 and
// returning ok=false when missing or malformed.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		writeError(w, http.StatusBadRequest, "MISSING_PARAM", "query parameter "+name+" is required")
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PARAM", "query parameter "+name+" must be an integer")
		return 0, false
	}
	return v, true
}

// queryIntOptional reads an optional integer query parameter. A missing
// parameter yields (nil, true); a malformed one writes a 400.
func queryIntOptional(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PARAM", "query parameter "+name+" must be an integer")
		return nil, false
	}
	return &v, true
}

// pathUUID parses the {id} path value, writing a 400 when malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PARAM", "path parameter "+name+" must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
