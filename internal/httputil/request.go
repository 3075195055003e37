package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxBodyBytes caps request bodies. A full tree replacement is the largest payload.
const maxBodyBytes = 10 << 20

// ParseJSON decodes JSON from the request body into the given destination.
// Unknown fields are accepted so node metadata maps can carry arbitrary keys.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("invalid JSON: empty body")
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}

// QueryString returns a trimmed query parameter, or nil when it is absent or empty
func QueryString(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}
