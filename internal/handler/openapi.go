package handler

import (
	"net/http"

	"github.com/pkordes/tagsync/spec"
)

// GetOpenAPI handles GET /openapi.yaml.
// It serves the embedded API specification describing the webhook contract.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
