// Package docs serves the service's OpenAPI document.
package docs

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
)

//go:embed openapi.json
var openapiJSON []byte

// Handler serves the OpenAPI document for the parcel API
type Handler struct {
	doc []byte
}

// NewHandler loads and validates the embedded OpenAPI document. An invalid
// document is a programming error, so it fails at startup rather than at
// request time.
func NewHandler() (*Handler, error) {
	ctx := context.Background()
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(openapiJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return &Handler{doc: openapiJSON}, nil
}

// RegisterRoutes registers the docs routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/docs/openapi.json", h.OpenAPIDocument)
}

// OpenAPIDocument handles GET /docs/openapi.json
func (h *Handler) OpenAPIDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(h.doc); err != nil {
		slog.Error("Failed writing openapi document", "err", err)
	}
}
