package handlers

import (
	"net/http"

	"github.com/holisticrecovery/recovery-platform/internal/catalog"
)

// CatalogHandler serves the static service catalog and speaking topics.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	if cat == nil {
		cat = catalog.Default()
	}
	return &CatalogHandler{catalog: cat}
}

// ListServices handles GET /services.
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"services": h.catalog.List(),
	})
}

// ListSpeakingTopics handles GET /speaking-topics.
func (h *CatalogHandler) ListSpeakingTopics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"topics": catalog.SpeakingTopics(),
	})
}
