package handlers

import (
	"net/http"

	"github.com/holisticrecovery/recovery-platform/internal/content"
	"github.com/holisticrecovery/recovery-platform/internal/observability/metrics"
)

// ContentHandler serves the recovery content library with category and
// search filtering.
type ContentHandler struct {
	catalog []content.Item
	metrics *metrics.BookingMetrics
}

// NewContentHandler creates a content handler over the given catalog. A nil
// catalog falls back to the built-in library.
func NewContentHandler(catalog []content.Item, m *metrics.BookingMetrics) *ContentHandler {
	if catalog == nil {
		catalog = content.DefaultCatalog()
	}
	return &ContentHandler{catalog: catalog, metrics: m}
}

type contentListResponse struct {
	Items    []content.Item `json:"items"`
	Count    int            `json:"count"`
	Category string         `json:"category"`
	Query    string         `json:"query,omitempty"`
}

// List handles GET /content?category=&q=. An empty category means all.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = content.CategoryAll
	}
	query := r.URL.Query().Get("q")

	items := content.Filter(h.catalog, category, query)
	h.metrics.ObserveFilterQuery()

	writeJSON(w, http.StatusOK, contentListResponse{
		Items:    items,
		Count:    len(items),
		Category: category,
		Query:    query,
	})
}

// ListCategories handles GET /content/categories.
func (h *ContentHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": content.Categories(),
	})
}
