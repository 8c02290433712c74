package content

import "strings"

// CategoryAll disables category filtering.
const CategoryAll = "All"

// Filter returns the catalog items matching the category and search text,
// preserving catalog order. An item passes when the category is "All" or
// matches exactly, and the search text (case-insensitive) is empty or a
// substring of the title, the description, or any tag. The result is fully
// materialized; Filter never mutates the catalog.
func Filter(catalog []Item, category, search string) []Item {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]Item, 0, len(catalog))
	for _, item := range catalog {
		if category != CategoryAll && item.Category != category {
			continue
		}
		if needle != "" && !matches(item, needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matches(item Item, needle string) bool {
	if strings.Contains(strings.ToLower(item.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), needle) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// Engine recomputes the filtered view whenever either input changes and
// caches the last result. An Engine is owned by one consumer and is not
// safe for concurrent use; share the catalog, not the engine.
type Engine struct {
	catalog  []Item
	category string
	search   string
	results  []Item
}

// NewEngine creates an engine over the catalog with category "All" and an
// empty search, so the initial view is the whole catalog.
func NewEngine(catalog []Item) *Engine {
	e := &Engine{
		catalog:  catalog,
		category: CategoryAll,
	}
	e.results = Filter(catalog, e.category, e.search)
	return e
}

// SetCategory updates the category input, recomputing only on change.
func (e *Engine) SetCategory(category string) {
	if category == e.category {
		return
	}
	e.category = category
	e.results = Filter(e.catalog, e.category, e.search)
}

// SetSearch updates the search input, recomputing only on change.
func (e *Engine) SetSearch(search string) {
	if search == e.search {
		return
	}
	e.search = search
	e.results = Filter(e.catalog, e.category, e.search)
}

// Results returns the current filtered view.
func (e *Engine) Results() []Item {
	return e.results
}

// Inputs returns the current category and search text.
func (e *Engine) Inputs() (category, search string) {
	return e.category, e.search
}
