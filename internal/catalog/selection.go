package catalog

// Selection tracks which service offering a booking session has chosen.
// A zero selection is valid: nothing is chosen until Select succeeds.
// Selection is owned by a single session and is not safe for concurrent use.
type Selection struct {
	cat     *Catalog
	current string
}

// NewSelection creates an empty selection over the given catalog.
func NewSelection(cat *Catalog) *Selection {
	return &Selection{cat: cat}
}

// Select chooses the offering with the given id. Selecting the id that is
// already current is an idempotent no-op; the changed return reports whether
// the active selection moved to a different offering, which is the signal
// for the form model to reset its service-linked fields.
func (s *Selection) Select(id string) (changed bool, err error) {
	if _, ok := s.cat.Get(id); !ok {
		return false, ErrUnknownService
	}
	if s.current == id {
		return false, nil
	}
	s.current = id
	return true, nil
}

// Clear removes the active selection.
func (s *Selection) Clear() {
	s.current = ""
}

// Current returns the selected offering, if any.
func (s *Selection) Current() (ServiceOffering, bool) {
	if s.current == "" {
		return ServiceOffering{}, false
	}
	return s.cat.Get(s.current)
}
