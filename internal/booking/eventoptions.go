package booking

// EventOption is one proposed date/time pair for a speaking engagement.
type EventOption struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// EventOptions is an append-only list of date/time pairs. Dates and times
// live in a single paired structure, so their lengths can never diverge.
type EventOptions struct {
	pairs []EventOption
}

// NewEventOptions returns a list seeded with one empty pair, matching the
// form's initial state.
func NewEventOptions() *EventOptions {
	return &EventOptions{pairs: []EventOption{{}}}
}

// Append adds one empty pair at the end.
func (o *EventOptions) Append() {
	o.pairs = append(o.pairs, EventOption{})
}

// Len returns the number of pairs.
func (o *EventOptions) Len() int {
	return len(o.pairs)
}

// SetDate sets the date of the pair at index i.
func (o *EventOptions) SetDate(i int, value string) error {
	if i < 0 || i >= len(o.pairs) {
		return ErrIndexOutOfRange
	}
	o.pairs[i].Date = value
	return nil
}

// SetTime sets the time of the pair at index i.
func (o *EventOptions) SetTime(i int, value string) error {
	if i < 0 || i >= len(o.pairs) {
		return ErrIndexOutOfRange
	}
	o.pairs[i].Time = value
	return nil
}

// Clone returns an independent copy.
func (o *EventOptions) Clone() *EventOptions {
	return &EventOptions{pairs: o.All()}
}

// All returns a copy of the pairs in order.
func (o *EventOptions) All() []EventOption {
	out := make([]EventOption, len(o.pairs))
	copy(out, o.pairs)
	return out
}
