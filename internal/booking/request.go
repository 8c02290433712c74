// Package booking implements the dual-mode request form models: therapy
// session requests and speaking engagement requests. Both expose the same
// contract (update a field by path, validate into an exhaustive set of
// field errors, report completeness) so the submission lifecycle can treat
// them uniformly while dispatching over the two kinds.
package booking

// Kind discriminates the two request variants.
type Kind string

const (
	KindTherapy  Kind = "therapy"
	KindSpeaking Kind = "speaking"
)

// Valid reports whether k names a known request kind.
func (k Kind) Valid() bool {
	return k == KindTherapy || k == KindSpeaking
}

// FieldError describes a single validation failure. Validation failures are
// data, not errors: they are returned for the presentation layer to render
// and never abort the workflow.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

const (
	reasonRequired      = "required"
	reasonInvalidEmail  = "invalid email address"
	reasonInvalidPhone  = "invalid phone number"
	reasonInvalidOption = "not an allowed value"
)

// Form is the contract both request variants satisfy.
type Form interface {
	Update(fieldPath, value string) error
	Validate() []FieldError
	IsComplete() bool
}

// Request is the tagged union handed to the delivery collaborator. Exactly
// one of Therapy or Speaking is set, matching Kind.
type Request struct {
	Kind     Kind             `json:"kind"`
	Therapy  *TherapyRequest  `json:"therapy,omitempty"`
	Speaking *SpeakingRequest `json:"speaking,omitempty"`
}

// NewTherapyPayload wraps a therapy request for delivery.
func NewTherapyPayload(r *TherapyRequest) Request {
	return Request{Kind: KindTherapy, Therapy: r}
}

// NewSpeakingPayload wraps a speaking request for delivery.
func NewSpeakingPayload(r *SpeakingRequest) Request {
	return Request{Kind: KindSpeaking, Speaking: r}
}

// Validate dispatches to the underlying variant.
func (r Request) Validate() []FieldError {
	switch r.Kind {
	case KindTherapy:
		return r.Therapy.Validate()
	case KindSpeaking:
		return r.Speaking.Validate()
	}
	return []FieldError{{Field: "kind", Reason: reasonInvalidOption}}
}
