package booking

// Session type, format, urgency and history values accepted by the therapy
// form. These mirror the options the booking page renders.
var (
	SessionTypes       = []string{"individual", "group", "family", "addiction"}
	SessionFormats     = []string{"in-person", "telehealth"}
	UrgencyLevels      = []string{"routine", "urgent", "crisis"}
	YesNo              = []string{"yes", "no"}
	PreferredTimeSlots = []string{"morning", "afternoon", "evening", "flexible"}
)

// TherapyRequest is a therapy session booking request. A fresh request
// carries the same defaults the booking form starts with.
type TherapyRequest struct {
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Issue             string `json:"issue"`
	SessionType       string `json:"session_type"`
	PreferredTimeSlot string `json:"preferred_time_slot,omitempty"`
	SessionFormat     string `json:"session_format"`
	InsuranceProvider string `json:"insurance_provider,omitempty"`
	PreviousTherapy   string `json:"previous_therapy"`
	Urgency           string `json:"urgency"`
}

// NewTherapyRequest returns an empty request with form defaults.
func NewTherapyRequest() *TherapyRequest {
	return &TherapyRequest{
		SessionType:     "individual",
		SessionFormat:   "in-person",
		PreviousTherapy: "no",
		Urgency:         "routine",
	}
}

// SetService replaces the service-linked fields for a newly selected
// offering. Session preferences tied to the previous service are reset to
// their defaults rather than merged, so nothing from the old service leaks
// into the new one. Personal and clinical fields are kept.
func (r *TherapyRequest) SetService(serviceID string) {
	r.SessionType = serviceID
	r.PreferredTimeSlot = ""
	r.SessionFormat = "in-person"
	r.Urgency = "routine"
}

// Clone returns an independent copy.
func (r *TherapyRequest) Clone() *TherapyRequest {
	c := *r
	return &c
}

// Update sets a single field by its path.
func (r *TherapyRequest) Update(fieldPath, value string) error {
	switch fieldPath {
	case "name":
		r.Name = value
	case "phone":
		r.Phone = value
	case "email":
		r.Email = value
	case "issue":
		r.Issue = value
	case "sessionType":
		r.SessionType = value
	case "preferredTimeSlot":
		r.PreferredTimeSlot = value
	case "sessionFormat":
		r.SessionFormat = value
	case "insuranceProvider":
		r.InsuranceProvider = value
	case "previousTherapy":
		r.PreviousTherapy = value
	case "urgency":
		r.Urgency = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Validate returns every violated field. It is pure: calling it repeatedly
// without mutating the request yields identical results, and it never
// short-circuits, so the error set is exhaustive per attempt.
func (r *TherapyRequest) Validate() []FieldError {
	var errs []FieldError

	if blank(r.Name) {
		errs = append(errs, FieldError{Field: "name", Reason: reasonRequired})
	}
	if blank(r.Phone) {
		errs = append(errs, FieldError{Field: "phone", Reason: reasonRequired})
	} else if !validPhone(r.Phone) {
		errs = append(errs, FieldError{Field: "phone", Reason: reasonInvalidPhone})
	}
	if blank(r.Email) {
		errs = append(errs, FieldError{Field: "email", Reason: reasonRequired})
	} else if !validEmail(r.Email) {
		errs = append(errs, FieldError{Field: "email", Reason: reasonInvalidEmail})
	}
	if blank(r.Issue) {
		errs = append(errs, FieldError{Field: "issue", Reason: reasonRequired})
	}
	if blank(r.SessionType) {
		errs = append(errs, FieldError{Field: "sessionType", Reason: reasonRequired})
	} else if !oneOf(r.SessionType, SessionTypes) {
		errs = append(errs, FieldError{Field: "sessionType", Reason: reasonInvalidOption})
	}
	// preferredTimeSlot is optional but must be a known slot when present.
	if !blank(r.PreferredTimeSlot) && !oneOf(r.PreferredTimeSlot, PreferredTimeSlots) {
		errs = append(errs, FieldError{Field: "preferredTimeSlot", Reason: reasonInvalidOption})
	}
	if blank(r.SessionFormat) {
		errs = append(errs, FieldError{Field: "sessionFormat", Reason: reasonRequired})
	} else if !oneOf(r.SessionFormat, SessionFormats) {
		errs = append(errs, FieldError{Field: "sessionFormat", Reason: reasonInvalidOption})
	}
	if blank(r.PreviousTherapy) {
		errs = append(errs, FieldError{Field: "previousTherapy", Reason: reasonRequired})
	} else if !oneOf(r.PreviousTherapy, YesNo) {
		errs = append(errs, FieldError{Field: "previousTherapy", Reason: reasonInvalidOption})
	}
	if blank(r.Urgency) {
		errs = append(errs, FieldError{Field: "urgency", Reason: reasonRequired})
	} else if !oneOf(r.Urgency, UrgencyLevels) {
		errs = append(errs, FieldError{Field: "urgency", Reason: reasonInvalidOption})
	}

	return errs
}

// IsComplete reports whether the request would pass validation.
func (r *TherapyRequest) IsComplete() bool {
	return len(r.Validate()) == 0
}

var _ Form = (*TherapyRequest)(nil)
