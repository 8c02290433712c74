package booking

import (
	"encoding/json"
	"fmt"
)

// Option values rendered by the speaking engagement form.
var (
	AudienceSizes = []string{"small", "medium", "large", "xlarge"}
	AudienceTypes = []string{"recovery", "families", "professionals", "faith", "students", "general", "mixed"}
	EventTypes    = []string{"conference", "workshop", "church", "support-group", "corporate", "educational", "fundraiser", "other"}
	BudgetRanges  = []string{"under-1000", "1000-2500", "2500-5000", "5000-plus", "discuss"}
)

// SpeakingRequest is a speaking engagement booking request.
type SpeakingRequest struct {
	OrganizationName string        `json:"organization_name"`
	ContactName      string        `json:"contact_name"`
	ContactPhone     string        `json:"contact_phone"`
	ContactEmail     string        `json:"contact_email"`
	EventOptions     *EventOptions `json:"event_options"`
	AudienceSize     string        `json:"audience_size"`
	AudienceType     string        `json:"audience_type"`
	EventType        string        `json:"event_type"`
	TopicsOfInterest []string      `json:"topics_of_interest,omitempty"`
	Budget           string        `json:"budget,omitempty"`
	Location         string        `json:"location"`
	AdditionalInfo   string        `json:"additional_info,omitempty"`
}

// NewSpeakingRequest returns an empty request with one blank event option,
// matching the form's initial state.
func NewSpeakingRequest() *SpeakingRequest {
	return &SpeakingRequest{EventOptions: NewEventOptions()}
}

// Update sets a single scalar field by its path. Event options and topics
// have their own operations.
func (r *SpeakingRequest) Update(fieldPath, value string) error {
	switch fieldPath {
	case "organizationName":
		r.OrganizationName = value
	case "contactName":
		r.ContactName = value
	case "contactPhone":
		r.ContactPhone = value
	case "contactEmail":
		r.ContactEmail = value
	case "audienceSize":
		r.AudienceSize = value
	case "audienceType":
		r.AudienceType = value
	case "eventType":
		r.EventType = value
	case "budget":
		r.Budget = value
	case "location":
		r.Location = value
	case "additionalInfo":
		r.AdditionalInfo = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Clone returns an independent copy, including the event option pairs and
// topic set.
func (r *SpeakingRequest) Clone() *SpeakingRequest {
	c := *r
	c.EventOptions = r.EventOptions.Clone()
	c.TopicsOfInterest = append([]string(nil), r.TopicsOfInterest...)
	return &c
}

// ToggleTopic adds the topic to the set of interest, or removes it if
// already present.
func (r *SpeakingRequest) ToggleTopic(topic string) {
	for i, t := range r.TopicsOfInterest {
		if t == topic {
			r.TopicsOfInterest = append(r.TopicsOfInterest[:i], r.TopicsOfInterest[i+1:]...)
			return
		}
	}
	r.TopicsOfInterest = append(r.TopicsOfInterest, topic)
}

// Validate returns every violated field without short-circuiting.
// Topics, budget and additional info are optional and never produce errors
// beyond enum membership on budget.
func (r *SpeakingRequest) Validate() []FieldError {
	var errs []FieldError

	if blank(r.OrganizationName) {
		errs = append(errs, FieldError{Field: "organizationName", Reason: reasonRequired})
	}
	if blank(r.ContactName) {
		errs = append(errs, FieldError{Field: "contactName", Reason: reasonRequired})
	}
	if blank(r.ContactPhone) {
		errs = append(errs, FieldError{Field: "contactPhone", Reason: reasonRequired})
	} else if !validPhone(r.ContactPhone) {
		errs = append(errs, FieldError{Field: "contactPhone", Reason: reasonInvalidPhone})
	}
	if blank(r.ContactEmail) {
		errs = append(errs, FieldError{Field: "contactEmail", Reason: reasonRequired})
	} else if !validEmail(r.ContactEmail) {
		errs = append(errs, FieldError{Field: "contactEmail", Reason: reasonInvalidEmail})
	}
	for i, opt := range r.EventOptions.All() {
		if blank(opt.Date) {
			errs = append(errs, FieldError{Field: fmt.Sprintf("eventOptions[%d].date", i), Reason: reasonRequired})
		}
		if blank(opt.Time) {
			errs = append(errs, FieldError{Field: fmt.Sprintf("eventOptions[%d].time", i), Reason: reasonRequired})
		}
	}
	if blank(r.AudienceSize) {
		errs = append(errs, FieldError{Field: "audienceSize", Reason: reasonRequired})
	} else if !oneOf(r.AudienceSize, AudienceSizes) {
		errs = append(errs, FieldError{Field: "audienceSize", Reason: reasonInvalidOption})
	}
	if blank(r.AudienceType) {
		errs = append(errs, FieldError{Field: "audienceType", Reason: reasonRequired})
	} else if !oneOf(r.AudienceType, AudienceTypes) {
		errs = append(errs, FieldError{Field: "audienceType", Reason: reasonInvalidOption})
	}
	if blank(r.EventType) {
		errs = append(errs, FieldError{Field: "eventType", Reason: reasonRequired})
	} else if !oneOf(r.EventType, EventTypes) {
		errs = append(errs, FieldError{Field: "eventType", Reason: reasonInvalidOption})
	}
	if !blank(r.Budget) && !oneOf(r.Budget, BudgetRanges) {
		errs = append(errs, FieldError{Field: "budget", Reason: reasonInvalidOption})
	}
	if blank(r.Location) {
		errs = append(errs, FieldError{Field: "location", Reason: reasonRequired})
	}

	return errs
}

// IsComplete reports whether the request would pass validation.
func (r *SpeakingRequest) IsComplete() bool {
	return len(r.Validate()) == 0
}

var _ Form = (*SpeakingRequest)(nil)

// MarshalJSON flattens the paired list for snapshots and drafts.
func (o *EventOptions) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.pairs)
}

// UnmarshalJSON restores the paired list from a draft snapshot.
func (o *EventOptions) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &o.pairs)
}
