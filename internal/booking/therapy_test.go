package booking

import (
	"reflect"
	"testing"
)

func validTherapyRequest() *TherapyRequest {
	r := NewTherapyRequest()
	r.Name = "Jordan Miller"
	r.Phone = "(555) 123-4325"
	r.Email = "jordan@example.com"
	r.Issue = "Working through early recovery and anxiety."
	return r
}

func TestTherapyRequestDefaults(t *testing.T) {
	r := NewTherapyRequest()
	if r.SessionType != "individual" {
		t.Fatalf("expected default session type individual, got %s", r.SessionType)
	}
	if r.SessionFormat != "in-person" {
		t.Fatalf("expected default format in-person, got %s", r.SessionFormat)
	}
	if r.PreviousTherapy != "no" || r.Urgency != "routine" {
		t.Fatalf("unexpected defaults: %+v", r)
	}
}

func TestTherapyValidateComplete(t *testing.T) {
	r := validTherapyRequest()
	if errs := r.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if !r.IsComplete() {
		t.Fatal("expected complete request")
	}
}

func TestTherapyValidateMissingEmailOnly(t *testing.T) {
	r := validTherapyRequest()
	r.Email = ""

	errs := r.Validate()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs[0].Field != "email" || errs[0].Reason != "required" {
		t.Fatalf("expected email required error, got %+v", errs[0])
	}
	if r.IsComplete() {
		t.Fatal("expected incomplete request")
	}
}

func TestTherapyValidateIsPureAndIdempotent(t *testing.T) {
	r := NewTherapyRequest()
	r.Email = "not-an-email"
	r.Phone = "abc"

	first := r.Validate()
	second := r.Validate()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("validate not idempotent: %v vs %v", first, second)
	}
	if len(first) == 0 {
		t.Fatal("expected errors on empty request")
	}
}

func TestTherapyValidateAccumulatesAllErrors(t *testing.T) {
	r := &TherapyRequest{
		Email:           "nope",
		Phone:           "123",
		SessionType:     "hypnosis",
		SessionFormat:   "carrier-pigeon",
		PreviousTherapy: "maybe",
		Urgency:         "whenever",
	}

	errs := r.Validate()
	got := map[string]string{}
	for _, e := range errs {
		got[e.Field] = e.Reason
	}

	for field, reason := range map[string]string{
		"name":            "required",
		"issue":           "required",
		"phone":           "invalid phone number",
		"email":           "invalid email address",
		"sessionType":     "not an allowed value",
		"sessionFormat":   "not an allowed value",
		"previousTherapy": "not an allowed value",
		"urgency":         "not an allowed value",
	} {
		if got[field] != reason {
			t.Fatalf("expected %s error %q, got %q (all: %v)", field, reason, got[field], errs)
		}
	}
}

func TestTherapyOptionalFieldsNeverError(t *testing.T) {
	r := validTherapyRequest()
	r.InsuranceProvider = ""
	r.PreferredTimeSlot = ""
	if errs := r.Validate(); len(errs) != 0 {
		t.Fatalf("optional fields produced errors: %v", errs)
	}

	r.PreferredTimeSlot = "midnight"
	errs := r.Validate()
	if len(errs) != 1 || errs[0].Field != "preferredTimeSlot" {
		t.Fatalf("expected enum check on preferred slot, got %v", errs)
	}
}

func TestTherapyUpdate(t *testing.T) {
	r := NewTherapyRequest()
	if err := r.Update("name", "Casey"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := r.Update("urgency", "crisis"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if r.Name != "Casey" || r.Urgency != "crisis" {
		t.Fatalf("updates not applied: %+v", r)
	}
	if err := r.Update("favoriteColor", "blue"); err != ErrUnknownField {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestTherapySetServiceReplacesLinkedFields(t *testing.T) {
	r := validTherapyRequest()
	r.SessionType = "individual"
	r.PreferredTimeSlot = "morning"
	r.SessionFormat = "telehealth"
	r.Urgency = "urgent"

	r.SetService("group")

	if r.SessionType != "group" {
		t.Fatalf("expected session type group, got %s", r.SessionType)
	}
	// Service-linked preferences return to defaults, nothing carries over.
	if r.PreferredTimeSlot != "" || r.SessionFormat != "in-person" || r.Urgency != "routine" {
		t.Fatalf("expected linked fields reset, got %+v", r)
	}
	// Personal fields survive a service switch.
	if r.Name == "" || r.Email == "" {
		t.Fatalf("personal fields must be kept: %+v", r)
	}
}
