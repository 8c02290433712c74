// Package session ties one visitor's booking state together: the selected
// service, both request forms and their submission lifecycles. Each form
// submits independently, so a speaking inquiry in flight never blocks edits
// to the therapy form.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/holisticrecovery/recovery-platform/internal/booking"
	"github.com/holisticrecovery/recovery-platform/internal/catalog"
	"github.com/holisticrecovery/recovery-platform/internal/observability/metrics"
	"github.com/holisticrecovery/recovery-platform/internal/submission"
	"github.com/holisticrecovery/recovery-platform/pkg/logging"
)

// Deps carries the collaborators shared by every session.
type Deps struct {
	Catalog   *catalog.Catalog
	Deliverer submission.Deliverer
	Lifecycle submission.Config
	Logger    *logging.Logger
	Metrics   *metrics.BookingMetrics
}

// Session is one visitor's booking state.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	selection *catalog.Selection
	therapy   *booking.TherapyRequest
	speaking  *booking.SpeakingRequest
	therapyLC *submission.Lifecycle
	speakLC   *submission.Lifecycle
}

// New creates a session with fresh forms and idle lifecycles.
func New(deps Deps) *Session {
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		selection: catalog.NewSelection(deps.Catalog),
		therapy:   booking.NewTherapyRequest(),
		speaking:  booking.NewSpeakingRequest(),
	}
	// Payload closures run while s.mu is held by the submitting caller, and
	// clone so the background delivery sees a stable snapshot.
	s.therapyLC = submission.NewLifecycle(booking.KindTherapy, func() booking.Request {
		return booking.NewTherapyPayload(s.therapy.Clone())
	}, deps.Deliverer, deps.Lifecycle, deps.Logger, deps.Metrics)
	s.speakLC = submission.NewLifecycle(booking.KindSpeaking, func() booking.Request {
		return booking.NewSpeakingPayload(s.speaking.Clone())
	}, deps.Deliverer, deps.Lifecycle, deps.Logger, deps.Metrics)
	return s
}

// SelectService picks a catalog offering. On an actual change the therapy
// form's service-linked fields reset; re-selecting the current offering is
// a no-op.
func (s *Session) SelectService(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed, err := s.selection.Select(id)
	if err != nil {
		return err
	}
	if changed {
		s.therapy.SetService(id)
	}
	return nil
}

// ClearSelection drops the current offering. Form fields keep their values.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Clear()
}

// UpdateTherapyField sets one therapy form field by path.
func (s *Session) UpdateTherapyField(fieldPath, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.therapy.Update(fieldPath, value)
}

// UpdateSpeakingField sets one speaking form scalar field by path.
func (s *Session) UpdateSpeakingField(fieldPath, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking.Update(fieldPath, value)
}

// ToggleTopic flips a speaking topic in or out of the interest set.
func (s *Session) ToggleTopic(topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.speaking.ToggleTopic(topic)
}

// AppendEventOption adds one empty date/time pair.
func (s *Session) AppendEventOption() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.speaking.EventOptions.Append()
	return s.speaking.EventOptions.Len()
}

// SetEventDate updates the date half of the pair at index i.
func (s *Session) SetEventDate(i int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking.EventOptions.SetDate(i, value)
}

// SetEventTime updates the time half of the pair at index i.
func (s *Session) SetEventTime(i int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking.EventOptions.SetTime(i, value)
}

// SubmitTherapy submits the therapy form through its lifecycle.
func (s *Session) SubmitTherapy(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.therapyLC.Submit(ctx)
}

// SubmitSpeaking submits the speaking form through its lifecycle.
func (s *Session) SubmitSpeaking(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speakLC.Submit(ctx)
}

// ResetTherapy returns the therapy lifecycle to idle.
func (s *Session) ResetTherapy() error { return s.therapyLC.Reset() }

// ResetSpeaking returns the speaking lifecycle to idle.
func (s *Session) ResetSpeaking() error { return s.speakLC.Reset() }

// Close discards both lifecycles. Pending deliveries finish in the
// background but their results are dropped.
func (s *Session) Close() {
	s.therapyLC.Close()
	s.speakLC.Close()
}

// FormState is the lifecycle view of one form.
type FormState struct {
	State            submission.State     `json:"state"`
	ValidationErrors []booking.FieldError `json:"validation_errors,omitempty"`
	Failure          *FailureView         `json:"failure,omitempty"`
	Ack              *submission.Ack      `json:"ack,omitempty"`
}

// FailureView is the user-facing slice of a delivery failure.
type FailureView struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Snapshot is the full session view returned to clients.
type Snapshot struct {
	ID              string                   `json:"id"`
	CreatedAt       time.Time                `json:"created_at"`
	SelectedService string                   `json:"selected_service,omitempty"`
	Therapy         *booking.TherapyRequest  `json:"therapy"`
	TherapyState    FormState                `json:"therapy_state"`
	Speaking        *booking.SpeakingRequest `json:"speaking"`
	SpeakingState   FormState                `json:"speaking_state"`
}

// Snapshot returns a consistent copy of the session for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:            s.ID,
		CreatedAt:     s.CreatedAt,
		Therapy:       s.therapy.Clone(),
		Speaking:      s.speaking.Clone(),
		TherapyState:  formState(s.therapyLC),
		SpeakingState: formState(s.speakLC),
	}
	if offering, ok := s.selection.Current(); ok {
		snap.SelectedService = offering.ID
	}
	return snap
}

// TherapySnapshot returns the therapy form alone, for draft autosave.
func (s *Session) TherapySnapshot() *booking.TherapyRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.therapy.Clone()
}

// SpeakingSnapshot returns the speaking form alone, for draft autosave.
func (s *Session) SpeakingSnapshot() *booking.SpeakingRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking.Clone()
}

// RestoreTherapy replaces the therapy form from a saved draft. Restoring is
// rejected unless the lifecycle is idle.
func (s *Session) RestoreTherapy(r *booking.TherapyRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.therapyLC.State() != submission.StateIdle {
		return submission.ErrNotIdle
	}
	s.therapy = r.Clone()
	return nil
}

// RestoreSpeaking replaces the speaking form from a saved draft.
func (s *Session) RestoreSpeaking(r *booking.SpeakingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.speakLC.State() != submission.StateIdle {
		return submission.ErrNotIdle
	}
	s.speaking = r.Clone()
	if s.speaking.EventOptions == nil || s.speaking.EventOptions.Len() == 0 {
		s.speaking.EventOptions = booking.NewEventOptions()
	}
	return nil
}

func formState(lc *submission.Lifecycle) FormState {
	fs := FormState{
		State:            lc.State(),
		ValidationErrors: lc.ValidationErrors(),
		Ack:              lc.LastAck(),
	}
	if f := lc.FailureReason(); f != nil {
		fs.Failure = &FailureView{Kind: string(f.Kind), Message: f.Message}
	}
	return fs
}
