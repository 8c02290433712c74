package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/holisticrecovery/recovery-platform/internal/booking"
	"github.com/holisticrecovery/recovery-platform/internal/catalog"
	"github.com/holisticrecovery/recovery-platform/internal/submission"
)

type recordingDeliverer struct {
	requests chan booking.Request
}

func (d *recordingDeliverer) Deliver(ctx context.Context, req booking.Request) (submission.Ack, error) {
	d.requests <- req
	return submission.Ack{ID: "ack", ReceivedAt: time.Now()}, nil
}

func newTestStore() (*Store, *recordingDeliverer) {
	d := &recordingDeliverer{requests: make(chan booking.Request, 4)}
	return NewStore(Deps{
		Deliverer: d,
		Lifecycle: submission.Config{SuccessWindow: time.Minute},
	}), d
}

func fillTherapy(t *testing.T, s *Session) {
	t.Helper()
	for path, value := range map[string]string{
		"name":  "Jamie Doe",
		"phone": "555-010-2030",
		"email": "jamie@example.com",
		"issue": "recovery support",
	} {
		require.NoError(t, s.UpdateTherapyField(path, value))
	}
}

func TestSessionSelectServiceResetsServiceFields(t *testing.T) {
	store, _ := newTestStore()
	s := store.Create()
	defer store.Delete(s.ID)

	require.NoError(t, s.UpdateTherapyField("name", "Jamie"))
	require.NoError(t, s.UpdateTherapyField("preferredTimeSlot", "morning"))
	require.NoError(t, s.UpdateTherapyField("urgency", "urgent"))

	require.NoError(t, s.SelectService("group"))

	snap := s.Snapshot()
	require.Equal(t, "group", snap.SelectedService)
	require.Equal(t, "group", snap.Therapy.SessionType)
	// Service change resets session preferences but keeps personal fields.
	require.Equal(t, "Jamie", snap.Therapy.Name)
	require.Empty(t, snap.Therapy.PreferredTimeSlot)
	require.Equal(t, "routine", snap.Therapy.Urgency)

	// Re-selecting the same offering must not reset anything.
	require.NoError(t, s.UpdateTherapyField("preferredTimeSlot", "evening"))
	require.NoError(t, s.SelectService("group"))
	require.Equal(t, "evening", s.Snapshot().Therapy.PreferredTimeSlot)
}

func TestSessionSelectUnknownService(t *testing.T) {
	store, _ := newTestStore()
	s := store.Create()
	defer store.Delete(s.ID)

	require.ErrorIs(t, s.SelectService("hypnotherapy"), catalog.ErrUnknownService)
	require.Empty(t, s.Snapshot().SelectedService)
}

func TestSessionFormsSubmitIndependently(t *testing.T) {
	store, d := newTestStore()
	s := store.Create()
	defer store.Delete(s.ID)

	fillTherapy(t, s)
	require.NoError(t, s.SubmitTherapy(context.Background()))

	delivered := <-d.requests
	require.Equal(t, booking.KindTherapy, delivered.Kind)

	// The speaking form is untouched and still editable while therapy is
	// in flight or succeeded.
	require.NoError(t, s.UpdateSpeakingField("organizationName", "Grace Church"))
	snap := s.Snapshot()
	require.Equal(t, "Grace Church", snap.Speaking.OrganizationName)
	require.Equal(t, submission.StateIdle, snap.SpeakingState.State)
}

func TestSessionSubmitSnapshotIsolation(t *testing.T) {
	store, d := newTestStore()
	s := store.Create()
	defer store.Delete(s.ID)

	fillTherapy(t, s)
	require.NoError(t, s.SubmitTherapy(context.Background()))

	// Edits after submit must not leak into the delivered payload.
	_ = s.UpdateTherapyField("name", "Someone Else")

	delivered := <-d.requests
	require.Equal(t, "Jamie Doe", delivered.Therapy.Name)
}

func TestSessionValidationErrorsInSnapshot(t *testing.T) {
	store, _ := newTestStore()
	s := store.Create()
	defer store.Delete(s.ID)

	err := s.SubmitTherapy(context.Background())
	require.ErrorIs(t, err, submission.ErrValidationFailed)

	snap := s.Snapshot()
	require.Equal(t, submission.StateIdle, snap.TherapyState.State)
	require.NotEmpty(t, snap.TherapyState.ValidationErrors)
}

func TestSessionEventOptionOperations(t *testing.T) {
	store, _ := newTestStore()
	s := store.Create()
	defer store.Delete(s.ID)

	require.Equal(t, 2, s.AppendEventOption())
	require.NoError(t, s.SetEventDate(1, "2026-10-05"))
	require.NoError(t, s.SetEventTime(1, "18:30"))
	require.ErrorIs(t, s.SetEventDate(5, "2026-10-06"), booking.ErrIndexOutOfRange)

	all := s.Snapshot().Speaking.EventOptions.All()
	require.Len(t, all, 2)
	require.Equal(t, booking.EventOption{Date: "2026-10-05", Time: "18:30"}, all[1])
}

func TestSessionRestoreTherapyDraft(t *testing.T) {
	store, _ := newTestStore()
	s := store.Create()
	defer store.Delete(s.ID)

	draft := booking.NewTherapyRequest()
	draft.Name = "Saved Draft"
	require.NoError(t, s.RestoreTherapy(draft))
	require.Equal(t, "Saved Draft", s.Snapshot().Therapy.Name)
}

func TestStoreLifecycle(t *testing.T) {
	store, _ := newTestStore()

	s := store.Create()
	require.Equal(t, 1, store.Len())

	got, err := store.Get(s.ID)
	require.NoError(t, err)
	require.Same(t, s, got)

	store.Delete(s.ID)
	require.Equal(t, 0, store.Len())

	_, err = store.Get(s.ID)
	require.ErrorIs(t, err, ErrSessionNotFound)

	// Deleting twice is a no-op.
	store.Delete(s.ID)
}
