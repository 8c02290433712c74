package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/holisticrecovery/recovery-platform/internal/booking"
	"github.com/holisticrecovery/recovery-platform/internal/catalog"
	"github.com/holisticrecovery/recovery-platform/internal/session"
	"github.com/holisticrecovery/recovery-platform/internal/submission"
	"github.com/holisticrecovery/recovery-platform/pkg/logging"
)

// BookingConfig wires the booking handler's collaborators.
type BookingConfig struct {
	Sessions *session.Store
	Drafts   booking.DraftStore
	Logger   *logging.Logger
}

// BookingHandler exposes booking sessions over HTTP: selection, form edits,
// event options, submission and reset.
type BookingHandler struct {
	sessions *session.Store
	drafts   booking.DraftStore
	logger   *logging.Logger
}

// NewBookingHandler creates a booking handler.
func NewBookingHandler(cfg BookingConfig) *BookingHandler {
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &BookingHandler{
		sessions: cfg.Sessions,
		drafts:   cfg.Drafts,
		logger:   cfg.Logger,
	}
}

// Routes mounts every booking session route.
func (h *BookingHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/sessions", h.CreateSession)
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Get("/", h.GetSnapshot)
		r.Delete("/", h.DeleteSession)
		r.Post("/selection", h.SelectService)
		r.Delete("/selection", h.ClearSelection)
		r.Patch("/forms/{kind}", h.UpdateField)
		r.Post("/forms/{kind}/submit", h.Submit)
		r.Post("/forms/{kind}/reset", h.Reset)
		r.Post("/forms/speaking/event-options", h.AppendEventOption)
		r.Put("/forms/speaking/event-options/{index}", h.SetEventOption)
		r.Post("/forms/speaking/topics", h.ToggleTopic)
		r.Post("/drafts/{kind}/restore", h.RestoreDraft)
	})
	return r
}

// CreateSession handles POST /booking/sessions.
func (h *BookingHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()
	h.logger.Info("booking session created", "session_id", s.ID)
	writeJSON(w, http.StatusCreated, s.Snapshot())
}

// GetSnapshot handles GET /booking/sessions/{sessionID}.
func (h *BookingHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// DeleteSession handles DELETE /booking/sessions/{sessionID}.
func (h *BookingHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	h.sessions.Delete(id)
	if h.drafts != nil {
		_ = h.drafts.Delete(r.Context(), id, booking.KindTherapy)
		_ = h.drafts.Delete(r.Context(), id, booking.KindSpeaking)
	}
	w.WriteHeader(http.StatusNoContent)
}

type selectServiceRequest struct {
	ServiceID string `json:"service_id"`
}

// SelectService handles POST /booking/sessions/{sessionID}/selection.
func (h *BookingHandler) SelectService(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req selectServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.SelectService(req.ServiceID); err != nil {
		if errors.Is(err, catalog.ErrUnknownService) {
			http.Error(w, "unknown service id", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.saveDraft(r, s, booking.KindTherapy)
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// ClearSelection handles DELETE /booking/sessions/{sessionID}/selection.
func (h *BookingHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.ClearSelection()
	writeJSON(w, http.StatusOK, s.Snapshot())
}

type updateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// UpdateField handles PATCH /booking/sessions/{sessionID}/forms/{kind}.
func (h *BookingHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}

	var req updateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var err error
	switch kind {
	case booking.KindTherapy:
		err = s.UpdateTherapyField(req.Field, req.Value)
	case booking.KindSpeaking:
		err = s.UpdateSpeakingField(req.Field, req.Value)
	}
	if err != nil {
		if errors.Is(err, booking.ErrUnknownField) {
			http.Error(w, "unknown field "+req.Field, http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.saveDraft(r, s, kind)
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// AppendEventOption handles
// POST /booking/sessions/{sessionID}/forms/speaking/event-options.
func (h *BookingHandler) AppendEventOption(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.AppendEventOption()
	h.saveDraft(r, s, booking.KindSpeaking)
	writeJSON(w, http.StatusOK, s.Snapshot())
}

type setEventOptionRequest struct {
	Date *string `json:"date,omitempty"`
	Time *string `json:"time,omitempty"`
}

// SetEventOption handles
// PUT /booking/sessions/{sessionID}/forms/speaking/event-options/{index}.
func (h *BookingHandler) SetEventOption(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid index", http.StatusBadRequest)
		return
	}

	var req setEventOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Date != nil {
		if err := s.SetEventDate(index, *req.Date); err != nil {
			h.eventOptionError(w, err)
			return
		}
	}
	if req.Time != nil {
		if err := s.SetEventTime(index, *req.Time); err != nil {
			h.eventOptionError(w, err)
			return
		}
	}
	h.saveDraft(r, s, booking.KindSpeaking)
	writeJSON(w, http.StatusOK, s.Snapshot())
}

func (h *BookingHandler) eventOptionError(w http.ResponseWriter, err error) {
	if errors.Is(err, booking.ErrIndexOutOfRange) {
		http.Error(w, "event option index out of range", http.StatusUnprocessableEntity)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

type toggleTopicRequest struct {
	Topic string `json:"topic"`
}

// ToggleTopic handles POST /booking/sessions/{sessionID}/forms/speaking/topics.
func (h *BookingHandler) ToggleTopic(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req toggleTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Topic == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	s.ToggleTopic(req.Topic)
	h.saveDraft(r, s, booking.KindSpeaking)
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// Submit handles POST /booking/sessions/{sessionID}/forms/{kind}/submit.
// Validation failures return 422 with the field errors; a submit outside
// the idle state returns 409 and changes nothing.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}

	var err error
	switch kind {
	case booking.KindTherapy:
		err = s.SubmitTherapy(r.Context())
	case booking.KindSpeaking:
		err = s.SubmitSpeaking(r.Context())
	}
	switch {
	case errors.Is(err, submission.ErrValidationFailed):
		writeJSON(w, http.StatusUnprocessableEntity, s.Snapshot())
		return
	case errors.Is(err, submission.ErrNotIdle):
		http.Error(w, "a submission is already in progress", http.StatusConflict)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// The form left the draft stage; the saved draft is stale now.
	if h.drafts != nil {
		_ = h.drafts.Delete(r.Context(), s.ID, kind)
	}
	writeJSON(w, http.StatusAccepted, s.Snapshot())
}

// Reset handles POST /booking/sessions/{sessionID}/forms/{kind}/reset.
func (h *BookingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}

	var err error
	switch kind {
	case booking.KindTherapy:
		err = s.ResetTherapy()
	case booking.KindSpeaking:
		err = s.ResetSpeaking()
	}
	if errors.Is(err, submission.ErrResetWhilePending) {
		http.Error(w, "delivery in progress", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// RestoreDraft handles POST /booking/sessions/{sessionID}/drafts/{kind}/restore.
func (h *BookingHandler) RestoreDraft(w http.ResponseWriter, r *http.Request) {
	if h.drafts == nil {
		http.Error(w, "draft store not configured", http.StatusServiceUnavailable)
		return
	}
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}

	draft, err := h.drafts.Load(r.Context(), s.ID, kind)
	if errors.Is(err, booking.ErrDraftNotFound) {
		http.Error(w, "no draft saved", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("draft load failed", "error", err, "session_id", s.ID)
		http.Error(w, "draft load failed", http.StatusInternalServerError)
		return
	}

	switch kind {
	case booking.KindTherapy:
		err = s.RestoreTherapy(draft.Therapy)
	case booking.KindSpeaking:
		err = s.RestoreSpeaking(draft.Speaking)
	}
	if errors.Is(err, submission.ErrNotIdle) {
		http.Error(w, "form is not idle", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

func (h *BookingHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "sessionID")
	s, err := h.sessions.Get(id)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return nil, false
	}
	return s, true
}

func (h *BookingHandler) kind(w http.ResponseWriter, r *http.Request) (booking.Kind, bool) {
	kind := booking.Kind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		http.Error(w, "unknown form kind", http.StatusNotFound)
		return "", false
	}
	return kind, true
}

// saveDraft is best-effort: autosave failures are logged, never surfaced.
func (h *BookingHandler) saveDraft(r *http.Request, s *session.Session, kind booking.Kind) {
	if h.drafts == nil {
		return
	}
	var req booking.Request
	switch kind {
	case booking.KindTherapy:
		req = booking.NewTherapyPayload(s.TherapySnapshot())
	case booking.KindSpeaking:
		req = booking.NewSpeakingPayload(s.SpeakingSnapshot())
	default:
		return
	}
	if err := h.drafts.Save(r.Context(), s.ID, req); err != nil {
		h.logger.Warn("draft autosave failed", "error", err, "session_id", s.ID, "kind", kind)
	}
}
