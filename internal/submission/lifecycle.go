package submission

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/holisticrecovery/recovery-platform/internal/booking"
	"github.com/holisticrecovery/recovery-platform/internal/observability/metrics"
	"github.com/holisticrecovery/recovery-platform/pkg/logging"
)

var lifecycleTracer = otel.Tracer("recovery/submission")

// State is the submission lifecycle state.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StatePending    State = "pending"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

var (
	// ErrNotIdle is returned when Submit is called outside Idle. The call is
	// a no-op: state, form data and the error set are left untouched.
	ErrNotIdle = errors.New("submission: already in flight or awaiting reset")

	// ErrValidationFailed is returned when Submit stops on field errors.
	// The deliverer is never called in that case.
	ErrValidationFailed = errors.New("submission: validation failed")

	// ErrResetWhilePending is returned when Reset is called during delivery.
	ErrResetWhilePending = errors.New("submission: cannot reset while delivery is in flight")

	// ErrClosed is returned once the lifecycle has been discarded.
	ErrClosed = errors.New("submission: lifecycle closed")
)

// Config tunes a lifecycle instance.
type Config struct {
	// SuccessWindow is how long Succeeded is displayed before the automatic
	// return to Idle. Zero or negative falls back to 5s.
	SuccessWindow time.Duration
	// DeliveryTimeout bounds the delivery collaborator call. Zero or
	// negative falls back to 30s.
	DeliveryTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.SuccessWindow <= 0 {
		c.SuccessWindow = 5 * time.Second
	}
	if c.DeliveryTimeout <= 0 {
		c.DeliveryTimeout = 30 * time.Second
	}
	return c
}

// Lifecycle is the submission state machine for a single form instance.
// It accepts Submit/Reset from the interaction thread while a delivery is
// suspended in the background; concurrent submits are rejected, never
// queued, so at most one delivery is in flight per form.
type Lifecycle struct {
	kind      booking.Kind
	payload   func() booking.Request
	deliverer Deliverer
	cfg       Config
	logger    *logging.Logger
	metrics   *metrics.BookingMetrics

	mu           sync.Mutex
	state        State
	fieldErrs    []booking.FieldError
	failure      *DeliveryError
	ack          *Ack
	resetTimer   *time.Timer
	closed       bool
	submissionID string
}

// NewLifecycle creates an idle lifecycle. payload must return the request
// snapshot to validate and deliver; it is invoked under the lifecycle lock,
// so it must not call back into this instance.
func NewLifecycle(kind booking.Kind, payload func() booking.Request, deliverer Deliverer, cfg Config, logger *logging.Logger, m *metrics.BookingMetrics) *Lifecycle {
	if logger == nil {
		logger = logging.Default()
	}
	return &Lifecycle{
		kind:      kind,
		payload:   payload,
		deliverer: deliverer,
		cfg:       cfg.withDefaults(),
		logger:    logger,
		metrics:   m,
		state:     StateIdle,
	}
}

// Submit validates the form and, on success, hands it to the deliverer
// asynchronously. Outside Idle the call is a rejected no-op (ErrNotIdle).
// On validation failure the lifecycle stays Idle, records the field errors
// and returns ErrValidationFailed.
func (l *Lifecycle) Submit(ctx context.Context) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	if l.state != StateIdle {
		l.mu.Unlock()
		return ErrNotIdle
	}

	req := l.payload()
	errs := req.Validate()
	l.fieldErrs = errs
	if len(errs) > 0 {
		l.mu.Unlock()
		l.metrics.ObserveValidationFailure(string(l.kind))
		l.logger.Info("submission rejected by validation", "kind", l.kind, "field_errors", len(errs))
		return ErrValidationFailed
	}

	// Validation passed: Idle -> Pending atomically under the lock, so a
	// concurrent Submit can never start a second delivery.
	l.state = StatePending
	l.failure = nil
	l.ack = nil
	l.submissionID = uuid.NewString()
	id := l.submissionID
	l.mu.Unlock()

	l.logger.Info("submission accepted", "kind", l.kind, "submission_id", id)
	go l.deliver(req, id)
	return nil
}

// deliver runs the collaborator call off the interaction thread. The parent
// context is deliberately detached: the HTTP request that triggered Submit
// may finish long before delivery resolves.
func (l *Lifecycle) deliver(req booking.Request, id string) {
	ctx, cancel := context.WithTimeout(context.Background(), l.cfg.DeliveryTimeout)
	defer cancel()

	ctx, span := lifecycleTracer.Start(ctx, "submission.deliver", trace.WithAttributes(
		attribute.String("booking.kind", string(l.kind)),
		attribute.String("submission.id", id),
	))
	defer span.End()

	start := time.Now()
	ack, err := l.deliverer.Deliver(ctx, req)
	l.metrics.ObserveDeliveryLatency(string(l.kind), time.Since(start).Seconds())

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || l.submissionID != id {
		return
	}

	if err != nil {
		derr := classify(err)
		span.RecordError(derr)
		l.state = StateFailed
		l.failure = derr
		l.metrics.ObserveSubmission(string(l.kind), "failed")
		l.logger.Error("delivery failed", "kind", l.kind, "submission_id", id, "reason", string(derr.Kind), "error", err)
		return
	}

	l.state = StateSucceeded
	l.ack = &ack
	l.metrics.ObserveSubmission(string(l.kind), "succeeded")
	l.logger.Info("delivery succeeded", "kind", l.kind, "submission_id", id, "ack_id", ack.ID)

	// Display window: return to Idle automatically unless the lifecycle is
	// reset or closed first.
	l.resetTimer = time.AfterFunc(l.cfg.SuccessWindow, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.closed || l.state != StateSucceeded || l.submissionID != id {
			return
		}
		l.state = StateIdle
		l.resetTimer = nil
	})
}

// Reset returns the lifecycle to Idle from Succeeded or Failed (or Idle,
// where it just clears recorded errors). Resetting while Pending is
// rejected so an in-flight delivery is never orphaned.
func (l *Lifecycle) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	if l.state == StatePending {
		return ErrResetWhilePending
	}
	if l.resetTimer != nil {
		l.resetTimer.Stop()
		l.resetTimer = nil
	}
	l.state = StateIdle
	l.fieldErrs = nil
	l.failure = nil
	l.ack = nil
	return nil
}

// Close discards the lifecycle, cancelling any scheduled auto-reset. A late
// delivery result for a closed lifecycle is dropped.
func (l *Lifecycle) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	if l.resetTimer != nil {
		l.resetTimer.Stop()
		l.resetTimer = nil
	}
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// ValidationErrors returns the field errors recorded by the last submit
// attempt, or nil.
func (l *Lifecycle) ValidationErrors() []booking.FieldError {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]booking.FieldError(nil), l.fieldErrs...)
}

// FailureReason returns the delivery failure, if the lifecycle is Failed.
func (l *Lifecycle) FailureReason() *DeliveryError {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failure
}

// LastAck returns the delivery acknowledgement, if the last submission
// succeeded.
func (l *Lifecycle) LastAck() *Ack {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ack
}
