// Package submission implements the request submission lifecycle: the state
// machine that takes a validated booking request through delivery and back
// to idle. One Lifecycle instance governs one form instance.
package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/holisticrecovery/recovery-platform/internal/booking"
)

// Ack confirms a request was accepted by the delivery collaborator.
type Ack struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
}

// Deliverer transmits a validated request to the outside world (email, API,
// scheduling backend). It is called at most once per successful validation.
type Deliverer interface {
	Deliver(ctx context.Context, req booking.Request) (Ack, error)
}

// ErrorKind classifies a delivery failure for user messaging.
type ErrorKind string

const (
	ErrorKindNetwork  ErrorKind = "network"
	ErrorKindRejected ErrorKind = "rejected"
	ErrorKindTimeout  ErrorKind = "timeout"
	ErrorKindUnknown  ErrorKind = "unknown"
)

// DeliveryError describes why a delivery failed. Deliverers should return
// one; anything else is classified as best as possible.
type DeliveryError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("submission: delivery %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("submission: delivery %s: %s", e.Kind, e.Message)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// classify converts an arbitrary deliverer error into a DeliveryError.
func classify(err error) *DeliveryError {
	var derr *DeliveryError
	if errors.As(err, &derr) {
		return derr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &DeliveryError{Kind: ErrorKindTimeout, Message: "delivery timed out", Err: err}
	}
	return &DeliveryError{Kind: ErrorKindUnknown, Message: "delivery failed", Err: err}
}

// DelivererFunc adapts a function to the Deliverer interface.
type DelivererFunc func(ctx context.Context, req booking.Request) (Ack, error)

func (f DelivererFunc) Deliver(ctx context.Context, req booking.Request) (Ack, error) {
	return f(ctx, req)
}
