package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/holisticrecovery/recovery-platform/internal/booking"
	"github.com/holisticrecovery/recovery-platform/internal/catalog"
	"github.com/holisticrecovery/recovery-platform/internal/submission"
	"github.com/holisticrecovery/recovery-platform/pkg/logging"
)

// EmailDelivererConfig names the operator who receives booking requests.
type EmailDelivererConfig struct {
	OperatorEmail string
	OperatorName  string
	SiteName      string
}

// EmailDeliverer turns a validated booking request into an operator email.
// It is the production implementation of the submission delivery
// collaborator.
type EmailDeliverer struct {
	sender  EmailSender
	catalog *catalog.Catalog
	cfg     EmailDelivererConfig
	logger  *logging.Logger
}

// NewEmailDeliverer creates a deliverer that emails the operator.
func NewEmailDeliverer(sender EmailSender, cat *catalog.Catalog, cfg EmailDelivererConfig, logger *logging.Logger) *EmailDeliverer {
	if logger == nil {
		logger = logging.Default()
	}
	if cat == nil {
		cat = catalog.Default()
	}
	if cfg.SiteName == "" {
		cfg.SiteName = "Holistic Recovery"
	}
	return &EmailDeliverer{
		sender:  sender,
		catalog: cat,
		cfg:     cfg,
		logger:  logger,
	}
}

// Deliver formats the request and sends it. Provider rejections and
// transport failures are mapped to typed delivery errors so the caller can
// tell the user what went wrong.
func (d *EmailDeliverer) Deliver(ctx context.Context, req booking.Request) (submission.Ack, error) {
	if d.sender == nil {
		return submission.Ack{}, &submission.DeliveryError{
			Kind:    submission.ErrorKindUnknown,
			Message: "no email sender configured",
		}
	}

	var msg EmailMessage
	switch req.Kind {
	case booking.KindTherapy:
		msg = d.therapyMessage(req.Therapy)
	case booking.KindSpeaking:
		msg = d.speakingMessage(req.Speaking)
	default:
		return submission.Ack{}, &submission.DeliveryError{
			Kind:    submission.ErrorKindUnknown,
			Message: fmt.Sprintf("unsupported request kind %q", req.Kind),
		}
	}
	msg.To = d.cfg.OperatorEmail
	msg.ToName = d.cfg.OperatorName

	if err := d.sender.Send(ctx, msg); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return submission.Ack{}, err
		}
		if errors.Is(err, ErrRejected) {
			return submission.Ack{}, &submission.DeliveryError{
				Kind:    submission.ErrorKindRejected,
				Message: "provider rejected the message",
				Err:     err,
			}
		}
		return submission.Ack{}, &submission.DeliveryError{
			Kind:    submission.ErrorKindNetwork,
			Message: "could not reach the email provider",
			Err:     err,
		}
	}

	ack := submission.Ack{ID: uuid.NewString(), ReceivedAt: time.Now().UTC()}
	d.logger.Info("booking request delivered", "kind", req.Kind, "ack_id", ack.ID)
	return ack, nil
}

func (d *EmailDeliverer) therapyMessage(r *booking.TherapyRequest) EmailMessage {
	serviceTitle := r.SessionType
	if offering, ok := d.catalog.Get(r.SessionType); ok {
		serviceTitle = offering.Title
	}

	subject := fmt.Sprintf("New Session Request - %s", r.Name)
	if r.Urgency == "crisis" {
		subject = fmt.Sprintf("CRISIS Session Request - %s", r.Name)
	}

	body := fmt.Sprintf(`A new session request has come in.

Name: %s
Phone: %s
Email: %s
Service: %s
Format: %s
Urgency: %s
Previous therapy: %s%s%s

What brings them in:
%s

— %s`, r.Name, r.Phone, r.Email, serviceTitle, r.SessionFormat, r.Urgency, r.PreviousTherapy,
		optionalLine("Preferred time", r.PreferredTimeSlot),
		optionalLine("Insurance", r.InsuranceProvider),
		r.Issue, d.cfg.SiteName)

	html := fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px;">
<h2 style="color: #047857;">New Session Request</h2>
<table style="border-collapse: collapse; margin: 20px 0;">
  %s%s%s%s%s%s%s%s
</table>
<p style="background: #f0fdf4; padding: 12px; border-radius: 8px; border-left: 4px solid #047857;">%s</p>
<p style="color: #6b7280; font-size: 12px; margin-top: 20px;">— %s</p>
</div>`,
		row("Name", r.Name),
		row("Phone", fmt.Sprintf(`<a href="tel:%s">%s</a>`, r.Phone, r.Phone)),
		row("Email", r.Email),
		row("Service", serviceTitle),
		row("Format", r.SessionFormat),
		row("Urgency", r.Urgency),
		optionalRow("Preferred time", r.PreferredTimeSlot),
		optionalRow("Insurance", r.InsuranceProvider),
		r.Issue, d.cfg.SiteName)

	return EmailMessage{Subject: subject, Body: body, HTML: html}
}

func (d *EmailDeliverer) speakingMessage(r *booking.SpeakingRequest) EmailMessage {
	subject := fmt.Sprintf("Speaking Inquiry - %s", r.OrganizationName)

	var dates []string
	for _, opt := range r.EventOptions.All() {
		dates = append(dates, fmt.Sprintf("%s at %s", opt.Date, opt.Time))
	}

	body := fmt.Sprintf(`A new speaking engagement inquiry has come in.

Organization: %s
Contact: %s
Phone: %s
Email: %s
Event type: %s
Audience: %s (%s)
Location: %s
Proposed dates:
  %s%s%s%s

— %s`, r.OrganizationName, r.ContactName, r.ContactPhone, r.ContactEmail,
		r.EventType, r.AudienceType, r.AudienceSize, r.Location,
		strings.Join(dates, "\n  "),
		optionalLine("Topics", strings.Join(r.TopicsOfInterest, ", ")),
		optionalLine("Budget", r.Budget),
		optionalLine("Additional info", r.AdditionalInfo),
		d.cfg.SiteName)

	html := fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px;">
<h2 style="color: #047857;">Speaking Inquiry</h2>
<table style="border-collapse: collapse; margin: 20px 0;">
  %s%s%s%s%s%s%s%s%s%s
</table>
<p style="color: #6b7280; font-size: 12px; margin-top: 20px;">— %s</p>
</div>`,
		row("Organization", r.OrganizationName),
		row("Contact", r.ContactName),
		row("Phone", fmt.Sprintf(`<a href="tel:%s">%s</a>`, r.ContactPhone, r.ContactPhone)),
		row("Email", r.ContactEmail),
		row("Event type", r.EventType),
		row("Audience", fmt.Sprintf("%s (%s)", r.AudienceType, r.AudienceSize)),
		row("Location", r.Location),
		row("Proposed dates", strings.Join(dates, "<br>")),
		optionalRow("Topics", strings.Join(r.TopicsOfInterest, ", ")),
		optionalRow("Budget", r.Budget),
		d.cfg.SiteName)

	return EmailMessage{Subject: subject, Body: body, HTML: html}
}

func optionalLine(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("\n%s: %s", label, value)
}

func row(label, value string) string {
	return fmt.Sprintf(`<tr><td style="padding: 8px; border-bottom: 1px solid #e5e7eb;"><strong>%s:</strong></td><td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">%s</td></tr>`, label, value)
}

func optionalRow(label, value string) string {
	if value == "" {
		return ""
	}
	return row(label, value)
}

var _ submission.Deliverer = (*EmailDeliverer)(nil)
