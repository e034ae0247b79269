// Package notify owns the outbound-message side effect of every
// state-changing reservation operation: an unconditional audit-log append
// plus a best-effort delivery through the configured external sender.
package notify

import (
	"context"
	"log/slog"

	"eatery-api/internal/domain/notification"
	"eatery-api/internal/domain/reservation"
	"eatery-api/internal/pkg/clock"
)

type LogRepository interface {
	Append(ctx context.Context, rec notification.Record) error
}

type CredentialsSource interface {
	Load(ctx context.Context) (notification.Credentials, bool, error)
}

type DeliverySender interface {
	Send(ctx context.Context, creds notification.Credentials, params map[string]any) error
}

type Service struct {
	log    LogRepository
	creds  CredentialsSource
	sender DeliverySender
	clock  clock.Clock
}

func NewService(log LogRepository, creds CredentialsSource, sender DeliverySender, clk clock.Clock) *Service {
	return &Service{
		log:    log,
		creds:  creds,
		sender: sender,
		clock:  clk,
	}
}

// Notify appends a record to the audit log and then attempts delivery when
// credentials are configured and a reservation context is available. The
// append is the admin panel's only record of what the guest was told, so it
// always happens first; delivery failures are logged and never propagate.
func (s *Service) Notify(ctx context.Context, to, subject, message string, res *reservation.Reservation) error {
	rec := notification.NewRecord(to, subject, message, s.clock.Now())
	if err := s.log.Append(ctx, rec); err != nil {
		return err
	}

	if res == nil {
		return nil
	}

	creds, found, err := s.creds.Load(ctx)
	if err != nil {
		slog.Error("failed to load mail configuration, skipping delivery", "error", err.Error())
		return nil
	}
	if !found || !creds.Complete() {
		// Unconfigured mode: the audit record is the whole effect.
		return nil
	}

	params := templateParams(to, subject, message, res)
	if err := s.sender.Send(ctx, creds, params); err != nil {
		slog.Error("notification delivery failed",
			"to", to,
			"subject", subject,
			"error", err.Error(),
		)
	}

	return nil
}

func templateParams(to, subject, message string, res *reservation.Reservation) map[string]any {
	specialRequests := res.SpecialRequests()
	if specialRequests == "" {
		specialRequests = "None"
	}

	return map[string]any{
		"to_email":         to,
		"to_name":          res.Name(),
		"subject":          subject,
		"message":          message,
		"reservation_date": res.Date().String(),
		"reservation_time": res.TimeOfDay().Format12Hour(),
		"guests":           res.Guests().Value(),
		"status":           res.Status().String(),
		"phone":            res.Phone(),
		"special_requests": specialRequests,
	}
}
