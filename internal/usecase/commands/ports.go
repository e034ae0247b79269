package commands

import (
	"context"

	"eatery-api/internal/domain/notification"
	"eatery-api/internal/domain/reservation"
)

// ReservationRepository persists the collection whole. The snapshot returned
// by Load must be handed back to Store so a concurrent writer surfaces as a
// conflict instead of a lost update.
type ReservationRepository interface {
	Load(ctx context.Context) (records []*reservation.Reservation, snapshot []byte, err error)
	Store(ctx context.Context, snapshot []byte, records []*reservation.Reservation) error
}

type Notifier interface {
	Notify(ctx context.Context, to, subject, message string, res *reservation.Reservation) error
}

type MailConfigRepository interface {
	Load(ctx context.Context) (notification.Credentials, bool, error)
	Save(ctx context.Context, creds notification.Credentials) error
}
