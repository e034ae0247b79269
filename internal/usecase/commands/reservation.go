package commands

import (
	"context"
	"log/slog"

	"eatery-api/internal/domain/reservation"
	"eatery-api/internal/infra"
	"eatery-api/internal/pkg/clock"
	"eatery-api/internal/pkg/errs"
	"eatery-api/internal/usecase/queries"
)

type CreateReservationInput struct {
	Name            string
	Email           string
	Phone           string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
}

type ReservationCommands interface {
	Create(ctx context.Context, input CreateReservationInput) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, id string, status string) (*queries.ReservationView, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type reservationCommandsImpl struct {
	repo     ReservationRepository
	notifier Notifier
	clock    clock.Clock
}

func NewReservationCommands(repo ReservationRepository, notifier Notifier, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		repo:     repo,
		notifier: notifier,
		clock:    clk,
	}
}

// Create validates the guest input, appends a pending reservation to the
// persisted collection and notifies the guest that the request was received
// when an email is on file.
func (c *reservationCommandsImpl) Create(ctx context.Context, input CreateReservationInput) (*queries.ReservationView, error) {
	entity, err := reservation.NewReservation(
		input.Name, input.Email, input.Phone,
		input.Date, input.Time, input.Guests,
		input.SpecialRequests, c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	records, snapshot, err := c.repo.Load(ctx)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	records = append(records, entity)
	if err := c.repo.Store(ctx, snapshot, records); err != nil {
		return nil, mapStoreErr(err)
	}

	if entity.HasEmail() {
		c.notify(ctx, entity.Email(), SubjectReceived, receivedMessage(entity), entity)
	}

	return toView(entity), nil
}

// UpdateStatus overwrites the lifecycle status of one reservation. A guest
// with an email on file is notified only when the status actually changed,
// and only for transitions to confirmed or cancelled; a move back into
// pending is persisted silently.
func (c *reservationCommandsImpl) UpdateStatus(ctx context.Context, id string, status string) (*queries.ReservationView, error) {
	newStatus := reservation.Status(status)
	if !newStatus.IsValid() {
		return nil, errs.ErrInvalidStatus
	}

	records, snapshot, err := c.repo.Load(ctx)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	entity := findByID(records, id)
	if entity == nil {
		return nil, errs.ErrReservationNotFound
	}

	previous, err := entity.ChangeStatus(newStatus)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStatus)
	}

	if err := c.repo.Store(ctx, snapshot, records); err != nil {
		return nil, mapStoreErr(err)
	}

	if entity.HasEmail() && previous != newStatus {
		switch newStatus {
		case reservation.StatusConfirmed:
			c.notify(ctx, entity.Email(), SubjectConfirmed, confirmedMessage(entity), entity)
		case reservation.StatusCancelled:
			c.notify(ctx, entity.Email(), SubjectCancelled, cancelledMessage(entity), entity)
		case reservation.StatusPending:
			// No notification text exists for moving back to pending.
		}
	}

	return toView(entity), nil
}

// Delete removes one reservation and reports whether anything was removed.
// The cancellation notice is composed from the pre-deletion snapshot of the
// record; a miss performs no write at all.
func (c *reservationCommandsImpl) Delete(ctx context.Context, id string) (bool, error) {
	records, snapshot, err := c.repo.Load(ctx)
	if err != nil {
		return false, mapStoreErr(err)
	}

	removed := findByID(records, id)
	if removed == nil {
		return false, nil
	}

	filtered := make([]*reservation.Reservation, 0, len(records)-1)
	for _, r := range records {
		if r.ID() != id {
			filtered = append(filtered, r)
		}
	}

	if err := c.repo.Store(ctx, snapshot, filtered); err != nil {
		return false, mapStoreErr(err)
	}

	if removed.HasEmail() {
		c.notify(ctx, removed.Email(), SubjectCancelled, deletedMessage(removed), removed)
	}

	return true, nil
}

// notify fires the side-effecting notification for a completed mutation.
// The mutation is already durable at this point, so a failed audit append
// is reported operationally rather than unwinding the caller.
func (c *reservationCommandsImpl) notify(ctx context.Context, to, subject, message string, res *reservation.Reservation) {
	if err := c.notifier.Notify(ctx, to, subject, message, res); err != nil {
		slog.Error("failed to record reservation notification",
			"reservation_id", res.ID(),
			"subject", subject,
			"error", err.Error(),
		)
	}
}

func findByID(records []*reservation.Reservation, id string) *reservation.Reservation {
	for _, r := range records {
		if r.ID() == id {
			return r
		}
	}
	return nil
}

func toView(res *reservation.Reservation) *queries.ReservationView {
	return &queries.ReservationView{
		ID:              res.ID(),
		Name:            res.Name(),
		Email:           res.Email(),
		Phone:           res.Phone(),
		Date:            res.Date().String(),
		Time:            res.TimeOfDay().String(),
		Guests:          res.Guests().Value(),
		SpecialRequests: res.SpecialRequests(),
		CreatedAt:       res.CreatedAt(),
		Status:          res.Status().String(),
	}
}

func mapStoreErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindCorruptState):
		return errs.Mark(err, errs.ErrCorruptedState)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrStoreConflict)
	default:
		return errs.Mark(err, errs.ErrStoreFailed)
	}
}
