package repository

import (
	"context"
	"encoding/json"
	"time"

	"eatery-api/internal/domain/reservation"
	"eatery-api/internal/infra"
	"eatery-api/internal/infra/kv"
)

// ReservationsKey is the storage key holding the whole reservation
// collection as one serialized JSON array, in append order.
const ReservationsKey = "restaurant-reservations"

type storedReservation struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Guests          int       `json:"guests"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	Status          string    `json:"status"`
}

type ReservationRepository struct {
	store kv.Store
}

func NewReservationRepository(store kv.Store) *ReservationRepository {
	return &ReservationRepository{store: store}
}

// Load reads and deserializes the full collection. The returned snapshot is
// the raw bytes the collection was read from (nil when nothing has been
// persisted yet); Store requires it so a concurrent writer cannot be
// silently clobbered. Corrupt stored data is a hard failure, never treated
// as an empty collection.
func (r *ReservationRepository) Load(ctx context.Context) ([]*reservation.Reservation, []byte, error) {
	raw, found, err := r.store.Get(ctx, ReservationsKey)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return []*reservation.Reservation{}, nil, nil
	}

	var stored []storedReservation
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindCorruptState, "reservation collection failed to parse", err)
	}

	records := make([]*reservation.Reservation, len(stored))
	for i, s := range stored {
		records[i] = reservation.ReconstructReservation(
			s.ID, s.Name, s.Email, s.Phone, s.Date, s.Time,
			s.Guests, s.SpecialRequests, reservation.Status(s.Status), s.CreatedAt,
		)
	}

	return records, raw, nil
}

// Store persists the full collection, replacing the snapshot the caller
// loaded. A conflicting concurrent write surfaces as a CONFLICT error.
func (r *ReservationRepository) Store(ctx context.Context, snapshot []byte, records []*reservation.Reservation) error {
	stored := make([]storedReservation, len(records))
	for i, rec := range records {
		stored[i] = storedReservation{
			ID:              rec.ID(),
			Name:            rec.Name(),
			Email:           rec.Email(),
			Phone:           rec.Phone(),
			Date:            rec.Date().String(),
			Time:            rec.TimeOfDay().String(),
			Guests:          rec.Guests().Value(),
			SpecialRequests: rec.SpecialRequests(),
			CreatedAt:       rec.CreatedAt(),
			Status:          rec.Status().String(),
		}
	}

	next, err := json.Marshal(stored)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to serialize reservation collection", err)
	}

	return r.store.CompareAndSwap(ctx, ReservationsKey, snapshot, next)
}
