package reservation

import (
	"errors"
	"strings"
	"time"

	"eatery-api/internal/pkg/ident"
)

var (
	ErrEmptyName         = errors.New("name is required")
	ErrEmptyPhone        = errors.New("phone is required")
	ErrInvalidDate       = errors.New("invalid reservation date")
	ErrInvalidTime       = errors.New("invalid reservation time")
	ErrInvalidGuestCount = errors.New("invalid guest count")
	ErrUnknownStatus     = errors.New("unknown reservation status")
)

type Reservation struct {
	id              string
	name            string
	email           string
	phone           string
	date            Date
	timeOfDay       TimeOfDay
	guests          GuestCount
	specialRequests string
	status          Status
	createdAt       time.Time
}

// NewReservation validates the guest input and builds a pending reservation
// with a freshly generated identifier. Email and special requests are
// optional; everything else is required.
func NewReservation(
	name, email, phone, date, timeOfDay string,
	guests int,
	specialRequests string,
	now time.Time,
) (*Reservation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrEmptyPhone
	}

	dateVO, err := NewDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	timeVO, err := NewTimeOfDay(timeOfDay)
	if err != nil {
		return nil, ErrInvalidTime
	}

	guestsVO, err := NewGuestCount(guests)
	if err != nil {
		return nil, ErrInvalidGuestCount
	}

	return &Reservation{
		id:              ident.New(),
		name:            name,
		email:           strings.TrimSpace(email),
		phone:           phone,
		date:            dateVO,
		timeOfDay:       timeVO,
		guests:          guestsVO,
		specialRequests: strings.TrimSpace(specialRequests),
		status:          StatusPending,
		createdAt:       now,
	}, nil
}

// ReconstructReservation rebuilds an entity from persisted state without
// re-running input validation; stored records are trusted as written.
func ReconstructReservation(
	id, name, email, phone, date, timeOfDay string,
	guests int,
	specialRequests string,
	status Status,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		name:            name,
		email:           email,
		phone:           phone,
		date:            Date{value: date},
		timeOfDay:       TimeOfDay{value: timeOfDay},
		guests:          GuestCount{value: guests},
		specialRequests: specialRequests,
		status:          status,
		createdAt:       createdAt,
	}
}

// ChangeStatus overwrites the lifecycle status and reports the previous one.
// Transitions are caller-driven; the entity only rejects unknown values.
func (r *Reservation) ChangeStatus(newStatus Status) (Status, error) {
	if !newStatus.IsValid() {
		return r.status, ErrUnknownStatus
	}
	previous := r.status
	r.status = newStatus
	return previous, nil
}

func (r *Reservation) HasEmail() bool {
	return r.email != ""
}

func (r *Reservation) ID() string              { return r.id }
func (r *Reservation) Name() string            { return r.name }
func (r *Reservation) Email() string           { return r.email }
func (r *Reservation) Phone() string           { return r.phone }
func (r *Reservation) Date() Date              { return r.date }
func (r *Reservation) TimeOfDay() TimeOfDay    { return r.timeOfDay }
func (r *Reservation) Guests() GuestCount      { return r.guests }
func (r *Reservation) SpecialRequests() string { return r.specialRequests }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
