//go:build unit

package builder

import (
	"time"

	reqdto "eatery-api/internal/handler/dto/request"
	"eatery-api/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
	Status          string
	CreatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        "4f2rgnuqnizc8m3kx8b1p2a9d7",
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "435-555-0101",
		Date:      "2024-07-04",
		Time:      "18:30",
		Guests:    4,
		Status:    "pending",
		CreatedAt: time.Date(2024, 7, 1, 18, 30, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithEmail(email string) *ReservationBuilder {
	b.Email = email
	return b
}

func (b *ReservationBuilder) BuildDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		Date:            b.Date,
		Time:            b.Time,
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *ReservationBuilder) BuildReadModel() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              b.ID,
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		Date:            b.Date,
		Time:            b.Time,
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		Status:          b.Status,
	}
}
