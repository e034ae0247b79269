package response

import (
	"time"

	"eatery-api/internal/usecase/queries"
)

type ReservationResponse struct {
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

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              rm.ID,
		Name:            rm.Name,
		Email:           rm.Email,
		Phone:           rm.Phone,
		Date:            rm.Date,
		Time:            rm.Time,
		Guests:          rm.Guests,
		SpecialRequests: rm.SpecialRequests,
		CreatedAt:       rm.CreatedAt,
		Status:          rm.Status,
	}
}

func FromReservationViews(rms []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromReservationView(rm)
	}
	return out
}
