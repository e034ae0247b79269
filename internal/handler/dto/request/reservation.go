package request

import (
	"strings"

	"eatery-api/internal/usecase/commands"
)

type CreateReservationRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"omitempty,email"`
	Phone           string `json:"phone" binding:"required"`
	Date            string `json:"date" binding:"required,datetime=2006-01-02"`
	Time            string `json:"time" binding:"required,hhmm"`
	Guests          int    `json:"guests" binding:"required,gt=0"`
	SpecialRequests string `json:"specialRequests"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		Name:            strings.TrimSpace(r.Name),
		Email:           strings.TrimSpace(r.Email),
		Phone:           strings.TrimSpace(r.Phone),
		Date:            r.Date,
		Time:            r.Time,
		Guests:          r.Guests,
		SpecialRequests: strings.TrimSpace(r.SpecialRequests),
	}
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}
