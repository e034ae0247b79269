package commands

import (
	"fmt"

	"eatery-api/internal/domain/reservation"
)

const (
	restaurantName  = "The Eating Establishment"
	restaurantPhone = "435.649.8284"

	SubjectReceived  = "Reservation Received"
	SubjectConfirmed = "Reservation Confirmed"
	SubjectCancelled = "Reservation Cancelled"
)

func receivedMessage(res *reservation.Reservation) string {
	return fmt.Sprintf(
		"Dear %s,\n\nThank you for your reservation request at %s for %s at %s for %d guests.\n\n"+
			"Your reservation is currently pending confirmation. We will contact you shortly to confirm your reservation.\n\n"+
			"Best regards,\n%s Team",
		res.Name(), restaurantName, res.Date(), res.TimeOfDay().Format12Hour(), res.Guests().Value(), restaurantName,
	)
}

func confirmedMessage(res *reservation.Reservation) string {
	return fmt.Sprintf(
		"Dear %s,\n\nWe are pleased to confirm your reservation at %s for %s at %s for %d guests.\n\n"+
			"We look forward to welcoming you!\n\nBest regards,\n%s Team",
		res.Name(), restaurantName, res.Date(), res.TimeOfDay().Format12Hour(), res.Guests().Value(), restaurantName,
	)
}

func cancelledMessage(res *reservation.Reservation) string {
	return fmt.Sprintf(
		"Dear %s,\n\nWe regret to inform you that your reservation at %s for %s at %s could not be accommodated.\n\n"+
			"Please contact us at %s if you would like to discuss alternative dates or times.\n\n"+
			"Best regards,\n%s Team",
		res.Name(), restaurantName, res.Date(), res.TimeOfDay().Format12Hour(), restaurantPhone, restaurantName,
	)
}

func deletedMessage(res *reservation.Reservation) string {
	return fmt.Sprintf(
		"Dear %s,\n\nYour reservation at %s for %s at %s has been cancelled.\n\n"+
			"If you did not request this cancellation, please contact us at %s.\n\n"+
			"Best regards,\n%s Team",
		res.Name(), restaurantName, res.Date(), res.TimeOfDay().Format12Hour(), restaurantPhone, restaurantName,
	)
}
