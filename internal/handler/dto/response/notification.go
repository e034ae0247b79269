package response

import (
	"time"

	"eatery-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID      uuid.UUID `json:"id"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sentAt"`
}

func FromNotificationViews(rms []*queries.NotificationView) []*NotificationResponse {
	out := make([]*NotificationResponse, len(rms))
	for i, rm := range rms {
		out[i] = &NotificationResponse{
			ID:      rm.ID,
			To:      rm.To,
			Subject: rm.Subject,
			Message: rm.Message,
			SentAt:  rm.SentAt,
		}
	}
	return out
}
