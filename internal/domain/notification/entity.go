package notification

import (
	"time"

	"github.com/google/uuid"
)

// Record is one entry in the append-only log of messages the system has
// told a guest it sent. Records are never mutated or deleted.
type Record struct {
	ID      uuid.UUID
	To      string
	Subject string
	Message string
	SentAt  time.Time
}

func NewRecord(to, subject, message string, sentAt time.Time) Record {
	return Record{
		ID:      uuid.New(),
		To:      to,
		Subject: subject,
		Message: message,
		SentAt:  sentAt,
	}
}

// Credentials identify the external transactional-email account used for
// delivery. Delivery is skipped, not failed, while any of them is missing.
type Credentials struct {
	ServiceID  string
	TemplateID string
	AccountID  string
}

func (c Credentials) Complete() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.AccountID != ""
}
