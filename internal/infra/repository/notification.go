package repository

import (
	"context"
	"encoding/json"
	"time"

	"eatery-api/internal/domain/notification"
	"eatery-api/internal/infra"
	"eatery-api/internal/infra/kv"

	"github.com/google/uuid"
)

// NotificationsKey is the storage key holding the append-only sent-message
// log as one serialized JSON array.
const NotificationsKey = "sent-emails"

// appendAttempts bounds the reload-and-retry loop when two writers append
// to the log at the same time.
const appendAttempts = 3

type storedNotification struct {
	ID      uuid.UUID `json:"id"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sentAt"`
}

type NotificationRepository struct {
	store kv.Store
}

func NewNotificationRepository(store kv.Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

// Append adds one record to the log. The log is the admin panel's only
// record of what the system told a guest, so a failed append is surfaced
// rather than swallowed.
func (r *NotificationRepository) Append(ctx context.Context, rec notification.Record) error {
	var err error
	for range appendAttempts {
		err = r.tryAppend(ctx, rec)
		if err == nil || !infra.IsKind(err, infra.KindConflict) {
			return err
		}
	}
	return err
}

func (r *NotificationRepository) tryAppend(ctx context.Context, rec notification.Record) error {
	stored, snapshot, err := r.load(ctx)
	if err != nil {
		return err
	}

	stored = append(stored, storedNotification{
		ID:      rec.ID,
		To:      rec.To,
		Subject: rec.Subject,
		Message: rec.Message,
		SentAt:  rec.SentAt,
	})

	next, err := json.Marshal(stored)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to serialize notification log", err)
	}

	return r.store.CompareAndSwap(ctx, NotificationsKey, snapshot, next)
}

func (r *NotificationRepository) load(ctx context.Context) ([]storedNotification, []byte, error) {
	raw, found, err := r.store.Get(ctx, NotificationsKey)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return []storedNotification{}, nil, nil
	}

	var stored []storedNotification
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindCorruptState, "notification log failed to parse", err)
	}

	return stored, raw, nil
}
