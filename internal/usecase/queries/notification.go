package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type NotificationView struct {
	ID      uuid.UUID `json:"id"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sentAt"`
}

type NotificationReadStore interface {
	All(ctx context.Context) ([]*NotificationView, error)
}

type NotificationQueries interface {
	List(ctx context.Context) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{readStore: readStore}
}

func (q *notificationQueriesImpl) List(ctx context.Context) ([]*NotificationView, error) {
	views, err := q.readStore.All(ctx)
	if err != nil {
		return nil, mapReadErr(err)
	}
	return views, nil
}
