package readstore

import (
	"context"
	"encoding/json"
	"time"

	"eatery-api/internal/infra"
	"eatery-api/internal/infra/kv"
	"eatery-api/internal/infra/repository"
	"eatery-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type notificationRow struct {
	ID      uuid.UUID `json:"id"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sentAt"`
}

type NotificationReadStore struct {
	store kv.Store
}

func NewNotificationReadStore(store kv.Store) *NotificationReadStore {
	return &NotificationReadStore{store: store}
}

// All returns the sent-message audit log in append order.
func (s *NotificationReadStore) All(ctx context.Context) ([]*queries.NotificationView, error) {
	raw, found, err := s.store.Get(ctx, repository.NotificationsKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []*queries.NotificationView{}, nil
	}

	var rows []notificationRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, infra.WrapRepoErr(infra.KindCorruptState, "notification log failed to parse", err)
	}

	views := make([]*queries.NotificationView, len(rows))
	for i, row := range rows {
		view := &queries.NotificationView{}
		if err := copier.Copy(view, &row); err != nil {
			return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to map notification row", err)
		}
		views[i] = view
	}

	return views, nil
}
