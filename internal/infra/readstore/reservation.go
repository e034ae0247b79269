package readstore

import (
	"context"
	"encoding/json"
	"time"

	"eatery-api/internal/infra"
	"eatery-api/internal/infra/kv"
	"eatery-api/internal/infra/repository"
	"eatery-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// Read-side row shape; mirrors the persisted JSON layout.
type reservationRow struct {
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

type ReservationReadStore struct {
	store kv.Store
}

func NewReservationReadStore(store kv.Store) *ReservationReadStore {
	return &ReservationReadStore{store: store}
}

// All returns every persisted reservation in append order. The slice is
// rebuilt on every call; callers must not assume identity stability.
func (s *ReservationReadStore) All(ctx context.Context) ([]*queries.ReservationView, error) {
	raw, found, err := s.store.Get(ctx, repository.ReservationsKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []*queries.ReservationView{}, nil
	}

	var rows []reservationRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, infra.WrapRepoErr(infra.KindCorruptState, "reservation collection failed to parse", err)
	}

	views := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		view := &queries.ReservationView{}
		if err := copier.Copy(view, &row); err != nil {
			return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to map reservation row", err)
		}
		views[i] = view
	}

	return views, nil
}
