package queries

import (
	"context"
	"strings"
	"time"

	"eatery-api/internal/infra"
	"eatery-api/internal/pkg/errs"
)

// Read models (DTO for read side)
type ReservationView struct {
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

// ReservationFilter narrows List the way the admin panel does: an exact
// status and a free-text term matched against name, phone and email.
type ReservationFilter struct {
	Status string
	Term   string
}

type ReservationReadStore interface {
	All(ctx context.Context) ([]*ReservationView, error)
}

type ReservationQueries interface {
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	GetByID(ctx context.Context, id string) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error) {
	views, err := q.readStore.All(ctx)
	if err != nil {
		return nil, mapReadErr(err)
	}

	if filter.Status == "" && filter.Term == "" {
		return views, nil
	}

	term := strings.ToLower(strings.TrimSpace(filter.Term))
	filtered := make([]*ReservationView, 0, len(views))
	for _, v := range views {
		if filter.Status != "" && v.Status != filter.Status {
			continue
		}
		if term != "" && !matchesTerm(v, term) {
			continue
		}
		filtered = append(filtered, v)
	}

	return filtered, nil
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id string) (*ReservationView, error) {
	views, err := q.readStore.All(ctx)
	if err != nil {
		return nil, mapReadErr(err)
	}

	for _, v := range views {
		if v.ID == id {
			return v, nil
		}
	}

	return nil, errs.ErrReservationNotFound
}

func matchesTerm(v *ReservationView, term string) bool {
	return strings.Contains(strings.ToLower(v.Name), term) ||
		strings.Contains(v.Phone, term) ||
		(v.Email != "" && strings.Contains(strings.ToLower(v.Email), term))
}

func mapReadErr(err error) error {
	if infra.IsKind(err, infra.KindCorruptState) {
		return errs.Mark(err, errs.ErrCorruptedState)
	}
	return errs.Mark(err, errs.ErrStoreFailed)
}
