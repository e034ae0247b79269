//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"eatery-api/internal/domain/notification"
	"eatery-api/internal/infra"
	"eatery-api/internal/pkg/errs"
	"eatery-api/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReservationReadStore struct {
	views []*queries.ReservationView
	err   error
}

func (s *stubReservationReadStore) All(context.Context) ([]*queries.ReservationView, error) {
	return s.views, s.err
}

func fixtureViews() []*queries.ReservationView {
	createdAt := time.Date(2024, 7, 1, 18, 30, 0, 0, time.UTC)
	return []*queries.ReservationView{
		{ID: "a", Name: "Jane Doe", Email: "jane@example.com", Phone: "435-555-0101", Status: "pending", CreatedAt: createdAt},
		{ID: "b", Name: "John Roe", Phone: "435-555-0102", Status: "confirmed", CreatedAt: createdAt},
		{ID: "c", Name: "Janet Poe", Email: "janet@other.net", Phone: "801-555-0199", Status: "cancelled", CreatedAt: createdAt},
	}
}

func TestReservationQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("no filter returns everything in stored order", func(t *testing.T) {
		q := queries.NewReservationQueries(&stubReservationReadStore{views: fixtureViews()})

		views, err := q.List(ctx, queries.ReservationFilter{})
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, "a", views[0].ID)
		assert.Equal(t, "c", views[2].ID)
	})

	t.Run("status filter matches exactly", func(t *testing.T) {
		q := queries.NewReservationQueries(&stubReservationReadStore{views: fixtureViews()})

		views, err := q.List(ctx, queries.ReservationFilter{Status: "confirmed"})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "b", views[0].ID)
	})

	t.Run("term matches name case-insensitively", func(t *testing.T) {
		q := queries.NewReservationQueries(&stubReservationReadStore{views: fixtureViews()})

		views, err := q.List(ctx, queries.ReservationFilter{Term: "JANE"})
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "a", views[0].ID)
		assert.Equal(t, "c", views[1].ID)
	})

	t.Run("term matches phone digits", func(t *testing.T) {
		q := queries.NewReservationQueries(&stubReservationReadStore{views: fixtureViews()})

		views, err := q.List(ctx, queries.ReservationFilter{Term: "801-555"})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "c", views[0].ID)
	})

	t.Run("term matches email", func(t *testing.T) {
		q := queries.NewReservationQueries(&stubReservationReadStore{views: fixtureViews()})

		views, err := q.List(ctx, queries.ReservationFilter{Term: "other.net"})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "c", views[0].ID)
	})

	t.Run("status and term combine", func(t *testing.T) {
		q := queries.NewReservationQueries(&stubReservationReadStore{views: fixtureViews()})

		views, err := q.List(ctx, queries.ReservationFilter{Status: "cancelled", Term: "jane"})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "c", views[0].ID)
	})

	t.Run("corrupt read surfaces the corrupted-state sentinel", func(t *testing.T) {
		readErr := infra.WrapRepoErr(infra.KindCorruptState, "bad bytes", errors.New("parse"))
		q := queries.NewReservationQueries(&stubReservationReadStore{err: readErr})

		_, err := q.List(ctx, queries.ReservationFilter{})
		assert.ErrorIs(t, err, errs.ErrCorruptedState)
	})
}

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	q := queries.NewReservationQueries(&stubReservationReadStore{views: fixtureViews()})

	t.Run("returns the matching view", func(t *testing.T) {
		view, err := q.GetByID(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, "John Roe", view.Name)
	})

	t.Run("misses surface the not-found sentinel", func(t *testing.T) {
		_, err := q.GetByID(ctx, "zzz")
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})
}

type stubMailConfigSource struct {
	creds notification.Credentials
	found bool
}

func (s *stubMailConfigSource) Load(context.Context) (notification.Credentials, bool, error) {
	return s.creds, s.found, nil
}

func TestMailConfigQueries_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("unconfigured store reports configured false", func(t *testing.T) {
		q := queries.NewMailConfigQueries(&stubMailConfigSource{})

		view, err := q.Get(ctx)
		require.NoError(t, err)
		assert.False(t, view.Configured)
	})

	t.Run("complete credentials report configured true", func(t *testing.T) {
		q := queries.NewMailConfigQueries(&stubMailConfigSource{
			creds: notification.Credentials{ServiceID: "s", TemplateID: "t", AccountID: "a"},
			found: true,
		})

		view, err := q.Get(ctx)
		require.NoError(t, err)
		assert.True(t, view.Configured)
		assert.Equal(t, "s", view.ServiceID)
	})

	t.Run("partial credentials report configured false", func(t *testing.T) {
		q := queries.NewMailConfigQueries(&stubMailConfigSource{
			creds: notification.Credentials{ServiceID: "s"},
			found: true,
		})

		view, err := q.Get(ctx)
		require.NoError(t, err)
		assert.False(t, view.Configured)
	})
}
