//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"eatery-api/internal/domain/reservation"
	"eatery-api/internal/infra"
	"eatery-api/internal/infra/kv"
	"eatery-api/internal/infra/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationRepository_LoadEmpty(t *testing.T) {
	repo := repository.NewReservationRepository(kv.NewMemoryStore())

	records, snapshot, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Nil(t, snapshot)
}

func TestReservationRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewReservationRepository(kv.NewMemoryStore())
	createdAt := time.Date(2024, 7, 1, 18, 30, 0, 0, time.UTC)

	first := reservation.ReconstructReservation(
		"id-one", "Jane Doe", "jane@example.com", "435-555-0101",
		"2024-07-04", "18:30", 4, "window seat", reservation.StatusPending, createdAt,
	)
	second := reservation.ReconstructReservation(
		"id-two", "John Roe", "", "435-555-0102",
		"2024-07-05", "20:00", 2, "", reservation.StatusConfirmed, createdAt,
	)

	require.NoError(t, repo.Store(ctx, nil, []*reservation.Reservation{first, second}))

	records, snapshot, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.NotNil(t, snapshot)

	assert.Equal(t, first, records[0])
	assert.Equal(t, second, records[1])
}

func TestReservationRepository_OmitsEmptyOptionalFields(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := repository.NewReservationRepository(store)
	createdAt := time.Date(2024, 7, 1, 18, 30, 0, 0, time.UTC)

	rec := reservation.ReconstructReservation(
		"id-one", "Jane", "", "435-555-0101",
		"2024-07-04", "18:30", 2, "", reservation.StatusPending, createdAt,
	)
	require.NoError(t, repo.Store(ctx, nil, []*reservation.Reservation{rec}))

	raw, found, err := store.Get(ctx, repository.ReservationsKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotContains(t, string(raw), `"email"`)
	assert.NotContains(t, string(raw), `"specialRequests"`)
}

func TestReservationRepository_CorruptStateIsHardFailure(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Put(ctx, repository.ReservationsKey, []byte("{not json")))

	repo := repository.NewReservationRepository(store)
	records, _, err := repo.Load(ctx)
	assert.Nil(t, records)
	assert.True(t, infra.IsKind(err, infra.KindCorruptState))
}

func TestReservationRepository_ConflictOnStaleSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewReservationRepository(kv.NewMemoryStore())
	createdAt := time.Date(2024, 7, 1, 18, 30, 0, 0, time.UTC)

	rec := reservation.ReconstructReservation(
		"id-one", "Jane", "", "435-555-0101",
		"2024-07-04", "18:30", 2, "", reservation.StatusPending, createdAt,
	)
	require.NoError(t, repo.Store(ctx, nil, []*reservation.Reservation{rec}))

	// Two admins load the same state, then both try to write.
	records, snapshot, err := repo.Load(ctx)
	require.NoError(t, err)
	_, err = records[0].ChangeStatus(reservation.StatusConfirmed)
	require.NoError(t, err)
	require.NoError(t, repo.Store(ctx, snapshot, records))

	err = repo.Store(ctx, snapshot, records)
	assert.True(t, infra.IsKind(err, infra.KindConflict))
}
