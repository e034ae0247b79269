//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"eatery-api/internal/domain/notification"
	"eatery-api/internal/infra"
	"eatery-api/internal/infra/kv"
	"eatery-api/internal/infra/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_AppendPreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := repository.NewNotificationRepository(store)
	sentAt := time.Date(2024, 7, 1, 18, 30, 0, 0, time.UTC)

	first := notification.NewRecord("jane@example.com", "Reservation Received", "hello", sentAt)
	second := notification.NewRecord("john@example.com", "Reservation Confirmed", "see you", sentAt.Add(time.Minute))

	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	raw, found, err := store.Get(ctx, repository.NotificationsKey)
	require.NoError(t, err)
	require.True(t, found)

	var stored []struct {
		ID      string    `json:"id"`
		To      string    `json:"to"`
		Subject string    `json:"subject"`
		Message string    `json:"message"`
		SentAt  time.Time `json:"sentAt"`
	}
	require.NoError(t, json.Unmarshal(raw, &stored))
	require.Len(t, stored, 2)

	assert.Equal(t, first.ID.String(), stored[0].ID)
	assert.Equal(t, "jane@example.com", stored[0].To)
	assert.Equal(t, "Reservation Received", stored[0].Subject)
	assert.Equal(t, second.ID.String(), stored[1].ID)
	assert.True(t, second.SentAt.Equal(stored[1].SentAt))
}

func TestNotificationRepository_CorruptLogIsHardFailure(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Put(ctx, repository.NotificationsKey, []byte("[broken")))

	repo := repository.NewNotificationRepository(store)
	err := repo.Append(ctx, notification.NewRecord("jane@example.com", "s", "m", time.Now()))
	assert.True(t, infra.IsKind(err, infra.KindCorruptState))
}

func TestMailConfigRepository_UnconfiguredIsNotAnError(t *testing.T) {
	repo := repository.NewMailConfigRepository(kv.NewMemoryStore())

	_, found, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMailConfigRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMailConfigRepository(kv.NewMemoryStore())

	creds := notification.Credentials{
		ServiceID:  "service_abc",
		TemplateID: "template_xyz",
		AccountID:  "user_123",
	}
	require.NoError(t, repo.Save(ctx, creds))

	loaded, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, creds, loaded)
}

func TestMailConfigRepository_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMailConfigRepository(kv.NewMemoryStore())

	require.NoError(t, repo.Save(ctx, notification.Credentials{ServiceID: "old", TemplateID: "old", AccountID: "old"}))
	require.NoError(t, repo.Save(ctx, notification.Credentials{ServiceID: "new", TemplateID: "new", AccountID: "new"}))

	loaded, found, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "new", loaded.ServiceID)
}
