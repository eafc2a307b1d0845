package ai

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"flightly/models"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession() *models.AssistantSession {
	return &models.AssistantSession{
		ID: "sess-1",
		Draft: models.BookingDraft{
			Email:           "a@b.com",
			Destination:     "berlin",
			MealPreferences: []models.MealOption{models.MealVegan},
		},
		State:     models.StateCollecting,
		UpdatedAt: time.Date(2026, time.October, 18, 10, 30, 0, 0, time.UTC),
	}
}

func TestRedisSessionStore_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisSessionStore(db, time.Hour)

	payload, err := json.Marshal(sampleSession())
	require.NoError(t, err)
	mock.ExpectGet("assistant:session:sess-1").SetVal(string(payload))

	got, err := store.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sampleSession(), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisSessionStore_GetMissing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisSessionStore(db, time.Hour)

	mock.ExpectGet("assistant:session:nope").RedisNil()

	got, err := store.Get(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisSessionStore_GetError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisSessionStore(db, time.Hour)

	mock.ExpectGet("assistant:session:sess-1").SetErr(errors.New("connection refused"))

	_, err := store.Get(context.Background(), "sess-1")
	assert.ErrorContains(t, err, "connection refused")
}

func TestRedisSessionStore_SetAndClear(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisSessionStore(db, 30*time.Minute)
	session := sampleSession()

	payload, err := json.Marshal(session)
	require.NoError(t, err)
	mock.ExpectSet("assistant:session:sess-1", payload, 30*time.Minute).SetVal("OK")
	mock.ExpectDel("assistant:session:sess-1").SetVal(1)

	require.NoError(t, store.Set(context.Background(), session))
	require.NoError(t, store.Clear(context.Background(), "sess-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	session := sampleSession()
	require.NoError(t, store.Set(ctx, session))
	session.Draft.MealPreferences[0] = models.MealHalal

	got, err = store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, []models.MealOption{models.MealVegan}, got.Draft.MealPreferences)

	require.NoError(t, store.Clear(ctx, "sess-1"))
	got, err = store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
