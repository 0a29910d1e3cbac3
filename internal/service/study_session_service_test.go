package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/heversonalves/canon/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionPayload(id, lastAccessed string) *dto.StudySessionPayload {
	return &dto.StudySessionPayload{
		Id:                  id,
		Translation:         "ACF",
		Book:                "Romans",
		Chapter:             3,
		Stage:               "observation",
		Verses:              []dto.VersePayload{{Number: 21, Text: "Mas agora"}},
		Notes:               []dto.NotePayload{},
		Highlights:          []dto.HighlightPayload{},
		UnresolvedQuestions: []string{},
		LastAccessed:        lastAccessed,
	}
}

func TestStudySessionUpsertReturnsCanonicalAndPublishes(t *testing.T) {
	factory := newFakeFactory()
	publisher := &fakePublisher{}
	svc := NewStudySessionService(factory, publisher, nopLogger{})
	ctx := context.Background()

	saved, err := svc.Upsert(ctx, sessionPayload("session-1", "2026-03-14T12:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, "session-1", saved.Id)
	require.Len(t, saved.Verses, 1)

	require.Len(t, publisher.published, 1)
	var event dto.SessionUpdatedMessage
	require.NoError(t, json.Unmarshal(publisher.published[0], &event))
	assert.Equal(t, dto.SessionUpdatedEventType, event.Type)
	assert.Equal(t, "session-1", event.Session.Id)
}

func TestStudySessionUpsertIsIdempotent(t *testing.T) {
	factory := newFakeFactory()
	svc := NewStudySessionService(factory, &fakePublisher{}, nopLogger{})
	ctx := context.Background()

	payload := sessionPayload("session-1", "2026-03-14T12:00:00Z")
	first, err := svc.Upsert(ctx, payload)
	require.NoError(t, err)
	second, err := svc.Upsert(ctx, payload)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, factory.uow.sessions.store, 1, "upserting the same id twice must not duplicate")
}

func TestStudySessionUpsertSurvivesPublishFailure(t *testing.T) {
	factory := newFakeFactory()
	publisher := &fakePublisher{err: assert.AnError}
	svc := NewStudySessionService(factory, publisher, nopLogger{})

	_, err := svc.Upsert(context.Background(), sessionPayload("session-1", "2026-03-14T12:00:00Z"))
	assert.NoError(t, err, "a publish failure must never fail the save")
}

func TestStudySessionGetLast(t *testing.T) {
	factory := newFakeFactory()
	svc := NewStudySessionService(factory, &fakePublisher{}, nopLogger{})
	ctx := context.Background()

	_, err := svc.GetLast(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Upsert(ctx, sessionPayload("session-old", "2026-03-13T08:00:00Z"))
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, sessionPayload("session-new", "2026-03-14T12:00:00Z"))
	require.NoError(t, err)

	last, err := svc.GetLast(ctx)
	require.NoError(t, err)
	assert.Equal(t, "session-new", last.Id)
}

func TestStudySessionGetById(t *testing.T) {
	factory := newFakeFactory()
	svc := NewStudySessionService(factory, &fakePublisher{}, nopLogger{})
	ctx := context.Background()

	_, err := svc.GetById(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Upsert(ctx, sessionPayload("session-1", "2026-03-14T12:00:00Z"))
	require.NoError(t, err)

	found, err := svc.GetById(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "Romans", found.Book)
}
