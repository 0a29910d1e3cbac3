package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heversonalves/canon/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestGetChapterNormalizesShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []entity.Verse
	}{
		{
			name: "record shape",
			body: `{"book": "Romans", "chapter": 3, "verses": [{"number": 21, "text": "Mas agora"}]}`,
			want: []entity.Verse{{Number: 21, Text: "Mas agora"}},
		},
		{
			name: "string shape",
			body: `{"book": "Genesis", "chapter": 1, "verses": ["No princípio", "E a terra"]}`,
			want: []entity.Verse{{Number: 1, Text: "No princípio"}, {Number: 2, Text: "E a terra"}},
		},
		{
			name: "missing chapter degrades to empty",
			body: `{"book": "Romans", "chapter": 99, "verses": null}`,
			want: []entity.Verse{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			})

			verses, err := client.GetChapter(context.Background(), entity.TranslationACF, "Romans", 3)
			require.NoError(t, err)
			assert.Equal(t, tt.want, verses)
		})
	}
}

func TestGetChapterRequestPath(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"book": "1 Corinthians", "chapter": 13, "verses": []}`))
	})

	_, err := client.GetChapter(context.Background(), entity.TranslationARA, "1 Corinthians", 13)
	require.NoError(t, err)
	assert.Equal(t, "/api/bible/ARA/1%20Corinthians/13", gotPath)
}

func TestGetLast(t *testing.T) {
	t.Run("session exists", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/study-sessions/last", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "session-7",
				"translation": "ACF",
				"book": "Romans",
				"chapter": 3,
				"stage": "grammar",
				"verses": [], "notes": [], "highlights": [], "unresolvedQuestions": [],
				"lastAccessed": "2026-03-14T12:00:00Z"
			}`))
		})

		session, err := client.GetLast(context.Background())
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "session-7", session.Id)
		assert.Equal(t, entity.StageGrammar, session.Stage)
	})

	t.Run("no session yet", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "No study session found"}`))
		})

		session, err := client.GetLast(context.Background())
		require.NoError(t, err)
		assert.Nil(t, session)
	})
}

func TestUpsertSendsSessionAndReturnsCanonical(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/study-sessions/session-7", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "session-7", body["id"])
		assert.Equal(t, "theology", body["stage"])

		// The server is the authority: echo with a canonical change.
		body["lastAccessed"] = "2026-03-14T12:00:05Z"
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(body))
	})

	saved, err := client.Upsert(context.Background(), &entity.StudySession{
		Id:          "session-7",
		Translation: entity.TranslationACF,
		Book:        "Romans",
		Chapter:     3,
		Stage:       entity.StageTheology,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14T12:00:05Z", saved.LastAccessed)
}

func TestAPIErrorCarriesStatusAndBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message": "boom"}`))
	})

	_, err := client.Upsert(context.Background(), &entity.StudySession{Id: "session-7"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Body, "boom")
}

func TestNoteStore(t *testing.T) {
	t.Run("list filters by source", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/notes", r.URL.Path)
			assert.Equal(t, "grammar", r.URL.Query().Get("source"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id": "n-1", "source": "grammar", "content": "perfeito composto", "pinned": true}]`))
		})

		notes, err := client.List(context.Background(), "grammar")
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "n-1", notes[0].Id)
		assert.True(t, notes[0].Pinned)
	})

	t.Run("save", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			body["created_at"] = "2026-03-14T12:00:00Z"
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(body))
		})

		saved, err := client.Save(context.Background(), entity.Note{Id: "n-2", Source: "semantics", Content: "dikaiosyne"})
		require.NoError(t, err)
		require.NotNil(t, saved.CreatedAt)
		assert.Equal(t, "2026-03-14T12:00:00Z", *saved.CreatedAt)
	})

	t.Run("delete", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/notes/n-2", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status": "deleted"}`))
		})

		require.NoError(t, client.Delete(context.Background(), "n-2"))
	})
}
