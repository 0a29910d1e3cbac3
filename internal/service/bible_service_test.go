package service

import (
	"context"
	"testing"

	"github.com/heversonalves/canon/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetChapterFromSeededRows(t *testing.T) {
	factory := newFakeFactory()
	factory.uow.verses.rows = []*entity.BibleVerse{
		{Translation: "ACF", Book: "Romans", Chapter: 3, Verse: 22, Text: "Isto é"},
		{Translation: "ACF", Book: "Romans", Chapter: 3, Verse: 21, Text: "Mas agora"},
		{Translation: "ACF", Book: "Genesis", Chapter: 1, Verse: 1, Text: "No princípio"},
	}
	svc := NewBibleService(factory)

	resp, err := svc.GetChapter(context.Background(), "ACF", "Romans", 3)
	require.NoError(t, err)

	assert.Equal(t, "Romans", resp.Book)
	assert.Equal(t, 3, resp.Chapter)
	require.Len(t, resp.Verses, 2)
	assert.Equal(t, 21, resp.Verses[0].Number, "verses must come back ordered ascending")
	assert.Equal(t, 22, resp.Verses[1].Number)
}

func TestGetChapterFallsBackToTranslationTree(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "books map with keyed chapters",
			data: `{"books": {"John": {"1": ["No princípio era o Verbo", "Ele estava no princípio"]}}}`,
		},
		{
			name: "books list with number records",
			data: `{"books": [{"name": "John", "chapters": [{"number": 1, "verses": ["No princípio era o Verbo", "Ele estava no princípio"]}]}]}`,
		},
		{
			name: "books list with positional chapters",
			data: `{"books": [{"name": "John", "chapters": [["No princípio era o Verbo", "Ele estava no princípio"]]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory := newFakeFactory()
			factory.uow.translations.store["NVT"] = &entity.BibleTranslation{
				Id:   "NVT",
				Data: []byte(tt.data),
			}
			svc := NewBibleService(factory)

			resp, err := svc.GetChapter(context.Background(), "NVT", "John", 1)
			require.NoError(t, err)
			require.Len(t, resp.Verses, 2)
			assert.Equal(t, 1, resp.Verses[0].Number)
			assert.Equal(t, "No princípio era o Verbo", resp.Verses[0].Text)
		})
	}
}

func TestInvalidateTranslationDropsCachedChapters(t *testing.T) {
	factory := newFakeFactory()
	factory.uow.translations.store["NVT"] = &entity.BibleTranslation{
		Id:   "NVT",
		Data: []byte(`{"books": {"John": {"1": ["No princípio era o Verbo"]}}}`),
	}
	svc := NewBibleService(factory)
	ctx := context.Background()

	resp, err := svc.GetChapter(ctx, "NVT", "John", 1)
	require.NoError(t, err)
	assert.Equal(t, "No princípio era o Verbo", resp.Verses[0].Text)

	// A re-upload changes the tree, but the cached chapter keeps serving
	// the old text until it is invalidated.
	factory.uow.translations.store["NVT"] = &entity.BibleTranslation{
		Id:   "NVT",
		Data: []byte(`{"books": {"John": {"1": ["No princípio, era o Verbo"]}}}`),
	}
	resp, err = svc.GetChapter(ctx, "NVT", "John", 1)
	require.NoError(t, err)
	assert.Equal(t, "No princípio era o Verbo", resp.Verses[0].Text)

	svc.InvalidateTranslation("NVT")

	resp, err = svc.GetChapter(ctx, "NVT", "John", 1)
	require.NoError(t, err)
	assert.Equal(t, "No princípio, era o Verbo", resp.Verses[0].Text)
}

func TestInvalidateTranslationLeavesOtherTranslations(t *testing.T) {
	factory := newFakeFactory()
	factory.uow.translations.store["NVT"] = &entity.BibleTranslation{
		Id:   "NVT",
		Data: []byte(`{"books": {"John": {"1": ["No princípio era o Verbo"]}}}`),
	}
	svc := NewBibleService(factory).(*bibleService)
	ctx := context.Background()

	_, err := svc.GetChapter(ctx, "NVT", "John", 1)
	require.NoError(t, err)

	svc.InvalidateTranslation("ARA")
	assert.Equal(t, 1, svc.treeCache.ItemCount())

	svc.InvalidateTranslation("NVT")
	assert.Equal(t, 0, svc.treeCache.ItemCount())
}

func TestGetChapterUnknownTranslation(t *testing.T) {
	svc := NewBibleService(newFakeFactory())

	_, err := svc.GetChapter(context.Background(), "NVI", "John", 1)
	assert.ErrorIs(t, err, ErrTranslationNotFound)
}

func TestGetChapterUnknownBookAndChapter(t *testing.T) {
	factory := newFakeFactory()
	factory.uow.translations.store["NVT"] = &entity.BibleTranslation{
		Id:   "NVT",
		Data: []byte(`{"books": {"John": {"1": ["No princípio era o Verbo"]}}}`),
	}
	svc := NewBibleService(factory)
	ctx := context.Background()

	_, err := svc.GetChapter(ctx, "NVT", "Acts", 1)
	assert.ErrorIs(t, err, ErrBookNotFound)

	_, err = svc.GetChapter(ctx, "NVT", "John", 2)
	assert.ErrorIs(t, err, ErrChapterNotFound)
}
