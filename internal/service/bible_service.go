package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/repository/unitofwork"

	"github.com/patrickmn/go-cache"
)

type IBibleService interface {
	GetChapter(ctx context.Context, translation, book string, chapter int) (*dto.ChapterResponse, error)
	InvalidateTranslation(translation string)
}

type bibleService struct {
	uowFactory unitofwork.RepositoryFactory
	// Uploaded translation packages are JSON trees that have to be walked on
	// every lookup; resolved chapters are cached so repeated reads of the
	// same reference skip the walk.
	treeCache *cache.Cache
}

func NewBibleService(uowFactory unitofwork.RepositoryFactory) IBibleService {
	return &bibleService{
		uowFactory: uowFactory,
		treeCache:  cache.New(30*time.Minute, 10*time.Minute),
	}
}

func (s *bibleService) GetChapter(ctx context.Context, translation, book string, chapter int) (*dto.ChapterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Seeded verse rows are the primary source.
	rows, err := uow.BibleVerseRepository().FindChapter(ctx, translation, book, chapter)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		verses := make(dto.VerseList, len(rows))
		for i, row := range rows {
			verses[i] = dto.VersePayload{Number: row.Verse, Text: row.Text}
		}
		return &dto.ChapterResponse{Book: book, Chapter: chapter, Verses: verses}, nil
	}

	// Fall back to uploaded translation trees.
	cacheKey := fmt.Sprintf("%s:%s:%d", translation, book, chapter)
	if cached, found := s.treeCache.Get(cacheKey); found {
		return cached.(*dto.ChapterResponse), nil
	}

	pack, err := uow.TranslationRepository().FindById(ctx, translation)
	if err != nil {
		return nil, err
	}
	if pack == nil {
		return nil, ErrTranslationNotFound
	}

	verses, err := resolveChapterFromTree(pack.Data, book, chapter)
	if err != nil {
		return nil, err
	}

	response := &dto.ChapterResponse{Book: book, Chapter: chapter, Verses: verses}
	s.treeCache.Set(cacheKey, response, cache.DefaultExpiration)
	return response, nil
}

// InvalidateTranslation drops every cached chapter resolved from the given
// translation package. Called when a package is re-uploaded or deleted so the
// cache never outlives the tree it was walked from.
func (s *bibleService) InvalidateTranslation(translation string) {
	prefix := translation + ":"
	for key := range s.treeCache.Items() {
		if strings.HasPrefix(key, prefix) {
			s.treeCache.Delete(key)
		}
	}
}

// resolveChapterFromTree walks an uploaded translation package. Upload shapes
// vary: books may be an object keyed by name or an array of {name, chapters}
// entries, and chapters may be keyed by number, listed as {number, verses}
// records, or purely positional.
func resolveChapterFromTree(data []byte, book string, chapter int) (dto.VerseList, error) {
	var tree map[string]interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, ErrBookNotFound
	}

	var bookData interface{}
	switch books := tree["books"].(type) {
	case map[string]interface{}:
		bookData = books[book]
	case []interface{}:
		for _, raw := range books {
			entry, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			if name, _ := entry["name"].(string); name == book {
				bookData = entry["chapters"]
				break
			}
		}
	}
	if bookData == nil {
		return nil, ErrBookNotFound
	}

	var chapterData interface{}
	switch chapters := bookData.(type) {
	case map[string]interface{}:
		chapterData = chapters[strconv.Itoa(chapter)]
	case []interface{}:
		for _, raw := range chapters {
			entry, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			if number, ok := entry["number"].(float64); ok && int(number) == chapter {
				chapterData = entry["verses"]
				break
			}
		}
		if chapterData == nil && len(chapters) >= chapter {
			entry := chapters[chapter-1]
			if record, ok := entry.(map[string]interface{}); ok {
				if verses, ok := record["verses"]; ok {
					chapterData = verses
				}
			} else {
				chapterData = entry
			}
		}
	}
	if chapterData == nil {
		return nil, ErrChapterNotFound
	}

	raw, err := json.Marshal(chapterData)
	if err != nil {
		return nil, err
	}
	var verses dto.VerseList
	if err := json.Unmarshal(raw, &verses); err != nil {
		return nil, err
	}
	return verses, nil
}
