package implementation

import (
	"context"

	"github.com/heversonalves/canon/internal/entity"
	"github.com/heversonalves/canon/internal/model"
	"github.com/heversonalves/canon/internal/repository/contract"
	"github.com/heversonalves/canon/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BibleVerseRepositoryImpl struct {
	db *gorm.DB
}

func NewBibleVerseRepository(db *gorm.DB) contract.BibleVerseRepository {
	return &BibleVerseRepositoryImpl{db: db}
}

func (r *BibleVerseRepositoryImpl) FindChapter(ctx context.Context, translation, book string, chapter int) ([]*entity.BibleVerse, error) {
	var models []*model.BibleVerse
	query := r.db.WithContext(ctx)
	query = specification.ByChapterReference{Translation: translation, Book: book, Chapter: chapter}.Apply(query)
	query = specification.OrderBy{Field: "verse"}.Apply(query)
	err := query.Find(&models).Error
	if err != nil {
		return nil, err
	}

	verses := make([]*entity.BibleVerse, len(models))
	for i, m := range models {
		verses[i] = &entity.BibleVerse{
			Translation: m.Translation,
			Book:        m.Book,
			Chapter:     m.Chapter,
			Verse:       m.Verse,
			Text:        m.Text,
		}
	}
	return verses, nil
}

func (r *BibleVerseRepositoryImpl) CreateBatch(ctx context.Context, verses []*entity.BibleVerse) error {
	if len(verses) == 0 {
		return nil
	}
	models := make([]*model.BibleVerse, len(verses))
	for i, v := range verses {
		models[i] = &model.BibleVerse{
			Translation: v.Translation,
			Book:        v.Book,
			Chapter:     v.Chapter,
			Verse:       v.Verse,
			Text:        v.Text,
		}
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(models).Error
}

func (r *BibleVerseRepositoryImpl) Count(ctx context.Context, translation string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.BibleVerse{}).
		Where("translation = ?", translation).
		Count(&count).Error
	return count, err
}
