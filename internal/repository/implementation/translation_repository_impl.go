package implementation

import (
	"context"
	"errors"

	"github.com/heversonalves/canon/internal/entity"
	"github.com/heversonalves/canon/internal/mapper"
	"github.com/heversonalves/canon/internal/model"
	"github.com/heversonalves/canon/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TranslationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TranslationMapper
}

func NewTranslationRepository(db *gorm.DB) contract.TranslationRepository {
	return &TranslationRepositoryImpl{
		db:     db,
		mapper: mapper.NewTranslationMapper(),
	}
}

func (r *TranslationRepositoryImpl) Upsert(ctx context.Context, translation *entity.BibleTranslation) error {
	m := r.mapper.ToModel(translation)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(m).Error
}

func (r *TranslationRepositoryImpl) FindById(ctx context.Context, id string) (*entity.BibleTranslation, error) {
	var m model.BibleTranslation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TranslationRepositoryImpl) FindAll(ctx context.Context) ([]*entity.BibleTranslation, error) {
	var models []*model.BibleTranslation
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	translations := make([]*entity.BibleTranslation, len(models))
	for i, m := range models {
		translations[i] = r.mapper.ToEntity(m)
	}
	return translations, nil
}

func (r *TranslationRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BibleTranslation{}).Error
}
