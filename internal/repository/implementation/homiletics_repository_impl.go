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

type HomileticsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HomileticsMapper
}

func NewHomileticsRepository(db *gorm.DB) contract.HomileticsRepository {
	return &HomileticsRepositoryImpl{
		db:     db,
		mapper: mapper.NewHomileticsMapper(),
	}
}

func (r *HomileticsRepositoryImpl) Upsert(ctx context.Context, outline *entity.HomileticsOutline) error {
	m, err := r.mapper.ToModel(outline)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(m).Error
}

func (r *HomileticsRepositoryImpl) FindById(ctx context.Context, id string) (*entity.HomileticsOutline, error) {
	var m model.HomileticsOutline
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}
