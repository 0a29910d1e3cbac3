package implementation

import (
	"context"

	"github.com/heversonalves/canon/internal/entity"
	"github.com/heversonalves/canon/internal/mapper"
	"github.com/heversonalves/canon/internal/model"
	"github.com/heversonalves/canon/internal/repository/contract"
	"github.com/heversonalves/canon/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CurationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CurationMapper
}

func NewCurationRepository(db *gorm.DB) contract.CurationRepository {
	return &CurationRepositoryImpl{
		db:     db,
		mapper: mapper.NewCurationMapper(),
	}
}

func (r *CurationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CurationRepositoryImpl) UpsertSource(ctx context.Context, source *entity.CurationSource) error {
	m := r.mapper.SourceToModel(source)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(m).Error
}

func (r *CurationRepositoryImpl) FindSources(ctx context.Context, specs ...specification.Specification) ([]*entity.CurationSource, error) {
	var models []*model.CurationSource
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	sources := make([]*entity.CurationSource, len(models))
	for i, m := range models {
		sources[i] = r.mapper.SourceToEntity(m)
	}
	return sources, nil
}

func (r *CurationRepositoryImpl) UpsertItem(ctx context.Context, item *entity.CurationItem) error {
	m, err := r.mapper.ItemToModel(item)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(m).Error
}

func (r *CurationRepositoryImpl) FindItems(ctx context.Context, specs ...specification.Specification) ([]*entity.CurationItem, error) {
	var models []*model.CurationItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	items := make([]*entity.CurationItem, len(models))
	for i, m := range models {
		item, err := r.mapper.ItemToEntity(m)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}
