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

type StudySessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StudySessionMapper
}

func NewStudySessionRepository(db *gorm.DB) contract.StudySessionRepository {
	return &StudySessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewStudySessionMapper(),
	}
}

func (r *StudySessionRepositoryImpl) Upsert(ctx context.Context, session *entity.StudySession) error {
	m, err := r.mapper.ToModel(session)
	if err != nil {
		return err
	}
	// INSERT ... ON CONFLICT to keep the save idempotent across postgres and
	// sqlite alike.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(m).Error
}

func (r *StudySessionRepositoryImpl) FindById(ctx context.Context, id string) (*entity.StudySession, error) {
	var m model.StudySession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *StudySessionRepositoryImpl) FindLast(ctx context.Context) (*entity.StudySession, error) {
	var m model.StudySession
	err := r.db.WithContext(ctx).
		Order("last_accessed DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}
