package unitofwork

import (
	"context"
	"fmt"

	"github.com/heversonalves/canon/internal/repository/contract"
	"github.com/heversonalves/canon/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) StudySessionRepository() contract.StudySessionRepository {
	return implementation.NewStudySessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) NoteRepository() contract.NoteRepository {
	return implementation.NewNoteRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BibleVerseRepository() contract.BibleVerseRepository {
	return implementation.NewBibleVerseRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TranslationRepository() contract.TranslationRepository {
	return implementation.NewTranslationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) HomileticsRepository() contract.HomileticsRepository {
	return implementation.NewHomileticsRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CurationRepository() contract.CurationRepository {
	return implementation.NewCurationRepository(u.getDB())
}
