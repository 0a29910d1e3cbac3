package unitofwork

import (
	"context"

	"github.com/heversonalves/canon/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	StudySessionRepository() contract.StudySessionRepository
	NoteRepository() contract.NoteRepository
	BibleVerseRepository() contract.BibleVerseRepository
	TranslationRepository() contract.TranslationRepository
	HomileticsRepository() contract.HomileticsRepository
	CurationRepository() contract.CurationRepository
}
