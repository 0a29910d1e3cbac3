package contract

import (
	"context"

	"github.com/heversonalves/canon/internal/entity"
)

type TranslationRepository interface {
	Upsert(ctx context.Context, translation *entity.BibleTranslation) error
	FindById(ctx context.Context, id string) (*entity.BibleTranslation, error)
	FindAll(ctx context.Context) ([]*entity.BibleTranslation, error)
	Delete(ctx context.Context, id string) error
}
