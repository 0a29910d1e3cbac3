package contract

import (
	"context"

	"github.com/heversonalves/canon/internal/entity"
)

type HomileticsRepository interface {
	Upsert(ctx context.Context, outline *entity.HomileticsOutline) error
	FindById(ctx context.Context, id string) (*entity.HomileticsOutline, error)
}
