package contract

import (
	"context"

	"github.com/heversonalves/canon/internal/entity"
	"github.com/heversonalves/canon/internal/repository/specification"
)

type CurationRepository interface {
	UpsertSource(ctx context.Context, source *entity.CurationSource) error
	FindSources(ctx context.Context, specs ...specification.Specification) ([]*entity.CurationSource, error)
	UpsertItem(ctx context.Context, item *entity.CurationItem) error
	FindItems(ctx context.Context, specs ...specification.Specification) ([]*entity.CurationItem, error)
}
