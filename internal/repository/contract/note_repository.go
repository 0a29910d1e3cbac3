package contract

import (
	"context"

	"github.com/heversonalves/canon/internal/entity"
	"github.com/heversonalves/canon/internal/repository/specification"
)

type NoteRepository interface {
	Upsert(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
}
