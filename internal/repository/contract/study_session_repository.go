package contract

import (
	"context"

	"github.com/heversonalves/canon/internal/entity"
)

type StudySessionRepository interface {
	// Upsert is an idempotent create-or-replace keyed on the session id.
	Upsert(ctx context.Context, session *entity.StudySession) error
	FindById(ctx context.Context, id string) (*entity.StudySession, error)
	// FindLast returns the most recently accessed session, or nil when the
	// store is empty.
	FindLast(ctx context.Context) (*entity.StudySession, error)
}
