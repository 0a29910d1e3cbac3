package service

import (
	"context"
	"sort"

	"github.com/heversonalves/canon/internal/entity"
	"github.com/heversonalves/canon/internal/repository/contract"
	"github.com/heversonalves/canon/internal/repository/specification"
	"github.com/heversonalves/canon/internal/repository/unitofwork"
)

// In-memory repository fakes backing the service tests. A single fakeUnitOfWork
// is shared by every unit of work the factory hands out, so state written in
// one service call is visible to the next.

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{uow: newFakeUnitOfWork()}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeUnitOfWork struct {
	sessions     *fakeSessionRepo
	notes        *fakeNoteRepo
	verses       *fakeVerseRepo
	translations *fakeTranslationRepo
	homiletics   *fakeHomileticsRepo
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		sessions:     &fakeSessionRepo{store: map[string]*entity.StudySession{}},
		notes:        &fakeNoteRepo{store: map[string]*entity.Note{}},
		verses:       &fakeVerseRepo{},
		translations: &fakeTranslationRepo{store: map[string]*entity.BibleTranslation{}},
		homiletics:   &fakeHomileticsRepo{store: map[string]*entity.HomileticsOutline{}},
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) StudySessionRepository() contract.StudySessionRepository {
	return u.sessions
}
func (u *fakeUnitOfWork) NoteRepository() contract.NoteRepository             { return u.notes }
func (u *fakeUnitOfWork) BibleVerseRepository() contract.BibleVerseRepository { return u.verses }
func (u *fakeUnitOfWork) TranslationRepository() contract.TranslationRepository {
	return u.translations
}
func (u *fakeUnitOfWork) HomileticsRepository() contract.HomileticsRepository { return u.homiletics }
func (u *fakeUnitOfWork) CurationRepository() contract.CurationRepository     { return nil }

type fakeSessionRepo struct {
	store map[string]*entity.StudySession
}

func (r *fakeSessionRepo) Upsert(ctx context.Context, session *entity.StudySession) error {
	r.store[session.Id] = session.Clone()
	return nil
}

func (r *fakeSessionRepo) FindById(ctx context.Context, id string) (*entity.StudySession, error) {
	return r.store[id].Clone(), nil
}

func (r *fakeSessionRepo) FindLast(ctx context.Context) (*entity.StudySession, error) {
	var last *entity.StudySession
	for _, s := range r.store {
		if last == nil || s.LastAccessed > last.LastAccessed {
			last = s
		}
	}
	return last.Clone(), nil
}

type fakeNoteRepo struct {
	store map[string]*entity.Note
}

func (r *fakeNoteRepo) Upsert(ctx context.Context, note *entity.Note) error {
	clone := *note
	r.store[note.Id] = &clone
	return nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, id string) error {
	delete(r.store, id)
	return nil
}

func (r *fakeNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var source string
	for _, spec := range specs {
		if bySource, ok := spec.(specification.NoteBySource); ok {
			source = bySource.Source
		}
	}

	var out []*entity.Note
	for _, n := range r.store {
		if source != "" && n.Source != source {
			continue
		}
		clone := *n
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		var a, b string
		if out[i].CreatedAt != nil {
			a = *out[i].CreatedAt
		}
		if out[j].CreatedAt != nil {
			b = *out[j].CreatedAt
		}
		return a > b
	})
	return out, nil
}

type fakeVerseRepo struct {
	rows []*entity.BibleVerse
}

func (r *fakeVerseRepo) FindChapter(ctx context.Context, translation, book string, chapter int) ([]*entity.BibleVerse, error) {
	var out []*entity.BibleVerse
	for _, row := range r.rows {
		if row.Translation == translation && row.Book == book && row.Chapter == chapter {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Verse < out[j].Verse })
	return out, nil
}

func (r *fakeVerseRepo) CreateBatch(ctx context.Context, verses []*entity.BibleVerse) error {
	r.rows = append(r.rows, verses...)
	return nil
}

func (r *fakeVerseRepo) Count(ctx context.Context, translation string) (int64, error) {
	var n int64
	for _, row := range r.rows {
		if row.Translation == translation {
			n++
		}
	}
	return n, nil
}

type fakeTranslationRepo struct {
	store map[string]*entity.BibleTranslation
}

func (r *fakeTranslationRepo) Upsert(ctx context.Context, translation *entity.BibleTranslation) error {
	r.store[translation.Id] = translation
	return nil
}

func (r *fakeTranslationRepo) FindById(ctx context.Context, id string) (*entity.BibleTranslation, error) {
	return r.store[id], nil
}

func (r *fakeTranslationRepo) FindAll(ctx context.Context) ([]*entity.BibleTranslation, error) {
	var out []*entity.BibleTranslation
	for _, t := range r.store {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTranslationRepo) Delete(ctx context.Context, id string) error {
	delete(r.store, id)
	return nil
}

type fakeHomileticsRepo struct {
	store map[string]*entity.HomileticsOutline
}

func (r *fakeHomileticsRepo) Upsert(ctx context.Context, outline *entity.HomileticsOutline) error {
	r.store[outline.Id] = outline
	return nil
}

func (r *fakeHomileticsRepo) FindById(ctx context.Context, id string) (*entity.HomileticsOutline, error) {
	return r.store[id], nil
}

type fakePublisher struct {
	published [][]byte
	err       error
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
