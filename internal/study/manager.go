package study

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/heversonalves/canon/internal/entity"
	"github.com/heversonalves/canon/internal/pkg/logger"
)

const (
	DefaultTranslation = entity.TranslationACF
	DefaultBook        = "Romans"
	DefaultChapter     = 3
)

// Manager owns the single current StudySession. All reads and writes go
// through it; it keeps verses consistent with the reference, persists every
// mutation, and only ever replaces the in-memory session with the store's
// canonical response.
//
// Mutators may overlap (a consumer can fire SetReference twice in quick
// succession); each mutation is tagged with a monotonic sequence number and a
// mutation that resolves after a newer one has started is discarded with
// ErrStaleReference instead of clobbering fresher state.
type Manager struct {
	store    SessionStore
	chapters ChapterSource
	logger   logger.ILogger

	mu          sync.Mutex
	session     *entity.StudySession
	seq         uint64
	subscribers map[int]func(*entity.StudySession)
	nextSubID   int

	now   func() time.Time
	newID func() string
}

func NewManager(store SessionStore, chapters ChapterSource, log logger.ILogger) *Manager {
	return &Manager{
		store:       store,
		chapters:    chapters,
		logger:      log,
		subscribers: map[int]func(*entity.StudySession){},
		now:         time.Now,
		newID: func() string {
			return fmt.Sprintf("session-%d", time.Now().UnixMilli())
		},
	}
}

// Session returns a snapshot of the current session, or nil when none is
// loaded. The snapshot is a deep copy; mutating it does not affect the
// manager.
func (m *Manager) Session() *entity.StudySession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.Clone()
}

// Subscribe registers fn to be called with a snapshot after every committed
// mutation. The returned function removes the subscription.
func (m *Manager) Subscribe(fn func(*entity.StudySession)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subscribers, id)
	}
}

// CanAccessStage reports whether consumers should expose content for target
// given the session's current progress. False when no session is loaded.
func (m *Manager) CanAccessStage(target entity.StudyStage) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return false
	}
	return entity.CanAccessStage(m.session.Stage, target)
}

// SetReference merges a new (translation, book, chapter) into the session,
// refetches the verse sequence, and persists. On any failure the in-memory
// session is left untouched.
func (m *Manager) SetReference(ctx context.Context, translation entity.Translation, book string, chapter int) error {
	if !translation.Valid() || book == "" || chapter < 1 {
		return ErrInvalidReference
	}

	draft, seq := m.begin()
	if draft == nil {
		draft = m.defaultSession()
	}
	draft.Translation = translation
	draft.Book = book
	draft.Chapter = chapter
	draft.VerseRange = nil

	verses, err := m.chapters.GetChapter(ctx, translation, book, chapter)
	if err != nil {
		return fmt.Errorf("fetch %s %s %d: %w", translation, book, chapter, err)
	}
	if m.stale(seq) {
		return ErrStaleReference
	}
	draft.Verses = verses

	return m.persist(ctx, draft, seq)
}

// SetStage replaces the stage field only. The mutation is unconditional; the
// forward-progress policy lives in CanAccessStage, not here.
func (m *Manager) SetStage(ctx context.Context, stage entity.StudyStage) error {
	if !stage.Valid() {
		return ErrInvalidStage
	}

	draft, seq, ok := m.beginLoaded()
	if !ok {
		return ErrNoSession
	}
	draft.Stage = stage

	return m.persist(ctx, draft, seq)
}

// AddHighlight prepends a fully formed highlight and persists. No
// de-duplication and no check that the verse exists in the current chapter;
// both are the caller's responsibility.
func (m *Manager) AddHighlight(ctx context.Context, highlight entity.Highlight) error {
	draft, seq, ok := m.beginLoaded()
	if !ok {
		return ErrNoSession
	}
	draft.Highlights = append([]entity.Highlight{highlight}, draft.Highlights...)

	return m.persist(ctx, draft, seq)
}

// AddNote prepends a note and persists. Empty content is rejected before any
// network call.
func (m *Manager) AddNote(ctx context.Context, note entity.Note) error {
	if note.Content == "" {
		return ErrEmptyNoteContent
	}

	draft, seq, ok := m.beginLoaded()
	if !ok {
		return ErrNoSession
	}
	draft.Notes = append([]entity.Note{note}, draft.Notes...)

	return m.persist(ctx, draft, seq)
}

// LoadLastSession fetches the most recently accessed session and rehydrates
// its verses. When the store holds nothing, is unreachable, or the stored
// session's reference can no longer be fetched, it falls back to a freshly
// constructed default session and persists that instead; the fallback is the
// only place a failure is absorbed rather than propagated, so the manager
// always ends up holding a verse-populated session.
func (m *Manager) LoadLastSession(ctx context.Context) error {
	_, seq := m.begin()

	last, err := m.store.GetLast(ctx)
	if err != nil {
		m.logger.Warn("StudyManager", "Failed to load last session, bootstrapping a default", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if err == nil && last != nil {
		verses, verr := m.chapters.GetChapter(ctx, last.Translation, last.Book, last.Chapter)
		if verr == nil {
			last.Verses = verses
			return m.commit(last, seq)
		}
		m.logger.Warn("StudyManager", "Failed to rehydrate last session, bootstrapping a default", map[string]interface{}{
			"session_id": last.Id,
			"error":      verr.Error(),
		})
	}

	draft := m.defaultSession()
	verses, verr := m.chapters.GetChapter(ctx, draft.Translation, draft.Book, draft.Chapter)
	if verr != nil {
		return fmt.Errorf("rehydrate %s %s %d: %w", draft.Translation, draft.Book, draft.Chapter, verr)
	}
	draft.Verses = verses
	draft.LastAccessed = m.now().UTC().Format(time.RFC3339)

	saved, uerr := m.store.Upsert(ctx, draft)
	if uerr != nil {
		// Keep the local default so the app still has a session to show.
		m.logger.Warn("StudyManager", "Failed to persist bootstrap session", map[string]interface{}{
			"session_id": draft.Id,
			"error":      uerr.Error(),
		})
		saved = draft
	}
	return m.commit(saved, seq)
}

// begin snapshots the current session as a draft and claims a new sequence
// number. Later mutations invalidate earlier ones.
func (m *Manager) begin() (*entity.StudySession, uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	return m.session.Clone(), m.seq
}

// beginLoaded is begin for mutators that require a session; it does not claim
// a sequence number when none is loaded, so a failed call cannot invalidate an
// in-flight mutation.
func (m *Manager) beginLoaded() (*entity.StudySession, uint64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil, 0, false
	}
	m.seq++
	return m.session.Clone(), m.seq, true
}

func (m *Manager) stale(seq uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seq != seq
}

// persist stamps lastAccessed, upserts, and commits the store's canonical
// response as the new current session.
func (m *Manager) persist(ctx context.Context, draft *entity.StudySession, seq uint64) error {
	draft.LastAccessed = m.now().UTC().Format(time.RFC3339)

	saved, err := m.store.Upsert(ctx, draft)
	if err != nil {
		return fmt.Errorf("persist session %s: %w", draft.Id, err)
	}
	return m.commit(saved, seq)
}

func (m *Manager) commit(session *entity.StudySession, seq uint64) error {
	m.mu.Lock()
	if m.seq != seq {
		m.mu.Unlock()
		return ErrStaleReference
	}
	m.session = session
	subs := make([]func(*entity.StudySession), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(session.Clone())
	}
	return nil
}

func (m *Manager) defaultSession() *entity.StudySession {
	return &entity.StudySession{
		Id:                  m.newID(),
		Translation:         DefaultTranslation,
		Book:                DefaultBook,
		Chapter:             DefaultChapter,
		Stage:               entity.StageObservation,
		Verses:              []entity.Verse{},
		Notes:               []entity.Note{},
		Highlights:          []entity.Highlight{},
		UnresolvedQuestions: []string{},
	}
}
