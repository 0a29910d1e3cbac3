package entity

// Translation is a supported Bible translation tag.
type Translation string

const (
	TranslationACF Translation = "ACF"
	TranslationARA Translation = "ARA"
)

func (t Translation) Valid() bool {
	return t == TranslationACF || t == TranslationARA
}

// Verse is immutable once fetched; the whole slice is replaced when the
// session reference changes.
type Verse struct {
	Number int
	Text   string
}

type Highlight struct {
	Id    string
	Verse int
	Text  string
	Color string
}

type Note struct {
	Id        string
	Source    string
	Content   string
	Context   *string
	Pinned    bool
	CreatedAt *string
}

// StudySession is the aggregate root of the study workflow. Verses must always
// correspond to (Translation, Book, Chapter); LastAccessed is stamped by the
// session manager immediately before every persistence call.
type StudySession struct {
	Id                  string
	Translation         Translation
	Book                string
	Chapter             int
	VerseRange          *string
	Stage               StudyStage
	Verses              []Verse
	Notes               []Note
	Highlights          []Highlight
	UnresolvedQuestions []string
	LastAccessed        string
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the manager's owned slices.
func (s *StudySession) Clone() *StudySession {
	if s == nil {
		return nil
	}
	out := *s
	out.Verses = append([]Verse(nil), s.Verses...)
	out.Notes = append([]Note(nil), s.Notes...)
	out.Highlights = append([]Highlight(nil), s.Highlights...)
	out.UnresolvedQuestions = append([]string(nil), s.UnresolvedQuestions...)
	return &out
}
