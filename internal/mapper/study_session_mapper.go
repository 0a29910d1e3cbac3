package mapper

import (
	"encoding/json"

	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/entity"
	"github.com/heversonalves/canon/internal/model"
)

type StudySessionMapper struct {
	noteMapper *NoteMapper
}

func NewStudySessionMapper() *StudySessionMapper {
	return &StudySessionMapper{
		noteMapper: NewNoteMapper(),
	}
}

func (m *StudySessionMapper) FromPayload(p *dto.StudySessionPayload) *entity.StudySession {
	if p == nil {
		return nil
	}

	verses := make([]entity.Verse, len(p.Verses))
	for i, v := range p.Verses {
		verses[i] = entity.Verse{Number: v.Number, Text: v.Text}
	}

	notes := make([]entity.Note, len(p.Notes))
	for i, n := range p.Notes {
		notes[i] = *m.noteMapper.FromPayload(&n)
	}

	highlights := make([]entity.Highlight, len(p.Highlights))
	for i, h := range p.Highlights {
		highlights[i] = entity.Highlight{Id: h.Id, Verse: h.Verse, Text: h.Text, Color: h.Color}
	}

	return &entity.StudySession{
		Id:                  p.Id,
		Translation:         entity.Translation(p.Translation),
		Book:                p.Book,
		Chapter:             p.Chapter,
		VerseRange:          p.VerseRange,
		Stage:               entity.StudyStage(p.Stage),
		Verses:              verses,
		Notes:               notes,
		Highlights:          highlights,
		UnresolvedQuestions: append([]string{}, p.UnresolvedQuestions...),
		LastAccessed:        p.LastAccessed,
	}
}

func (m *StudySessionMapper) ToPayload(s *entity.StudySession) *dto.StudySessionPayload {
	if s == nil {
		return nil
	}

	verses := make([]dto.VersePayload, len(s.Verses))
	for i, v := range s.Verses {
		verses[i] = dto.VersePayload{Number: v.Number, Text: v.Text}
	}

	notes := make([]dto.NotePayload, len(s.Notes))
	for i, n := range s.Notes {
		notes[i] = *m.noteMapper.ToPayload(&n)
	}

	highlights := make([]dto.HighlightPayload, len(s.Highlights))
	for i, h := range s.Highlights {
		highlights[i] = dto.HighlightPayload{Id: h.Id, Verse: h.Verse, Text: h.Text, Color: h.Color}
	}

	questions := s.UnresolvedQuestions
	if questions == nil {
		questions = []string{}
	}

	return &dto.StudySessionPayload{
		Id:                  s.Id,
		Translation:         string(s.Translation),
		Book:                s.Book,
		Chapter:             s.Chapter,
		VerseRange:          s.VerseRange,
		Stage:               string(s.Stage),
		Verses:              verses,
		Notes:               notes,
		Highlights:          highlights,
		UnresolvedQuestions: append([]string{}, questions...),
		LastAccessed:        s.LastAccessed,
	}
}

// ToModel serializes the annotation slices into the JSON columns the store
// keeps, using the wire shapes so a row round-trips byte-compatible with the
// HTTP payload.
func (m *StudySessionMapper) ToModel(s *entity.StudySession) (*model.StudySession, error) {
	p := m.ToPayload(s)

	versesJson, err := json.Marshal(p.Verses)
	if err != nil {
		return nil, err
	}
	notesJson, err := json.Marshal(p.Notes)
	if err != nil {
		return nil, err
	}
	highlightsJson, err := json.Marshal(p.Highlights)
	if err != nil {
		return nil, err
	}
	questionsJson, err := json.Marshal(p.UnresolvedQuestions)
	if err != nil {
		return nil, err
	}

	return &model.StudySession{
		Id:                      p.Id,
		Translation:             p.Translation,
		Book:                    p.Book,
		Chapter:                 p.Chapter,
		VerseRange:              p.VerseRange,
		Stage:                   p.Stage,
		VersesJson:              versesJson,
		NotesJson:               notesJson,
		HighlightsJson:          highlightsJson,
		UnresolvedQuestionsJson: questionsJson,
		LastAccessed:            p.LastAccessed,
	}, nil
}

func (m *StudySessionMapper) ToEntity(mod *model.StudySession) (*entity.StudySession, error) {
	if mod == nil {
		return nil, nil
	}

	p := dto.StudySessionPayload{
		Id:          mod.Id,
		Translation: mod.Translation,
		Book:        mod.Book,
		Chapter:     mod.Chapter,
		VerseRange:  mod.VerseRange,
		Stage:       mod.Stage,
	}
	if err := json.Unmarshal(mod.VersesJson, &p.Verses); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(mod.NotesJson, &p.Notes); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(mod.HighlightsJson, &p.Highlights); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(mod.UnresolvedQuestionsJson, &p.UnresolvedQuestions); err != nil {
		return nil, err
	}
	p.LastAccessed = mod.LastAccessed

	return m.FromPayload(&p), nil
}
