package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/entity"
	"github.com/heversonalves/canon/internal/mapper"
	"github.com/heversonalves/canon/internal/study"

	"resty.dev/v3"
)

// APIError carries the HTTP status and raw body of a non-2xx response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Body)
}

// Client talks to the canon API server. It implements study.SessionStore,
// study.ChapterSource, and study.NoteStore; each call is one round trip with
// no caching and no retries.
type Client struct {
	httpClient    *resty.Client
	sessionMapper *mapper.StudySessionMapper
	noteMapper    *mapper.NoteMapper
}

func NewClient(baseURL string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:    client,
		sessionMapper: mapper.NewStudySessionMapper(),
		noteMapper:    mapper.NewNoteMapper(),
	}
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

var (
	_ study.SessionStore  = (*Client)(nil)
	_ study.ChapterSource = (*Client)(nil)
	_ study.NoteStore     = (*Client)(nil)
)

// GetChapter fetches and normalizes the verse sequence for a reference. A
// chapter the server does not know comes back with an empty verses field and
// normalizes to an empty slice.
func (c *Client) GetChapter(ctx context.Context, translation entity.Translation, book string, chapter int) ([]entity.Verse, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&dto.ChapterResponse{}).
		Get(fmt.Sprintf("/api/bible/%s/%s/%d", translation, url.PathEscape(book), chapter))
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, &APIError{Status: response.StatusCode(), Body: response.String()}
	}

	body := response.Result().(*dto.ChapterResponse)
	verses := make([]entity.Verse, 0, len(body.Verses))
	for _, v := range body.Verses {
		verses = append(verses, entity.Verse{Number: v.Number, Text: v.Text})
	}
	return verses, nil
}

// GetLast returns the most recently accessed session, or nil when the server
// holds none.
func (c *Client) GetLast(ctx context.Context) (*entity.StudySession, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&dto.StudySessionPayload{}).
		Get("/api/study-sessions/last")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if response.IsError() {
		return nil, &APIError{Status: response.StatusCode(), Body: response.String()}
	}

	return c.sessionMapper.FromPayload(response.Result().(*dto.StudySessionPayload)), nil
}

func (c *Client) GetByID(ctx context.Context, id string) (*entity.StudySession, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&dto.StudySessionPayload{}).
		Get("/api/study-sessions/" + url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, &APIError{Status: response.StatusCode(), Body: response.String()}
	}

	return c.sessionMapper.FromPayload(response.Result().(*dto.StudySessionPayload)), nil
}

// Upsert creates or replaces the session and returns the server's canonical
// copy.
func (c *Client) Upsert(ctx context.Context, session *entity.StudySession) (*entity.StudySession, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(c.sessionMapper.ToPayload(session)).
		SetResult(&dto.StudySessionPayload{}).
		Put("/api/study-sessions/" + url.PathEscape(session.Id))
	if err != nil {
		return nil, fmt.Errorf("httpClient.Put > %w", err)
	}
	if response.IsError() {
		return nil, &APIError{Status: response.StatusCode(), Body: response.String()}
	}

	return c.sessionMapper.FromPayload(response.Result().(*dto.StudySessionPayload)), nil
}

func (c *Client) List(ctx context.Context, source string) ([]entity.Note, error) {
	req := c.httpClient.R().
		SetContext(ctx).
		SetResult(&[]dto.NotePayload{})
	if source != "" {
		req.SetQueryParam("source", source)
	}

	response, err := req.Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, &APIError{Status: response.StatusCode(), Body: response.String()}
	}

	payloads := *response.Result().(*[]dto.NotePayload)
	notes := make([]entity.Note, 0, len(payloads))
	for i := range payloads {
		notes = append(notes, *c.noteMapper.FromPayload(&payloads[i]))
	}
	return notes, nil
}

func (c *Client) Save(ctx context.Context, note entity.Note) (*entity.Note, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(c.noteMapper.ToPayload(&note)).
		SetResult(&dto.NotePayload{}).
		Post("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return nil, &APIError{Status: response.StatusCode(), Body: response.String()}
	}

	return c.noteMapper.FromPayload(response.Result().(*dto.NotePayload)), nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	response, err := c.httpClient.R().
		SetContext(ctx).
		Delete("/api/notes/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("httpClient.Delete > %w", err)
	}
	if response.IsError() {
		return &APIError{Status: response.StatusCode(), Body: response.String()}
	}
	return nil
}
