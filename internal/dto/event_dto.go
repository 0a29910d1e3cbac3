package dto

// SessionUpdatedMessage is the payload published on the in-process bus after
// every session upsert and fanned out to websocket study views.
type SessionUpdatedMessage struct {
	Type    string              `json:"type"`
	Session StudySessionPayload `json:"session"`
}

const SessionUpdatedEventType = "SESSION_UPDATED"
