package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents different types of survey events
type EventType string

const (
	EventResponseSubmitted    EventType = "survey.response.submitted"
	EventResponseSavedLocally EventType = "survey.response.saved_locally"
	EventDataCleared          EventType = "survey.data.cleared"
)

const (
	eventSource  = "influencer-survey"
	eventVersion = "1.0"
)

// SurveyEvent is the envelope shared by all survey events
type SurveyEvent struct {
	ID         string                 `json:"id"`
	Type       EventType              `json:"type"`
	Timestamp  time.Time              `json:"timestamp"`
	Source     string                 `json:"source"`
	Version    string                 `json:"version"`
	ResponseID string                 `json:"response_id,omitempty"`
	Data       interface{}            `json:"data"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// Event payloads

type ResponseSubmittedEvent struct {
	ResponseID        string    `json:"response_id"`
	SubmittedAt       time.Time `json:"submitted_at"`
	Stored            string    `json:"stored"` // remote or local
	UsesSocialMedia   bool      `json:"uses_social_media"`
	FollowsInfluencer bool      `json:"follows_influencers"`
}

type ResponseSavedLocallyEvent struct {
	ResponseID string `json:"response_id"`
	Reason     string `json:"reason"`
}

type DataClearedEvent struct {
	ClearedAt time.Time `json:"cleared_at"`
	Scope     string    `json:"scope"`
}

// GenerateEventID returns a random event identifier
func GenerateEventID() string {
	return uuid.NewString()
}

func newEvent(eventType EventType, responseID string, at time.Time, data interface{}) *SurveyEvent {
	return &SurveyEvent{
		ID:         GenerateEventID(),
		Type:       eventType,
		Timestamp:  at,
		Source:     eventSource,
		Version:    eventVersion,
		ResponseID: responseID,
		Data:       data,
	}
}

// Helper functions to create events

func NewResponseSubmittedEvent(responseID string, submittedAt time.Time, stored string, usesSocialMedia, followsInfluencers bool) *SurveyEvent {
	return newEvent(EventResponseSubmitted, responseID, submittedAt, ResponseSubmittedEvent{
		ResponseID:        responseID,
		SubmittedAt:       submittedAt,
		Stored:            stored,
		UsesSocialMedia:   usesSocialMedia,
		FollowsInfluencer: followsInfluencers,
	})
}

func NewResponseSavedLocallyEvent(responseID string, at time.Time, reason string) *SurveyEvent {
	return newEvent(EventResponseSavedLocally, responseID, at, ResponseSavedLocallyEvent{
		ResponseID: responseID,
		Reason:     reason,
	})
}

func NewDataClearedEvent(at time.Time) *SurveyEvent {
	return newEvent(EventDataCleared, "", at, DataClearedEvent{
		ClearedAt: at,
		Scope:     "local",
	})
}
