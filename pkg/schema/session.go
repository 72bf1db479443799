package schema

import "time"

// SessionEvent is the interface for all answer-session journal events.
type SessionEvent interface {
	EventType() string
	EventID() string
	Timestamp() time.Time
}

// AnswerRecorded represents an answer being set or replaced.
type AnswerRecorded struct {
	EventID_   string    `json:"event_id" yaml:"event_id"`
	QuestionID string    `json:"question_id" yaml:"question_id"`
	Value      any       `json:"value" yaml:"value"`
	Timestamp_ time.Time `json:"timestamp" yaml:"timestamp"`
}

func (e *AnswerRecorded) EventType() string    { return "AnswerRecorded" }
func (e *AnswerRecorded) EventID() string      { return e.EventID_ }
func (e *AnswerRecorded) Timestamp() time.Time { return e.Timestamp_ }

// AnswerCleared represents an answer being removed.
type AnswerCleared struct {
	EventID_   string    `json:"event_id" yaml:"event_id"`
	QuestionID string    `json:"question_id" yaml:"question_id"`
	Timestamp_ time.Time `json:"timestamp" yaml:"timestamp"`
}

func (e *AnswerCleared) EventType() string    { return "AnswerCleared" }
func (e *AnswerCleared) EventID() string      { return e.EventID_ }
func (e *AnswerCleared) Timestamp() time.Time { return e.Timestamp_ }

// SessionCompleted marks the questionnaire as submitted.
type SessionCompleted struct {
	EventID_   string    `json:"event_id" yaml:"event_id"`
	Timestamp_ time.Time `json:"timestamp" yaml:"timestamp"`
}

func (e *SessionCompleted) EventType() string    { return "SessionCompleted" }
func (e *SessionCompleted) EventID() string      { return e.EventID_ }
func (e *SessionCompleted) Timestamp() time.Time { return e.Timestamp_ }

// Session is the materialized state of one answer session, rebuilt by
// replaying the journal.
type Session struct {
	Answers   AnswerMap `json:"answers" yaml:"answers"`
	Completed bool      `json:"completed" yaml:"completed"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{Answers: AnswerMap{}}
}
