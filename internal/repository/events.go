package repository

import (
	"fmt"
	"sort"
	"time"

	"github.com/antoinelmariel-ux/compliance-navigator-sub000/pkg/schema"
)

// ReplayEvents folds journal events into a session in chronological order.
// Returns an error on unknown event types.
func ReplayEvents(session *schema.Session, events []schema.SessionEvent) (*schema.Session, error) {
	if session == nil {
		return nil, fmt.Errorf("session cannot be nil")
	}
	if session.Answers == nil {
		session.Answers = schema.AnswerMap{}
	}

	// Sort events by timestamp to ensure deterministic replay
	sortedEvents := make([]schema.SessionEvent, len(events))
	copy(sortedEvents, events)
	sort.SliceStable(sortedEvents, func(i, j int) bool {
		return sortedEvents[i].Timestamp().Before(sortedEvents[j].Timestamp())
	})

	for _, event := range sortedEvents {
		if err := applyEvent(session, event); err != nil {
			return nil, fmt.Errorf("apply event %s: %w", event.EventID(), err)
		}
		if event.Timestamp().After(session.UpdatedAt) {
			session.UpdatedAt = event.Timestamp()
		}
	}

	return session, nil
}

func applyEvent(session *schema.Session, event schema.SessionEvent) error {
	switch e := event.(type) {
	case *schema.AnswerRecorded:
		if e.QuestionID == "" {
			return fmt.Errorf("answer recorded without question ID")
		}
		session.Answers[e.QuestionID] = e.Value
		return nil
	case *schema.AnswerCleared:
		if e.QuestionID == "" {
			return fmt.Errorf("answer cleared without question ID")
		}
		delete(session.Answers, e.QuestionID)
		return nil
	case *schema.SessionCompleted:
		session.Completed = true
		return nil
	default:
		return fmt.Errorf("unknown event type: %T", event)
	}
}

// ReplayEventsFromMaps converts YAML-decoded journal entries into typed
// events and replays them.
func ReplayEventsFromMaps(session *schema.Session, events []map[string]interface{}) (*schema.Session, error) {
	typed := make([]schema.SessionEvent, 0, len(events))
	for i, eventMap := range events {
		event, err := mapToEvent(eventMap)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		typed = append(typed, event)
	}
	return ReplayEvents(session, typed)
}

func mapToEvent(eventMap map[string]interface{}) (schema.SessionEvent, error) {
	eventType, _ := eventMap["event_type"].(string)
	eventID, _ := eventMap["event_id"].(string)
	timestamp, _ := eventMap["timestamp"].(time.Time)

	switch eventType {
	case "AnswerRecorded":
		questionID, _ := eventMap["question_id"].(string)
		return &schema.AnswerRecorded{
			EventID_:   eventID,
			QuestionID: questionID,
			Value:      eventMap["value"],
			Timestamp_: timestamp,
		}, nil

	case "AnswerCleared":
		questionID, _ := eventMap["question_id"].(string)
		return &schema.AnswerCleared{
			EventID_:   eventID,
			QuestionID: questionID,
			Timestamp_: timestamp,
		}, nil

	case "SessionCompleted":
		return &schema.SessionCompleted{
			EventID_:   eventID,
			Timestamp_: timestamp,
		}, nil

	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}
}

// eventToMap converts a typed event into the journal's YAML shape.
func eventToMap(event schema.SessionEvent) map[string]interface{} {
	eventMap := map[string]interface{}{
		"event_type": event.EventType(),
		"event_id":   event.EventID(),
		"timestamp":  event.Timestamp(),
	}

	switch e := event.(type) {
	case *schema.AnswerRecorded:
		eventMap["question_id"] = e.QuestionID
		eventMap["value"] = e.Value
	case *schema.AnswerCleared:
		eventMap["question_id"] = e.QuestionID
	}

	return eventMap
}
