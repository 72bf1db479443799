package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoinelmariel-ux/compliance-navigator-sub000/pkg/schema"
)

func ts(sec int) time.Time {
	return time.Date(2024, 3, 1, 10, 0, sec, 0, time.UTC)
}

func TestReplayEventsOrder(t *testing.T) {
	session := schema.NewSession()

	// Deliberately out of order: replay must sort by timestamp.
	events := []schema.SessionEvent{
		&schema.AnswerRecorded{EventID_: "EVT-2", QuestionID: "country", Value: "Brésil", Timestamp_: ts(2)},
		&schema.AnswerRecorded{EventID_: "EVT-1", QuestionID: "country", Value: "France", Timestamp_: ts(1)},
	}

	replayed, err := ReplayEvents(session, events)
	require.NoError(t, err)

	assert.Equal(t, "Brésil", replayed.Answers["country"], "later event wins")
	assert.Equal(t, ts(2), replayed.UpdatedAt)
}

func TestReplayEventsClearAndComplete(t *testing.T) {
	session := schema.NewSession()
	events := []schema.SessionEvent{
		&schema.AnswerRecorded{EventID_: "EVT-1", QuestionID: "country", Value: "France", Timestamp_: ts(1)},
		&schema.AnswerRecorded{EventID_: "EVT-2", QuestionID: "budget", Value: 1500, Timestamp_: ts(2)},
		&schema.AnswerCleared{EventID_: "EVT-3", QuestionID: "country", Timestamp_: ts(3)},
		&schema.SessionCompleted{EventID_: "EVT-4", Timestamp_: ts(4)},
	}

	replayed, err := ReplayEvents(session, events)
	require.NoError(t, err)

	_, hasCountry := replayed.Answers["country"]
	assert.False(t, hasCountry, "cleared answer must be gone")
	assert.Equal(t, 1500, replayed.Answers["budget"])
	assert.True(t, replayed.Completed)
}

func TestReplayEventsValidation(t *testing.T) {
	_, err := ReplayEvents(nil, nil)
	assert.Error(t, err, "nil session is rejected")

	_, err = ReplayEvents(schema.NewSession(), []schema.SessionEvent{
		&schema.AnswerRecorded{EventID_: "EVT-1", Timestamp_: ts(1)},
	})
	assert.Error(t, err, "answer event without question ID is rejected")
}

func TestReplayEventsFromMaps(t *testing.T) {
	maps := []map[string]interface{}{
		{
			"event_type":  "AnswerRecorded",
			"event_id":    "EVT-1",
			"question_id": "country",
			"value":       "Brésil",
			"timestamp":   ts(1),
		},
		{
			"event_type": "SessionCompleted",
			"event_id":   "EVT-2",
			"timestamp":  ts(2),
		},
	}

	session, err := ReplayEventsFromMaps(schema.NewSession(), maps)
	require.NoError(t, err)
	assert.Equal(t, "Brésil", session.Answers["country"])
	assert.True(t, session.Completed)
}

func TestReplayEventsFromMapsUnknownType(t *testing.T) {
	maps := []map[string]interface{}{
		{"event_type": "Mystery", "event_id": "EVT-1", "timestamp": ts(1)},
	}
	_, err := ReplayEventsFromMaps(schema.NewSession(), maps)
	assert.Error(t, err)
}

func TestEventMapRoundTrip(t *testing.T) {
	event := &schema.AnswerRecorded{
		EventID_:   "EVT-1",
		QuestionID: "teams",
		Value:      []any{"clinique", "juridique"},
		Timestamp_: ts(1),
	}

	back, err := mapToEvent(eventToMap(event))
	require.NoError(t, err)

	recorded, ok := back.(*schema.AnswerRecorded)
	require.True(t, ok)
	assert.Equal(t, event.QuestionID, recorded.QuestionID)
	assert.Equal(t, event.Value, recorded.Value)
	assert.Equal(t, event.Timestamp_, recorded.Timestamp_)
}
