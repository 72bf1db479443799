package schema

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewQuestionID generates a new question ID in format Q-{nanoid(10)}.
func NewQuestionID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Q-%s", id), nil
}

// NewRuleID generates a new rule ID in format RULE-{nanoid(10)}.
func NewRuleID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("RULE-%s", id), nil
}

// NewCommitteeID generates a new committee ID in format COM-{nanoid(10)}.
func NewCommitteeID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("COM-%s", id), nil
}

// NewEventID generates a new session event ID in format EVT-{nanoid(10)}.
func NewEventID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("EVT-%s", id), nil
}
