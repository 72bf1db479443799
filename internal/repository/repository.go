// Package repository handles file I/O for the .navigator/ data directory:
// the questionnaire configuration document and the answer-session journal.
package repository

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/antoinelmariel-ux/compliance-navigator-sub000/pkg/schema"

	"gopkg.in/yaml.v3"
)

const (
	sessionsDir       = "sessions"
	questionnaireFile = "questionnaire.yaml"
	journalFile       = "sessions/journal.yaml"
	snapshotFile      = "sessions/answers.yaml"
)

// journalDoc is the on-disk shape of the session journal. Events are kept as
// maps so adding event fields never breaks older journals.
type journalDoc struct {
	Events []map[string]interface{} `yaml:"events"`
}

// snapshotDoc is the compacted session state written by CompactSession.
type snapshotDoc struct {
	Session *schema.Session `yaml:"session"`
}

// Repository reads and writes the .navigator/ directory.
type Repository struct {
	baseDir string
}

// NewRepository creates a new repository rooted at baseDir.
func NewRepository(baseDir string) *Repository {
	return &Repository{baseDir: baseDir}
}

// ReadQuestionnaire reads the questionnaire configuration. A missing file
// yields an empty questionnaire rather than an error, so a fresh directory is
// usable immediately.
func (r *Repository) ReadQuestionnaire() (*schema.Questionnaire, error) {
	data, err := os.ReadFile(filepath.Join(r.baseDir, questionnaireFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &schema.Questionnaire{}, nil
		}
		return nil, fmt.Errorf("read questionnaire: %w", err)
	}

	var q schema.Questionnaire
	if err := yaml.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("parse questionnaire: %w", err)
	}
	return &q, nil
}

// WriteQuestionnaire writes the questionnaire using an atomic transaction.
func (r *Repository) WriteQuestionnaire(q *schema.Questionnaire) error {
	data, err := yaml.Marshal(q)
	if err != nil {
		return fmt.Errorf("marshal questionnaire: %w", err)
	}

	tx := NewCopyOnWriteTx(r.baseDir)
	if err := tx.Begin(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := tx.WriteFile(questionnaireFile, data); err != nil {
		rollback(tx)
		return fmt.Errorf("write questionnaire: %w", err)
	}

	if err := tx.Commit(); err != nil {
		rollback(tx)
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// ReadSession rebuilds the answer session: the compacted snapshot first, then
// the journal replayed on top. Neither file existing means a fresh session.
func (r *Repository) ReadSession() (*schema.Session, error) {
	session := schema.NewSession()

	snapData, err := os.ReadFile(filepath.Join(r.baseDir, snapshotFile))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read session snapshot: %w", err)
	}
	if len(snapData) > 0 {
		var snap snapshotDoc
		if err := yaml.Unmarshal(snapData, &snap); err != nil {
			return nil, fmt.Errorf("parse session snapshot: %w", err)
		}
		if snap.Session != nil {
			session = snap.Session
			if session.Answers == nil {
				session.Answers = schema.AnswerMap{}
			}
		}
	}

	journalData, err := os.ReadFile(filepath.Join(r.baseDir, journalFile))
	if err != nil {
		if os.IsNotExist(err) {
			return session, nil
		}
		return nil, fmt.Errorf("read journal: %w", err)
	}

	var journal journalDoc
	if err := yaml.Unmarshal(journalData, &journal); err != nil {
		return nil, fmt.Errorf("parse journal: %w", err)
	}

	replayed, err := ReplayEventsFromMaps(session, journal.Events)
	if err != nil {
		return nil, fmt.Errorf("replay journal: %w", err)
	}
	return replayed, nil
}

// AppendSession appends events to the journal using an atomic transaction.
func (r *Repository) AppendSession(events []schema.SessionEvent) error {
	tx := NewCopyOnWriteTx(r.baseDir)
	if err := tx.Begin(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	var journal journalDoc
	data, err := tx.ReadFile(journalFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		rollback(tx)
		return fmt.Errorf("read journal: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &journal); err != nil {
			rollback(tx)
			return fmt.Errorf("parse journal: %w", err)
		}
	}

	for _, event := range events {
		journal.Events = append(journal.Events, eventToMap(event))
	}

	data, err = yaml.Marshal(journal)
	if err != nil {
		rollback(tx)
		return fmt.Errorf("marshal journal: %w", err)
	}

	if err := tx.WriteFile(journalFile, data); err != nil {
		rollback(tx)
		return fmt.Errorf("write journal: %w", err)
	}

	if err := tx.Commit(); err != nil {
		rollback(tx)
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// CompactSession folds the full journal into the snapshot file and truncates
// the journal. Keystroke-granular journals grow quickly; compaction keeps
// session loads cheap without losing state.
func (r *Repository) CompactSession() error {
	session, err := r.ReadSession()
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	snapData, err := yaml.Marshal(snapshotDoc{Session: session})
	if err != nil {
		return fmt.Errorf("marshal session snapshot: %w", err)
	}
	emptyJournal, err := yaml.Marshal(journalDoc{})
	if err != nil {
		return fmt.Errorf("marshal empty journal: %w", err)
	}

	tx := NewCopyOnWriteTx(r.baseDir)
	if err := tx.Begin(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := tx.WriteFile(snapshotFile, snapData); err != nil {
		rollback(tx)
		return fmt.Errorf("write session snapshot: %w", err)
	}
	if err := tx.WriteFile(journalFile, emptyJournal); err != nil {
		rollback(tx)
		return fmt.Errorf("truncate journal: %w", err)
	}

	if err := tx.Commit(); err != nil {
		rollback(tx)
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// LockPath returns where this repository's lock file lives.
func (r *Repository) LockPath() string {
	return filepath.Join(r.baseDir, ".lock")
}

func rollback(tx *CopyOnWriteTx) {
	if err := tx.Rollback(); err != nil {
		log.Printf("rollback failed: %v", err)
	}
}
