package schema

import "fmt"

// ValidateMetadata validates questionnaire metadata.
func ValidateMetadata(m *ProjectMetadata) error {
	if len(m.Name) < NameMin || len(m.Name) > NameMax {
		return fmt.Errorf("name must be %d-%d characters", NameMin, NameMax)
	}
	if len(m.Description) > DescriptionMax {
		return fmt.Errorf("description must be at most %d characters", DescriptionMax)
	}
	return nil
}

// ValidateQuestion validates a question definition.
func ValidateQuestion(q *Question) error {
	if q.ID == "" {
		return fmt.Errorf("question ID is required")
	}

	switch q.Type {
	case QuestionText, QuestionNumber, QuestionDate, QuestionSelect,
		QuestionMultiSelect, QuestionFile, QuestionRanking:
		// Valid
	default:
		return fmt.Errorf("invalid question type: %s", q.Type)
	}

	if len(q.Label) < QuestionLabelMin || len(q.Label) > QuestionLabelMax {
		return fmt.Errorf("label must be %d-%d characters", QuestionLabelMin, QuestionLabelMax)
	}

	if (q.Type == QuestionSelect || q.Type == QuestionMultiSelect) && len(q.Options) == 0 {
		return fmt.Errorf("question %s: option-based type requires options", q.ID)
	}

	return nil
}

// ValidateRule validates a rule definition.
func ValidateRule(r *Rule) error {
	if r.ID == "" {
		return fmt.Errorf("rule ID is required")
	}
	if len(r.Name) < NameMin || len(r.Name) > NameMax {
		return fmt.Errorf("name must be %d-%d characters", NameMin, NameMax)
	}

	// Severity is optional but must be on the known scale when present.
	switch r.Severity {
	case "", ComplexityLow, ComplexityMedium, ComplexityHigh:
		// Valid
	default:
		return fmt.Errorf("invalid severity: %s", r.Severity)
	}

	if r.Score < 0 {
		return fmt.Errorf("score must not be negative")
	}

	return nil
}

// ValidateCommittee validates a committee definition.
func ValidateCommittee(c *Committee) error {
	if c.ID == "" {
		return fmt.Errorf("committee ID is required")
	}
	if len(c.Name) < NameMin || len(c.Name) > NameMax {
		return fmt.Errorf("name must be %d-%d characters", NameMin, NameMax)
	}
	if len(c.Emails) > CommitteeEmailsMax {
		return fmt.Errorf("at most %d notification emails", CommitteeEmailsMax)
	}

	if c.RiskTriggers.MinRiskCount != nil && *c.RiskTriggers.MinRiskCount < 1 {
		return fmt.Errorf("minRiskCount must be at least 1")
	}
	if c.RiskTriggers.MinComplexity != nil && c.RiskTriggers.MinComplexity.Rank() == 0 {
		return fmt.Errorf("invalid minComplexity: %s", *c.RiskTriggers.MinComplexity)
	}
	if c.TeamTriggers.MinTeamCount != nil && *c.TeamTriggers.MinTeamCount < 1 {
		return fmt.Errorf("minTeamCount must be at least 1")
	}

	return nil
}

// ValidateCriterion validates a ranking criterion.
func ValidateCriterion(c *Criterion) error {
	if c.ID == "" {
		return fmt.Errorf("criterion ID is required")
	}
	if len(c.Label) < CriterionLabelMin || len(c.Label) > CriterionLabelMax {
		return fmt.Errorf("label must be %d-%d characters", CriterionLabelMin, CriterionLabelMax)
	}
	return nil
}

// ValidateRankingConfig validates the ranking table as a whole: criteria must
// be well formed and every entry score must reference a declared criterion.
func ValidateRankingConfig(cfg *RankingConfig) error {
	known := make(map[string]bool, len(cfg.Criteria))
	for i := range cfg.Criteria {
		if err := ValidateCriterion(&cfg.Criteria[i]); err != nil {
			return fmt.Errorf("criterion %d: %w", i, err)
		}
		known[cfg.Criteria[i].ID] = true
	}

	for i := range cfg.Entries {
		e := &cfg.Entries[i]
		if e.ID == "" || e.Name == "" {
			return fmt.Errorf("entry %d: ID and name are required", i)
		}
		for criterionID := range e.Scores {
			if !known[criterionID] {
				return fmt.Errorf("entry %s: unknown criterion %s", e.ID, criterionID)
			}
		}
	}

	return nil
}
