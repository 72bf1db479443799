package schema

import "time"

// ProjectMetadata describes the questionnaire document itself.
type ProjectMetadata struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string    `json:"version" yaml:"version"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

// Question is one questionnaire item. Its ConditionSet decides whether it is
// currently shown; the engine never needs the label to evaluate anything.
type Question struct {
	ID           string       `json:"id" yaml:"id"`
	Type         QuestionType `json:"type" yaml:"type"`
	Label        string       `json:"label" yaml:"label"`
	Options      []string     `json:"options,omitempty" yaml:"options,omitempty"`
	Required     bool         `json:"required,omitempty" yaml:"required,omitempty"`
	ConditionSet `yaml:",inline"`
}

// Rule is a business/committee rule. A rule "fires" when its condition groups
// are satisfied against the answer map; a fired rule contributes a risk with
// the configured severity and score.
type Rule struct {
	ID           string          `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name"`
	Description  string          `json:"description,omitempty" yaml:"description,omitempty"`
	Severity     ComplexityLevel `json:"severity,omitempty" yaml:"severity,omitempty"`
	Score        float64         `json:"score,omitempty" yaml:"score,omitempty"`
	ConditionSet `yaml:",inline"`
}

// Risk is the analysis-side trace of a fired rule.
type Risk struct {
	RuleID   string          `json:"ruleId" yaml:"ruleId"`
	Label    string          `json:"label" yaml:"label"`
	Severity ComplexityLevel `json:"severity" yaml:"severity"`
	Score    float64         `json:"score" yaml:"score"`
}

// AnalysisResult summarizes one evaluation pass over the rules. It is the
// upstream input the committee trigger engine consumes.
type AnalysisResult struct {
	FiredRuleIDs []string        `json:"firedRuleIds" yaml:"firedRuleIds"`
	Risks        []Risk          `json:"risks" yaml:"risks"`
	TotalScore   float64         `json:"totalScore" yaml:"totalScore"`
	Complexity   ComplexityLevel `json:"complexity,omitempty" yaml:"complexity,omitempty"`
}

// Questionnaire is the root configuration document handed to the engine.
type Questionnaire struct {
	Metadata       ProjectMetadata   `json:"metadata" yaml:"metadata"`
	Questions      []Question        `json:"questions" yaml:"questions"`
	Rules          []Rule            `json:"rules,omitempty" yaml:"rules,omitempty"`
	TimingRules    []TimingCondition `json:"timingRules,omitempty" yaml:"timingRules,omitempty"`
	Committees     []Committee       `json:"committees,omitempty" yaml:"committees,omitempty"`
	Ranking        *RankingConfig    `json:"ranking,omitempty" yaml:"ranking,omitempty"`
	TeamQuestionID string            `json:"teamQuestionId,omitempty" yaml:"teamQuestionId,omitempty"`
}

// QuestionByID returns the question with the given ID, or nil.
func (q *Questionnaire) QuestionByID(id string) *Question {
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return &q.Questions[i]
		}
	}
	return nil
}
