package schema

// Committee is a governance body that must review the project when any of its
// configured trigger dimensions fires. A dimension with no configured rules
// does not vote; a committee with zero configured triggers anywhere can never
// auto-trigger and has to be surfaced manually by an administrator.
type Committee struct {
	ID               string            `json:"id" yaml:"id"`
	Name             string            `json:"name" yaml:"name"`
	Emails           []string          `json:"emails,omitempty" yaml:"emails,omitempty"`
	QuestionTriggers QuestionTriggerSet `json:"questionTriggers,omitempty" yaml:"questionTriggers,omitempty"`
	AnswerTriggers   AnswerTriggerSet   `json:"answerTriggers,omitempty" yaml:"answerTriggers,omitempty"`
	RuleTriggers     RuleTriggerSet     `json:"ruleTriggers,omitempty" yaml:"ruleTriggers,omitempty"`
	RiskTriggers     RiskTriggerSet     `json:"riskTriggers,omitempty" yaml:"riskTriggers,omitempty"`
	TeamTriggers     TeamTriggerSet     `json:"teamTriggers,omitempty" yaml:"teamTriggers,omitempty"`
}

// QuestionTriggerSet fires on the mere presence of answers to listed
// questions, combined per Mode.
type QuestionTriggerSet struct {
	Mode        GroupLogic `json:"mode,omitempty" yaml:"mode,omitempty"`
	QuestionIDs []string   `json:"questionIds,omitempty" yaml:"questionIds,omitempty"`
}

// AnswerMatch pairs a question with the answer value that triggers.
type AnswerMatch struct {
	QuestionID string `json:"questionId" yaml:"questionId"`
	Value      string `json:"value" yaml:"value"`
}

// AnswerTriggerSet fires on specific answer values, combined per Mode.
type AnswerTriggerSet struct {
	Mode    GroupLogic    `json:"mode,omitempty" yaml:"mode,omitempty"`
	Matches []AnswerMatch `json:"matches,omitempty" yaml:"matches,omitempty"`
}

// RuleTriggerSet fires when upstream rules have fired, combined per Mode.
type RuleTriggerSet struct {
	Mode    GroupLogic `json:"mode,omitempty" yaml:"mode,omitempty"`
	RuleIDs []string   `json:"ruleIds,omitempty" yaml:"ruleIds,omitempty"`
}

// RiskTriggerSet fires on risk shape. Each configured sub-check contributes
// independently to an OR within this dimension; nil means not configured.
type RiskTriggerSet struct {
	HasRisks      *bool            `json:"hasRisks,omitempty" yaml:"hasRisks,omitempty"`
	MinRiskCount  *int             `json:"minRiskCount,omitempty" yaml:"minRiskCount,omitempty"`
	MinComplexity *ComplexityLevel `json:"minComplexity,omitempty" yaml:"minComplexity,omitempty"`
	MinTotalScore *float64         `json:"minTotalScore,omitempty" yaml:"minTotalScore,omitempty"`
}

// Configured reports whether any risk sub-check is set.
func (s RiskTriggerSet) Configured() bool {
	return s.HasRisks != nil || s.MinRiskCount != nil || s.MinComplexity != nil || s.MinTotalScore != nil
}

// TeamTriggerSet fires when at least MinTeamCount teams are relevant.
type TeamTriggerSet struct {
	MinTeamCount *int `json:"minTeamCount,omitempty" yaml:"minTeamCount,omitempty"`
}
