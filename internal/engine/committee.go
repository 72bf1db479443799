package engine

import (
	"github.com/antoinelmariel-ux/compliance-navigator-sub000/pkg/schema"
)

// TriggerContext is everything the committee trigger engine reads: the current
// answers, the upstream rule analysis, and the teams relevant to the project.
type TriggerContext struct {
	Answers       schema.AnswerMap
	Analysis      schema.AnalysisResult
	RelevantTeams []string
}

// TriggeredCommittees returns, in configuration order, every committee whose
// triggers require a review of the project.
func TriggeredCommittees(committees []schema.Committee, ctx TriggerContext) []schema.Committee {
	var out []schema.Committee
	for _, c := range committees {
		if CommitteeTriggered(&c, ctx) {
			out = append(out, c)
		}
	}
	return out
}

// CommitteeTriggered evaluates the five trigger dimensions and ORs them.
// A dimension with nothing configured does not vote, so a committee with zero
// configured triggers anywhere never auto-triggers.
func CommitteeTriggered(c *schema.Committee, ctx TriggerContext) bool {
	if len(c.QuestionTriggers.QuestionIDs) > 0 && questionTriggered(c.QuestionTriggers, ctx.Answers) {
		return true
	}
	if len(c.AnswerTriggers.Matches) > 0 && answerTriggered(c.AnswerTriggers, ctx.Answers) {
		return true
	}
	if len(c.RuleTriggers.RuleIDs) > 0 && ruleTriggered(c.RuleTriggers, ctx.Analysis.FiredRuleIDs) {
		return true
	}
	if c.RiskTriggers.Configured() && riskTriggered(c.RiskTriggers, ctx.Analysis) {
		return true
	}
	if c.TeamTriggers.MinTeamCount != nil && len(ctx.RelevantTeams) >= *c.TeamTriggers.MinTeamCount {
		return true
	}
	return false
}

// questionTriggered checks answer presence for the listed questions.
func questionTriggered(t schema.QuestionTriggerSet, answers schema.AnswerMap) bool {
	hits := 0
	for _, id := range t.QuestionIDs {
		if IsAnswered(answers[id]) {
			hits++
		}
	}
	return matched(t.Mode, hits, len(t.QuestionIDs))
}

// answerTriggered checks answer-value matches through the equals predicate,
// so scalar equality and array membership behave exactly like conditions do.
func answerTriggered(t schema.AnswerTriggerSet, answers schema.AnswerMap) bool {
	hits := 0
	for _, m := range t.Matches {
		cond := schema.Condition{QuestionID: m.QuestionID, Operator: schema.OpEquals, Value: m.Value}
		if Evaluate(&cond, answers) {
			hits++
		}
	}
	return matched(t.Mode, hits, len(t.Matches))
}

// ruleTriggered checks how the fired-rule set covers the configured IDs.
func ruleTriggered(t schema.RuleTriggerSet, firedRuleIDs []string) bool {
	hits := 0
	for _, id := range t.RuleIDs {
		if containsString(firedRuleIDs, id) {
			hits++
		}
	}
	return matched(t.Mode, hits, len(t.RuleIDs))
}

// riskTriggered ORs the configured risk sub-checks.
func riskTriggered(t schema.RiskTriggerSet, analysis schema.AnalysisResult) bool {
	if t.HasRisks != nil && *t.HasRisks && len(analysis.Risks) > 0 {
		return true
	}
	if t.MinRiskCount != nil && len(analysis.Risks) >= *t.MinRiskCount {
		return true
	}
	if t.MinComplexity != nil && analysis.Complexity.Rank() >= t.MinComplexity.Rank() && t.MinComplexity.Rank() > 0 {
		return true
	}
	if t.MinTotalScore != nil && analysis.TotalScore >= *t.MinTotalScore {
		return true
	}
	return false
}

// matched combines per-item hits under the dimension's all/any mode.
func matched(mode schema.GroupLogic, hits, total int) bool {
	if total == 0 {
		return false
	}
	if schema.NormalizeLogic(mode) == schema.LogicAny {
		return hits > 0
	}
	return hits == total
}
