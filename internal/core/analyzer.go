package core

import (
	"encoding/json"

	"github.com/antoinelmariel-ux/compliance-navigator-sub000/internal/engine"
	"github.com/antoinelmariel-ux/compliance-navigator-sub000/pkg/schema"
)

// Analyzer runs one full evaluation pass over a questionnaire: question
// visibility, rule firing, timing constraints, committee triggering and
// partner recommendations. It holds no state between calls; the only side
// effect is logging.
type Analyzer struct {
	log            Logger
	recommendLimit int
}

// NewAnalyzer creates an analyzer. A nil logger discards output.
func NewAnalyzer(log Logger, recommendLimit int) *Analyzer {
	if log == nil {
		log = NopLogger{}
	}
	if recommendLimit < 1 {
		recommendLimit = DefaultRecommendLimit
	}
	return &Analyzer{log: log, recommendLimit: recommendLimit}
}

// TimingFinding pairs a timing rule with its evaluation outcome so the UI can
// render a violation or vigilance notice next to the right dates.
type TimingFinding struct {
	StartQuestionID string
	EndQuestionID   string
	Result          engine.TimingResult
}

// Report is the outcome of one analysis pass.
type Report struct {
	VisibleQuestionIDs []string
	Analysis           schema.AnalysisResult
	TimingFindings     []TimingFinding
	Committees         []schema.Committee
	Recommendations    []engine.RankedEntry
	RelevantTeams      []string
}

// Analyze evaluates the questionnaire against the current answers.
func (a *Analyzer) Analyze(q *schema.Questionnaire, answers schema.AnswerMap) *Report {
	report := &Report{}
	if q == nil {
		return report
	}

	for i := range q.Questions {
		if engine.IsActive(q.Questions[i].ConditionSet, answers) {
			report.VisibleQuestionIDs = append(report.VisibleQuestionIDs, q.Questions[i].ID)
		}
	}

	report.Analysis = analyzeRules(q.Rules, answers)
	report.RelevantTeams = relevantTeams(q, answers)

	for i := range q.TimingRules {
		tc := &q.TimingRules[i]
		report.TimingFindings = append(report.TimingFindings, TimingFinding{
			StartQuestionID: tc.StartQuestionID,
			EndQuestionID:   tc.EndQuestionID,
			Result:          engine.EvaluateTiming(tc, answers, report.RelevantTeams),
		})
	}

	report.Committees = engine.TriggeredCommittees(q.Committees, engine.TriggerContext{
		Answers:       answers,
		Analysis:      report.Analysis,
		RelevantTeams: report.RelevantTeams,
	})

	if q.Ranking != nil && q.Ranking.QuestionID != "" {
		if ra, ok := rankingAnswer(answers[q.Ranking.QuestionID]); ok {
			report.Recommendations = engine.Recommend(ra, q.Ranking, a.recommendLimit)
		}
	}

	a.log.Debug("analysis complete",
		"visible_questions", len(report.VisibleQuestionIDs),
		"fired_rules", len(report.Analysis.FiredRuleIDs),
		"committees", len(report.Committees),
	)

	return report
}

// analyzeRules collects fired rules into the risk summary the committee
// engine consumes. Overall complexity is the highest severity among fired
// rules.
func analyzeRules(rules []schema.Rule, answers schema.AnswerMap) schema.AnalysisResult {
	result := schema.AnalysisResult{}
	for i := range rules {
		rule := &rules[i]
		if !engine.IsActive(rule.ConditionSet, answers) {
			continue
		}

		result.FiredRuleIDs = append(result.FiredRuleIDs, rule.ID)
		result.Risks = append(result.Risks, schema.Risk{
			RuleID:   rule.ID,
			Label:    rule.Name,
			Severity: rule.Severity,
			Score:    rule.Score,
		})
		result.TotalScore += rule.Score
		if rule.Severity.Rank() > result.Complexity.Rank() {
			result.Complexity = rule.Severity
		}
	}
	return result
}

// relevantTeams reads the configured team question's multi-select answer.
func relevantTeams(q *schema.Questionnaire, answers schema.AnswerMap) []string {
	if q.TeamQuestionID == "" {
		return nil
	}
	return engine.Strings(answers[q.TeamQuestionID])
}

// rankingAnswer coerces the ranking question's answer into its typed form.
// The answer arrives either already typed or as the JSON-shaped map the UI
// stores; anything else means the user has not ranked yet.
func rankingAnswer(v any) (schema.RankingAnswer, bool) {
	switch val := v.(type) {
	case schema.RankingAnswer:
		return val, true
	case *schema.RankingAnswer:
		if val == nil {
			return schema.RankingAnswer{}, false
		}
		return *val, true
	case map[string]any:
		raw, err := json.Marshal(val)
		if err != nil {
			return schema.RankingAnswer{}, false
		}
		var ra schema.RankingAnswer
		if err := json.Unmarshal(raw, &ra); err != nil {
			return schema.RankingAnswer{}, false
		}
		return ra, len(ra.Prioritized) > 0 || len(ra.Ignored) > 0
	default:
		return schema.RankingAnswer{}, false
	}
}
