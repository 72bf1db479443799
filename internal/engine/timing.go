package engine

import (
	"time"

	"github.com/antoinelmariel-ux/compliance-navigator-sub000/pkg/schema"
)

// TimingResult is the outcome of evaluating one timing condition. Diff fields
// are only meaningful when Status is not unknown. ProfileID names the
// compliance profile that applied, if any; TeamID names the team whose
// requirement decided a breach.
type TimingResult struct {
	Status    schema.TimingStatus
	DiffDays  float64
	DiffWeeks float64
	ProfileID string
	TeamID    string
}

// EvaluateTiming computes the day/week interval between the two referenced
// dated answers and checks it against the condition's bounds.
//
// Either date missing or unparsable yields status unknown, which is distinct
// from breach: it signals data still to collect, never a violation. When
// compliance profiles are present, the first applicable profile's per-team
// requirements are checked for the given relevant teams; a team with no
// requirement entry is unconstrained.
func EvaluateTiming(tc *schema.TimingCondition, answers schema.AnswerMap, teams []string) TimingResult {
	if tc == nil {
		return TimingResult{Status: schema.TimingUnknown}
	}

	start, okStart := dateAnswer(answers[tc.StartQuestionID])
	end, okEnd := dateAnswer(answers[tc.EndQuestionID])
	if !okStart || !okEnd {
		return TimingResult{Status: schema.TimingUnknown}
	}

	days := end.Sub(start).Hours() / 24
	result := TimingResult{
		Status:    schema.TimingSatisfied,
		DiffDays:  days,
		DiffWeeks: days / 7,
	}

	base := schema.TeamRequirement{
		MinimumWeeks: tc.MinimumWeeks,
		MaximumWeeks: tc.MaximumWeeks,
		MinimumDays:  tc.MinimumDays,
		MaximumDays:  tc.MaximumDays,
	}
	if !requirementMet(base, result.DiffDays, result.DiffWeeks) {
		result.Status = schema.TimingBreach
	}

	profile := applicableProfile(tc.Profiles, answers)
	if profile == nil {
		return result
	}
	result.ProfileID = profile.ID

	for _, team := range teams {
		req, ok := profile.RequirementsByTeam[team]
		if !ok {
			// No entry means no constraint for that team, not a zero bound.
			continue
		}
		if !requirementMet(req, result.DiffDays, result.DiffWeeks) {
			result.Status = schema.TimingBreach
			result.TeamID = team
			break
		}
	}

	return result
}

// applicableProfile returns the first profile, in declaration order, whose
// applicability conditions hold. A profile without conditions applies by
// default. Profiles are never combined.
func applicableProfile(profiles []schema.ComplianceProfile, answers schema.AnswerMap) *schema.ComplianceProfile {
	for i := range profiles {
		p := &profiles[i]
		if len(p.Conditions) == 0 || profileConditionsHold(p, answers) {
			return p
		}
	}
	return nil
}

func profileConditionsHold(p *schema.ComplianceProfile, answers schema.AnswerMap) bool {
	if schema.NormalizeLogic(p.Logic) == schema.LogicAny {
		for i := range p.Conditions {
			if Evaluate(&p.Conditions[i], answers) {
				return true
			}
		}
		return false
	}

	for i := range p.Conditions {
		if !Evaluate(&p.Conditions[i], answers) {
			return false
		}
	}
	return true
}

func requirementMet(r schema.TeamRequirement, days, weeks float64) bool {
	if r.MinimumWeeks != nil && weeks < *r.MinimumWeeks {
		return false
	}
	if r.MaximumWeeks != nil && weeks > *r.MaximumWeeks {
		return false
	}
	if r.MinimumDays != nil && days < *r.MinimumDays {
		return false
	}
	if r.MaximumDays != nil && days > *r.MaximumDays {
		return false
	}
	return true
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// dateAnswer resolves a dated answer. Unparsable input is simply "no date".
func dateAnswer(v any) (time.Time, bool) {
	s, ok := scalarValue(v)
	if !ok || s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
