package engine

import (
	"github.com/antoinelmariel-ux/compliance-navigator-sub000/pkg/schema"
)

// IsActive decides whether a conditionally-gated entity (question or rule) is
// currently active for the given answers. Top-level groups are ANDed; inside a
// group the conditions combine per the group's all/any logic. No groups, or a
// group with no conditions, is vacuously true.
func IsActive(set schema.ConditionSet, answers schema.AnswerMap) bool {
	for _, group := range NormalizeGroups(set, SanitizeAnyCondition) {
		if !GroupSatisfied(group, answers) {
			return false
		}
	}
	return true
}

// GroupSatisfied evaluates one condition group against the answers.
func GroupSatisfied(group schema.ConditionGroup, answers schema.AnswerMap) bool {
	if len(group.Conditions) == 0 {
		return true
	}

	if schema.NormalizeLogic(group.Logic) == schema.LogicAny {
		for _, rc := range group.Conditions {
			if conditionHolds(rc, answers) {
				return true
			}
		}
		return false
	}

	for _, rc := range group.Conditions {
		if !conditionHolds(rc, answers) {
			return false
		}
	}
	return true
}

// conditionHolds dispatches over the condition union. Timing members read as
// true only when the interval is positively satisfied; an unknown status
// closes false like any other missing data.
func conditionHolds(rc schema.RuleCondition, answers schema.AnswerMap) bool {
	switch c := rc.(type) {
	case *schema.Condition:
		return Evaluate(c, answers)
	case *schema.TimingCondition:
		return EvaluateTiming(c, answers, nil).Status == schema.TimingSatisfied
	default:
		return false
	}
}
