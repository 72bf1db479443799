package engine

import (
	"strings"

	"github.com/antoinelmariel-ux/compliance-navigator-sub000/pkg/schema"
)

// Sanitizer inspects one decoded condition and returns a cleaned copy, or
// false when the condition is unusable and must be dropped.
type Sanitizer func(schema.RuleCondition) (schema.RuleCondition, bool)

// SanitizeCondition is the basic sanitizer: it keeps only question
// conditions, trims the question reference and defaults a missing operator to
// equals. Conditions without a question reference are dropped.
func SanitizeCondition(rc schema.RuleCondition) (schema.RuleCondition, bool) {
	c, ok := rc.(*schema.Condition)
	if !ok || c == nil {
		return nil, false
	}

	out := *c
	out.QuestionID = strings.TrimSpace(out.QuestionID)
	if out.QuestionID == "" {
		return nil, false
	}
	if out.Operator == "" {
		out.Operator = schema.OpEquals
	}
	return &out, true
}

// SanitizeAnyCondition additionally recognizes the timing variant: both
// question references must be present, and each compliance profile's
// applicability logic is coerced onto the all/any scale.
func SanitizeAnyCondition(rc schema.RuleCondition) (schema.RuleCondition, bool) {
	tc, ok := rc.(*schema.TimingCondition)
	if !ok {
		return SanitizeCondition(rc)
	}
	if tc == nil {
		return nil, false
	}

	out := *tc
	out.StartQuestionID = strings.TrimSpace(out.StartQuestionID)
	out.EndQuestionID = strings.TrimSpace(out.EndQuestionID)
	if out.StartQuestionID == "" || out.EndQuestionID == "" {
		return nil, false
	}

	if len(tc.Profiles) > 0 {
		out.Profiles = make([]schema.ComplianceProfile, len(tc.Profiles))
		copy(out.Profiles, tc.Profiles)
		for i := range out.Profiles {
			out.Profiles[i].Logic = schema.NormalizeLogic(out.Profiles[i].Logic)
		}
	}
	return &out, true
}

// NormalizeGroups canonicalizes an entity's condition representation into a
// list of groups. The grouped form wins when present; otherwise a legacy flat
// condition list is wrapped into exactly one group using the legacy logic
// field. No conditions at all means unconditionally active: an empty list.
//
// Normalization is idempotent: feeding its output back in returns an equal
// structure.
func NormalizeGroups(set schema.ConditionSet, sanitize Sanitizer) []schema.ConditionGroup {
	if sanitize == nil {
		sanitize = SanitizeCondition
	}

	if len(set.ConditionGroups) > 0 {
		out := make([]schema.ConditionGroup, 0, len(set.ConditionGroups))
		for _, g := range set.ConditionGroups {
			out = append(out, sanitizeGroup(g, sanitize))
		}
		return out
	}

	if len(set.Conditions) > 0 {
		legacy := schema.ConditionGroup{
			Logic:      set.ConditionLogic,
			Conditions: set.Conditions,
		}
		return []schema.ConditionGroup{sanitizeGroup(legacy, sanitize)}
	}

	return nil
}

// Denormalize writes the canonical groups back into an entity-ready
// ConditionSet. ConditionGroups always carries the sanitized copy. If and only
// if exactly one group results, the legacy conditions/conditionLogic fields
// are back-filled for older consumers; with zero or several groups they reset
// to empty defaults.
func Denormalize(groups []schema.ConditionGroup, sanitize Sanitizer) schema.ConditionSet {
	if sanitize == nil {
		sanitize = SanitizeCondition
	}

	sanitized := make([]schema.ConditionGroup, 0, len(groups))
	for _, g := range groups {
		sanitized = append(sanitized, sanitizeGroup(g, sanitize))
	}

	set := schema.ConditionSet{
		ConditionLogic:  schema.LogicAll,
		ConditionGroups: sanitized,
	}
	if len(sanitized) == 1 {
		set.Conditions = sanitized[0].Conditions
		set.ConditionLogic = sanitized[0].Logic
	}
	return set
}

func sanitizeGroup(g schema.ConditionGroup, sanitize Sanitizer) schema.ConditionGroup {
	out := schema.ConditionGroup{
		Logic:      schema.NormalizeLogic(g.Logic),
		Conditions: make(schema.ConditionList, 0, len(g.Conditions)),
	}
	for _, rc := range g.Conditions {
		if cleaned, ok := sanitize(rc); ok {
			out.Conditions = append(out.Conditions, cleaned)
		}
	}
	return out
}
