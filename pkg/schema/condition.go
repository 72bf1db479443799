package schema

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// ConditionKind discriminates the members of the condition union.
type ConditionKind string

const (
	KindQuestion ConditionKind = "question"
	KindTiming   ConditionKind = "timing"
)

// RuleCondition is the closed union of condition variants a group may hold:
// an answer predicate (Condition) or an interval constraint between two dated
// answers (TimingCondition).
type RuleCondition interface {
	Kind() ConditionKind
}

// Condition is an atomic predicate comparing one answer to an expected value.
type Condition struct {
	QuestionID string   `json:"questionId" yaml:"questionId"`
	Operator   Operator `json:"operator" yaml:"operator"`
	Value      string   `json:"value" yaml:"value"`
}

func (c *Condition) Kind() ConditionKind { return KindQuestion }

// TimingCondition bounds the day/week interval between two dated answers.
// Bounds are pointers: nil means "no constraint", which is distinct from a
// zero bound.
type TimingCondition struct {
	StartQuestionID string              `json:"startQuestionId" yaml:"startQuestionId"`
	EndQuestionID   string              `json:"endQuestionId" yaml:"endQuestionId"`
	MinimumWeeks    *float64            `json:"minimumWeeks,omitempty" yaml:"minimumWeeks,omitempty"`
	MaximumWeeks    *float64            `json:"maximumWeeks,omitempty" yaml:"maximumWeeks,omitempty"`
	MinimumDays     *float64            `json:"minimumDays,omitempty" yaml:"minimumDays,omitempty"`
	MaximumDays     *float64            `json:"maximumDays,omitempty" yaml:"maximumDays,omitempty"`
	Profiles        []ComplianceProfile `json:"complianceProfiles,omitempty" yaml:"complianceProfiles,omitempty"`
}

func (t *TimingCondition) Kind() ConditionKind { return KindTiming }

// ComplianceProfile is a named, conditionally-applicable variant of a timing
// constraint carrying per-team duration requirements. The first profile whose
// applicability conditions hold wins; a profile with no conditions applies
// unconditionally.
type ComplianceProfile struct {
	ID                 string                     `json:"id" yaml:"id"`
	Label              string                     `json:"label" yaml:"label"`
	Conditions         []Condition                `json:"applicabilityConditions,omitempty" yaml:"applicabilityConditions,omitempty"`
	Logic              GroupLogic                 `json:"applicabilityLogic,omitempty" yaml:"applicabilityLogic,omitempty"`
	RequirementsByTeam map[string]TeamRequirement `json:"requirementsByTeam,omitempty" yaml:"requirementsByTeam,omitempty"`
}

// TeamRequirement is the duration requirement for one stakeholder team. In
// configuration it may be a bare number (minimum weeks) or the detailed form;
// both decode into this struct.
type TeamRequirement struct {
	MinimumWeeks *float64 `json:"minimumWeeks,omitempty" yaml:"minimumWeeks,omitempty"`
	MaximumWeeks *float64 `json:"maximumWeeks,omitempty" yaml:"maximumWeeks,omitempty"`
	MinimumDays  *float64 `json:"minimumDays,omitempty" yaml:"minimumDays,omitempty"`
	MaximumDays  *float64 `json:"maximumDays,omitempty" yaml:"maximumDays,omitempty"`
}

// UnmarshalYAML accepts either a bare number or the detailed mapping form.
func (r *TeamRequirement) UnmarshalYAML(node *yaml.Node) error {
	var weeks float64
	if err := node.Decode(&weeks); err == nil {
		r.MinimumWeeks = &weeks
		return nil
	}

	type requirementAlias TeamRequirement
	var detailed requirementAlias
	if err := node.Decode(&detailed); err != nil {
		return err
	}
	*r = TeamRequirement(detailed)
	return nil
}

// UnmarshalJSON accepts either a bare number or the detailed object form.
func (r *TeamRequirement) UnmarshalJSON(data []byte) error {
	var weeks float64
	if err := json.Unmarshal(data, &weeks); err == nil {
		r.MinimumWeeks = &weeks
		return nil
	}

	type requirementAlias TeamRequirement
	var detailed requirementAlias
	if err := json.Unmarshal(data, &detailed); err != nil {
		return err
	}
	*r = TeamRequirement(detailed)
	return nil
}

// ConditionList is a heterogeneous list of condition variants. Decoding sniffs
// each element: an explicit "kind" tag or the presence of startQuestionId
// selects the timing variant, anything else decodes as a question condition.
// Elements that fail to decode are dropped rather than failing the document.
type ConditionList []RuleCondition

type conditionProbe struct {
	Kind            string `json:"kind" yaml:"kind"`
	StartQuestionID string `json:"startQuestionId" yaml:"startQuestionId"`
}

func (p conditionProbe) timing() bool {
	return p.Kind == string(KindTiming) || p.StartQuestionID != ""
}

// UnmarshalYAML implements element-wise type-sniffing decode for YAML.
func (l *ConditionList) UnmarshalYAML(node *yaml.Node) error {
	var elems []yaml.Node
	if err := node.Decode(&elems); err != nil {
		return err
	}

	out := make(ConditionList, 0, len(elems))
	for _, elem := range elems {
		var probe conditionProbe
		if err := elem.Decode(&probe); err != nil {
			continue
		}

		if probe.timing() {
			var tc TimingCondition
			if err := elem.Decode(&tc); err == nil {
				out = append(out, &tc)
			}
			continue
		}

		var c Condition
		if err := elem.Decode(&c); err == nil {
			out = append(out, &c)
		}
	}

	*l = out
	return nil
}

// UnmarshalJSON implements element-wise type-sniffing decode for JSON.
func (l *ConditionList) UnmarshalJSON(data []byte) error {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}

	out := make(ConditionList, 0, len(elems))
	for _, elem := range elems {
		var probe conditionProbe
		if err := json.Unmarshal(elem, &probe); err != nil {
			continue
		}

		if probe.timing() {
			var tc TimingCondition
			if err := json.Unmarshal(elem, &tc); err == nil {
				out = append(out, &tc)
			}
			continue
		}

		var c Condition
		if err := json.Unmarshal(elem, &c); err == nil {
			out = append(out, &c)
		}
	}

	*l = out
	return nil
}

// ConditionGroup is a set of conditions combined by ALL or ANY logic. Groups
// across an entity are combined with AND. A group with no conditions is
// vacuously satisfied.
type ConditionGroup struct {
	Logic      GroupLogic    `json:"logic,omitempty" yaml:"logic,omitempty"`
	Conditions ConditionList `json:"conditions" yaml:"conditions"`
}

// ConditionSet carries both the canonical grouped representation and the
// legacy single-group fields kept for older consumers. It is embedded by every
// conditionally-visible entity. The engine's normalizer is the only code that
// should interpret the legacy/canonical split.
type ConditionSet struct {
	Conditions      ConditionList    `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	ConditionLogic  GroupLogic       `json:"conditionLogic,omitempty" yaml:"conditionLogic,omitempty"`
	ConditionGroups []ConditionGroup `json:"conditionGroups,omitempty" yaml:"conditionGroups,omitempty"`
}
