package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoinelmariel-ux/compliance-navigator-sub000/pkg/schema"
)

func fptr(v float64) *float64 { return &v }

func TestEvaluateTiming_Deltas(t *testing.T) {
	tc := &schema.TimingCondition{StartQuestionID: "kickoff", EndQuestionID: "submission"}
	answers := schema.AnswerMap{"kickoff": "2024-01-01", "submission": "2024-02-26"}

	result := EvaluateTiming(tc, answers, nil)

	assert.Equal(t, schema.TimingSatisfied, result.Status)
	assert.Equal(t, 56.0, result.DiffDays)
	assert.Equal(t, 8.0, result.DiffWeeks)
}

func TestEvaluateTiming_MinimumWeeks(t *testing.T) {
	answers := schema.AnswerMap{"kickoff": "2024-01-01", "submission": "2024-02-26"}

	satisfied := &schema.TimingCondition{
		StartQuestionID: "kickoff", EndQuestionID: "submission", MinimumWeeks: fptr(8),
	}
	assert.Equal(t, schema.TimingSatisfied, EvaluateTiming(satisfied, answers, nil).Status)

	breached := &schema.TimingCondition{
		StartQuestionID: "kickoff", EndQuestionID: "submission", MinimumWeeks: fptr(9),
	}
	assert.Equal(t, schema.TimingBreach, EvaluateTiming(breached, answers, nil).Status)
}

func TestEvaluateTiming_MaximumBounds(t *testing.T) {
	answers := schema.AnswerMap{"kickoff": "2024-01-01", "submission": "2024-02-26"}

	overMax := &schema.TimingCondition{
		StartQuestionID: "kickoff", EndQuestionID: "submission", MaximumWeeks: fptr(4),
	}
	assert.Equal(t, schema.TimingBreach, EvaluateTiming(overMax, answers, nil).Status)

	withinDays := &schema.TimingCondition{
		StartQuestionID: "kickoff", EndQuestionID: "submission",
		MinimumDays: fptr(30), MaximumDays: fptr(60),
	}
	assert.Equal(t, schema.TimingSatisfied, EvaluateTiming(withinDays, answers, nil).Status)
}

func TestEvaluateTiming_UnknownIsNotBreach(t *testing.T) {
	tc := &schema.TimingCondition{
		StartQuestionID: "kickoff", EndQuestionID: "submission", MinimumWeeks: fptr(8),
	}

	tests := []struct {
		name    string
		answers schema.AnswerMap
	}{
		{"both missing", schema.AnswerMap{}},
		{"end missing", schema.AnswerMap{"kickoff": "2024-01-01"}},
		{"start unparsable", schema.AnswerMap{"kickoff": "bientôt", "submission": "2024-02-26"}},
		{"start empty", schema.AnswerMap{"kickoff": "", "submission": "2024-02-26"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateTiming(tc, tt.answers, nil)
			assert.Equal(t, schema.TimingUnknown, result.Status)
		})
	}

	assert.Equal(t, schema.TimingUnknown, EvaluateTiming(nil, schema.AnswerMap{}, nil).Status)
}

func TestEvaluateTiming_FirstApplicableProfileWins(t *testing.T) {
	tc := &schema.TimingCondition{
		StartQuestionID: "kickoff",
		EndQuestionID:   "submission",
		Profiles: []schema.ComplianceProfile{
			{
				ID:    "accelerated",
				Label: "Procédure accélérée",
				Conditions: []schema.Condition{
					{QuestionID: "procedure", Operator: schema.OpEquals, Value: "Accélérée"},
				},
				RequirementsByTeam: map[string]schema.TeamRequirement{
					"reglementaire": {MinimumWeeks: fptr(4)},
				},
			},
			{
				ID:    "standard",
				Label: "Procédure standard",
				RequirementsByTeam: map[string]schema.TeamRequirement{
					"reglementaire": {MinimumWeeks: fptr(12)},
				},
			},
		},
	}
	answers := schema.AnswerMap{"kickoff": "2024-01-01", "submission": "2024-02-26"}
	teams := []string{"reglementaire"}

	// Default profile (no conditions on "standard" but "accelerated" first):
	// accelerated does not apply, standard does, and its 12-week floor breaks.
	result := EvaluateTiming(tc, answers, teams)
	require.Equal(t, "standard", result.ProfileID)
	assert.Equal(t, schema.TimingBreach, result.Status)
	assert.Equal(t, "reglementaire", result.TeamID)

	// With the accelerated procedure selected, the first profile applies and
	// its 4-week floor is met. Profiles are never combined.
	answers["procedure"] = "Accélérée"
	result = EvaluateTiming(tc, answers, teams)
	require.Equal(t, "accelerated", result.ProfileID)
	assert.Equal(t, schema.TimingSatisfied, result.Status)
	assert.Empty(t, result.TeamID)
}

func TestEvaluateTiming_AbsentTeamRequirementIsUnconstrained(t *testing.T) {
	tc := &schema.TimingCondition{
		StartQuestionID: "kickoff",
		EndQuestionID:   "submission",
		Profiles: []schema.ComplianceProfile{
			{
				ID: "default",
				RequirementsByTeam: map[string]schema.TeamRequirement{
					"clinique": {MinimumWeeks: fptr(50)},
				},
			},
		},
	}
	answers := schema.AnswerMap{"kickoff": "2024-01-01", "submission": "2024-02-26"}

	// The juridique team has no entry: that is "no constraint", not a zero
	// floor, so nothing breaches.
	result := EvaluateTiming(tc, answers, []string{"juridique"})
	assert.Equal(t, schema.TimingSatisfied, result.Status)

	// The clinique team does have a floor, and it is not met.
	result = EvaluateTiming(tc, answers, []string{"juridique", "clinique"})
	assert.Equal(t, schema.TimingBreach, result.Status)
	assert.Equal(t, "clinique", result.TeamID)
}

func TestEvaluateTiming_ProfileAnyLogic(t *testing.T) {
	tc := &schema.TimingCondition{
		StartQuestionID: "kickoff",
		EndQuestionID:   "submission",
		Profiles: []schema.ComplianceProfile{
			{
				ID:    "sensitive",
				Logic: schema.LogicAny,
				Conditions: []schema.Condition{
					{QuestionID: "dataHealth", Operator: schema.OpEquals, Value: "Oui"},
					{QuestionID: "minors", Operator: schema.OpEquals, Value: "Oui"},
				},
				RequirementsByTeam: map[string]schema.TeamRequirement{
					"clinique": {MinimumWeeks: fptr(4)},
				},
			},
		},
	}
	answers := schema.AnswerMap{
		"kickoff": "2024-01-01", "submission": "2024-02-26", "minors": "Oui",
	}

	result := EvaluateTiming(tc, answers, []string{"clinique"})
	assert.Equal(t, "sensitive", result.ProfileID)
	assert.Equal(t, schema.TimingSatisfied, result.Status)
}

func TestEvaluateTiming_NegativeInterval(t *testing.T) {
	tc := &schema.TimingCondition{
		StartQuestionID: "kickoff", EndQuestionID: "submission", MinimumDays: fptr(0),
	}
	answers := schema.AnswerMap{"kickoff": "2024-02-26", "submission": "2024-01-01"}

	result := EvaluateTiming(tc, answers, nil)
	assert.Equal(t, schema.TimingBreach, result.Status)
	assert.Equal(t, -56.0, result.DiffDays)
}
