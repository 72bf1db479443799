package schema

// Criterion is one axis a recommendation entry is scored on.
type Criterion struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// RecommendationEntry is one ranked candidate (typically an external partner)
// with a per-criterion score table.
type RecommendationEntry struct {
	ID              string             `json:"id" yaml:"id"`
	Name            string             `json:"name" yaml:"name"`
	Scores          map[string]float64 `json:"scores" yaml:"scores"`
	Contact         string             `json:"contact,omitempty" yaml:"contact,omitempty"`
	Website         string             `json:"website,omitempty" yaml:"website,omitempty"`
	Notes           string             `json:"notes,omitempty" yaml:"notes,omitempty"`
	PreviousProject string             `json:"previousProject,omitempty" yaml:"previousProject,omitempty"`
	Opinion         string             `json:"opinion,omitempty" yaml:"opinion,omitempty"`
}

// RankingConfig holds the scoring axes and the candidate table. QuestionID
// names the ranking question whose answer carries the user's priorities.
type RankingConfig struct {
	QuestionID string                `json:"questionId,omitempty" yaml:"questionId,omitempty"`
	Criteria   []Criterion           `json:"criteria" yaml:"criteria"`
	Entries    []RecommendationEntry `json:"entries" yaml:"entries"`
}

// RankingAnswer is the user's stated criterion ordering: Prioritized is most
// important first, Ignored is explicitly excluded from scoring.
type RankingAnswer struct {
	Prioritized []string `json:"prioritized" yaml:"prioritized"`
	Ignored     []string `json:"ignored,omitempty" yaml:"ignored,omitempty"`
}
