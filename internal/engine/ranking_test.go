package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoinelmariel-ux/compliance-navigator-sub000/pkg/schema"
)

func rankingFixture() *schema.RankingConfig {
	return &schema.RankingConfig{
		Criteria: []schema.Criterion{
			{ID: "c1", Label: "Coût"},
			{ID: "c2", Label: "Délai"},
			{ID: "c3", Label: "Qualité"},
		},
		Entries: []schema.RecommendationEntry{
			{ID: "e1", Name: "Beta Santé", Scores: map[string]float64{"c1": 3, "c2": 0, "c3": 1}},
			{ID: "e2", Name: "Alpha Conseil", Scores: map[string]float64{"c1": 2, "c2": 2, "c3": 0}},
			{ID: "e3", Name: "Gamma Labs", Scores: map[string]float64{"c1": 0, "c2": 0, "c3": 0}},
		},
	}
}

func TestRecommend_PositionalWeights(t *testing.T) {
	answer := schema.RankingAnswer{Prioritized: []string{"c1", "c2", "c3"}}

	ranked := Recommend(answer, rankingFixture(), 10)

	require.Len(t, ranked, 2, "zero-score entries are dropped")
	// Both score 18 (3*5+0*4+1*3 and 2*5+2*4+0*3); the tie breaks on name.
	assert.Equal(t, "Alpha Conseil", ranked[0].Entry.Name)
	assert.Equal(t, 18.0, ranked[0].Score)
	assert.Equal(t, "Beta Santé", ranked[1].Entry.Name)
	assert.Equal(t, 18.0, ranked[1].Score)
	assert.Equal(t, 15.0, ranked[1].Breakdown["c1"], "per-criterion contribution is 3*5")
}

func TestRecommend_TieBreaksAlphabetically(t *testing.T) {
	cfg := &schema.RankingConfig{
		Criteria: []schema.Criterion{{ID: "c1", Label: "Coût"}},
		Entries: []schema.RecommendationEntry{
			{ID: "e1", Name: "Zenith", Scores: map[string]float64{"c1": 2}},
			{ID: "e2", Name: "Éclair", Scores: map[string]float64{"c1": 2}},
			{ID: "e3", Name: "Astra", Scores: map[string]float64{"c1": 2}},
		},
	}
	answer := schema.RankingAnswer{Prioritized: []string{"c1"}}

	ranked := Recommend(answer, cfg, 10)

	require.Len(t, ranked, 3)
	assert.Equal(t, "Astra", ranked[0].Entry.Name)
	assert.Equal(t, "Éclair", ranked[1].Entry.Name, "accented names collate naturally")
	assert.Equal(t, "Zenith", ranked[2].Entry.Name)
}

func TestRecommend_WeightsArePositionalNotBound(t *testing.T) {
	cfg := rankingFixture()

	first := Recommend(schema.RankingAnswer{Prioritized: []string{"c3", "c1"}}, cfg, 10)
	second := Recommend(schema.RankingAnswer{Prioritized: []string{"c1", "c3"}}, cfg, 10)

	// e1 has c1:3, c3:1. Ranked [c3,c1]: 1*5+3*4=17. Ranked [c1,c3]: 3*5+1*4=19.
	require.NotEmpty(t, first)
	require.NotEmpty(t, second)
	assert.Equal(t, 17.0, scoreFor(first, "e1"))
	assert.Equal(t, 19.0, scoreFor(second, "e1"))
}

func TestRecommend_IgnoredCriteria(t *testing.T) {
	answer := schema.RankingAnswer{Prioritized: []string{"c1", "c3"}, Ignored: []string{"c1"}}

	ranked := Recommend(answer, rankingFixture(), 10)

	// Only c3 scores, at the weight of its position in the prioritized list.
	require.Len(t, ranked, 1)
	assert.Equal(t, "Beta Santé", ranked[0].Entry.Name)
	assert.Equal(t, 4.0, ranked[0].Score, "c3 keeps rank-1 weight even with c1 ignored")
}

func TestRecommend_OnlyExclusionsStated(t *testing.T) {
	answer := schema.RankingAnswer{Ignored: []string{"c1"}}

	ranked := Recommend(answer, rankingFixture(), 10)

	// Remaining criteria weigh equally at 1.
	require.Len(t, ranked, 2)
	assert.Equal(t, 2.0, scoreFor(ranked, "e2"), "c2:2 + c3:0")
	assert.Equal(t, 1.0, scoreFor(ranked, "e1"), "c2:0 + c3:1")
}

func TestRecommend_EmptyAnswer(t *testing.T) {
	assert.Empty(t, Recommend(schema.RankingAnswer{}, rankingFixture(), 10))
	assert.Empty(t, Recommend(schema.RankingAnswer{Prioritized: []string{"c1"}}, nil, 10))
}

func TestRecommend_LimitAndFloor(t *testing.T) {
	answer := schema.RankingAnswer{Prioritized: []string{"c1", "c2", "c3"}}

	assert.Len(t, Recommend(answer, rankingFixture(), 1), 1)
	assert.Len(t, Recommend(answer, rankingFixture(), 0), 1, "limit floors at 1")
	assert.Len(t, Recommend(answer, rankingFixture(), -3), 1)
}

func TestRecommend_NegativeScoresClampToZero(t *testing.T) {
	cfg := &schema.RankingConfig{
		Criteria: []schema.Criterion{{ID: "c1", Label: "Coût"}, {ID: "c2", Label: "Délai"}},
		Entries: []schema.RecommendationEntry{
			{ID: "e1", Name: "Alpha", Scores: map[string]float64{"c1": -5, "c2": 1}},
		},
	}
	answer := schema.RankingAnswer{Prioritized: []string{"c1", "c2"}}

	ranked := Recommend(answer, cfg, 10)

	require.Len(t, ranked, 1)
	assert.Equal(t, 4.0, ranked[0].Score, "negative score counts as zero, never subtracts")
	assert.Equal(t, 0.0, ranked[0].Breakdown["c1"])
}

func TestRecommend_LongPriorityListDegrades(t *testing.T) {
	criteria := make([]schema.Criterion, 7)
	scores := make(map[string]float64, 7)
	prioritized := make([]string, 7)
	for i := range criteria {
		id := string(rune('a' + i))
		criteria[i] = schema.Criterion{ID: id, Label: id}
		scores[id] = 1
		prioritized[i] = id
	}
	cfg := &schema.RankingConfig{
		Criteria: criteria,
		Entries:  []schema.RecommendationEntry{{ID: "e1", Name: "Alpha", Scores: scores}},
	}

	ranked := Recommend(schema.RankingAnswer{Prioritized: prioritized}, cfg, 10)

	require.Len(t, ranked, 1)
	// 5+4+3+2+1 for the first five ranks, then 1 each past the table.
	assert.Equal(t, 17.0, ranked[0].Score)
}

func scoreFor(ranked []RankedEntry, entryID string) float64 {
	for _, r := range ranked {
		if r.Entry.ID == entryID {
			return r.Score
		}
	}
	return -1
}
