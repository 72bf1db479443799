package engine

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/antoinelmariel-ux/compliance-navigator-sub000/pkg/schema"
)

// rankWeights maps priority rank (0 = most important) to weight. Ranks past
// the end of the table weigh 1, so longer priority lists degrade gracefully.
var rankWeights = [...]float64{5, 4, 3, 2, 1}

func weightForRank(rank int) float64 {
	if rank < len(rankWeights) {
		return rankWeights[rank]
	}
	return 1
}

// RankedEntry is one recommendation with its total weighted score and the
// per-criterion contribution that produced it.
type RankedEntry struct {
	Entry     schema.RecommendationEntry
	Score     float64
	Breakdown map[string]float64
}

// Recommend scores the candidate table against the user's stated priorities
// and returns the top entries, best first.
//
// Weights are strictly positional over the prioritized list; the same
// criterion carries a different weight if ranked elsewhere. Ignored criteria
// never contribute. When the user only stated exclusions, every remaining
// criterion weighs equally. Negative or non-finite per-criterion scores count
// as zero, zero-total entries are dropped, and ties break alphabetically on
// the entry name with French collation.
func Recommend(answer schema.RankingAnswer, cfg *schema.RankingConfig, limit int) []RankedEntry {
	if cfg == nil {
		return nil
	}
	if len(answer.Prioritized) == 0 && len(answer.Ignored) == 0 {
		return nil
	}
	if limit < 1 {
		limit = 1
	}

	ignored := make(map[string]bool, len(answer.Ignored))
	for _, id := range answer.Ignored {
		ignored[id] = true
	}

	type axis struct {
		id     string
		weight float64
	}
	var axes []axis
	seen := make(map[string]bool)
	for rank, id := range answer.Prioritized {
		if id == "" || ignored[id] || seen[id] {
			continue
		}
		seen[id] = true
		axes = append(axes, axis{id: id, weight: weightForRank(rank)})
	}
	if len(answer.Prioritized) == 0 {
		for _, c := range cfg.Criteria {
			if !ignored[c.ID] {
				axes = append(axes, axis{id: c.ID, weight: 1})
			}
		}
	}

	ranked := make([]RankedEntry, 0, len(cfg.Entries))
	for _, entry := range cfg.Entries {
		total := 0.0
		breakdown := make(map[string]float64, len(axes))
		for _, ax := range axes {
			score := entry.Scores[ax.id]
			if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 {
				score = 0
			}
			contribution := score * ax.weight
			breakdown[ax.id] = contribution
			total += contribution
		}
		if total <= 0 {
			continue
		}
		ranked = append(ranked, RankedEntry{Entry: entry, Score: total, Breakdown: breakdown})
	}

	collator := collate.New(language.French)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return collator.CompareString(ranked[i].Entry.Name, ranked[j].Entry.Name) < 0
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
