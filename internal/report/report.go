// Package report finalizes a candidate pool: threshold filtering,
// deduplication against analyst-confirmed entries, ranking, statistics,
// and rule-based recommendations.
package report

import (
	"sort"

	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

// ExistingSimilarityCutoff is the word-overlap similarity above which a
// candidate counts as a restatement of an analyst-confirmed entry.
const ExistingSimilarityCutoff = 0.8

// HighRiskCutoff classifies candidates worth immediate attention.
const HighRiskCutoff = 0.7

// FilterThreshold drops candidates scoring below the threshold.
func FilterThreshold(candidates []model.Candidate, threshold float64) []model.Candidate {
	out := make([]model.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.RiskScore >= threshold {
			out = append(out, c)
		}
	}
	return out
}

// DedupeExisting drops candidates whose description overlaps an existing
// analyst-confirmed entry's description beyond the similarity cutoff.
// Overlap of exactly the cutoff is kept; only strictly greater similarity
// counts as a restatement. This is fuzzy textual matching, distinct from
// the exact structural-key collapsing the pruner performs.
func DedupeExisting(candidates []model.Candidate, entries []model.ExistingEntry) []model.Candidate {
	if len(entries) == 0 {
		return candidates
	}
	out := make([]model.Candidate, 0, len(candidates))
	for _, c := range candidates {
		duplicate := false
		for _, e := range entries {
			if model.TextSimilarity(c.Description, e.Description) > ExistingSimilarityCutoff {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out = append(out, c)
		}
	}
	return out
}

// Rank stable-sorts candidates by score, descending. Equal scores keep
// their pipeline order, which is deterministic for fixed input.
func Rank(candidates []model.Candidate) []model.Candidate {
	out := make([]model.Candidate, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool { return out[i].RiskScore > out[j].RiskScore })
	return out
}

// Statistics aggregates the final candidate list.
func Statistics(candidates []model.Candidate) model.Statistics {
	stats := model.Statistics{
		Total:   len(candidates),
		ByType:  make(map[model.InteractionType]int),
		ByLevel: make(map[model.AbstractionLevel]int),
	}

	sum := 0.0
	for _, c := range candidates {
		stats.ByType[c.Type]++
		stats.ByLevel[c.Level]++
		if c.RiskScore >= HighRiskCutoff {
			stats.HighRisk++
		}
		sum += c.RiskScore
	}
	if stats.Total > 0 {
		stats.MeanScore = sum / float64(stats.Total)
	}
	return stats
}
