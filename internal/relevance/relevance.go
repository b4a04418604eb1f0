// Package relevance boosts candidate scores by keyword overlap with the
// recorded hazards.
package relevance

import (
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

// hazardTokenWeight is the score contribution of one shared token between
// a hazard title and a candidate description.
const hazardTokenWeight = 0.1

// Boost adds hazard-relevance deltas to every candidate: for each hazard,
// the number of tokens its title shares with the candidate description,
// times the token weight, summed across hazards. Scores stay clamped to
// [0,1]. Input candidates are not mutated.
func Boost(candidates []model.Candidate, hazards []model.Hazard) []model.Candidate {
	if len(hazards) == 0 {
		return candidates
	}

	hazardTokens := make([]map[string]bool, len(hazards))
	for i, h := range hazards {
		hazardTokens[i] = model.Tokenize(h.Title)
	}

	out := make([]model.Candidate, len(candidates))
	for i, c := range candidates {
		boosted := c
		descTokens := model.Tokenize(c.Description)

		delta := 0.0
		for _, ht := range hazardTokens {
			shared := 0
			for w := range descTokens {
				if ht[w] {
					shared++
				}
			}
			delta += float64(shared) * hazardTokenWeight
		}

		boosted.RiskScore = model.ClampScore(c.RiskScore + delta)
		out[i] = boosted
	}
	return out
}
