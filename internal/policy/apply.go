// Package policy layers analyst-supplied special-interaction overrides
// onto the candidate pool.
package policy

import (
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

// Apply applies the special-interaction policy in fixed order:
//
//  1. Mandatory candidates are appended verbatim (scores clamped).
//  2. Candidates matching an excluded candidate's structural key are
//     removed.
//  3. Remaining candidates receive the score adjustment registered for
//     their structural key (default 0), clamped to [0,1].
//
// Input candidates are not mutated.
func Apply(candidates []model.Candidate, p model.SpecialPolicy) []model.Candidate {
	pool := make([]model.Candidate, 0, len(candidates)+len(p.Mandatory))
	pool = append(pool, candidates...)
	for _, m := range p.Mandatory {
		mandatory := m.Clone()
		mandatory.RiskScore = model.ClampScore(mandatory.RiskScore)
		pool = append(pool, mandatory)
	}

	excluded := make(map[string]bool, len(p.Excluded))
	for _, e := range p.Excluded {
		excluded[model.StructuralKey(e)] = true
	}

	out := make([]model.Candidate, 0, len(pool))
	for _, c := range pool {
		key := model.StructuralKey(c)
		if excluded[key] {
			continue
		}
		if adj, ok := p.Adjustments[key]; ok && adj != 0 {
			adjusted := c
			adjusted.RiskScore = model.ClampScore(c.RiskScore + adj)
			out = append(out, adjusted)
			continue
		}
		out = append(out, c)
	}
	return out
}
