package enumerate

import (
	"github.com/airvair/STAMPWebTool-sub001/internal/authority"
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

// Refine expands class-level candidates into one concrete candidate per
// valid controller substitution consistent with the authority model.
// For each element the substitute controller must own an action with the
// element's signature, and controllers must stay distinct within a
// combination. Instance-level candidates pass through unchanged. Type,
// base score, and abstraction provenance are preserved; only the concrete
// controller and action references vary.
func Refine(candidates []model.Candidate, am *authority.Model, budget int) ([]model.Candidate, error) {
	out := make([]model.Candidate, 0, len(candidates))
	_, actionOf := sharedSignatures(am)

	for _, c := range candidates {
		if c.Level != model.LevelClass {
			out = append(out, c)
			continue
		}

		expansions := expand(c, am, actionOf)
		for _, e := range expansions {
			out = append(out, e)
			if budget > 0 && len(out) > budget {
				return nil, ErrBudgetExceeded
			}
		}
	}
	return out, nil
}

// expand enumerates every assignment of distinct controllers to the
// candidate's elements such that each assigned controller owns an action
// matching the element's signature. Symmetric permutations are emitted
// here and collapsed later by DedupeStructural.
func expand(c model.Candidate, am *authority.Model, actionOf map[string]map[string]string) []model.Candidate {
	sigs := make([]string, len(c.Elements))
	for i, el := range c.Elements {
		sigs[i] = am.ActionSignature(el.ActionID)
	}

	var out []model.Candidate
	assignment := make([]model.CombinationElement, len(c.Elements))
	used := make(map[string]bool)

	var recurse func(i int)
	recurse = func(i int) {
		if i == len(c.Elements) {
			refined := c.Clone()
			copy(refined.Elements, assignment)
			refined.Description = Describe(am, refined)
			out = append(out, refined)
			return
		}
		byCtrl := actionOf[sigs[i]]
		for _, ctrl := range sortedKeys(byCtrl) {
			if used[ctrl] {
				continue
			}
			used[ctrl] = true
			assignment[i] = model.CombinationElement{
				ControllerID: ctrl,
				ActionID:     byCtrl[ctrl],
				Provided:     c.Elements[i].Provided,
				Timing:       c.Elements[i].Timing,
			}
			recurse(i + 1)
			used[ctrl] = false
		}
	}
	recurse(0)
	return out
}
