package enumerate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/airvair/STAMPWebTool-sub001/internal/authority"
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

// Prune collapses candidates that are equivalent under the
// interchangeability relation: one is obtained from the other by
// substituting interchangeable controllers while the multiset of
// (action signature, provided, timing) tuples is unchanged. Exactly one
// representative survives per equivalence class: the highest-scoring one,
// with first-seen order breaking score ties. Output preserves first-seen
// positions.
func Prune(candidates []model.Candidate, am *authority.Model, rel model.InterchangeRelation) []model.Candidate {
	return collapse(candidates, func(c model.Candidate) string {
		return equivalenceKey(c, am, &rel)
	})
}

// DedupeStructural collapses exact structural duplicates (same canonical
// key, same interaction type), which arise when pattern generators or
// class-level refinement re-derive a combination the systematic generator
// already produced. Same survivor rule as Prune. This is exact-key
// collapsing; textual similarity against analyst data is a separate
// operation in the report stage.
func DedupeStructural(candidates []model.Candidate) []model.Candidate {
	return collapse(candidates, func(c model.Candidate) string {
		return string(c.Type) + "/" + model.StructuralKey(c)
	})
}

func collapse(candidates []model.Candidate, keyFn func(model.Candidate) string) []model.Candidate {
	out := make([]model.Candidate, 0, len(candidates))
	index := make(map[string]int)

	for _, c := range candidates {
		key := keyFn(c)
		if at, seen := index[key]; seen {
			if c.RiskScore > out[at].RiskScore {
				out[at] = c
			}
			continue
		}
		index[key] = len(out)
		out = append(out, c)
	}
	return out
}

// equivalenceKey canonicalizes a candidate for interchangeability
// comparison: each controller maps to its group representative, each
// action to its signature, and the tuples are sorted so element order
// does not matter.
func equivalenceKey(c model.Candidate, am *authority.Model, rel *model.InterchangeRelation) string {
	tuples := make([]string, 0, len(c.Elements))
	for _, el := range c.Elements {
		provided := "withheld"
		if el.Provided {
			provided = "provided"
		}
		tuples = append(tuples, strings.Join([]string{
			rel.Canonical(el.ControllerID),
			am.ActionSignature(el.ActionID),
			provided,
			string(el.Timing),
		}, "|"))
	}
	sort.Strings(tuples)
	return fmt.Sprintf("%s/%d:%s", c.Type, len(c.Elements), strings.Join(tuples, ";"))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
