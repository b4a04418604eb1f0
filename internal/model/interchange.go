package model

import "sort"

// InterchangeRelation declares groups of controllers that are symmetric for
// duplicate pruning (e.g., redundant crew roles). It never merges entities;
// it only lets the pruner treat rotated candidates as one.
type InterchangeRelation struct {
	Groups [][]string `yaml:"groups,omitempty" json:"groups,omitempty"`

	canonical map[string]string
}

// NewInterchangeRelation builds a relation from controller ID groups.
// Membership in multiple groups is not supported; the first group wins.
func NewInterchangeRelation(groups [][]string) InterchangeRelation {
	r := InterchangeRelation{Groups: groups}
	r.buildIndex()
	return r
}

func (r *InterchangeRelation) buildIndex() {
	r.canonical = make(map[string]string)
	for _, group := range r.Groups {
		if len(group) < 2 {
			continue
		}
		sorted := make([]string, len(group))
		copy(sorted, group)
		sort.Strings(sorted)
		rep := sorted[0]
		for _, id := range sorted {
			if _, seen := r.canonical[id]; !seen {
				r.canonical[id] = rep
			}
		}
	}
}

// Canonical maps a controller ID to its group representative. Controllers
// outside any group map to themselves.
func (r *InterchangeRelation) Canonical(controllerID string) string {
	if r.canonical == nil {
		r.buildIndex()
	}
	if rep, ok := r.canonical[controllerID]; ok {
		return rep
	}
	return controllerID
}

// Interchangeable reports whether two controllers share a group.
func (r *InterchangeRelation) Interchangeable(a, b string) bool {
	if a == b {
		return true
	}
	if r.canonical == nil {
		r.buildIndex()
	}
	ra, okA := r.canonical[a]
	rb, okB := r.canonical[b]
	return okA && okB && ra == rb
}
