package model

import (
	"fmt"
	"sort"
	"strings"
)

// StructuralKey computes the canonical structural identity of a candidate:
// the element count followed by the sorted controller/action/provided
// triples. Two candidates with the same key are the same combination
// regardless of element order. Used for exact-match exclusion and score
// adjustment lookup; textual similarity is a separate operation.
func StructuralKey(c Candidate) string {
	triples := make([]string, 0, len(c.Elements))
	for _, el := range c.Elements {
		provided := "withheld"
		if el.Provided {
			provided = "provided"
		}
		triples = append(triples, el.ControllerID+"|"+el.ActionID+"|"+provided)
	}
	sort.Strings(triples)
	return fmt.Sprintf("%d:%s", len(c.Elements), strings.Join(triples, ";"))
}

// minTokenLen is the exclusive lower bound on token length; shorter words
// carry no signal for relevance or similarity.
const minTokenLen = 3

// Tokenize lowercases text and returns the set of words longer than three
// characters.
func Tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,;:!?()[]\"'")
		if len(w) > minTokenLen {
			tokens[w] = true
		}
	}
	return tokens
}

// TextSimilarity computes word-overlap similarity between two texts as
// intersection over union of their token sets. Returns 0 when either text
// has no tokens.
func TextSimilarity(a, b string) float64 {
	ta := Tokenize(a)
	tb := Tokenize(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	intersection := 0
	for w := range ta {
		if tb[w] {
			intersection++
		}
	}
	union := len(ta) + len(tb) - intersection
	return float64(intersection) / float64(union)
}
