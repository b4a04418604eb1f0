// Package patterns contributes heuristic candidates from verb/object text
// patterns: communication failures, shared-resource conflicts, and
// emergency-timing conflicts. The three generators are independent pure
// functions; overlap with systematic output is collapsed downstream, not
// here.
package patterns

import "strings"

// Vocabularies are deterministic prefix tables; no fuzzy matching.
var (
	communicationVerbs = []string{
		"transmit", "receive", "announce", "report",
		"request", "acknowledge", "confirm",
	}
	controlVerbs = []string{
		"activate", "deactivate", "engage", "disengage", "control", "operate",
	}
	emergencyWords = []string{
		"abort", "emergency", "eject", "deploy", "stop", "brake", "alert", "warn",
	}
)

// matchesVocab reports whether any vocabulary word is a case-insensitive
// prefix of the text.
func matchesVocab(text string, vocab []string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, w := range vocab {
		if strings.HasPrefix(lower, w) {
			return true
		}
	}
	return false
}

// normalizeObject canonicalizes object text for resource grouping.
func normalizeObject(object string) string {
	return strings.Join(strings.Fields(strings.ToLower(object)), " ")
}
