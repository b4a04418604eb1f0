package report

import (
	"strings"

	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

// Fixed guidance strings, each triggered by a property of the result set.
const (
	recommendHighRisk = "High-risk combinations found: prioritize these for detailed causal scenario analysis."
	recommendComms    = "Communication-dependent combinations found: review inter-controller communication protocols and acknowledgment procedures."
	recommendTiming   = "Timing-sensitive combinations found: analyze sequencing constraints and define explicit handoff ordering between controllers."
	recommendResource = "Shared-resource conflicts found: define ownership and arbitration rules for contested resources."
	recommendEmpty    = "No unsafe combinations cleared the score threshold: consider lowering the threshold or enriching the control structure model."
)

// Recommendations emits rule-triggered guidance for the ranked result.
// Rules fire independently; the empty-result fallback fires alone.
func Recommendations(candidates []model.Candidate) []string {
	if len(candidates) == 0 {
		return []string{recommendEmpty}
	}

	var (
		highRisk bool
		comms    bool
		timing   bool
		resource bool
	)
	for _, c := range candidates {
		if c.RiskScore >= HighRiskCutoff {
			highRisk = true
		}
		if c.Type == model.InteractionTiming {
			timing = true
		}
		desc := strings.ToLower(c.Description)
		if strings.Contains(desc, "communication") {
			comms = true
		}
		if strings.Contains(desc, "resource conflict") {
			resource = true
		}
	}

	var out []string
	if highRisk {
		out = append(out, recommendHighRisk)
	}
	if comms {
		out = append(out, recommendComms)
	}
	if timing {
		out = append(out, recommendTiming)
	}
	if resource {
		out = append(out, recommendResource)
	}
	return out
}
