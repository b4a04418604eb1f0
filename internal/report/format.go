package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

// FormatText renders an enumeration result as human-readable text.
func FormatText(r *model.EnumerationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Enumerated %d candidate combination", r.Stats.Total)
	if r.Stats.Total != 1 {
		b.WriteString("s")
	}
	fmt.Fprintf(&b, " in %s\n\n", r.Duration.Round(time.Microsecond))

	for i, c := range r.Candidates {
		fmt.Fprintf(&b, "%3d. [%.2f] %-9s %-8s %s\n", i+1, c.RiskScore, c.Type, c.Level, c.Description)
	}

	if r.Stats.Total > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "high risk: %d  mean score: %.2f", r.Stats.HighRisk, r.Stats.MeanScore)
		fmt.Fprintf(&b, "  provision: %d  timing: %d\n",
			r.Stats.ByType[model.InteractionProvision], r.Stats.ByType[model.InteractionTiming])
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", rec)
		}
	}
	return b.String()
}

// FormatJSON renders an enumeration result as indented JSON.
func FormatJSON(r *model.EnumerationResult) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	return string(data), nil
}
