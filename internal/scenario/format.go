package scenario

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatText renders run results as human-readable text: one line per
// scenario, failing cases expanded beneath it, totals at the end.
func FormatText(results []*RunResult) string {
	var b strings.Builder

	totalCases := 0
	totalPassed := 0
	failedScenarios := 0

	for _, r := range results {
		totalCases += r.Total
		totalPassed += r.Passed

		status := "pass"
		if r.Failed > 0 {
			status = "FAIL"
			failedScenarios++
		}
		fmt.Fprintf(&b, "%s  %s  %d/%d cases\n", status, r.Name, r.Passed, r.Total)
		for _, c := range r.Cases {
			if c.Passed {
				continue
			}
			fmt.Fprintf(&b, "      case %d %q: want %s, got %s\n",
				c.Index, c.Name, c.Expected, c.Actual)
		}
	}

	fmt.Fprintf(&b, "\n%d/%d cases passed across %d scenarios", totalPassed, totalCases, len(results))
	if failedScenarios > 0 {
		fmt.Fprintf(&b, ", %d failed", failedScenarios)
	}
	b.WriteString("\n")

	return b.String()
}

// FormatJSON renders run results as JSON.
func FormatJSON(results []*RunResult) (string, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal results: %w", err)
	}
	return string(data), nil
}
