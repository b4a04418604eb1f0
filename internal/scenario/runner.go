package scenario

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/airvair/STAMPWebTool-sub001/internal/engine"
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
	"github.com/airvair/STAMPWebTool-sub001/internal/snapshot"
)

// Run enumerates the scenario's context once and checks every case
// against the shared result.
func Run(ctx context.Context, s *Scenario) (*RunResult, error) {
	e, err := engine.New(s.Config)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	if err := snapshot.Validate(&s.Context); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	res, err := e.Enumerate(ctx, &s.Context)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	result := &RunResult{Name: s.Name, Total: len(s.Cases)}
	for i, c := range s.Cases {
		cr := check(c, res.Candidates)
		cr.Index = i + 1
		if cr.Passed {
			result.Passed++
		} else {
			result.Failed++
		}
		result.Cases = append(result.Cases, cr)
	}
	return result, nil
}

func check(c Case, candidates []model.Candidate) CaseResult {
	minCount := c.MinCount
	if minCount == 0 {
		minCount = 1
	}
	if c.Absent {
		minCount = 0
	}

	matched := 0
	lowestScore := 1.0
	for _, cand := range candidates {
		if c.Contains != "" && !strings.Contains(strings.ToLower(cand.Description), strings.ToLower(c.Contains)) {
			continue
		}
		if c.Type != "" && cand.Type != c.Type {
			continue
		}
		matched++
		if cand.RiskScore < lowestScore {
			lowestScore = cand.RiskScore
		}
	}

	cr := CaseResult{
		Name:     c.Name,
		Expected: expectation(c, minCount),
		Actual:   fmt.Sprintf("%d matching", matched),
	}

	if c.Absent {
		cr.Passed = matched == 0
		return cr
	}
	if matched < minCount {
		return cr
	}
	if c.MaxCount > 0 && matched > c.MaxCount {
		return cr
	}
	if c.MinScore > 0 && matched > 0 && lowestScore < c.MinScore {
		cr.Actual = fmt.Sprintf("%d matching, lowest score %.2f", matched, lowestScore)
		return cr
	}

	cr.Passed = true
	return cr
}

func expectation(c Case, minCount int) string {
	var parts []string
	if c.Absent {
		parts = append(parts, "0 matching")
	} else {
		parts = append(parts, fmt.Sprintf(">=%d matching", minCount))
	}
	if c.MaxCount > 0 {
		parts = append(parts, fmt.Sprintf("<=%d", c.MaxCount))
	}
	if c.Contains != "" {
		parts = append(parts, fmt.Sprintf("containing %q", c.Contains))
	}
	if c.Type != "" {
		parts = append(parts, fmt.Sprintf("type %s", c.Type))
	}
	if c.MinScore > 0 {
		parts = append(parts, fmt.Sprintf("score >= %.2f", c.MinScore))
	}
	return strings.Join(parts, ", ")
}

// LoadAndRun reads a scenario YAML file and runs it. Config fields the
// file omits fall back to the aviation preset.
func LoadAndRun(ctx context.Context, path string) (*RunResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	s := Scenario{Config: engine.AviationPreset()}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	result, err := Run(ctx, &s)
	if err != nil {
		return nil, err
	}
	result.File = path
	return result, nil
}
