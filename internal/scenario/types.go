// Package scenario runs assertion fixtures against the enumeration
// engine: each YAML file carries an analysis context, optional config
// overrides, and expectations over the ranked result.
package scenario

import (
	"github.com/airvair/STAMPWebTool-sub001/internal/engine"
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

// Case is one expectation over the enumeration result. Candidates are
// selected by description substring and optional interaction type; the
// selection must satisfy the count and score bounds. An absent case
// inverts the check: the selection must be empty.
type Case struct {
	Name     string                `yaml:"name"`
	Contains string                `yaml:"contains,omitempty"`
	Type     model.InteractionType `yaml:"type,omitempty"`
	MinCount int                   `yaml:"min_count,omitempty"`
	MaxCount int                   `yaml:"max_count,omitempty"` // 0 = unbounded
	MinScore float64               `yaml:"min_score,omitempty"`
	Absent   bool                  `yaml:"absent,omitempty"`
}

// Scenario is a named fixture: context, config, and expectations.
type Scenario struct {
	Name    string                `yaml:"name"`
	Config  engine.Config         `yaml:"config"`
	Context model.AnalysisContext `yaml:"context"`
	Cases   []Case                `yaml:"cases"`
}

// CaseResult is the outcome of checking one expectation.
type CaseResult struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Passed   bool   `json:"passed"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// RunResult is the outcome of running one scenario file.
type RunResult struct {
	File   string       `json:"file"`
	Name   string       `json:"name"`
	Total  int          `json:"total"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Cases  []CaseResult `json:"cases"`
}
