// Package snapshot loads read-only analysis-context snapshots from YAML
// files exported by the host analysis store.
package snapshot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/airvair/STAMPWebTool-sub001/internal/authority"
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

// Load reads an analysis context from a YAML file and validates it.
func Load(path string) (*model.AnalysisContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	var ac model.AnalysisContext
	if err := yaml.Unmarshal(data, &ac); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	if err := Validate(&ac); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return &ac, nil
}

// Validate checks referential integrity of a snapshot before it reaches
// the engine: unique controller and action IDs, and no action owned by an
// unknown controller.
func Validate(ac *model.AnalysisContext) error {
	controllers := make(map[string]bool, len(ac.Controllers))
	for _, c := range ac.Controllers {
		if c.ID == "" {
			return fmt.Errorf("controller with empty ID")
		}
		if controllers[c.ID] {
			return fmt.Errorf("duplicate controller ID %q", c.ID)
		}
		controllers[c.ID] = true
	}

	actions := make(map[string]bool, len(ac.Actions))
	for _, a := range ac.Actions {
		if a.ID == "" {
			return fmt.Errorf("control action with empty ID")
		}
		if actions[a.ID] {
			return fmt.Errorf("duplicate control action ID %q", a.ID)
		}
		actions[a.ID] = true
	}
	if err := authority.Validate(ac.Controllers, ac.Actions); err != nil {
		return err
	}

	for _, group := range ac.Interchange.Groups {
		for _, id := range group {
			if !controllers[id] {
				return fmt.Errorf("interchange group references unknown controller %q", id)
			}
		}
	}
	return nil
}
