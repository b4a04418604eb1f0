package patterns

import (
	"fmt"
	"sort"
	"strings"

	"github.com/airvair/STAMPWebTool-sub001/internal/authority"
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

const resourceBaseScore = 0.7

// maxResourceControllers caps how many contenders one resource-conflict
// candidate spans.
const maxResourceControllers = 3

// ResourceConflict groups control-verb actions by normalized object text
// and, for every object contested by more than one controller, emits one
// candidate covering up to three contenders with all actions provided.
func ResourceConflict(am *authority.Model) []model.Candidate {
	type contender struct {
		controllerID string
		action       model.ControlAction
	}
	byObject := make(map[string][]contender)

	for _, a := range am.Actions {
		if !matchesVocab(a.Verb, controlVerbs) {
			continue
		}
		obj := normalizeObject(a.Object)
		if obj == "" {
			continue
		}
		contenders := byObject[obj]
		duplicate := false
		for _, c := range contenders {
			if c.controllerID == a.ControllerID {
				duplicate = true
				break
			}
		}
		if !duplicate {
			byObject[obj] = append(contenders, contender{controllerID: a.ControllerID, action: a})
		}
	}

	objects := make([]string, 0, len(byObject))
	for obj, contenders := range byObject {
		if len(contenders) > 1 {
			objects = append(objects, obj)
		}
	}
	sort.Strings(objects)

	var out []model.Candidate
	for _, obj := range objects {
		contenders := byObject[obj]
		sort.Slice(contenders, func(i, j int) bool { return contenders[i].controllerID < contenders[j].controllerID })
		if len(contenders) > maxResourceControllers {
			contenders = contenders[:maxResourceControllers]
		}

		elems := make([]model.CombinationElement, len(contenders))
		var parts []string
		for i, c := range contenders {
			elems[i] = model.CombinationElement{ControllerID: c.controllerID, ActionID: c.action.ID, Provided: true}
			parts = append(parts, fmt.Sprintf("%s provides %s %s",
				controllerName(am, c.controllerID), c.action.Verb, c.action.Object))
		}

		out = append(out, model.Candidate{
			Type:        model.InteractionProvision,
			Level:       model.LevelInstance,
			Elements:    elems,
			Description: fmt.Sprintf("Resource conflict over %s: %s", obj, strings.Join(parts, " and ")),
			RiskScore:   resourceBaseScore,
			Rationale:   fmt.Sprintf("%d controllers command the same resource %q", len(contenders), obj),
		})
	}
	return out
}
