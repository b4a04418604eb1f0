package patterns

import (
	"fmt"

	"github.com/airvair/STAMPWebTool-sub001/internal/authority"
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

// communicationBaseScore reflects that a silent channel between two
// coordinating controllers is a classic multi-controller hazard source.
const communicationBaseScore = 0.8

// CommunicationFailure emits one candidate per unordered pair of
// controllers that each own at least one communication-verb action: both
// actions withheld, provision type, instance level.
func CommunicationFailure(am *authority.Model) []model.Candidate {
	commAction := make(map[string]model.ControlAction)
	for _, c := range am.Controllers {
		for _, actionID := range am.OwnedActions(c.ID) {
			a, ok := am.Action(actionID)
			if !ok || !matchesVocab(a.Verb, communicationVerbs) {
				continue
			}
			commAction[c.ID] = a
			break
		}
	}

	var out []model.Candidate
	for i := 0; i < len(am.Controllers); i++ {
		first, ok := commAction[am.Controllers[i].ID]
		if !ok {
			continue
		}
		for j := i + 1; j < len(am.Controllers); j++ {
			second, ok := commAction[am.Controllers[j].ID]
			if !ok {
				continue
			}
			out = append(out, communicationCandidate(am, first, second))
		}
	}
	return out
}

func communicationCandidate(am *authority.Model, a, b model.ControlAction) model.Candidate {
	return model.Candidate{
		Type:  model.InteractionProvision,
		Level: model.LevelInstance,
		Elements: []model.CombinationElement{
			{ControllerID: a.ControllerID, ActionID: a.ID, Provided: false},
			{ControllerID: b.ControllerID, ActionID: b.ID, Provided: false},
		},
		Description: fmt.Sprintf("Communication failure: %s withholds %s %s and %s withholds %s %s",
			controllerName(am, a.ControllerID), a.Verb, a.Object,
			controllerName(am, b.ControllerID), b.Verb, b.Object),
		RiskScore: communicationBaseScore,
		Rationale: "both controllers own communication actions; simultaneous silence breaks coordination",
	}
}

func controllerName(am *authority.Model, id string) string {
	if c, ok := am.Controller(id); ok && c.Name != "" {
		return c.Name
	}
	return id
}
