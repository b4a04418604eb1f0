package patterns

import (
	"fmt"

	"github.com/airvair/STAMPWebTool-sub001/internal/authority"
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

const emergencyBaseScore = 0.9

// EmergencyTiming pairs emergency-vocabulary actions owned by different
// controllers into timing-type candidates: one action too early, the
// other too late. Emergency responses are the interactions where ordering
// matters most, hence the highest heuristic base score.
func EmergencyTiming(am *authority.Model) []model.Candidate {
	var emergency []model.ControlAction
	for _, a := range am.Actions {
		if matchesVocab(a.Verb, emergencyWords) || matchesVocab(a.Object, emergencyWords) {
			emergency = append(emergency, a)
		}
	}

	var out []model.Candidate
	for i := 0; i < len(emergency); i++ {
		for j := i + 1; j < len(emergency); j++ {
			a, b := emergency[i], emergency[j]
			if a.ControllerID == b.ControllerID {
				continue
			}
			out = append(out, model.Candidate{
				Type:  model.InteractionTiming,
				Level: model.LevelInstance,
				Elements: []model.CombinationElement{
					{ControllerID: a.ControllerID, ActionID: a.ID, Provided: true, Timing: model.TimingEarly},
					{ControllerID: b.ControllerID, ActionID: b.ID, Provided: true, Timing: model.TimingLate},
				},
				Description: fmt.Sprintf("Emergency timing conflict: %s issues %s %s too early while %s issues %s %s too late",
					controllerName(am, a.ControllerID), a.Verb, a.Object,
					controllerName(am, b.ControllerID), b.Verb, b.Object),
				RiskScore: emergencyBaseScore,
				Rationale: "uncoordinated emergency actions across controllers",
			})
		}
	}
	return out
}
