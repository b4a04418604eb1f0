package patterns

import (
	"strings"
	"testing"

	"github.com/airvair/STAMPWebTool-sub001/internal/authority"
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

func buildModel(actions ...model.ControlAction) *authority.Model {
	seen := make(map[string]bool)
	var controllers []model.Controller
	for _, a := range actions {
		if !seen[a.ControllerID] {
			seen[a.ControllerID] = true
			controllers = append(controllers, model.Controller{ID: a.ControllerID, Name: a.ControllerID})
		}
	}
	return authority.Build(controllers, actions)
}

func TestCommunicationFailurePair(t *testing.T) {
	// Scenario A: transmit/receive pair across two controllers.
	am := buildModel(
		model.ControlAction{ID: "a1", ControllerID: "c1", Verb: "transmit", Object: "status"},
		model.ControlAction{ID: "a2", ControllerID: "c2", Verb: "receive", Object: "status"},
	)

	cands := CommunicationFailure(am)
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1", len(cands))
	}

	c := cands[0]
	if c.Type != model.InteractionProvision {
		t.Errorf("type = %s, want provision", c.Type)
	}
	if c.Level != model.LevelInstance {
		t.Errorf("level = %s, want instance", c.Level)
	}
	if c.RiskScore != 0.8 {
		t.Errorf("score = %v, want 0.8", c.RiskScore)
	}
	for _, el := range c.Elements {
		if el.Provided {
			t.Error("communication failure elements must be withheld")
		}
	}
	if !strings.Contains(strings.ToLower(c.Description), "communication") {
		t.Errorf("description %q lacks the communication keyword", c.Description)
	}
}

func TestCommunicationFailureVerbPrefix(t *testing.T) {
	tests := []struct {
		verb string
		want bool
	}{
		{"transmit", true},
		{"Transmits", true},
		{"ACKNOWLEDGE", true},
		{"reporting", true},
		{"engage", false},
		{"brake", false},
	}

	for _, tt := range tests {
		if got := matchesVocab(tt.verb, communicationVerbs); got != tt.want {
			t.Errorf("matchesVocab(%q) = %v, want %v", tt.verb, got, tt.want)
		}
	}
}

func TestCommunicationFailureNeedsBothSides(t *testing.T) {
	am := buildModel(
		model.ControlAction{ID: "a1", ControllerID: "c1", Verb: "transmit", Object: "status"},
		model.ControlAction{ID: "a2", ControllerID: "c2", Verb: "engage", Object: "brakes"},
	)
	if cands := CommunicationFailure(am); len(cands) != 0 {
		t.Errorf("got %d candidates, want 0 when only one side communicates", len(cands))
	}
}

func TestResourceConflictThreeContenders(t *testing.T) {
	// Scenario B: three controllers all activate the same pump.
	am := buildModel(
		model.ControlAction{ID: "a1", ControllerID: "c1", Verb: "activate", Object: "pump"},
		model.ControlAction{ID: "a2", ControllerID: "c2", Verb: "activate", Object: "pump"},
		model.ControlAction{ID: "a3", ControllerID: "c3", Verb: "activate", Object: "pump"},
	)

	cands := ResourceConflict(am)
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want exactly 1", len(cands))
	}

	c := cands[0]
	if len(c.Elements) != 3 {
		t.Errorf("spans %d controllers, want 3", len(c.Elements))
	}
	if c.RiskScore != 0.7 {
		t.Errorf("score = %v, want 0.7", c.RiskScore)
	}
	for _, el := range c.Elements {
		if !el.Provided {
			t.Error("resource conflict elements must all be provided")
		}
	}
	if !strings.Contains(strings.ToLower(c.Description), "resource conflict") {
		t.Errorf("description %q lacks the resource conflict keyword", c.Description)
	}
}

func TestResourceConflictCapsAtThree(t *testing.T) {
	am := buildModel(
		model.ControlAction{ID: "a1", ControllerID: "c1", Verb: "operate", Object: "Crane"},
		model.ControlAction{ID: "a2", ControllerID: "c2", Verb: "control", Object: "crane"},
		model.ControlAction{ID: "a3", ControllerID: "c3", Verb: "operate", Object: "crane "},
		model.ControlAction{ID: "a4", ControllerID: "c4", Verb: "operate", Object: "crane"},
	)

	cands := ResourceConflict(am)
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1", len(cands))
	}
	if len(cands[0].Elements) != 3 {
		t.Errorf("spans %d controllers, want cap of 3", len(cands[0].Elements))
	}
}

func TestResourceConflictSingleOwnerIgnored(t *testing.T) {
	am := buildModel(
		model.ControlAction{ID: "a1", ControllerID: "c1", Verb: "activate", Object: "pump"},
		model.ControlAction{ID: "a2", ControllerID: "c1", Verb: "deactivate", Object: "pump"},
	)
	if cands := ResourceConflict(am); len(cands) != 0 {
		t.Errorf("got %d candidates, want 0 for a single-owner resource", len(cands))
	}
}

func TestEmergencyTimingPair(t *testing.T) {
	// Scenario C: abort mission vs emergency stop.
	am := buildModel(
		model.ControlAction{ID: "a1", ControllerID: "c1", Verb: "abort", Object: "mission"},
		model.ControlAction{ID: "a2", ControllerID: "c2", Verb: "emergency", Object: "stop"},
	)

	cands := EmergencyTiming(am)
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1", len(cands))
	}

	c := cands[0]
	if c.Type != model.InteractionTiming {
		t.Errorf("type = %s, want timing", c.Type)
	}
	if c.RiskScore != 0.9 {
		t.Errorf("score = %v, want 0.9", c.RiskScore)
	}
	if c.Elements[0].Timing != model.TimingEarly || c.Elements[1].Timing != model.TimingLate {
		t.Errorf("timing tags = %q/%q, want early/late", c.Elements[0].Timing, c.Elements[1].Timing)
	}
}

func TestEmergencyTimingObjectMatch(t *testing.T) {
	// "deploy" verb and "brakes" object both hit the emergency vocabulary.
	am := buildModel(
		model.ControlAction{ID: "a1", ControllerID: "c1", Verb: "deploy", Object: "spoilers"},
		model.ControlAction{ID: "a2", ControllerID: "c2", Verb: "apply", Object: "brakes"},
	)
	if cands := EmergencyTiming(am); len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1", len(cands))
	}
}

func TestEmergencyTimingSameControllerSkipped(t *testing.T) {
	am := buildModel(
		model.ControlAction{ID: "a1", ControllerID: "c1", Verb: "abort", Object: "mission"},
		model.ControlAction{ID: "a2", ControllerID: "c1", Verb: "emergency", Object: "stop"},
	)
	if cands := EmergencyTiming(am); len(cands) != 0 {
		t.Errorf("got %d candidates, want 0 within one controller", len(cands))
	}
}
