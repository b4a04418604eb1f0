package engine

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/airvair/STAMPWebTool-sub001/internal/enumerate"
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

// scenarioContext combines the transmit/receive pair, the contested pump,
// and the abort/stop emergency actions from the acceptance scenarios.
func scenarioContext() *model.AnalysisContext {
	return &model.AnalysisContext{
		Controllers: []model.Controller{
			{ID: "c1", Name: "Flight Crew"},
			{ID: "c2", Name: "Ground Station"},
			{ID: "c3", Name: "Autoflight"},
		},
		Actions: []model.ControlAction{
			{ID: "a1", ControllerID: "c1", Verb: "transmit", Object: "status"},
			{ID: "a2", ControllerID: "c2", Verb: "receive", Object: "status"},
			{ID: "a3", ControllerID: "c1", Verb: "activate", Object: "pump"},
			{ID: "a4", ControllerID: "c2", Verb: "activate", Object: "pump"},
			{ID: "a5", ControllerID: "c3", Verb: "activate", Object: "pump"},
			{ID: "a6", ControllerID: "c1", Verb: "abort", Object: "mission"},
			{ID: "a7", ControllerID: "c2", Verb: "emergency", Object: "stop"},
		},
	}
}

func newEnumerator(t *testing.T, cfg Config) *Enumerator {
	t.Helper()
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := AviationPreset()
	cfg.ScoreThreshold = 2
	if _, err := New(cfg); err == nil {
		t.Fatal("expected construction error")
	}
}

func TestEnumerateInvariants(t *testing.T) {
	cfg := AviationPreset()
	cfg.ScoreThreshold = 0
	e := newEnumerator(t, cfg)

	res, err := e.Enumerate(context.Background(), scenarioContext())
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if res.Stats.Total == 0 {
		t.Fatal("expected candidates")
	}

	ac := scenarioContext()
	owned := make(map[string]string)
	for _, a := range ac.Actions {
		owned[a.ID] = a.ControllerID
	}

	for _, c := range res.Candidates {
		if len(c.Elements) < 2 || len(c.Elements) > cfg.MaxCombinationSize {
			t.Errorf("element count %d outside [2,%d]", len(c.Elements), cfg.MaxCombinationSize)
		}
		if c.RiskScore < 0 || c.RiskScore > 1 {
			t.Errorf("score %v outside [0,1]", c.RiskScore)
		}
		for _, el := range c.Elements {
			if owned[el.ActionID] != el.ControllerID {
				t.Errorf("element (%s,%s) not in authority model", el.ControllerID, el.ActionID)
			}
		}
	}
}

func TestEnumerateDeterministic(t *testing.T) {
	e := newEnumerator(t, AviationPreset())

	first, err := e.Enumerate(context.Background(), scenarioContext())
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	second, err := e.Enumerate(context.Background(), scenarioContext())
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}

	if !reflect.DeepEqual(first.Candidates, second.Candidates) {
		t.Error("identical runs produced different candidate lists")
	}
	if !reflect.DeepEqual(first.Stats, second.Stats) {
		t.Error("identical runs produced different statistics")
	}
}

func TestEnumerateRankedDescending(t *testing.T) {
	cfg := AviationPreset()
	cfg.ScoreThreshold = 0
	e := newEnumerator(t, cfg)

	res, err := e.Enumerate(context.Background(), scenarioContext())
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	for i := 1; i < len(res.Candidates); i++ {
		if res.Candidates[i].RiskScore > res.Candidates[i-1].RiskScore {
			t.Fatalf("candidates not sorted at %d: %v > %v", i,
				res.Candidates[i].RiskScore, res.Candidates[i-1].RiskScore)
		}
	}
}

func TestEnumerateRejectsDanglingAction(t *testing.T) {
	ac := scenarioContext()
	ac.Actions = append(ac.Actions, model.ControlAction{ID: "ax", ControllerID: "ghost", Verb: "stop", Object: "engine"})

	e := newEnumerator(t, AviationPreset())
	if _, err := e.Enumerate(context.Background(), ac); err == nil {
		t.Fatal("expected input validation error")
	}
}

func TestEnumerateScenarioACommunication(t *testing.T) {
	e := newEnumerator(t, AviationPreset())
	res, err := e.Enumerate(context.Background(), scenarioContext())
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}

	found := false
	for _, c := range res.Candidates {
		if strings.Contains(c.Description, "Communication failure") {
			found = true
			if c.Type != model.InteractionProvision {
				t.Errorf("communication candidate type = %s", c.Type)
			}
			if c.RiskScore < 0.8 {
				t.Errorf("communication candidate score = %v, want >= 0.8", c.RiskScore)
			}
		}
	}
	if !found {
		t.Error("no communication-failure candidate in final result")
	}
}

func TestEnumerateScenarioBResourceConflict(t *testing.T) {
	e := newEnumerator(t, AviationPreset())
	res, err := e.Enumerate(context.Background(), scenarioContext())
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}

	count := 0
	for _, c := range res.Candidates {
		if strings.Contains(c.Description, "Resource conflict") {
			count++
			if len(c.Elements) != 3 {
				t.Errorf("resource conflict spans %d controllers, want 3", len(c.Elements))
			}
		}
	}
	if count != 1 {
		t.Errorf("got %d resource-conflict candidates, want exactly 1", count)
	}
}

func TestEnumerateScenarioCEmergencyTiming(t *testing.T) {
	e := newEnumerator(t, AviationPreset())
	res, err := e.Enumerate(context.Background(), scenarioContext())
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}

	found := false
	for _, c := range res.Candidates {
		if !strings.Contains(c.Description, "Emergency timing conflict") {
			continue
		}
		found = true
		if c.Type != model.InteractionTiming {
			t.Errorf("emergency candidate type = %s", c.Type)
		}
		var early, late bool
		for _, el := range c.Elements {
			switch el.Timing {
			case model.TimingEarly:
				early = true
			case model.TimingLate:
				late = true
			}
		}
		if !early || !late {
			t.Error("emergency candidate missing early/late tags")
		}
	}
	if !found {
		t.Error("no emergency-timing candidate in final result")
	}
}

func TestEnumerateScenarioDHighThresholdEmpty(t *testing.T) {
	cfg := AviationPreset()
	cfg.ScoreThreshold = 0.95
	cfg.ApplyHazardRelevance = false
	e := newEnumerator(t, cfg)

	res, err := e.Enumerate(context.Background(), scenarioContext())
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(res.Candidates) != 0 {
		t.Errorf("got %d candidates, want none above threshold 0.95", len(res.Candidates))
	}
	if len(res.Recommendations) != 1 || !strings.Contains(res.Recommendations[0], "threshold") {
		t.Errorf("empty-result fallback missing: %v", res.Recommendations)
	}
}

func TestEnumerateScenarioEExclusion(t *testing.T) {
	e := newEnumerator(t, AviationPreset())

	// First run to capture the communication candidate's structure.
	res, err := e.Enumerate(context.Background(), scenarioContext())
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	var comm *model.Candidate
	for i := range res.Candidates {
		if strings.Contains(res.Candidates[i].Description, "Communication failure") {
			comm = &res.Candidates[i]
			break
		}
	}
	if comm == nil {
		t.Fatal("no communication candidate to exclude")
	}

	ac := scenarioContext()
	ac.Policy.Excluded = []model.Candidate{comm.Clone()}

	res, err = e.Enumerate(context.Background(), ac)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	for _, c := range res.Candidates {
		if model.StructuralKey(c) == model.StructuralKey(*comm) && c.Type == comm.Type {
			t.Error("excluded candidate present in final result")
		}
	}
}

func TestEnumerateMandatorySurvivesRanking(t *testing.T) {
	ac := scenarioContext()
	mandatory := model.Candidate{
		Type:  model.InteractionProvision,
		Level: model.LevelInstance,
		Elements: []model.CombinationElement{
			{ControllerID: "c1", ActionID: "a1", Provided: true},
			{ControllerID: "c3", ActionID: "a5", Provided: false},
		},
		Description: "Analyst-flagged combination kept under review",
		RiskScore:   0.97,
	}
	ac.Policy.Mandatory = []model.Candidate{mandatory}

	e := newEnumerator(t, AviationPreset())
	res, err := e.Enumerate(context.Background(), ac)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(res.Candidates) == 0 || res.Candidates[0].Description != mandatory.Description {
		t.Error("mandatory candidate should rank first")
	}
}

func TestEnumerateInterchangePruning(t *testing.T) {
	ac := scenarioContext()
	ac.Interchange = model.NewInterchangeRelation([][]string{{"c1", "c2"}})

	e := newEnumerator(t, AviationPreset())
	res, err := e.Enumerate(context.Background(), ac)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}

	// c1 and c2 both activate the pump; with the pair declared
	// interchangeable, no two final candidates may be rotations of each
	// other.
	seen := make(map[string]string)
	for _, c := range res.Candidates {
		key := prunedKey(c, &ac.Interchange)
		if prior, ok := seen[key]; ok {
			t.Errorf("equivalent candidates survived pruning:\n  %s\n  %s", prior, c.Description)
		}
		seen[key] = c.Description
	}
}

// prunedKey mirrors the engine's equivalence canonicalization closely
// enough for the rotation check: canonical controllers plus the
// provided/timing pattern.
func prunedKey(c model.Candidate, rel *model.InterchangeRelation) string {
	parts := make([]string, 0, len(c.Elements))
	for _, el := range c.Elements {
		parts = append(parts, rel.Canonical(el.ControllerID)+"/"+el.ActionID+"/"+
			map[bool]string{true: "p", false: "w"}[el.Provided]+"/"+string(el.Timing))
	}
	return string(c.Type) + strings.Join(parts, ";")
}

func TestEnumerateDedupesAgainstExistingEntries(t *testing.T) {
	e := newEnumerator(t, AviationPreset())
	res, err := e.Enumerate(context.Background(), scenarioContext())
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(res.Candidates) == 0 {
		t.Fatal("expected candidates")
	}

	ac := scenarioContext()
	ac.Entries = []model.ExistingEntry{{ID: "e1", Description: res.Candidates[0].Description}}

	rerun, err := e.Enumerate(context.Background(), ac)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	for _, c := range rerun.Candidates {
		if c.Description == ac.Entries[0].Description {
			t.Error("candidate matching an existing entry survived dedup")
		}
	}
}

func TestEnumerateBudgetAbortsRun(t *testing.T) {
	cfg := AviationPreset()
	cfg.MaxCandidates = 3
	e := newEnumerator(t, cfg)

	res, err := e.Enumerate(context.Background(), scenarioContext())
	if !errors.Is(err, enumerate.ErrBudgetExceeded) {
		t.Fatalf("err = %v, want ErrBudgetExceeded", err)
	}
	if res != nil {
		t.Error("aborted run must not return a partial result")
	}
}

func TestEnumerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := newEnumerator(t, AviationPreset())
	res, err := e.Enumerate(ctx, scenarioContext())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if res != nil {
		t.Error("cancelled run must not return a partial result")
	}
}

func TestEnumerateThresholdRespected(t *testing.T) {
	cfg := AviationPreset()
	cfg.ScoreThreshold = 0.75
	e := newEnumerator(t, cfg)

	res, err := e.Enumerate(context.Background(), scenarioContext())
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	for _, c := range res.Candidates {
		if c.RiskScore < 0.75 {
			t.Errorf("candidate below threshold in result: %v", c.RiskScore)
		}
	}
}

func TestEnumerateInputNotMutated(t *testing.T) {
	ac := scenarioContext()
	e := newEnumerator(t, AviationPreset())
	if _, err := e.Enumerate(context.Background(), ac); err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if !reflect.DeepEqual(ac.Actions, scenarioContext().Actions) {
		t.Error("action snapshot was mutated")
	}
	if !reflect.DeepEqual(ac.Controllers, scenarioContext().Controllers) {
		t.Error("controller snapshot was mutated")
	}
}
