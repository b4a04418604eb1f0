package model

import "time"

// InteractionType classifies how the actions in a combination interact.
type InteractionType string

const (
	// InteractionProvision covers joint provide/withhold patterns.
	InteractionProvision InteractionType = "provision"
	// InteractionTiming covers too-early/too-late ordering patterns.
	InteractionTiming InteractionType = "timing"
)

// AbstractionLevel records whether a candidate originated from a controller
// equivalence class or from concrete controller instances.
type AbstractionLevel string

const (
	LevelClass    AbstractionLevel = "class"
	LevelInstance AbstractionLevel = "instance"
)

// TimingTag marks an element's position in a timing-type combination.
type TimingTag string

const (
	TimingNone  TimingTag = ""
	TimingEarly TimingTag = "early"
	TimingLate  TimingTag = "late"
)

// Controller is an entity that can issue control actions.
type Controller struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// ControlAction is one instruction a controller may issue.
type ControlAction struct {
	ID           string `yaml:"id" json:"id"`
	ControllerID string `yaml:"controller_id" json:"controller_id"`
	Verb         string `yaml:"verb" json:"verb"`
	Object       string `yaml:"object" json:"object"`
	Description  string `yaml:"description,omitempty" json:"description,omitempty"`
}

// CombinationElement is one participant of a candidate combination.
// Provided=false represents the action-withheld variant of the pattern.
type CombinationElement struct {
	ControllerID string    `yaml:"controller_id" json:"controller_id"`
	ActionID     string    `yaml:"action_id" json:"action_id"`
	Provided     bool      `yaml:"provided" json:"provided"`
	Timing       TimingTag `yaml:"timing,omitempty" json:"timing,omitempty"`
}

// Candidate is a potential unsafe combination of control actions proposed
// for human review. It is a transient value; the engine never persists it.
type Candidate struct {
	Type        InteractionType      `yaml:"type" json:"type"`
	Level       AbstractionLevel     `yaml:"level" json:"level"`
	Elements    []CombinationElement `yaml:"elements" json:"elements"`
	Description string               `yaml:"description" json:"description"`
	RiskScore   float64              `yaml:"risk_score" json:"risk_score"`
	Rationale   string               `yaml:"rationale,omitempty" json:"rationale,omitempty"`
}

// Clone returns a deep copy so pipeline stages can rewrite elements
// without aliasing the input slice.
func (c Candidate) Clone() Candidate {
	out := c
	out.Elements = make([]CombinationElement, len(c.Elements))
	copy(out.Elements, c.Elements)
	return out
}

// Hazard is an analyst-recorded system hazard, read-only for this engine.
type Hazard struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// ExistingEntry is an analyst-confirmed combination already recorded in the
// analysis store, used only to deduplicate newly generated candidates.
type ExistingEntry struct {
	ID          string  `yaml:"id" json:"id"`
	Description string  `yaml:"description" json:"description"`
	RiskScore   float64 `yaml:"risk_score,omitempty" json:"risk_score,omitempty"`
}

// SpecialPolicy carries analyst-supplied overrides layered onto the pool:
// mandatory candidates always included, excluded candidates always removed,
// and score adjustments keyed by structural key.
type SpecialPolicy struct {
	Mandatory   []Candidate        `yaml:"mandatory,omitempty" json:"mandatory,omitempty"`
	Excluded    []Candidate        `yaml:"excluded,omitempty" json:"excluded,omitempty"`
	Adjustments map[string]float64 `yaml:"adjustments,omitempty" json:"adjustments,omitempty"`
}

// AnalysisContext is the read-only snapshot of the host analysis store that
// one enumeration run operates on.
type AnalysisContext struct {
	Controllers []Controller        `yaml:"controllers" json:"controllers"`
	Actions     []ControlAction     `yaml:"actions" json:"actions"`
	Hazards     []Hazard            `yaml:"hazards,omitempty" json:"hazards,omitempty"`
	Entries     []ExistingEntry     `yaml:"entries,omitempty" json:"entries,omitempty"`
	Interchange InterchangeRelation `yaml:"interchange,omitempty" json:"interchange,omitempty"`
	Policy      SpecialPolicy       `yaml:"policy,omitempty" json:"policy,omitempty"`
}

// Statistics aggregates the final candidate list. ByLevel counts the
// level a candidate originated at: candidates expanded from a class keep
// the class label through refinement.
type Statistics struct {
	Total     int                      `json:"total"`
	ByType    map[InteractionType]int  `json:"by_type"`
	ByLevel   map[AbstractionLevel]int `json:"by_level"`
	HighRisk  int                      `json:"high_risk"`
	MeanScore float64                  `json:"mean_score"`
}

// EnumerationResult is the full output of one engine invocation.
// Recomputed from scratch on every call, never persisted.
type EnumerationResult struct {
	Candidates      []Candidate   `json:"candidates"`
	Stats           Statistics    `json:"stats"`
	Recommendations []string      `json:"recommendations"`
	Duration        time.Duration `json:"duration"`
}

// ClampScore bounds a risk score to [0,1]. Every stage that touches a
// score must route through this.
func ClampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
