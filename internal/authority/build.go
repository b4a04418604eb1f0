// Package authority builds the read-only who-may-do-what model that every
// downstream enumeration stage consults.
package authority

import (
	"fmt"
	"sort"
	"strings"

	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

// Model maps controllers to the control actions they may issue.
// A controller with no owned actions has no entry in Owned; callers must
// treat a missing key as an empty set.
type Model struct {
	Controllers []model.Controller
	Actions     []model.ControlAction
	Owned       map[string][]string

	actionIndex     map[string]model.ControlAction
	controllerIndex map[string]model.Controller
}

// Build groups actions by owning controller into an authority model.
// Pure function; inputs are copied into sorted, deterministic order.
// Call Validate first; Build assumes well-formed input.
func Build(controllers []model.Controller, actions []model.ControlAction) *Model {
	m := &Model{
		Controllers:     make([]model.Controller, len(controllers)),
		Actions:         make([]model.ControlAction, len(actions)),
		Owned:           make(map[string][]string),
		actionIndex:     make(map[string]model.ControlAction, len(actions)),
		controllerIndex: make(map[string]model.Controller, len(controllers)),
	}
	copy(m.Controllers, controllers)
	copy(m.Actions, actions)

	sort.Slice(m.Controllers, func(i, j int) bool { return m.Controllers[i].ID < m.Controllers[j].ID })
	sort.Slice(m.Actions, func(i, j int) bool { return m.Actions[i].ID < m.Actions[j].ID })

	for _, c := range m.Controllers {
		m.controllerIndex[c.ID] = c
	}
	for _, a := range m.Actions {
		m.actionIndex[a.ID] = a
		m.Owned[a.ControllerID] = append(m.Owned[a.ControllerID], a.ID)
	}
	return m
}

// Validate rejects action lists that reference controllers absent from the
// controller list. Runs before enumeration begins; enumeration never starts
// on a model that fails here.
func Validate(controllers []model.Controller, actions []model.ControlAction) error {
	known := make(map[string]bool, len(controllers))
	for _, c := range controllers {
		known[c.ID] = true
	}
	for _, a := range actions {
		if !known[a.ControllerID] {
			return fmt.Errorf("control action %q references unknown controller %q", a.ID, a.ControllerID)
		}
	}
	return nil
}

// Action looks up a control action by ID.
func (m *Model) Action(id string) (model.ControlAction, bool) {
	a, ok := m.actionIndex[id]
	return a, ok
}

// Controller looks up a controller by ID.
func (m *Model) Controller(id string) (model.Controller, bool) {
	c, ok := m.controllerIndex[id]
	return c, ok
}

// OwnedActions returns the action IDs a controller may issue, in sorted
// order. Missing controllers yield an empty slice.
func (m *Model) OwnedActions(controllerID string) []string {
	return m.Owned[controllerID]
}

// Contains reports whether the (controller, action) pair exists in the
// model with that ownership.
func (m *Model) Contains(controllerID, actionID string) bool {
	a, ok := m.actionIndex[actionID]
	return ok && a.ControllerID == controllerID
}

// Signature normalizes an action to its verb+object identity, the unit the
// class-level generator and the pruner reason over.
func Signature(a model.ControlAction) string {
	return strings.ToLower(strings.TrimSpace(a.Verb)) + " " + strings.ToLower(strings.TrimSpace(a.Object))
}

// ActionSignature resolves an action ID to its signature. Unknown IDs
// return the ID itself so malformed references stay distinguishable.
func (m *Model) ActionSignature(actionID string) string {
	if a, ok := m.actionIndex[actionID]; ok {
		return Signature(a)
	}
	return actionID
}
