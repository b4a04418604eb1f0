// Package enumerate produces, refines, and prunes base candidate
// combinations of control actions drawn from the authority model.
package enumerate

import (
	"errors"
	"sort"

	"github.com/airvair/STAMPWebTool-sub001/internal/authority"
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

// ErrBudgetExceeded aborts a run whose candidate population outgrew the
// configured cap. The whole run fails; no partial result is returned.
var ErrBudgetExceeded = errors.New("enumerate: candidate budget exceeded")

// Base scores for systematically generated candidates. Pattern generators
// carry their own, higher bases; systematic output starts conservative and
// earns relevance through hazard scoring.
const (
	baseProvisionScore = 0.5
	baseTimingScore    = 0.6
)

// Options controls the base combination generator.
type Options struct {
	MaxSize       int  // maximum elements per combination, >= 2
	Provision     bool // emit provide/withhold patterns
	Timing        bool // emit too-early/too-late patterns
	InstanceLevel bool // enumerate over concrete controllers
	ClassLevel    bool // enumerate over shared action signatures
	Budget        int  // total candidate cap, 0 = unlimited
}

// Generate enumerates base candidates of sizes 2 through MaxSize.
//
// Admissibility rule: one action per controller. A combination is a set of
// k distinct controllers, each contributing exactly one action it owns.
// Instance-level output walks k-subsets of concrete controllers crossed
// with their owned actions; class-level output walks action signatures
// (verb+object) owned by two or more controllers and defers controller
// substitution to Refine.
func Generate(am *authority.Model, opts Options) ([]model.Candidate, error) {
	g := &generator{am: am, opts: opts}

	if opts.InstanceLevel {
		if err := g.instanceLevel(); err != nil {
			return nil, err
		}
	}
	if opts.ClassLevel {
		if err := g.classLevel(); err != nil {
			return nil, err
		}
	}
	return g.out, nil
}

type generator struct {
	am   *authority.Model
	opts Options
	out  []model.Candidate
}

// emit appends the candidate variants for one admissible action tuple:
// an all-provided and an all-withheld provision candidate, and a timing
// candidate tagging the first element early and the rest late.
func (g *generator) emit(pairs []element, level model.AbstractionLevel, rationale string) error {
	if g.opts.Provision {
		for _, provided := range []bool{true, false} {
			elems := make([]model.CombinationElement, len(pairs))
			for i, p := range pairs {
				elems[i] = model.CombinationElement{ControllerID: p.controllerID, ActionID: p.actionID, Provided: provided}
			}
			c := model.Candidate{
				Type:      model.InteractionProvision,
				Level:     level,
				Elements:  elems,
				RiskScore: baseProvisionScore,
				Rationale: rationale,
			}
			c.Description = Describe(g.am, c)
			if err := g.push(c); err != nil {
				return err
			}
		}
	}

	if g.opts.Timing {
		elems := make([]model.CombinationElement, len(pairs))
		for i, p := range pairs {
			tag := model.TimingLate
			if i == 0 {
				tag = model.TimingEarly
			}
			elems[i] = model.CombinationElement{ControllerID: p.controllerID, ActionID: p.actionID, Provided: true, Timing: tag}
		}
		c := model.Candidate{
			Type:      model.InteractionTiming,
			Level:     level,
			Elements:  elems,
			RiskScore: baseTimingScore,
			Rationale: rationale,
		}
		c.Description = Describe(g.am, c)
		if err := g.push(c); err != nil {
			return err
		}
	}
	return nil
}

func (g *generator) push(c model.Candidate) error {
	g.out = append(g.out, c)
	if g.opts.Budget > 0 && len(g.out) > g.opts.Budget {
		return ErrBudgetExceeded
	}
	return nil
}

type element struct {
	controllerID string
	actionID     string
}

// instanceLevel walks k-subsets of controllers that own at least one
// action, crossed with one owned action per member.
func (g *generator) instanceLevel() error {
	var participants []string
	for _, c := range g.am.Controllers {
		if len(g.am.OwnedActions(c.ID)) > 0 {
			participants = append(participants, c.ID)
		}
	}

	const rationale = "systematic enumeration over the authority model"

	for k := 2; k <= g.opts.MaxSize; k++ {
		if k > len(participants) {
			break
		}
		subset := make([]string, 0, k)
		if err := g.controllerSubsets(participants, 0, k, subset); err != nil {
			return err
		}
	}
	return nil
}

func (g *generator) controllerSubsets(participants []string, start, k int, subset []string) error {
	if len(subset) == k {
		return g.actionTuples(subset, nil)
	}
	for i := start; i <= len(participants)-(k-len(subset)); i++ {
		if err := g.controllerSubsets(participants, i+1, k, append(subset, participants[i])); err != nil {
			return err
		}
	}
	return nil
}

func (g *generator) actionTuples(controllers []string, chosen []element) error {
	if len(chosen) == len(controllers) {
		return g.emit(chosen, model.LevelInstance, "systematic enumeration over the authority model")
	}
	ctrl := controllers[len(chosen)]
	for _, actionID := range g.am.OwnedActions(ctrl) {
		if err := g.actionTuples(controllers, append(chosen, element{controllerID: ctrl, actionID: actionID})); err != nil {
			return err
		}
	}
	return nil
}

// classLevel enumerates over action signatures shared by several
// controllers. Each emitted candidate references the first k owners as
// class representatives; Refine expands them into every valid
// substitution.
func (g *generator) classLevel() error {
	owners, actionOf := sharedSignatures(g.am)

	sigs := make([]string, 0, len(owners))
	for sig := range owners {
		sigs = append(sigs, sig)
	}
	sort.Strings(sigs)

	for _, sig := range sigs {
		group := owners[sig]
		limit := g.opts.MaxSize
		if limit > len(group) {
			limit = len(group)
		}
		for k := 2; k <= limit; k++ {
			pairs := make([]element, k)
			for i := 0; i < k; i++ {
				pairs[i] = element{controllerID: group[i], actionID: actionOf[sig][group[i]]}
			}
			if err := g.emit(pairs, model.LevelClass, "abstracted over controllers sharing "+sig); err != nil {
				return err
			}
		}
	}
	return nil
}

// sharedSignatures maps every action signature owned by two or more
// distinct controllers to its sorted owner list and, per owner, the first
// owned action carrying that signature.
func sharedSignatures(am *authority.Model) (map[string][]string, map[string]map[string]string) {
	actionOf := make(map[string]map[string]string)
	for _, a := range am.Actions {
		sig := authority.Signature(a)
		if actionOf[sig] == nil {
			actionOf[sig] = make(map[string]string)
		}
		if _, ok := actionOf[sig][a.ControllerID]; !ok {
			actionOf[sig][a.ControllerID] = a.ID
		}
	}

	owners := make(map[string][]string)
	for sig, byCtrl := range actionOf {
		if len(byCtrl) < 2 {
			continue
		}
		list := make([]string, 0, len(byCtrl))
		for id := range byCtrl {
			list = append(list, id)
		}
		sort.Strings(list)
		owners[sig] = list
	}
	return owners, actionOf
}
