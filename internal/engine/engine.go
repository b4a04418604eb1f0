// Package engine orchestrates the unsafe-combination enumeration
// pipeline: authority model construction, systematic generation,
// refinement, pruning, domain patterns, scoring, special-interaction
// policy, filtering, and ranking.
//
// The pipeline is stateless and deterministic: identical context and
// configuration always produce the identical result. Any stage failure
// aborts the run with no partial result.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/airvair/STAMPWebTool-sub001/internal/authority"
	"github.com/airvair/STAMPWebTool-sub001/internal/enumerate"
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
	"github.com/airvair/STAMPWebTool-sub001/internal/patterns"
	"github.com/airvair/STAMPWebTool-sub001/internal/policy"
	"github.com/airvair/STAMPWebTool-sub001/internal/relevance"
	"github.com/airvair/STAMPWebTool-sub001/internal/report"
)

// Enumerator runs the pipeline under a fixed configuration.
type Enumerator struct {
	cfg Config
}

// New validates the configuration and constructs an enumerator.
func New(cfg Config) (*Enumerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid enumeration config: %w", err)
	}
	return &Enumerator{cfg: cfg}, nil
}

// Config returns the enumerator's fixed configuration.
func (e *Enumerator) Config() Config {
	return e.cfg
}

// Enumerate runs the full pipeline over a read-only analysis context and
// returns the ranked candidate set. The context parameter only carries
// cancellation; the computation itself is synchronous and performs no
// I/O. The input snapshot is never mutated.
func (e *Enumerator) Enumerate(ctx context.Context, ac *model.AnalysisContext) (*model.EnumerationResult, error) {
	start := time.Now()

	if err := authority.Validate(ac.Controllers, ac.Actions); err != nil {
		return nil, fmt.Errorf("invalid analysis context: %w", err)
	}
	am := authority.Build(ac.Controllers, ac.Actions)

	opts := enumerate.Options{
		MaxSize:       e.cfg.MaxCombinationSize,
		Provision:     e.cfg.EnableProvisionType,
		Timing:        e.cfg.EnableTimingType,
		InstanceLevel: e.cfg.EnableInstanceLevel,
		ClassLevel:    e.cfg.EnableClassLevel,
		Budget:        e.cfg.MaxCandidates,
	}

	pool, err := enumerate.Generate(am, opts)
	if err != nil {
		return nil, err
	}
	if err := stageGate(ctx); err != nil {
		return nil, err
	}

	pool, err = enumerate.Refine(pool, am, e.cfg.MaxCandidates)
	if err != nil {
		return nil, err
	}
	if err := stageGate(ctx); err != nil {
		return nil, err
	}

	pool = enumerate.Prune(pool, am, ac.Interchange)

	if e.cfg.EnableProvisionType {
		pool = append(pool, patterns.CommunicationFailure(am)...)
		pool = append(pool, patterns.ResourceConflict(am)...)
	}
	if e.cfg.EnableTimingType {
		pool = append(pool, patterns.EmergencyTiming(am)...)
	}
	pool = enumerate.DedupeStructural(pool)
	if e.cfg.MaxCandidates > 0 && len(pool) > e.cfg.MaxCandidates {
		return nil, enumerate.ErrBudgetExceeded
	}
	if err := stageGate(ctx); err != nil {
		return nil, err
	}

	if e.cfg.ApplyHazardRelevance {
		pool = relevance.Boost(pool, ac.Hazards)
	}

	pool = policy.Apply(pool, ac.Policy)
	if err := stageGate(ctx); err != nil {
		return nil, err
	}

	pool = report.FilterThreshold(pool, e.cfg.ScoreThreshold)
	pool = report.DedupeExisting(pool, ac.Entries)
	pool = report.Rank(pool)

	return &model.EnumerationResult{
		Candidates:      pool,
		Stats:           report.Statistics(pool),
		Recommendations: report.Recommendations(pool),
		Duration:        time.Since(start),
	}, nil
}

// stageGate checks for cancellation between pipeline stages. The engine
// has no other suspension points.
func stageGate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}
