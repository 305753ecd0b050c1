// Package pipeline runs one synthesize → basis → enumerate pass and logs each
// stage through an injected logrus logger.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cyclespace/basis"
	"github.com/katalvlaran/cyclespace/builder"
	"github.com/katalvlaran/cyclespace/config"
	"github.com/katalvlaran/cyclespace/core"
	"github.com/katalvlaran/cyclespace/cyclespace"
)

// Result carries everything a report needs from one run.
type Result struct {
	RunID     string
	Seed      int64
	Graph     *core.Graph
	Basis     [][]int
	Cycles    []cyclespace.Cycle
	Truncated bool // the cycle limit stopped enumeration early
}

// Run validates cfg, synthesizes a graph, derives its fundamental cycle basis,
// checks it and enumerates the closure. A zero seed is replaced by one derived
// from the clock and reported in Result.Seed.
//
// Hitting the cycle limit is not an error: the partial closure is returned with
// Truncated set. Cancelling ctx aborts enumeration with ctx.Err().
func Run(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID: uuid.NewString(),
		Seed:  cfg.Graph.Seed,
	}
	if res.Seed == 0 {
		res.Seed = time.Now().UnixNano()
	}
	log = log.WithFields(logrus.Fields{
		"run_id": res.RunID,
		"seed":   res.Seed,
	})

	start := time.Now()
	g, err := builder.Synthesize(cfg.Graph.Size, cfg.Graph.Density,
		builder.WithSeed(res.Seed),
		builder.WithUniformWeight(cfg.Graph.MinWeight, cfg.Graph.MaxWeight),
	)
	if err != nil {
		return nil, fmt.Errorf("pipeline: synthesize: %w", err)
	}
	res.Graph = g
	stats := g.Stats()
	log.WithFields(logrus.Fields{
		"nodes":      stats.NodeCount,
		"edges":      stats.EdgeCount,
		"min_degree": stats.MinDegree,
		"max_degree": stats.MaxDegree,
		"took":       time.Since(start),
	}).Debug("Graph synthesized")

	start = time.Now()
	if res.Basis, err = basis.FundamentalCycles(g); err != nil {
		return nil, fmt.Errorf("pipeline: basis: %w", err)
	}
	if err = basis.VerifyBasis(g, res.Basis); err != nil {
		return nil, fmt.Errorf("pipeline: basis: %w", err)
	}
	log.WithFields(logrus.Fields{
		"cycles": len(res.Basis),
		"took":   time.Since(start),
	}).Debug("Fundamental basis built")

	opts := []cyclespace.Option{
		cyclespace.WithContext(ctx),
		cyclespace.WithWorkers(cfg.Enumerate.Workers),
	}
	if cfg.Enumerate.MaxCycles > 0 {
		opts = append(opts, cyclespace.WithMaxCycles(cfg.Enumerate.MaxCycles))
	}

	start = time.Now()
	res.Cycles, err = cyclespace.Enumerate(res.Basis, g.NodeCount(), opts...)
	switch {
	case errors.Is(err, cyclespace.ErrCycleLimit):
		res.Truncated = true
		log.WithField("limit", cfg.Enumerate.MaxCycles).Warn("Cycle limit reached, closure is incomplete")
	case err != nil:
		return nil, fmt.Errorf("pipeline: enumerate: %w", err)
	}
	log.WithFields(logrus.Fields{
		"cycles":  len(res.Cycles),
		"workers": cfg.Enumerate.Workers,
		"took":    time.Since(start),
	}).Info("Cycle space enumerated")

	return res, nil
}
