// Package replay re-runs seeded chains against recorded expectations.
package replay

import (
	"fmt"

	"github.com/danielpatrickdp/mh-sampler/internal/randsrc"
	"github.com/danielpatrickdp/mh-sampler/internal/sampler"
	"github.com/danielpatrickdp/mh-sampler/internal/summary"
)

// #region types

// Result captures the outcome of replaying one fixture.
type Result struct {
	Passed   bool
	Failures []string

	Chain      []float64
	AcceptRate float64
	Stats      summary.Stats
}

// #endregion types

// #region replay

// Replay re-runs the fixture's seeded chain and checks every recorded
// expectation plus the structural chain invariants.
func Replay(f *Fixture) (Result, error) {
	cfg := sampler.Config{
		ProposalScale: f.Config.ProposalScale,
		Source:        randsrc.Seeded(f.Config.Seed),
	}
	if cfg.ProposalScale == 0 {
		cfg.ProposalScale = sampler.DefaultProposalScale
	}

	res, err := sampler.Run(f.Config.SampleCount, f.Config.Successes, f.Config.Trials, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("replay run: %w", err)
	}

	var failures []string

	if err := summary.ValidateChain(res.Chain); err != nil {
		failures = append(failures, fmt.Sprintf("chain invariants: %v", err))
	}

	// Bit-exact head comparison: the defining reproducibility check.
	if len(f.Expect.Head) > len(res.Chain) {
		failures = append(failures, fmt.Sprintf("expected head of %d values, chain has %d", len(f.Expect.Head), len(res.Chain)))
	} else {
		for i, want := range f.Expect.Head {
			if res.Chain[i] != want {
				failures = append(failures, fmt.Sprintf("chain[%d] = %v, expected %v", i, res.Chain[i], want))
				break
			}
		}
	}

	stats, err := summary.Summarize(res.Chain, summary.DefaultBurnIn(len(res.Chain)))
	if err != nil {
		return Result{}, fmt.Errorf("summarize replayed chain: %w", err)
	}

	if f.Expect.MeanTolerance > 0 {
		lo := f.Expect.PosteriorMean - f.Expect.MeanTolerance
		hi := f.Expect.PosteriorMean + f.Expect.MeanTolerance
		if stats.Mean < lo || stats.Mean > hi {
			failures = append(failures, fmt.Sprintf("back-half mean %v outside [%v, %v]", stats.Mean, lo, hi))
		}
	}

	rate := res.AcceptRate()
	if f.Expect.MinAcceptRate != 0 || f.Expect.MaxAcceptRate != 0 {
		if rate < f.Expect.MinAcceptRate || rate > f.Expect.MaxAcceptRate {
			failures = append(failures, fmt.Sprintf("accept rate %v outside [%v, %v]",
				rate, f.Expect.MinAcceptRate, f.Expect.MaxAcceptRate))
		}
	}

	return Result{
		Passed:     len(failures) == 0,
		Failures:   failures,
		Chain:      res.Chain,
		AcceptRate: rate,
		Stats:      stats,
	}, nil
}

// #endregion replay
