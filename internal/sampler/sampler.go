// Package sampler implements a single-parameter random-walk Metropolis
// sampler for the posterior of a binomial success probability.
package sampler

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/danielpatrickdp/mh-sampler/internal/randsrc"
	"github.com/danielpatrickdp/mh-sampler/internal/target"
)

// #region sampler

// seedValue is the deterministic first element of every chain.
const seedValue = 0.5

// Sampler owns one Markov chain: the target density, the proposal scale,
// and the random source. It is strictly sequential; run separate Sampler
// instances (with separate or locked sources) for concurrent chains.
type Sampler struct {
	target  Target
	scale   float64
	normal  distuv.Normal
	uniform distuv.Uniform
}

// New creates a sampler for the given target. A nil cfg.Source gets a fresh
// time-seeded source.
func New(t Target, cfg Config) *Sampler {
	src := cfg.Source
	if src == nil {
		src = randsrc.New()
	}
	return &Sampler{
		target:  t,
		scale:   cfg.ProposalScale,
		normal:  distuv.Normal{Mu: 0, Sigma: 1, Src: src},
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: src},
	}
}

// #endregion sampler

// #region run

// Run draws a full posterior chain for the given binomial observation under
// the uniform Beta(1,1) prior. All precondition failures surface before any
// sampling happens.
func Run(sampleCount, successes, trials int, cfg Config) (Result, error) {
	if err := validate(sampleCount, successes, trials, cfg.ProposalScale); err != nil {
		return Result{}, err
	}
	s := New(target.NewBetaBinomial(successes, trials), cfg)
	return s.sample(sampleCount), nil
}

// Sample advances a chain of the requested length against the sampler's own
// target. Use this with a custom Target; Run covers the Beta-Binomial case.
func (s *Sampler) Sample(sampleCount int) (Result, error) {
	if sampleCount < 1 {
		return Result{}, fmt.Errorf("%w: sample count %d, must be >= 1", ErrInvalidArgument, sampleCount)
	}
	if s.scale <= 0 {
		return Result{}, fmt.Errorf("%w: proposal scale %v, must be > 0", ErrInvalidArgument, s.scale)
	}
	return s.sample(sampleCount), nil
}

// sample runs the propose → evaluate → accept/reject loop. The previous
// density is carried across iterations so each step costs one density
// evaluation, not two.
func (s *Sampler) sample(sampleCount int) Result {
	chain := make([]float64, sampleCount)
	chain[0] = seedValue
	accepted := 0

	prev := seedValue
	prevDensity := s.target.Density(target.ClampToEvaluationInterval(prev))

	for i := 1; i < sampleCount; i++ {
		// Symmetric normal proposal; no Hastings correction needed. The
		// clamped value is the canonical candidate, so an accepted step can
		// never push the walk outside the evaluation interval.
		candidate := target.ClampToEvaluationInterval(prev + s.scale*s.normal.Rand())
		candidateDensity := s.target.Density(candidate)

		// One uniform draw per step regardless of branch keeps the draw
		// schedule fixed, so seeded chains stay comparable across targets.
		u := s.uniform.Rand()

		accept := false
		switch {
		case prevDensity == 0 && candidateDensity == 0:
			// 0/0 underflow at the boundary: indeterminate ratio, reject.
		case prevDensity == 0:
			// Nonzero numerator over an underflowed denominator: accept.
			accept = true
		default:
			accept = math.Min(1, candidateDensity/prevDensity) >= u
		}

		if accept {
			chain[i] = candidate
			prev = candidate
			prevDensity = candidateDensity
			accepted++
		} else {
			chain[i] = prev
		}
	}

	return Result{Chain: chain, Accepted: accepted}
}

// #endregion run

// #region validation

func validate(sampleCount, successes, trials int, scale float64) error {
	if sampleCount < 1 {
		return fmt.Errorf("%w: sample count %d, must be >= 1", ErrInvalidArgument, sampleCount)
	}
	if trials <= 0 {
		return fmt.Errorf("%w: trials %d, must be > 0", ErrInvalidArgument, trials)
	}
	if successes < 0 {
		return fmt.Errorf("%w: successes %d, must be >= 0", ErrInvalidArgument, successes)
	}
	if successes > trials {
		return fmt.Errorf("%w: successes %d exceeds trials %d", ErrInvalidArgument, successes, trials)
	}
	if scale <= 0 {
		return fmt.Errorf("%w: proposal scale %v, must be > 0", ErrInvalidArgument, scale)
	}
	return nil
}

// #endregion validation
