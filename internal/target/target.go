// Package target defines the posterior density the sampler draws from.
package target

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// #region evaluation-interval

// Evaluation interval bounds. Densities are only ever evaluated strictly
// inside (0,1); at the exact boundary the Binomial pmf degenerates to 0 or
// the Beta pdf diverges for non-uniform priors.
const (
	EvalIntervalLow  = 0.001
	EvalIntervalHigh = 0.999
)

// ClampToEvaluationInterval maps a probability value into the safe
// evaluation interval. This is the single clamp used at every site where a
// value is passed to a density function; clamped proposals are canonical and
// get stored in the chain as-is, so the random walk cannot drift out of
// range.
func ClampToEvaluationInterval(x float64) float64 {
	if x < EvalIntervalLow {
		return EvalIntervalLow
	}
	if x > EvalIntervalHigh {
		return EvalIntervalHigh
	}
	return x
}

// #endregion evaluation-interval

// #region beta-binomial

// BetaBinomial is the unnormalized posterior density of a binomial success
// probability: Beta(alpha, beta) prior times Binomial(trials, p) likelihood.
// The prior factor stays explicit even though Beta(1,1) is constant, so a
// different prior drops in without touching the sampling loop.
type BetaBinomial struct {
	prior      distuv.Beta
	likelihood distuv.Binomial
	successes  float64
}

// NewBetaBinomial builds the target under the uniform Beta(1,1) prior.
// Callers validate the observation (0 <= successes <= trials, trials > 0)
// before constructing the target.
func NewBetaBinomial(successes, trials int) BetaBinomial {
	return NewBetaBinomialWithPrior(successes, trials, 1, 1)
}

// NewBetaBinomialWithPrior builds the target under a Beta(alpha, beta) prior.
func NewBetaBinomialWithPrior(successes, trials int, alpha, beta float64) BetaBinomial {
	return BetaBinomial{
		prior:      distuv.Beta{Alpha: alpha, Beta: beta},
		likelihood: distuv.Binomial{N: float64(trials)},
		successes:  float64(successes),
	}
}

// Density evaluates the unnormalized posterior at p. The caller passes a
// value already clamped to the evaluation interval.
func (t BetaBinomial) Density(p float64) float64 {
	likelihood := t.likelihood
	likelihood.P = p
	return t.prior.Prob(p) * likelihood.Prob(t.successes)
}

// #endregion beta-binomial
