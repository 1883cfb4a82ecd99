package sampler

import (
	"errors"

	"golang.org/x/exp/rand"
)

// #region errors

// ErrInvalidArgument reports a precondition violation on sampler inputs.
// It is returned before any sampling work begins; once a run starts it
// always completes the full requested chain.
var ErrInvalidArgument = errors.New("invalid argument")

// #endregion errors

// #region target

// Target is a pointwise-evaluable unnormalized density over (0,1).
type Target interface {
	Density(p float64) float64
}

// #endregion target

// #region config

// Config holds the tunables for a sampling run.
type Config struct {
	// ProposalScale is the standard deviation of the random-walk step.
	// Fixed for the chain's lifetime, never adapted.
	ProposalScale float64

	// Source backs all random draws for the chain. Nil means a fresh
	// time-seeded source; inject a seeded source for reproducible runs.
	Source rand.Source
}

// DefaultProposalScale is the random-walk step standard deviation used when
// the caller does not override it.
const DefaultProposalScale = 0.16

// DefaultConfig returns the standard run configuration with a time-seeded
// source.
func DefaultConfig() Config {
	return Config{ProposalScale: DefaultProposalScale}
}

// #endregion config

// #region result

// Result bundles everything produced by a completed run.
type Result struct {
	// Chain is the ordered sample sequence. Element 0 is always the
	// deterministic seed value 0.5; every later element lies inside the
	// evaluation interval.
	Chain []float64

	// Accepted counts proposals that were accepted. Rejected steps still
	// emit a sample (the repeated previous value), so
	// Accepted <= len(Chain)-1.
	Accepted int
}

// AcceptRate returns accepted proposals over proposals made.
func (r Result) AcceptRate() float64 {
	steps := len(r.Chain) - 1
	if steps <= 0 {
		return 0
	}
	return float64(r.Accepted) / float64(steps)
}

// #endregion result
