// Package summary computes posterior summaries and invariant checks over a
// finished chain.
package summary

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/danielpatrickdp/mh-sampler/internal/target"
)

// #region stats

// Stats summarizes the retained (post-burn-in) portion of a chain.
type Stats struct {
	Retained int     `json:"retained"`
	BurnIn   int     `json:"burn_in"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Median   float64 `json:"median"`
	Q05      float64 `json:"q05"`
	Q95      float64 `json:"q95"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// DefaultBurnIn discards the front half of the chain, leaving the portion
// used for inference.
func DefaultBurnIn(chainLen int) int {
	return chainLen / 2
}

// Summarize computes summary statistics over chain[burnIn:]. A burnIn that
// leaves nothing to retain is an error; summaries of an empty window are
// meaningless.
func Summarize(chain []float64, burnIn int) (Stats, error) {
	if burnIn < 0 || burnIn >= len(chain) {
		return Stats{}, fmt.Errorf("burn-in %d leaves no samples from chain of length %d", burnIn, len(chain))
	}

	retained := make([]float64, len(chain)-burnIn)
	copy(retained, chain[burnIn:])
	sort.Float64s(retained)

	return Stats{
		Retained: len(retained),
		BurnIn:   burnIn,
		Mean:     stat.Mean(retained, nil),
		StdDev:   stdDevOrZero(retained),
		Median:   stat.Quantile(0.5, stat.Empirical, retained, nil),
		Q05:      stat.Quantile(0.05, stat.Empirical, retained, nil),
		Q95:      stat.Quantile(0.95, stat.Empirical, retained, nil),
		Min:      retained[0],
		Max:      retained[len(retained)-1],
	}, nil
}

// stdDevOrZero guards the single-sample case, where the unbiased estimator
// divides by zero.
func stdDevOrZero(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

// #endregion stats

// #region validate

// ValidateChain checks the structural invariants every finished chain must
// hold: fixed first element, all later elements inside the evaluation
// interval, no NaN or Inf anywhere.
func ValidateChain(chain []float64) error {
	if len(chain) == 0 {
		return fmt.Errorf("empty chain")
	}
	if chain[0] != 0.5 {
		return fmt.Errorf("chain[0] = %v, expected seed value 0.5", chain[0])
	}
	for i, v := range chain {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("chain[%d] = %v is not finite", i, v)
		}
		if i == 0 {
			continue
		}
		if v < target.EvalIntervalLow || v > target.EvalIntervalHigh {
			return fmt.Errorf("chain[%d] = %v outside evaluation interval [%v, %v]",
				i, v, target.EvalIntervalLow, target.EvalIntervalHigh)
		}
	}
	return nil
}

// #endregion validate
