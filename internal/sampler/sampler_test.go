package sampler

import (
	"errors"
	"sync"
	"testing"

	"github.com/danielpatrickdp/mh-sampler/internal/randsrc"
	"github.com/danielpatrickdp/mh-sampler/internal/target"
)

// #region helpers

func seededConfig(seed uint64) Config {
	cfg := DefaultConfig()
	cfg.Source = randsrc.Seeded(seed)
	return cfg
}

func backHalfMean(chain []float64) float64 {
	back := chain[len(chain)/2:]
	var sum float64
	for _, v := range back {
		sum += v
	}
	return sum / float64(len(back))
}

// zeroTarget underflows everywhere, forcing the 0/0 policy on every step.
type zeroTarget struct{}

func (zeroTarget) Density(float64) float64 { return 0 }

// offSeedTarget is zero exactly at the chain seed value and positive
// elsewhere, forcing the zero-denominator / nonzero-numerator policy on the
// first step.
type offSeedTarget struct{}

func (offSeedTarget) Density(p float64) float64 {
	if p == 0.5 {
		return 0
	}
	return 1
}

// #endregion helpers

// #region invariants

func TestRunChainLength(t *testing.T) {
	for _, n := range []int{1, 2, 100, 5000} {
		res, err := Run(n, 4, 10, seededConfig(1))
		if err != nil {
			t.Fatalf("unexpected error for n=%d: %v", n, err)
		}
		if len(res.Chain) != n {
			t.Fatalf("expected chain length %d, got %d", n, len(res.Chain))
		}
	}
}

func TestRunFirstElementFixed(t *testing.T) {
	res, err := Run(1000, 4, 10, seededConfig(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Chain[0] != 0.5 {
		t.Fatalf("expected chain[0] = 0.5, got %v", res.Chain[0])
	}
}

func TestRunRangeInvariant(t *testing.T) {
	res, err := Run(5000, 4, 10, seededConfig(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range res.Chain {
		if v < target.EvalIntervalLow || v > target.EvalIntervalHigh {
			t.Fatalf("chain[%d] = %v outside evaluation interval", i, v)
		}
	}
}

func TestRunReproducibleWithSeed(t *testing.T) {
	a, err := Run(2000, 4, 10, seededConfig(99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Run(2000, 4, 10, seededConfig(99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Accepted != b.Accepted {
		t.Fatalf("accepted counts diverged: %d vs %d", a.Accepted, b.Accepted)
	}
	for i := range a.Chain {
		if a.Chain[i] != b.Chain[i] {
			t.Fatalf("seeded chains diverged at %d: %v vs %v", i, a.Chain[i], b.Chain[i])
		}
	}
}

func TestRunSeedsDiffer(t *testing.T) {
	a, _ := Run(100, 4, 10, seededConfig(1))
	b, _ := Run(100, 4, 10, seededConfig(2))
	same := true
	for i := range a.Chain {
		if a.Chain[i] != b.Chain[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical chains")
	}
}

func TestRejectionRepeatsPreviousValue(t *testing.T) {
	// A wide proposal rejects often; every non-move must be an exact repeat.
	cfg := seededConfig(5)
	cfg.ProposalScale = 2.0
	res, err := Run(2000, 4, 10, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repeats := 0
	for i := 1; i < len(res.Chain); i++ {
		if res.Chain[i] == res.Chain[i-1] {
			repeats++
		}
	}
	rejections := (len(res.Chain) - 1) - res.Accepted
	if rejections == 0 {
		t.Fatal("expected rejected steps with a wide proposal, saw none")
	}
	// Every rejection is an exact repeat of the previous value. Accepted
	// steps can add further repeats when the clamped candidate equals a
	// previous value pinned at an interval bound, so >= rather than ==.
	if repeats < rejections {
		t.Fatalf("%d rejections but only %d exact repeats", rejections, repeats)
	}
}

// #endregion invariants

// #region statistical

func TestConvergenceToPosteriorMean(t *testing.T) {
	// Posterior for 4/10 under Beta(1,1) is Beta(5,7), mean 5/12.
	const want = 5.0 / 12.0
	const tolerance = 0.05

	for _, seed := range []uint64{11, 23, 47} {
		res, err := Run(10000, 4, 10, seededConfig(seed))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		mean := backHalfMean(res.Chain)
		if mean < want-tolerance || mean > want+tolerance {
			t.Fatalf("seed %d: back-half mean %v not within %v of %v", seed, mean, tolerance, want)
		}
	}
}

func TestBoundaryDriftAllSuccesses(t *testing.T) {
	res, err := Run(10000, 10, 10, seededConfig(13))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mean := backHalfMean(res.Chain); mean < 0.8 {
		t.Fatalf("10/10 chain should concentrate near upper bound, back-half mean %v", mean)
	}
}

func TestBoundaryDriftNoSuccesses(t *testing.T) {
	res, err := Run(10000, 0, 10, seededConfig(17))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mean := backHalfMean(res.Chain); mean > 0.2 {
		t.Fatalf("0/10 chain should concentrate near lower bound, back-half mean %v", mean)
	}
}

// #endregion statistical

// #region degeneracy-policy

func TestDegenerateRatioRejects(t *testing.T) {
	// 0/0 at every step: the chain must never move and never emit NaN.
	s := New(zeroTarget{}, seededConfig(1))
	res, err := s.Sample(500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range res.Chain {
		if v != 0.5 {
			t.Fatalf("chain[%d] = %v, expected frozen chain at 0.5", i, v)
		}
	}
	if res.Accepted != 0 {
		t.Fatalf("expected 0 accepts, got %d", res.Accepted)
	}
}

func TestZeroDenominatorAccepts(t *testing.T) {
	// Density underflows at the current value but not at the candidate:
	// the step must accept rather than divide to NaN.
	s := New(offSeedTarget{}, seededConfig(1))
	res, err := s.Sample(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Chain[1] == 0.5 {
		t.Fatal("expected first proposal to be accepted away from a zero-density point")
	}
}

// #endregion degeneracy-policy

// #region validation

func TestRunInvalidArguments(t *testing.T) {
	cases := []struct {
		name                          string
		sampleCount, successes, trials int
		scale                         float64
	}{
		{"zero sample count", 0, 4, 10, DefaultProposalScale},
		{"negative sample count", -5, 4, 10, DefaultProposalScale},
		{"zero trials", 100, 0, 0, DefaultProposalScale},
		{"negative trials", 100, 0, -1, DefaultProposalScale},
		{"successes exceed trials", 100, 11, 10, DefaultProposalScale},
		{"negative successes", 100, -1, 10, DefaultProposalScale},
		{"zero proposal scale", 100, 4, 10, 0},
		{"negative proposal scale", 100, 4, 10, -0.16},
	}

	for _, tc := range cases {
		cfg := seededConfig(1)
		cfg.ProposalScale = tc.scale
		res, err := Run(tc.sampleCount, tc.successes, tc.trials, cfg)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("%s: expected ErrInvalidArgument, got %v", tc.name, err)
		}
		if res.Chain != nil {
			t.Fatalf("%s: expected no chain on validation failure", tc.name)
		}
	}
}

func TestSampleInvalidCount(t *testing.T) {
	s := New(target.NewBetaBinomial(4, 10), seededConfig(1))
	if _, err := s.Sample(0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

// #endregion validation

// #region concurrency

func TestConcurrentChainsSharedSource(t *testing.T) {
	// Chains sharing one locked source interleave draws but must each hold
	// their own invariants.
	src := randsrc.Locked(randsrc.Seeded(21))

	var wg sync.WaitGroup
	results := make([]Result, 4)
	errs := make([]error, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cfg := Config{ProposalScale: DefaultProposalScale, Source: src}
			results[i], errs[i] = Run(1000, 4, 10, cfg)
		}(i)
	}
	wg.Wait()

	for i, res := range results {
		if errs[i] != nil {
			t.Fatalf("chain %d failed: %v", i, errs[i])
		}
		if len(res.Chain) != 1000 || res.Chain[0] != 0.5 {
			t.Fatalf("chain %d violated invariants", i)
		}
	}
}

// #endregion concurrency

// #region accept-rate

func TestAcceptRateBounds(t *testing.T) {
	res, err := Run(5000, 4, 10, seededConfig(31))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rate := res.AcceptRate()
	if rate <= 0 || rate > 1 {
		t.Fatalf("accept rate %v outside (0, 1]", rate)
	}
}

func TestAcceptRateSingleElementChain(t *testing.T) {
	res, err := Run(1, 4, 10, seededConfig(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate := res.AcceptRate(); rate != 0 {
		t.Fatalf("expected accept rate 0 for single-element chain, got %v", rate)
	}
}

// #endregion accept-rate
