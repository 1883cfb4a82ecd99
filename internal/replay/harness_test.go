package replay

import (
	"strings"
	"testing"

	"github.com/danielpatrickdp/mh-sampler/internal/randsrc"
	"github.com/danielpatrickdp/mh-sampler/internal/sampler"
)

// buildFixture runs a seeded chain once and records its head as the
// expectation, so the fixture is self-consistent by construction.
func buildFixture(t *testing.T, seed uint64) *Fixture {
	t.Helper()
	cfg := sampler.Config{
		ProposalScale: sampler.DefaultProposalScale,
		Source:        randsrc.Seeded(seed),
	}
	res, err := sampler.Run(4000, 4, 10, cfg)
	if err != nil {
		t.Fatalf("build fixture run: %v", err)
	}
	return &Fixture{
		Description: "4/10 seeded regression chain",
		Config: FixtureConfig{
			SampleCount:   4000,
			Successes:     4,
			Trials:        10,
			ProposalScale: sampler.DefaultProposalScale,
			Seed:          seed,
		},
		Expect: FixtureExpect{
			Head:          res.Chain[:16],
			PosteriorMean: 5.0 / 12.0,
			MeanTolerance: 0.05,
			MinAcceptRate: 0.05,
			MaxAcceptRate: 0.95,
		},
	}
}

func TestReplayPassesOwnRecording(t *testing.T) {
	f := buildFixture(t, 42)
	result, err := Replay(f)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !result.Passed {
		t.Fatalf("expected pass, failures: %v", result.Failures)
	}
	if len(result.Chain) != 4000 {
		t.Fatalf("expected full chain in result, got %d", len(result.Chain))
	}
}

func TestReplayDetectsTamperedHead(t *testing.T) {
	f := buildFixture(t, 42)
	f.Expect.Head[3] += 1e-9
	result, err := Replay(f)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if result.Passed {
		t.Fatal("expected failure for tampered head")
	}
	found := false
	for _, msg := range result.Failures {
		if strings.Contains(msg, "chain[3]") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected head mismatch failure, got %v", result.Failures)
	}
}

func TestReplayDetectsWrongMeanExpectation(t *testing.T) {
	f := buildFixture(t, 42)
	f.Expect.PosteriorMean = 0.9
	f.Expect.MeanTolerance = 0.01
	result, err := Replay(f)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if result.Passed {
		t.Fatal("expected failure for unreachable mean expectation")
	}
}

func TestReplayDefaultsProposalScale(t *testing.T) {
	f := buildFixture(t, 42)
	f.Config.ProposalScale = 0 // old fixtures omit the field
	result, err := Replay(f)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !result.Passed {
		t.Fatalf("expected default scale to reproduce the chain, failures: %v", result.Failures)
	}
}

func TestReplayInvalidConfig(t *testing.T) {
	f := buildFixture(t, 42)
	f.Config.Successes = 99
	if _, err := Replay(f); err == nil {
		t.Fatal("expected error for invalid fixture config")
	}
}
