package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a seeded run
// configuration plus the expectations a re-run must satisfy.
type Fixture struct {
	Description string        `json:"description"`
	Config      FixtureConfig `json:"config"`
	Expect      FixtureExpect `json:"expect"`
}

// FixtureConfig is the JSON-serializable run configuration. Seed is required
// for a fixture — an unseeded run cannot be replayed.
type FixtureConfig struct {
	SampleCount   int     `json:"sample_count"`
	Successes     int     `json:"successes"`
	Trials        int     `json:"trials"`
	ProposalScale float64 `json:"proposal_scale"`
	Seed          uint64  `json:"seed"`
}

// FixtureExpect captures what the replayed chain must reproduce.
type FixtureExpect struct {
	// Head holds the leading chain values the seeded re-run must match
	// bit-exactly. Empty skips the check.
	Head []float64 `json:"head,omitempty"`

	// PosteriorMean and MeanTolerance bound the back-half mean of the
	// replayed chain. A zero tolerance skips the check.
	PosteriorMean float64 `json:"posterior_mean,omitempty"`
	MeanTolerance float64 `json:"mean_tolerance,omitempty"`

	// MinAcceptRate and MaxAcceptRate bound the acceptance rate. Both zero
	// skips the check.
	MinAcceptRate float64 `json:"min_accept_rate,omitempty"`
	MaxAcceptRate float64 `json:"max_accept_rate,omitempty"`
}

// #endregion fixture-types

// #region fixture-io

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// WriteFixture writes a fixture as indented JSON.
func WriteFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// #endregion fixture-io
