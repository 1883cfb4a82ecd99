package replay

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestFixtureFileRoundTrip(t *testing.T) {
	f := &Fixture{
		Description: "round-trip fixture",
		Config: FixtureConfig{
			SampleCount:   100,
			Successes:     4,
			Trials:        10,
			ProposalScale: 0.16,
			Seed:          7,
		},
		Expect: FixtureExpect{
			Head:          []float64{0.5, 0.42},
			PosteriorMean: 5.0 / 12.0,
			MeanTolerance: 0.05,
		},
	}

	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := WriteFixture(path, f); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	if got.Description != f.Description {
		t.Fatalf("description: got %q", got.Description)
	}
	if got.Config != f.Config {
		t.Fatalf("config did not round-trip: %+v", got.Config)
	}
	if len(got.Expect.Head) != 2 || got.Expect.Head[1] != 0.42 {
		t.Fatalf("head did not round-trip: %v", got.Expect.Head)
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

func TestLoadFixtureMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := writeFile(path, "{not json"); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected error for malformed fixture")
	}
}
