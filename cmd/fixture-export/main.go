package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/mh-sampler/internal/replay"
	"github.com/danielpatrickdp/mh-sampler/internal/runlog"
	"github.com/danielpatrickdp/mh-sampler/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to runs database")
	runID := flag.String("run", "", "run to export (default: most recent)")
	outPath := flag.String("out", "", "output fixture JSON path")
	head := flag.Int("head", 16, "number of leading chain values to record as the exact-match head")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/runs.db --out path/to/fixture.json [--run id] [--head N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *runID, *outPath, *head); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(dbPath, runID, outPath string, head int) error {
	st, err := store.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	var rec store.RunRecord
	if runID != "" {
		rec, err = st.GetRun(runID)
	} else {
		rec, err = st.LatestRun()
	}
	if err != nil {
		return err
	}

	if rec.Seed == nil {
		return fmt.Errorf("run %s was not seeded and cannot be replayed", rec.RunID)
	}
	if head > len(rec.Chain) {
		head = len(rec.Chain)
	}

	// Posterior mean under the Beta(1,1) prior is (1+k)/(2+n); the replayed
	// back-half mean must land near it.
	posteriorMean := float64(1+rec.Successes) / float64(2+rec.Trials)

	f := &replay.Fixture{
		Description: fmt.Sprintf("exported run %s: %d/%d, n=%d, seed=%d",
			rec.RunID, rec.Successes, rec.Trials, rec.SampleCount, *rec.Seed),
		Config: replay.FixtureConfig{
			SampleCount:   rec.SampleCount,
			Successes:     rec.Successes,
			Trials:        rec.Trials,
			ProposalScale: rec.ProposalScale,
			Seed:          *rec.Seed,
		},
		Expect: replay.FixtureExpect{
			Head:          rec.Chain[:head],
			PosteriorMean: posteriorMean,
			MeanTolerance: 0.05,
		},
	}

	if err := replay.WriteFixture(outPath, f); err != nil {
		return err
	}

	if err := runlog.LogEvent(st.DB(), runlog.Entry{
		RunID:  rec.RunID,
		Event:  "fixture_exported",
		Detail: outPath,
	}); err != nil {
		return err
	}

	fmt.Printf("exported run %s to %s (head=%d)\n", rec.RunID, outPath, head)
	return nil
}

// #endregion export
