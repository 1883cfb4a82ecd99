package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/danielpatrickdp/mh-sampler/internal/randsrc"
	"github.com/danielpatrickdp/mh-sampler/internal/runlog"
	"github.com/danielpatrickdp/mh-sampler/internal/sampler"
	"github.com/danielpatrickdp/mh-sampler/internal/store"
	"github.com/danielpatrickdp/mh-sampler/internal/summary"
)

// #region main

func main() {
	samples := flag.Int("samples", 10000, "chain length to draw")
	successes := flag.Int("successes", 0, "observed success count")
	trials := flag.Int("trials", 0, "observed trial count")
	scale := flag.Float64("scale", sampler.DefaultProposalScale, "random-walk proposal standard deviation")
	seed := flag.Int64("seed", -1, "random seed for a reproducible chain (-1 = time-seeded)")
	burnIn := flag.Int("burnin", -1, "samples to discard before summarizing (-1 = half the chain)")
	dbPath := flag.String("db", envOr("SAMPLER_DB", ""), "persist the run to this SQLite database")
	jsonOut := flag.Bool("json", false, "dump the raw chain as JSON instead of a summary")
	flag.Parse()

	if *trials <= 0 {
		fmt.Fprintln(os.Stderr, "usage: sample --successes K --trials N [--samples M] [--scale S] [--seed X] [--db path] [--json]")
		os.Exit(2)
	}

	cfg := sampler.Config{ProposalScale: *scale}
	var seedPtr *uint64
	if *seed >= 0 {
		s := uint64(*seed)
		seedPtr = &s
		cfg.Source = randsrc.Seeded(s)
	}

	res, err := sampler.Run(*samples, *successes, *trials, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		if err := json.NewEncoder(os.Stdout).Encode(res.Chain); err != nil {
			fmt.Fprintf(os.Stderr, "encode chain: %v\n", err)
			os.Exit(1)
		}
	} else {
		discard := *burnIn
		if discard < 0 {
			discard = summary.DefaultBurnIn(len(res.Chain))
		}
		stats, err := summary.Summarize(res.Chain, discard)
		if err != nil {
			fmt.Fprintf(os.Stderr, "summarize: %v\n", err)
			os.Exit(1)
		}
		printSummary(*successes, *trials, res, stats)
	}

	if *dbPath != "" {
		if err := persistRun(*dbPath, *successes, *trials, *scale, seedPtr, res); err != nil {
			log.Fatalf("persist run: %v", err)
		}
	}
}

// #endregion main

// #region output

func printSummary(successes, trials int, res sampler.Result, stats summary.Stats) {
	fmt.Printf("posterior chain for %d/%d (n=%d, burn-in=%d)\n", successes, trials, len(res.Chain), stats.BurnIn)
	fmt.Printf("  mean    %.4f\n", stats.Mean)
	fmt.Printf("  stddev  %.4f\n", stats.StdDev)
	fmt.Printf("  median  %.4f\n", stats.Median)
	fmt.Printf("  90%% CI  [%.4f, %.4f]\n", stats.Q05, stats.Q95)
	fmt.Printf("  range   [%.4f, %.4f]\n", stats.Min, stats.Max)
	fmt.Printf("  accept  %.2f%%\n", res.AcceptRate()*100)
}

// #endregion output

// #region persist

func persistRun(dbPath string, successes, trials int, scale float64, seed *uint64, res sampler.Result) error {
	st, err := store.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	id, err := st.SaveRun(store.RunRecord{
		Successes:     successes,
		Trials:        trials,
		SampleCount:   len(res.Chain),
		ProposalScale: scale,
		Seed:          seed,
		Accepted:      res.Accepted,
		Chain:         res.Chain,
	})
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}

	detail := fmt.Sprintf("n=%d accept_rate=%.4f", len(res.Chain), res.AcceptRate())
	if err := runlog.LogEvent(st.DB(), runlog.Entry{RunID: id, Event: "run_completed", Detail: detail}); err != nil {
		return fmt.Errorf("log event: %w", err)
	}

	log.Printf("[SAMPLE] run %s persisted to %s", id, dbPath)
	return nil
}

// #endregion persist

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
// #endregion helpers
