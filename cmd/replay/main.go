package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/mh-sampler/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	verbose := flag.Bool("v", false, "print chain summary even on pass")
	flag.Parse()

	paths := flag.Args()
	if *fixturePath != "" {
		paths = append([]string{*fixturePath}, paths...)
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [more fixtures...]")
		os.Exit(2)
	}

	failed := 0
	for _, path := range paths {
		if !replayOne(path, *verbose) {
			failed++
		}
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d fixtures failed\n", failed, len(paths))
		os.Exit(1)
	}
	fmt.Printf("%d fixtures passed\n", len(paths))
}

// #endregion main

// #region replay-one

func replayOne(path string, verbose bool) bool {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return false
	}

	result, err := replay.Replay(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return false
	}

	if !result.Passed {
		fmt.Fprintf(os.Stderr, "FAIL %s (%s)\n", path, f.Description)
		for _, msg := range result.Failures {
			fmt.Fprintf(os.Stderr, "  %s\n", msg)
		}
		return false
	}

	fmt.Printf("PASS %s (%s)\n", path, f.Description)
	if verbose {
		fmt.Printf("  mean=%.4f stddev=%.4f accept=%.2f%%\n",
			result.Stats.Mean, result.Stats.StdDev, result.AcceptRate*100)
	}
	return true
}

// #endregion replay-one
