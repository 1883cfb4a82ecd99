package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/mh-sampler/internal/runlog"
	"github.com/danielpatrickdp/mh-sampler/internal/store"
	"github.com/danielpatrickdp/mh-sampler/internal/summary"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to runs database")
	last := flag.Int("last", 20, "show N most recent runs")
	runID := flag.String("run", "", "show single run detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/runs.db [--last N] [--run id] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *runID != "" {
		err = runDetailMode(st, *runID, *jsonOut)
	} else {
		err = runListMode(st, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	RunID       string  `json:"run_id"`
	Observation string  `json:"observation"`
	SampleCount int     `json:"sample_count"`
	Scale       float64 `json:"proposal_scale"`
	Seeded      bool    `json:"seeded"`
	AcceptRate  float64 `json:"accept_rate"`
	CreatedAt   string  `json:"created_at"`
}

func runListMode(st *store.Store, last int, jsonOut bool) error {
	listings, err := st.ListRuns(last)
	if err != nil {
		return err
	}
	if len(listings) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	rows := make([]listRow, len(listings))
	for i, l := range listings {
		rate := 0.0
		if l.SampleCount > 1 {
			rate = float64(l.Accepted) / float64(l.SampleCount-1)
		}
		rows[i] = listRow{
			RunID:       l.RunID,
			Observation: fmt.Sprintf("%d/%d", l.Successes, l.Trials),
			SampleCount: l.SampleCount,
			Scale:       l.ProposalScale,
			Seeded:      l.Seed != nil,
			AcceptRate:  rate,
			CreatedAt:   l.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(rows)
	}

	fmt.Printf("%-36s  %-8s  %-8s  %-6s  %-6s  %-8s  %s\n",
		"RUN", "OBS", "SAMPLES", "SCALE", "SEEDED", "ACCEPT", "CREATED")
	for _, r := range rows {
		fmt.Printf("%-36s  %-8s  %-8d  %-6.2f  %-6v  %-8.2f  %s\n",
			r.RunID, r.Observation, r.SampleCount, r.Scale, r.Seeded, r.AcceptRate, r.CreatedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailView struct {
	Run     listRow        `json:"run"`
	Stats   summary.Stats  `json:"stats"`
	Events  []eventView    `json:"events,omitempty"`
}

type eventView struct {
	Event     string `json:"event"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}

func runDetailMode(st *store.Store, runID string, jsonOut bool) error {
	rec, err := st.GetRun(runID)
	if err != nil {
		return err
	}

	stats, err := summary.Summarize(rec.Chain, summary.DefaultBurnIn(len(rec.Chain)))
	if err != nil {
		return fmt.Errorf("summarize chain: %w", err)
	}

	events, err := runlog.ListEvents(st.DB(), runID)
	if err != nil {
		return err
	}

	rate := 0.0
	if rec.SampleCount > 1 {
		rate = float64(rec.Accepted) / float64(rec.SampleCount-1)
	}
	view := detailView{
		Run: listRow{
			RunID:       rec.RunID,
			Observation: fmt.Sprintf("%d/%d", rec.Successes, rec.Trials),
			SampleCount: rec.SampleCount,
			Scale:       rec.ProposalScale,
			Seeded:      rec.Seed != nil,
			AcceptRate:  rate,
			CreatedAt:   rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
		},
		Stats: stats,
	}
	for _, e := range events {
		view.Events = append(view.Events, eventView{
			Event:     e.Event,
			Detail:    e.Detail,
			CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(view)
	}

	fmt.Printf("run %s\n", view.Run.RunID)
	fmt.Printf("  observation  %s\n", view.Run.Observation)
	fmt.Printf("  samples      %d (burn-in %d)\n", view.Run.SampleCount, stats.BurnIn)
	fmt.Printf("  scale        %.4f\n", view.Run.Scale)
	if rec.Seed != nil {
		fmt.Printf("  seed         %d\n", *rec.Seed)
	} else {
		fmt.Printf("  seed         (none)\n")
	}
	fmt.Printf("  accept rate  %.2f%%\n", rate*100)
	fmt.Printf("  mean         %.4f\n", stats.Mean)
	fmt.Printf("  stddev       %.4f\n", stats.StdDev)
	fmt.Printf("  median       %.4f\n", stats.Median)
	fmt.Printf("  90%% CI       [%.4f, %.4f]\n", stats.Q05, stats.Q95)
	for _, e := range view.Events {
		fmt.Printf("  event        %s %s %s\n", e.CreatedAt, e.Event, e.Detail)
	}
	return nil
}

// #endregion detail-mode
