package store

import "time"

// #region run-record
// RunRecord is a persisted sampling run: the inputs, the seed (when the run
// was reproducible), and the full chain.
type RunRecord struct {
	RunID         string
	Successes     int
	Trials        int
	SampleCount   int
	ProposalScale float64
	Seed          *uint64 // nil for time-seeded, non-replayable runs
	Accepted      int
	Chain         []float64
	CreatedAt     time.Time
}
// #endregion run-record

// #region run-listing
// RunListing is a RunRecord without the chain payload, for list views.
type RunListing struct {
	RunID         string
	Successes     int
	Trials        int
	SampleCount   int
	ProposalScale float64
	Seed          *uint64
	Accepted      int
	CreatedAt     time.Time
}
// #endregion run-listing
