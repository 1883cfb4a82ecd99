package runlog

import (
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/mh-sampler/internal/store"
)

func openTestDB(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewStore(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func saveRun(t *testing.T, s *store.Store) string {
	t.Helper()
	id, err := s.SaveRun(store.RunRecord{
		Successes:     4,
		Trials:        10,
		SampleCount:   3,
		ProposalScale: 0.16,
		Accepted:      1,
		Chain:         []float64{0.5, 0.4, 0.4},
	})
	if err != nil {
		t.Fatalf("save run: %v", err)
	}
	return id
}

func TestLogAndListEvents(t *testing.T) {
	s := openTestDB(t)
	id := saveRun(t, s)

	if err := LogEvent(s.DB(), Entry{RunID: id, Event: "run_completed", Detail: "n=3"}); err != nil {
		t.Fatalf("log event: %v", err)
	}
	if err := LogEvent(s.DB(), Entry{RunID: id, Event: "fixture_exported"}); err != nil {
		t.Fatalf("log event: %v", err)
	}

	entries, err := ListEvents(s.DB(), id)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Event != "run_completed" || entries[1].Event != "fixture_exported" {
		t.Fatalf("unexpected event order: %s, %s", entries[0].Event, entries[1].Event)
	}
	if entries[0].Detail != "n=3" {
		t.Fatalf("expected detail to round-trip, got %q", entries[0].Detail)
	}
	if entries[1].Detail != "" {
		t.Fatalf("expected empty detail, got %q", entries[1].Detail)
	}
}

func TestListEventsEmptyRun(t *testing.T) {
	s := openTestDB(t)
	id := saveRun(t, s)

	entries, err := ListEvents(s.DB(), id)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}
