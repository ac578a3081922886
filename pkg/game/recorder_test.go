package game

import (
	"strings"
	"testing"
)

func TestRecorderRoundTrip(t *testing.T) {
	dir := t.TempDir()

	rec, err := NewRecorder(dir)
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}

	snaps := []Snapshot{
		{Tick: 1, State: "playing", Score: 0, FPS: 4, Heading: "right",
			Snake: []Cell{{11, 7}, {10, 7}, {9, 7}}},
		{Tick: 2, State: "playing", Score: 10, FPS: 4, Heading: "right",
			Snake: []Cell{{12, 7}, {11, 7}, {10, 7}}},
		{Tick: 3, State: "game_over", Score: 10, FPS: 4, Heading: "right",
			Snake: []Cell{{12, 7}, {11, 7}, {10, 7}}, Crash: &Cell{X: 13, Y: 7}},
	}
	for _, s := range snaps {
		rec.Record(s)
	}
	rec.Close()

	if !strings.HasSuffix(rec.Path(), ".jsonl") {
		t.Errorf("unexpected record file name: %s", rec.Path())
	}

	records, err := ReadRecords(rec.Path())
	if err != nil {
		t.Fatalf("read records: %v", err)
	}
	if len(records) != len(snaps) {
		t.Fatalf("expected %d records, got %d", len(snaps), len(records))
	}
	for i, r := range records {
		if r.Snapshot.Tick != snaps[i].Tick || r.Snapshot.Score != snaps[i].Score {
			t.Errorf("record %d: got tick %d score %d, want tick %d score %d",
				i, r.Snapshot.Tick, r.Snapshot.Score, snaps[i].Tick, snaps[i].Score)
		}
	}

	last := records[len(records)-1].Snapshot
	if last.State != "game_over" || last.Crash == nil {
		t.Error("final record should carry the game over state and crash cell")
	}
}

func TestRecordAfterCloseIsNoop(t *testing.T) {
	rec, err := NewRecorder(t.TempDir())
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}
	rec.Close()

	rec.Record(Snapshot{Tick: 1}) // must not panic on the closed channel

	records, err := ReadRecords(rec.Path())
	if err != nil {
		t.Fatalf("read records: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records after close, got %d", len(records))
	}
}
