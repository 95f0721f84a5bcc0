// ABOUTME: Unit tests for the JSONL audit writer
// ABOUTME: Covers filtering, ordering, limits, and malformed line tolerance
package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestWriter(t *testing.T) *JSONLWriter {
	t.Helper()
	w, err := NewJSONLWriter(filepath.Join(t.TempDir(), "audit", "removals.log"))
	if err != nil {
		t.Fatalf("NewJSONLWriter: %v", err)
	}
	return w
}

func writeRecord(t *testing.T, w *JSONLWriter, record Record) {
	t.Helper()
	if err := w.Write(&record); err != nil {
		t.Fatalf("Write: %v", err)
	}
}

func TestJSONLWriter_WriteAndQuery(t *testing.T) {
	w := newTestWriter(t)
	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	writeRecord(t, w, Record{Timestamp: base, RunID: "r1", Program: "Python", Source: "registry", DisplayName: "Python 3.10.4", Success: true})
	writeRecord(t, w, Record{Timestamp: base.Add(time.Hour), RunID: "r1", Program: "Python", Source: "path", DisplayName: `C:\Python310\Scripts`, Success: false, Error: "read-only"})
	writeRecord(t, w, Record{Timestamp: base.Add(2 * time.Hour), RunID: "r2", Program: "Ruby", Source: "directory", DisplayName: "Ruby32", Success: true})

	records, err := w.Query(Filters{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	// Newest first.
	if records[0].Program != "Ruby" {
		t.Errorf("records[0].Program = %q, want Ruby", records[0].Program)
	}
}

func TestJSONLWriter_Filters(t *testing.T) {
	w := newTestWriter(t)
	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	writeRecord(t, w, Record{Timestamp: base, Program: "Python", Source: "registry", Success: true})
	writeRecord(t, w, Record{Timestamp: base.Add(time.Hour), Program: "python", Source: "path", Success: false})
	writeRecord(t, w, Record{Timestamp: base.Add(2 * time.Hour), Program: "Ruby", Source: "registry", Success: true})

	byProgram, err := w.Query(Filters{Program: "PYTHON"})
	if err != nil {
		t.Fatal(err)
	}
	if len(byProgram) != 2 {
		t.Errorf("program filter matched %d records, want 2 (case-insensitive)", len(byProgram))
	}

	bySource, err := w.Query(Filters{Source: "registry"})
	if err != nil {
		t.Fatal(err)
	}
	if len(bySource) != 2 {
		t.Errorf("source filter matched %d records, want 2", len(bySource))
	}

	failed, err := w.Query(Filters{FailedOnly: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(failed) != 1 || failed[0].Source != "path" {
		t.Errorf("failed filter = %+v, want the single path failure", failed)
	}

	since, err := w.Query(Filters{Since: base.Add(90 * time.Minute)})
	if err != nil {
		t.Fatal(err)
	}
	if len(since) != 1 || since[0].Program != "Ruby" {
		t.Errorf("since filter = %+v, want only the Ruby record", since)
	}
}

func TestJSONLWriter_LimitKeepsNewest(t *testing.T) {
	w := newTestWriter(t)
	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		writeRecord(t, w, Record{Timestamp: base.Add(time.Duration(i) * time.Minute), RunID: "r", Program: "Python", Source: "registry"})
	}

	records, err := w.Query(Filters{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if !records[0].Timestamp.After(records[1].Timestamp) {
		t.Error("limit should keep the most recent records")
	}
}

func TestJSONLWriter_MissingFileIsEmpty(t *testing.T) {
	w := newTestWriter(t)
	records, err := w.Query(Filters{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestJSONLWriter_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "removals.log")
	w, err := NewJSONLWriter(logPath)
	if err != nil {
		t.Fatal(err)
	}
	writeRecord(t, w, Record{Timestamp: time.Now(), Program: "Python", Source: "registry"})

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("{not json\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	records, err := w.Query(Filters{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1 (malformed line skipped)", len(records))
	}
}
