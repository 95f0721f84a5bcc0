// ABOUTME: JSONL audit writer that persists removal records to disk
// ABOUTME: in a queryable format so destructive runs leave an inspectable trail.
package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// JSONLWriter writes records to a JSONL (JSON Lines) file.
type JSONLWriter struct {
	logPath string
	mu      sync.Mutex
}

// NewJSONLWriter creates a writer, ensuring the parent directory exists.
func NewJSONLWriter(logPath string) (*JSONLWriter, error) {
	dir := filepath.Dir(logPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &JSONLWriter{
		logPath: logPath,
	}, nil
}

// Write appends a record to the log file. Safe for concurrent use; the
// parallel run mode reports outcomes from worker goroutines.
func (w *JSONLWriter) Write(record *Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := os.OpenFile(w.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	_, err = f.Write(append(data, '\n'))
	return err
}

// Query reads records from the log file and applies filters, newest first.
func (w *JSONLWriter) Query(filters Filters) ([]*Record, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := os.Stat(w.logPath); os.IsNotExist(err) {
		return []*Record{}, nil
	}

	f, err := os.Open(w.logPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []*Record
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		var record Record
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			// Skip malformed lines
			continue
		}

		if !matchesFilters(&record, filters) {
			continue
		}

		records = append(records, &record)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Sort by timestamp descending (most recent first)
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})

	// Apply limit after sorting so the most recent records win.
	if filters.Limit > 0 && len(records) > filters.Limit {
		records = records[:filters.Limit]
	}

	return records, nil
}

func matchesFilters(record *Record, filters Filters) bool {
	if filters.Program != "" && !strings.EqualFold(record.Program, filters.Program) {
		return false
	}

	if filters.Source != "" && record.Source != filters.Source {
		return false
	}

	if !filters.Since.IsZero() && record.Timestamp.Before(filters.Since) {
		return false
	}

	if filters.FailedOnly && record.Success {
		return false
	}

	return true
}
