// ABOUTME: Tests for audit command helpers
// ABOUTME: Covers duration parsing including the day suffix
package commands

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "hours", input: "24h", want: 24 * time.Hour},
		{name: "minutes", input: "90m", want: 90 * time.Minute},
		{name: "single day", input: "1d", want: 24 * time.Hour},
		{name: "week of days", input: "7d", want: 7 * 24 * time.Hour},
		{name: "bare number", input: "7", wantErr: true},
		{name: "garbage day suffix", input: "xd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDuration(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDuration(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDuration(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
