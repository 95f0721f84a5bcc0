// ABOUTME: Progress display for the four removal sources during a run
// ABOUTME: In-place updates on a TTY, streamed lines for pipes and CI
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// SourceProgress tracks removal progress per source phase. The parallel
// run mode reports outcomes from worker goroutines, so every method is
// safe for concurrent use.
type SourceProgress struct {
	phases        []*phase
	phasesByName  map[string]*phase
	linesRendered int
	mu            sync.Mutex
}

type phase struct {
	name      string
	total     int
	completed int
	failed    int
	done      bool
}

// NewSourceProgress creates a tracker with one phase per source name,
// rendered in the given order.
func NewSourceProgress(sources []string) *SourceProgress {
	phases := make([]*phase, len(sources))
	byName := make(map[string]*phase)
	for i, name := range sources {
		p := &phase{name: name}
		phases[i] = p
		byName[name] = p
	}
	return &SourceProgress{phases: phases, phasesByName: byName}
}

// SetTotal records how many candidates a source will attempt.
func (t *SourceProgress) SetTotal(source string, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.phasesByName[source]
	if !ok {
		return
	}
	p.total = total
	if total == 0 {
		p.done = true
	}
}

// RecordResult records one removal attempt and re-renders.
func (t *SourceProgress) RecordResult(w io.Writer, source string, success bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.phasesByName[source]
	if !ok {
		return
	}
	p.completed++
	if !success {
		p.failed++
	}
	if p.completed >= p.total {
		p.done = true
	}

	if isTerminal(w) {
		t.renderTTY(w)
	} else {
		status := SymbolSuccess
		if !success {
			status = SymbolError
		}
		fmt.Fprintf(w, "[%s] %s %d/%d\n", p.name, status, p.completed, p.total)
	}
}

// Render outputs the current state of every phase.
func (t *SourceProgress) Render(w io.Writer) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if isTerminal(w) {
		t.renderTTY(w)
		return
	}
	for _, p := range t.phases {
		fmt.Fprintln(w, phaseLine(p))
	}
}

const (
	barWidth  = 20
	barFilled = '━'
	barEmpty  = '░'
)

func (t *SourceProgress) renderTTY(w io.Writer) {
	if t.linesRendered > 0 {
		fmt.Fprintf(w, "\033[%dA", t.linesRendered)
	}
	for _, p := range t.phases {
		fmt.Fprintf(w, "\033[K%s\n", phaseLine(p))
	}
	t.linesRendered = len(t.phases)
}

func phaseLine(p *phase) string {
	name := padRight(p.name, 13)
	bar := renderBar(p.completed, p.total, barWidth)
	count := fmt.Sprintf("%d/%d", p.completed, p.total)

	status := ""
	switch {
	case p.done && p.failed > 0:
		status = " " + Error(fmt.Sprintf("%s %d failed", SymbolError, p.failed))
	case p.done:
		status = " " + Success(SymbolSuccess)
	}

	return fmt.Sprintf("%s %s %s%s", name, bar, count, status)
}

func renderBar(completed, total, width int) string {
	if total == 0 {
		return string(repeatRune(barEmpty, width))
	}
	filled := (completed * width) / total
	if filled > width {
		filled = width
	}
	return string(repeatRune(barFilled, filled)) + string(repeatRune(barEmpty, width-filled))
}

func repeatRune(r rune, n int) []rune {
	if n <= 0 {
		return []rune{}
	}
	result := make([]rune, n)
	for i := range result {
		result[i] = r
	}
	return result
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + string(repeatRune(' ', width-len(s)))
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
