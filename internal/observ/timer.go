package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase accumulates the time spent in one named phase across all files.
type Phase struct {
	Name  string
	Dur   time.Duration
	Count int
}

// Timer tracks how long each phase (load, rewrite, write) takes.
// A nil *Timer is valid and records nothing.
type Timer struct {
	phases []Phase
	index  map[string]int
	open   map[int]openPhase
	nextID int
}

type openPhase struct {
	phase int
	start time.Time
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer {
	return &Timer{
		phases: make([]Phase, 0, 4),
		index:  make(map[string]int, 4),
		open:   make(map[int]openPhase),
	}
}

// Begin starts timing name and returns a handle for End.
func (t *Timer) Begin(name string) int {
	if t == nil {
		return -1
	}
	if _, ok := t.index[name]; !ok {
		t.index[name] = len(t.phases)
		t.phases = append(t.phases, Phase{Name: name})
	}
	t.nextID++
	t.open[t.nextID] = openPhase{phase: t.index[name], start: time.Now()}
	return t.nextID
}

// End stops the measurement started by Begin and adds it to its phase.
func (t *Timer) End(id int) {
	if t == nil {
		return
	}
	op, ok := t.open[id]
	if !ok {
		return
	}
	delete(t.open, id)
	p := &t.phases[op.phase]
	p.Dur += time.Since(op.start)
	p.Count++
}

// Summary returns a human-readable table of all phases.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&sb, "  %-12s %7.2f ms  (%d)\n", p.Name, p.DurationMS, p.Count)
	}
	fmt.Fprintf(&sb, "  %-12s %7.2f ms\n", "total", report.TotalMS)
	return sb.String()
}

// PhaseReport is the serializable view of a phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Count      int     `json:"count"`
}

// Report aggregates all phases.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report returns the phases in first-use order and their total in milliseconds.
func (t *Timer) Report() Report {
	if t == nil || len(t.phases) == 0 {
		return Report{}
	}
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Count:      phase.Count,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
