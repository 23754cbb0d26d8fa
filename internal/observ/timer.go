package observ

import (
	"fmt"
	"strings"
	"time"
)

// Step is one timed stage of a command (load, merge, save).
type Step struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer collects step durations for --timings output. Not safe for
// concurrent use.
type Timer struct {
	steps []Step
	now   func() time.Time
}

func NewTimer() *Timer { return &Timer{steps: make([]Step, 0, 4), now: time.Now} }

// Begin starts a step and returns its index for End.
func (t *Timer) Begin(name string) int {
	t.steps = append(t.steps, Step{Name: name, Start: t.now()})
	return len(t.steps) - 1
}

// End closes step idx. Unknown indexes are ignored.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.steps) {
		return
	}
	s := &t.steps[idx]
	s.Dur = t.now().Sub(s.Start)
	s.Note = note
}

// StepReport is the serializable form of a Step.
type StepReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report суммирует шаги и общую длительность в миллисекундах.
type Report struct {
	TotalMS float64      `json:"total_ms"`
	Steps   []StepReport `json:"steps"`
}

func (t *Timer) Report() Report {
	if len(t.steps) == 0 {
		return Report{}
	}
	r := Report{Steps: make([]StepReport, len(t.steps))}
	var total time.Duration
	for i, s := range t.steps {
		total += s.Dur
		r.Steps[i] = StepReport{Name: s.Name, DurationMS: millis(s.Dur), Note: s.Note}
	}
	r.TotalMS = millis(total)
	return r
}

// Summary renders the report as an aligned text table.
func (t *Timer) Summary() string {
	r := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, s := range r.Steps {
		fmt.Fprintf(&b, "  %-20s %7.2f ms", s.Name, s.DurationMS)
		if s.Note != "" {
			b.WriteString("  // " + s.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-20s %7.2f ms\n", "total", r.TotalMS)
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
