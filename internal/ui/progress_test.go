package ui

import (
	"strings"
	"testing"

	"scriptir/internal/constpool"
)

func TestProgressFraction(t *testing.T) {
	events := make(chan constpool.LoadEvent)
	m := NewProgressModel("loading", []string{"a.pool", "b.pool"}, events).(*progressModel)

	if got := m.fraction(); got != 0 {
		t.Fatalf("fraction() = %v, want 0", got)
	}
	m.applyEvent(constpool.LoadEvent{Path: "a.pool", Status: constpool.LoadReading})
	if got := m.fraction(); got != 0.25 {
		t.Errorf("fraction() = %v, want 0.25", got)
	}
	m.applyEvent(constpool.LoadEvent{Path: "a.pool", Status: constpool.LoadDone})
	m.applyEvent(constpool.LoadEvent{Path: "b.pool", Status: constpool.LoadFailed})
	if got := m.fraction(); got != 1 {
		t.Errorf("fraction() = %v, want 1", got)
	}
	// unknown files are ignored
	if cmd := m.applyEvent(constpool.LoadEvent{Path: "c.pool", Status: constpool.LoadDone}); cmd != nil {
		t.Error("applyEvent() for unknown file returned a command")
	}
}

func TestProgressView(t *testing.T) {
	events := make(chan constpool.LoadEvent)
	m := NewProgressModel("loading", []string{"a.pool"}, events).(*progressModel)
	m.applyEvent(constpool.LoadEvent{Path: "a.pool", Status: constpool.LoadDone})
	m.done = true

	view := m.View()
	for _, want := range []string{"done: loading", "done", "a.pool"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestProgressListenClosed(t *testing.T) {
	events := make(chan constpool.LoadEvent)
	close(events)
	m := NewProgressModel("loading", nil, events).(*progressModel)
	if _, ok := m.listenForEvent()().(doneMsg); !ok {
		t.Error("listenForEvent() on a closed channel did not report done")
	}
	if m.View() != "" {
		t.Error("View() with no files should be empty")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdefghij", 6, "abc..."},
		{"abcdefghij", 10, "abcdefghij"},
		{"abcdefghijk", 10, "abcdefg..."},
		{"путь/к/файлу.pool", 8, "путь/..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
