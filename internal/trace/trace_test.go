package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"", LevelOff, false},
		{"PHASE", LevelPhase, false},
		{"detail", LevelDetail, false},
		{"debug", LevelDebug, false},
		{"verbose", LevelOff, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestLevelShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeCommand, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeNode, false},
		{LevelDebug, ScopeNode, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)
	ctx := WithTracer(context.Background(), tr)

	span, ctx := Start(ctx, ScopePass, "pool.load")
	Point(ctx, ScopeFile, "file:a.pool", "3 entries")
	Point(ctx, ScopeNode, "entry", "filtered out")
	span.WithExtra("files", "1").End("ok")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "[pass] → pool.load") {
		t.Errorf("begin line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "[file]   • file:a.pool (3 entries)") {
		t.Errorf("point line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "← pool.load (ok) {files=1}") {
		t.Errorf("end line = %q", lines[2])
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatNDJSON)
	Begin(tr, ScopeCommand, "type", 0).End("")

	dec := json.NewDecoder(&buf)
	var kinds []string
	for dec.More() {
		var ev map[string]any
		if err := dec.Decode(&ev); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if ev["name"] != "type" || ev["scope"] != "command" {
			t.Errorf("event = %v", ev)
		}
		kinds = append(kinds, ev["kind"].(string))
	}
	if strings.Join(kinds, ",") != "begin,end" {
		t.Errorf("kinds = %v", kinds)
	}
}

func TestRingTracerWraps(t *testing.T) {
	ring := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		ring.Emit(&Event{Kind: KindPoint, Scope: ScopeNode, Name: name})
	}
	snap := ring.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len(Snapshot()) = %d, want 3", len(snap))
	}
	for i, want := range []string{"c", "d", "e"} {
		if snap[i].Name != want {
			t.Errorf("Snapshot()[%d] = %q, want %q", i, snap[i].Name, want)
		}
	}
	if snap[0].Seq >= snap[2].Seq {
		t.Errorf("sequence not increasing: %d, %d", snap[0].Seq, snap[2].Seq)
	}
}

func TestNewFromConfig(t *testing.T) {
	tr, ring, err := New(Config{Level: LevelOff})
	if err != nil || tr != Nop || ring != nil {
		t.Fatalf("New(off) = %v, %v, %v", tr, ring, err)
	}

	var buf bytes.Buffer
	tr, ring, err = New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Begin(tr, ScopePass, "save", 0).End("")
	if len(ring.Snapshot()) != 2 {
		t.Errorf("ring has %d events, want 2", len(ring.Snapshot()))
	}
	if strings.Count(buf.String(), "\n") != 2 {
		t.Errorf("stream output = %q", buf.String())
	}
}

func TestNopContext(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Error("FromContext without a tracer should return Nop")
	}
	span, ctx := Start(context.Background(), ScopeCommand, "x")
	if span.ID() != 0 || CurrentSpan(ctx).SpanID != 0 {
		t.Error("span under Nop should be inert")
	}
	if d := span.End(""); d != 0 {
		t.Errorf("End() = %v, want 0", d)
	}
}
