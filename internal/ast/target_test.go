package ast

import (
	"math"
	"testing"
)

func TestTarget(t *testing.T) {
	tg := NewTarget(12)
	if tg.Resolved || tg.String() != "@12" {
		t.Fatalf("NewTarget(12) = %+v (%s)", tg, tg)
	}
	tg.Resolve()
	tg.Resolve()
	if !tg.Resolved || tg.Position != 12 || tg.String() != "@12 (resolved)" {
		t.Errorf("after Resolve = %+v (%s)", tg, tg)
	}
}

func TestNewTargetAt(t *testing.T) {
	tests := []struct {
		index   int
		wantErr bool
	}{
		{0, false},
		{math.MaxUint16, false},
		{math.MaxUint16 + 1, true},
		{-1, true},
	}
	for _, tt := range tests {
		got, err := NewTargetAt(tt.index)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewTargetAt(%d) error = %v, wantErr %v", tt.index, err, tt.wantErr)
			continue
		}
		if err == nil && int(got.Position) != tt.index {
			t.Errorf("NewTargetAt(%d).Position = %d", tt.index, got.Position)
		}
	}
}
