package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Target is the destination of a raw jump recovered from bytecode.
// Resolved flips once, when a structuring pass has absorbed the jump into
// an If, While or Switch. It never flips back.
type Target struct {
	Position uint16 // instruction index in the original stream
	Resolved bool
}

func NewTarget(position uint16) Target {
	return Target{Position: position}
}

// NewTargetAt builds a Target from an instruction index, rejecting indexes
// that do not fit the 16-bit bytecode position.
func NewTargetAt(index int) (Target, error) {
	pos, err := safecast.Conv[uint16](index)
	if err != nil {
		return Target{}, fmt.Errorf("jump target %d: %w", index, err)
	}
	return NewTarget(pos), nil
}

// Resolve marks the target as consumed. Idempotent.
func (t *Target) Resolve() {
	t.Resolved = true
}

func (t Target) String() string {
	if t.Resolved {
		return fmt.Sprintf("@%d (resolved)", t.Position)
	}
	return fmt.Sprintf("@%d", t.Position)
}
