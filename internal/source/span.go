package source

import (
	"fmt"
)

// Span is the half-open interval [Low, High) over a source buffer.
// Construction does not enforce Low <= High.
type Span struct {
	Low  Pos // в байтах включительно
	High Pos // в байтах не включительно
}

// NoSpan covers [0, 0).
var NoSpan = Span{}

func NewSpan(low, high Pos) Span {
	return Span{Low: low, High: high}
}

// Merge returns the smallest span covering both s and other.
func (s Span) Merge(other Span) Span {
	return Span{
		Low:  min(s.Low, other.Low),
		High: max(s.High, other.High),
	}
}

// Contains reports whether Low <= p < High.
func (s Span) Contains(p Pos) bool {
	return s.Low <= p && p < s.High
}

func (s Span) Empty() bool {
	return s.Low >= s.High
}

// Len returns the number of bytes covered, 0 for degenerate spans.
func (s Span) Len() uint32 {
	if s.Empty() {
		return 0
	}
	return uint32(s.High - s.Low)
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Low, s.High)
}
