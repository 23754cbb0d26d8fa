package source

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
)

// Pos is a zero-based byte offset into a source buffer.
type Pos uint32

// NoPos is the zero position.
const NoPos Pos = 0

// NewPos converts a buffer offset into a Pos.
// It panics when n is negative or does not fit into 32 bits.
func NewPos(n int) Pos {
	p, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("source: offset %d out of range: %w", n, err))
	}
	return Pos(p)
}

// Add returns p advanced by n bytes.
func (p Pos) Add(n int) Pos {
	return NewPos(p.Int() + n)
}

// Sub returns p moved back by n bytes.
// The caller must keep the result non-negative; underflow panics.
func (p Pos) Sub(n int) Pos {
	return NewPos(p.Int() - n)
}

// Int returns the offset as an int, suitable for slicing the buffer.
func (p Pos) Int() int {
	return int(p)
}

func (p Pos) String() string {
	return strconv.FormatUint(uint64(p), 10)
}
