package source

import (
	"hash/maphash"
	"strings"
)

// Ident is an immutable name. It either borrows static text that lives for
// the whole process or points at shared heap text that several tree nodes
// may hold at once.
//
// The representation is invisible: Equal, Compare, Hash and String only
// look at the text. Do not compare Idents with ==; use Equal, or key maps
// by String().
type Ident struct {
	static string
	shared *string
}

// Static wraps process-lifetime text (keywords, builtin type names).
func Static(s string) Ident {
	return Ident{static: s}
}

// NewIdent stores s as shared text.
func NewIdent(s string) Ident {
	return Ident{shared: &s}
}

// IsStatic reports whether the ident borrows static text.
func (id Ident) IsStatic() bool {
	return id.shared == nil
}

// ToShared returns an ident with the same text in the shared representation.
// Shared idents are returned unchanged so holders keep pointing at one copy.
func (id Ident) ToShared() Ident {
	if id.shared != nil {
		return id
	}
	return NewIdent(id.static)
}

func (id Ident) String() string {
	if id.shared != nil {
		return *id.shared
	}
	return id.static
}

func (id Ident) Equal(other Ident) bool {
	return id.String() == other.String()
}

func (id Ident) Compare(other Ident) int {
	return strings.Compare(id.String(), other.String())
}

// Hash hashes the text with seed. Idents that are Equal hash equally.
func (id Ident) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, id.String())
}

func (id Ident) IsEmpty() bool {
	return id.String() == ""
}
