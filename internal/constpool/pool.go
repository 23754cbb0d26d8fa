// Package constpool stores the constants, type names and identifiers a
// compiled script refers to by index.
//
// Type names are kept in their ':'-joined repr form and decoded with
// ast.FromRepr, so a type with several arguments on one level does not
// survive the pool (Map<Int32, String> comes back as Map<Int32<String>>).
// Add normalizes through the same path, so a pool reads the same before
// and after a Save/Load cycle.
package constpool

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"fortio.org/safecast"

	"scriptir/internal/ast"
	"scriptir/internal/source"
)

// ErrIndex is returned for lookups past the end of a section.
var ErrIndex = errors.New("pool index out of range")

// Index addresses an entry inside one section of a pool.
type Index uint32

// Options tunes pool construction and decoding.
type Options struct {
	// Interner, when set, hands out shared identifiers for names so that
	// several pools loaded into one process share their text.
	Interner *source.Interner
}

// Pool is a set of deduplicated entries. Safe for concurrent use.
type Pool struct {
	mu sync.RWMutex

	opts Options

	names   []source.Ident
	nameIdx map[string]Index

	types   []ast.TypeName
	reprs   []string
	typeIdx map[string]Index

	consts   []ast.Constant
	constIdx map[constKey]Index
}

// Stats counts the entries of each section.
type Stats struct {
	Names  int
	Types  int
	Consts int
}

func New(opts Options) *Pool {
	return &Pool{
		opts:     opts,
		nameIdx:  make(map[string]Index),
		typeIdx:  make(map[string]Index),
		constIdx: make(map[constKey]Index),
	}
}

func nextIndex(n int) (Index, error) {
	i, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0, fmt.Errorf("pool section full: %w", err)
	}
	return Index(i), nil
}

func (p *Pool) ident(s string) source.Ident {
	if p.opts.Interner != nil {
		return p.opts.Interner.Intern(s)
	}
	return source.NewIdent(s)
}

// AddName interns a name and returns its index.
func (p *Pool) AddName(name source.Ident) (Index, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.addNameLocked(name.String())
}

// Names are keyed by their stored text, so with NFC normalization on the
// composed and decomposed spellings share one entry.
func (p *Pool) addNameLocked(s string) (Index, error) {
	id := p.ident(s)
	key := id.String()
	if i, ok := p.nameIdx[key]; ok {
		return i, nil
	}
	i, err := nextIndex(len(p.names))
	if err != nil {
		return 0, err
	}
	p.names = append(p.names, id)
	p.nameIdx[key] = i
	return i, nil
}

// AddType stores t by its repr. Equal reprs share one index.
func (p *Pool) AddType(t ast.TypeName) (Index, error) {
	return p.AddTypeRepr(t.Repr().String())
}

// AddTypeRepr stores an already encoded type name.
func (p *Pool) AddTypeRepr(repr string) (Index, error) {
	t, err := ast.FromRepr(repr)
	if err != nil {
		return 0, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.addTypeLocked(repr, t)
}

func (p *Pool) addTypeLocked(repr string, t ast.TypeName) (Index, error) {
	if i, ok := p.typeIdx[repr]; ok {
		return i, nil
	}
	i, err := nextIndex(len(p.types))
	if err != nil {
		return 0, err
	}
	p.types = append(p.types, t)
	p.reprs = append(p.reprs, repr)
	p.typeIdx[repr] = i
	return i, nil
}

// constKey compares floats by bit pattern: -0 and +0 stay apart, NaN
// matches itself.
type constKey struct {
	kind      ast.ConstKind
	literal   ast.LiteralKind
	text      string
	signed    int64
	unsigned  uint64
	floatBits uint64
	flag      bool
}

func keyOf(c ast.Constant) constKey {
	return constKey{
		kind:      c.Kind,
		literal:   c.Literal,
		text:      c.Text,
		signed:    c.Int,
		unsigned:  c.Uint,
		floatBits: math.Float64bits(c.Float),
		flag:      c.Bool,
	}
}

// AddConst stores c. Constants are equal when every field matches, so 1 as
// I32 and 1 as I64 are distinct entries.
func (p *Pool) AddConst(c ast.Constant) (Index, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.addConstLocked(c)
}

func (p *Pool) addConstLocked(c ast.Constant) (Index, error) {
	key := keyOf(c)
	if i, ok := p.constIdx[key]; ok {
		return i, nil
	}
	i, err := nextIndex(len(p.consts))
	if err != nil {
		return 0, err
	}
	p.consts = append(p.consts, c)
	p.constIdx[key] = i
	return i, nil
}

func (p *Pool) Name(i Index) (source.Ident, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if int(i) >= len(p.names) {
		return source.Ident{}, fmt.Errorf("%w: name %d of %d", ErrIndex, i, len(p.names))
	}
	return p.names[i], nil
}

func (p *Pool) Type(i Index) (ast.TypeName, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if int(i) >= len(p.types) {
		return ast.TypeName{}, fmt.Errorf("%w: type %d of %d", ErrIndex, i, len(p.types))
	}
	return p.types[i], nil
}

func (p *Pool) Const(i Index) (ast.Constant, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if int(i) >= len(p.consts) {
		return ast.Constant{}, fmt.Errorf("%w: constant %d of %d", ErrIndex, i, len(p.consts))
	}
	return p.consts[i], nil
}

// Names returns a copy of the name section.
func (p *Pool) Names() []source.Ident {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]source.Ident(nil), p.names...)
}

// Types returns a copy of the type section.
func (p *Pool) Types() []ast.TypeName {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]ast.TypeName(nil), p.types...)
}

// Consts returns a copy of the constant section.
func (p *Pool) Consts() []ast.Constant {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]ast.Constant(nil), p.consts...)
}

func (p *Pool) Stats() Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Stats{Names: len(p.names), Types: len(p.types), Consts: len(p.consts)}
}

// Merge adds every entry of other to p and returns the remapping of
// other's indexes, section by section.
func (p *Pool) Merge(other *Pool) (Remap, error) {
	if other == p {
		return Remap{}, errors.New("constpool: merge into itself")
	}
	other.mu.RLock()
	defer other.mu.RUnlock()
	p.mu.Lock()
	defer p.mu.Unlock()

	var (
		r   Remap
		err error
	)
	r.Names = make([]Index, len(other.names))
	for i, n := range other.names {
		if r.Names[i], err = p.addNameLocked(n.String()); err != nil {
			return Remap{}, err
		}
	}
	r.Types = make([]Index, len(other.types))
	for i, t := range other.types {
		if r.Types[i], err = p.addTypeLocked(other.reprs[i], t); err != nil {
			return Remap{}, err
		}
	}
	r.Consts = make([]Index, len(other.consts))
	for i, c := range other.consts {
		if r.Consts[i], err = p.addConstLocked(c); err != nil {
			return Remap{}, err
		}
	}
	return r, nil
}

// Remap maps old indexes (slice position) to new ones.
type Remap struct {
	Names  []Index
	Types  []Index
	Consts []Index
}
