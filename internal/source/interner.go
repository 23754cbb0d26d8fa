package source

import (
	"slices"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// InternerOptions configures an Interner.
type InternerOptions struct {
	// NormalizeNFC rewrites every interned name to Unicode NFC first, so
	// composed and decomposed spellings resolve to one Ident.
	NormalizeNFC bool
}

// Interner hands out one shared Ident per distinct text.
// Safe for concurrent use.
type Interner struct {
	mu    sync.RWMutex
	index map[string]Ident
	order []string
	opts  InternerOptions
}

func NewInterner(opts InternerOptions) *Interner {
	return &Interner{
		index: make(map[string]Ident, 64),
		opts:  opts,
	}
}

// Preload registers static names (keywords, builtins) so that interning
// them never allocates.
func (i *Interner) Preload(names ...string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, name := range names {
		if _, ok := i.index[name]; ok {
			continue
		}
		i.index[name] = Static(name)
		i.order = append(i.order, name)
	}
}

// Intern returns the Ident for s, creating it on first use.
func (i *Interner) Intern(s string) Ident {
	if i.opts.NormalizeNFC {
		s = norm.NFC.String(s)
	}

	i.mu.RLock()
	id, ok := i.index[s]
	i.mu.RUnlock()
	if ok {
		return id
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if id, ok := i.index[s]; ok {
		return id
	}
	// копия, чтобы не держать чужой буфер
	cpy := string([]byte(s))
	id = NewIdent(cpy)
	i.index[cpy] = id
	i.order = append(i.order, cpy)
	return id
}

// InternBytes interns the text of b.
func (i *Interner) InternBytes(b []byte) Ident {
	return i.Intern(string(b))
}

// Lookup returns the Ident for s without creating one.
func (i *Interner) Lookup(s string) (Ident, bool) {
	if i.opts.NormalizeNFC {
		s = norm.NFC.String(s)
	}
	i.mu.RLock()
	defer i.mu.RUnlock()
	id, ok := i.index[s]
	return id, ok
}

func (i *Interner) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.order)
}

// Snapshot returns the interned texts in insertion order.
func (i *Interner) Snapshot() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return slices.Clone(i.order)
}
