package constpool

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"scriptir/internal/ast"
)

// SchemaVersion is bumped whenever the encoded layout changes.
const SchemaVersion uint16 = 1

// ErrSchema is returned when decoding a pool written with another schema.
var ErrSchema = errors.New("unsupported pool schema")

type payload struct {
	Schema uint16         `msgpack:"schema"`
	Names  []string       `msgpack:"names"`
	Types  []string       `msgpack:"types"` // repr form
	Consts []ast.Constant `msgpack:"consts"`
}

func (p *Pool) payload() *payload {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := &payload{
		Schema: SchemaVersion,
		Names:  make([]string, len(p.names)),
		Types:  append([]string(nil), p.reprs...),
		Consts: append([]ast.Constant(nil), p.consts...),
	}
	for i, n := range p.names {
		out.Names[i] = n.String()
	}
	return out
}

// Encode writes p to w as msgpack.
func (p *Pool) Encode(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(p.payload())
}

// Decode reads a pool written by Encode.
func Decode(r io.Reader, opts Options) (*Pool, error) {
	var in payload
	if err := msgpack.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode pool: %w", err)
	}
	if in.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: %d (this build reads %d)", ErrSchema, in.Schema, SchemaVersion)
	}

	p := New(opts)
	for _, n := range in.Names {
		if _, err := p.addNameLocked(n); err != nil {
			return nil, err
		}
	}
	for i, repr := range in.Types {
		t, err := ast.FromRepr(repr)
		if err != nil {
			return nil, fmt.Errorf("type %d: %w", i, err)
		}
		if _, err := p.addTypeLocked(repr, t); err != nil {
			return nil, err
		}
	}
	for _, c := range in.Consts {
		if _, err := p.addConstLocked(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}
