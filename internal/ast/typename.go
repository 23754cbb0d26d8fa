package ast

import (
	"errors"
	"fmt"
	"strings"

	"scriptir/internal/source"
)

var (
	// ErrMalformedRepr is returned by FromRepr for encodings with no usable segment.
	ErrMalformedRepr = errors.New("malformed type repr")
	// ErrWrapperArity is returned when a ref/wref carries no type argument.
	ErrWrapperArity = errors.New("reference wrapper without type argument")
)

// TypeKind classifies a TypeName by its base name.
type TypeKind uint8

const (
	KindPrim TypeKind = iota
	KindRef
	KindWRef
	KindScriptRef
	KindArray
)

func (k TypeKind) String() string {
	switch k {
	case KindPrim:
		return "prim"
	case KindRef:
		return "ref"
	case KindWRef:
		return "wref"
	case KindScriptRef:
		return "script_ref"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Arity returns how many type arguments the kind expects, -1 for any.
func (k TypeKind) Arity() int {
	if k == KindPrim {
		return -1
	}
	return 1
}

// TypeName is a generic type descriptor: a base name and its type arguments.
// Argument count is not checked here; see ValidateTypeName.
type TypeName struct {
	name source.Ident
	args []TypeName
}

// Builtin primitive types.
var (
	TypeBool      = BasicType("Bool")
	TypeInt8      = BasicType("Int8")
	TypeInt16     = BasicType("Int16")
	TypeInt32     = BasicType("Int32")
	TypeInt64     = BasicType("Int64")
	TypeUint8     = BasicType("Uint8")
	TypeUint16    = BasicType("Uint16")
	TypeUint32    = BasicType("Uint32")
	TypeUint64    = BasicType("Uint64")
	TypeFloat     = BasicType("Float")
	TypeDouble    = BasicType("Double")
	TypeString    = BasicType("String")
	TypeVariant   = BasicType("Variant")
	TypeCName     = BasicType("CName")
	TypeResource  = BasicType("ResRef")
	TypeTweakDBID = BasicType("TweakDBID")
	TypeVoid      = BasicType("Void")
)

// Reserved wrapper names.
const (
	RefName       = "ref"
	WRefName      = "wref"
	ScriptRefName = "script_ref"
	ArrayName     = "array"
)

var builtinTypes = []TypeName{
	TypeBool, TypeInt8, TypeInt16, TypeInt32, TypeInt64,
	TypeUint8, TypeUint16, TypeUint32, TypeUint64,
	TypeFloat, TypeDouble, TypeString, TypeVariant,
	TypeCName, TypeResource, TypeTweakDBID, TypeVoid,
}

var staticNames = func() map[string]source.Ident {
	m := make(map[string]source.Ident, len(builtinTypes)+4)
	for _, t := range builtinTypes {
		m[t.name.String()] = t.name
	}
	for _, n := range []string{RefName, WRefName, ScriptRefName, ArrayName} {
		m[n] = source.Static(n)
	}
	return m
}()

// BuiltinTypes returns the builtin primitive types.
func BuiltinTypes() []TypeName {
	out := make([]TypeName, len(builtinTypes))
	copy(out, builtinTypes)
	return out
}

// StaticTypeNames lists the builtin and wrapper names, for preloading an Interner.
func StaticTypeNames() []string {
	names := make([]string, 0, len(staticNames))
	for _, t := range builtinTypes {
		names = append(names, t.name.String())
	}
	return append(names, RefName, WRefName, ScriptRefName, ArrayName)
}

func NewTypeName(name source.Ident, args ...TypeName) TypeName {
	return TypeName{name: name, args: args}
}

// BasicType builds an argument-less type over static text.
func BasicType(name string) TypeName {
	return TypeName{name: source.Static(name)}
}

// RefOf wraps t in ref<t>.
func RefOf(t TypeName) TypeName { return NewTypeName(source.Static(RefName), t) }

// WRefOf wraps t in wref<t>.
func WRefOf(t TypeName) TypeName { return NewTypeName(source.Static(WRefName), t) }

// ScriptRefOf wraps t in script_ref<t>.
func ScriptRefOf(t TypeName) TypeName { return NewTypeName(source.Static(ScriptRefName), t) }

// ArrayOf builds array<t>.
func ArrayOf(t TypeName) TypeName { return NewTypeName(source.Static(ArrayName), t) }

func (t TypeName) Name() source.Ident { return t.name }

// Args returns the type arguments. The slice must not be modified.
func (t TypeName) Args() []TypeName { return t.args }

func (t TypeName) Kind() TypeKind {
	switch t.name.String() {
	case RefName:
		return KindRef
	case WRefName:
		return KindWRef
	case ScriptRefName:
		return KindScriptRef
	case ArrayName:
		return KindArray
	default:
		return KindPrim
	}
}

// Equal compares names and arguments by text.
func (t TypeName) Equal(other TypeName) bool {
	if !t.name.Equal(other.name) || len(t.args) != len(other.args) {
		return false
	}
	for i := range t.args {
		if !t.args[i].Equal(other.args[i]) {
			return false
		}
	}
	return true
}

// Unwrapped strips ref and wref layers. Other types are returned as is.
func (t TypeName) Unwrapped() (TypeName, error) {
	for {
		switch t.Kind() {
		case KindRef, KindWRef:
			if len(t.args) == 0 {
				return TypeName{}, fmt.Errorf("%w: %s", ErrWrapperArity, t.name)
			}
			t = t.args[0]
		default:
			return t, nil
		}
	}
}

// Mangled returns the key used for overload resolution. Reference wrappers
// are erased, so ref<T>, wref<T> and T mangle alike.
func (t TypeName) Mangled() (source.Ident, error) {
	u, err := t.Unwrapped()
	if err != nil {
		return source.Ident{}, err
	}
	if len(u.args) == 0 {
		return u.name, nil
	}
	var sb strings.Builder
	if err := u.writeMangled(&sb); err != nil {
		return source.Ident{}, err
	}
	return source.NewIdent(sb.String()), nil
}

func (t TypeName) writeMangled(sb *strings.Builder) error {
	u, err := t.Unwrapped()
	if err != nil {
		return err
	}
	sb.WriteString(u.name.String())
	if len(u.args) == 0 {
		return nil
	}
	sb.WriteByte('<')
	for i, arg := range u.args {
		if i > 0 {
			sb.WriteByte(',')
		}
		if err := arg.writeMangled(sb); err != nil {
			return err
		}
	}
	sb.WriteByte('>')
	return nil
}

// Pretty renders the type for diagnostics, wrappers included.
func (t TypeName) Pretty() source.Ident {
	if len(t.args) == 0 {
		return t.name
	}
	var sb strings.Builder
	t.writePretty(&sb)
	return source.NewIdent(sb.String())
}

func (t TypeName) writePretty(sb *strings.Builder) {
	sb.WriteString(t.name.String())
	if len(t.args) == 0 {
		return
	}
	sb.WriteByte('<')
	for i, arg := range t.args {
		if i > 0 {
			sb.WriteString(", ")
		}
		arg.writePretty(sb)
	}
	sb.WriteByte('>')
}

// Repr returns the constant-pool encoding: the name followed by the repr of
// each argument, joined with ':'.
func (t TypeName) Repr() source.Ident {
	if len(t.args) == 0 {
		return t.name
	}
	var sb strings.Builder
	t.writeRepr(&sb)
	return source.NewIdent(sb.String())
}

func (t TypeName) writeRepr(sb *strings.Builder) {
	sb.WriteString(t.name.String())
	for _, arg := range t.args {
		sb.WriteByte(':')
		arg.writeRepr(sb)
	}
}

// FromRepr decodes a constant-pool encoding. Every segment after the first
// becomes the single argument of the segment before it, so "ref:array:Int32"
// yields ref<array<Int32>>.
//
// This only inverts Repr for types with at most one argument per level:
// Map<Int32, String> encodes as "Map:Int32:String" and decodes as
// Map<Int32<String>>. Existing pools depend on this format.
//
// Empty segments ("a::b", "ref:", ":Int32") are rejected with
// ErrMalformedRepr rather than decoded into nameless types, so a pool file
// written by a tool that emits them fails to load.
func FromRepr(s string) (TypeName, error) {
	if s == "" {
		return TypeName{}, fmt.Errorf("%w: empty string", ErrMalformedRepr)
	}
	parts := strings.Split(s, ":")
	for _, p := range parts {
		if p == "" {
			return TypeName{}, fmt.Errorf("%w: empty segment in %q", ErrMalformedRepr, s)
		}
	}

	t := TypeName{name: reprName(parts[len(parts)-1])}
	for i := len(parts) - 2; i >= 0; i-- {
		t = TypeName{name: reprName(parts[i]), args: []TypeName{t}}
	}
	return t, nil
}

// builtins and wrappers keep their static text
func reprName(s string) source.Ident {
	if id, ok := staticNames[s]; ok {
		return id
	}
	return source.NewIdent(s)
}

// String renders the mangled form, falling back to Pretty for malformed wrappers.
func (t TypeName) String() string {
	m, err := t.Mangled()
	if err != nil {
		return t.Pretty().String()
	}
	return m.String()
}
