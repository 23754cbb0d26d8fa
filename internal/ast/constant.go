package ast

import (
	"strconv"
)

// ConstKind is the tag of a Constant.
type ConstKind uint8

const (
	ConstString ConstKind = iota
	ConstF32
	ConstF64
	ConstI32
	ConstI64
	ConstU32
	ConstU64
	ConstBool
)

func (k ConstKind) String() string {
	switch k {
	case ConstString:
		return "String"
	case ConstF32:
		return "F32"
	case ConstF64:
		return "F64"
	case ConstI32:
		return "I32"
	case ConstI64:
		return "I64"
	case ConstU32:
		return "U32"
	case ConstU64:
		return "U64"
	case ConstBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// LiteralKind refines a string constant. All four share textual storage but
// later phases encode them differently.
type LiteralKind uint8

const (
	// LiteralString is a plain string.
	LiteralString LiteralKind = iota
	// LiteralName is an interned symbolic name.
	LiteralName
	// LiteralResource is a resource path.
	LiteralResource
	// LiteralTweakDBID is a database-id literal.
	LiteralTweakDBID
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralString:
		return "String"
	case LiteralName:
		return "Name"
	case LiteralResource:
		return "Resource"
	case LiteralTweakDBID:
		return "TweakDBID"
	default:
		return "Unknown"
	}
}

// prefix used when rendering the literal in dumps
func (k LiteralKind) prefix() string {
	switch k {
	case LiteralName:
		return "n"
	case LiteralResource:
		return "r"
	case LiteralTweakDBID:
		return "t"
	default:
		return ""
	}
}

// Constant is a typed literal value. Only the fields matching Kind are
// meaningful; no numeric coercion happens between kinds.
type Constant struct {
	Kind    ConstKind   `msgpack:"k"`
	Literal LiteralKind `msgpack:"l,omitempty"` // ConstString only
	Text    string      `msgpack:"s,omitempty"`
	Int     int64       `msgpack:"i,omitempty"`
	Uint    uint64      `msgpack:"u,omitempty"`
	Float   float64     `msgpack:"f"` // always written, keeps the sign of -0
	Bool    bool        `msgpack:"b,omitempty"`
}

func StringConst(lit LiteralKind, text string) Constant {
	return Constant{Kind: ConstString, Literal: lit, Text: text}
}

func F32Const(v float32) Constant { return Constant{Kind: ConstF32, Float: float64(v)} }
func F64Const(v float64) Constant { return Constant{Kind: ConstF64, Float: v} }
func I32Const(v int32) Constant   { return Constant{Kind: ConstI32, Int: int64(v)} }
func I64Const(v int64) Constant   { return Constant{Kind: ConstI64, Int: v} }
func U32Const(v uint32) Constant  { return Constant{Kind: ConstU32, Uint: uint64(v)} }
func U64Const(v uint64) Constant  { return Constant{Kind: ConstU64, Uint: v} }
func BoolConst(v bool) Constant   { return Constant{Kind: ConstBool, Bool: v} }

// F32 returns the value of an F32 constant.
func (c Constant) F32() (float32, bool) {
	return float32(c.Float), c.Kind == ConstF32
}

// I32 returns the value of an I32 constant.
func (c Constant) I32() (int32, bool) {
	return int32(c.Int), c.Kind == ConstI32
}

// U32 returns the value of a U32 constant.
func (c Constant) U32() (uint32, bool) {
	return uint32(c.Uint), c.Kind == ConstU32
}

func (c Constant) String() string {
	switch c.Kind {
	case ConstString:
		return c.Literal.prefix() + strconv.Quote(c.Text)
	case ConstF32:
		return strconv.FormatFloat(c.Float, 'g', -1, 32) + "f"
	case ConstF64:
		return strconv.FormatFloat(c.Float, 'g', -1, 64) + "d"
	case ConstI32:
		return strconv.FormatInt(c.Int, 10)
	case ConstI64:
		return strconv.FormatInt(c.Int, 10) + "l"
	case ConstU32:
		return strconv.FormatUint(c.Uint, 10) + "u"
	case ConstU64:
		return strconv.FormatUint(c.Uint, 10) + "ul"
	case ConstBool:
		return strconv.FormatBool(c.Bool)
	default:
		return "<invalid>"
	}
}
