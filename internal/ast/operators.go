package ast

// BinOp enumerates binary operators.
type BinOp uint8

const (
	BinAssignAdd BinOp = iota
	BinAssignSubtract
	BinAssignMultiply
	BinAssignDivide
	BinAssignOr
	BinAssignAnd
	BinLogicOr
	BinLogicAnd
	BinOr
	BinXor
	BinAnd
	BinEqual
	BinNotEqual
	BinLess
	BinLessEqual
	BinGreater
	BinGreaterEqual
	BinAdd
	BinSubtract
	BinMultiply
	BinDivide
	BinModulo

	binOpCount
)

// UnOp enumerates unary operators.
type UnOp uint8

const (
	UnBitNot UnOp = iota
	UnLogicNot
	UnNeg

	unOpCount
)

type binOpInfo struct {
	text        string // external form, used by the bytecode and lookup tables
	symbol      string
	precedence  int
	associative bool
}

// Lower precedence binds tighter.
var binOpTable = [binOpCount]binOpInfo{
	BinAssignAdd:      {text: "OperatorAssignAdd", symbol: "+=", precedence: 10},
	BinAssignSubtract: {text: "OperatorAssignSubtract", symbol: "-=", precedence: 10},
	BinAssignMultiply: {text: "OperatorAssignMultiply", symbol: "*=", precedence: 10},
	BinAssignDivide:   {text: "OperatorAssignDivide", symbol: "/=", precedence: 10},
	BinAssignOr:       {text: "OperatorAssignOr", symbol: "|=", precedence: 10},
	BinAssignAnd:      {text: "OperatorAssignAnd", symbol: "&=", precedence: 10},
	BinLogicOr:        {text: "OperatorLogicOr", symbol: "||", precedence: 9, associative: true},
	BinLogicAnd:       {text: "OperatorLogicAnd", symbol: "&&", precedence: 8, associative: true},
	BinOr:             {text: "OperatorOr", symbol: "|", precedence: 7, associative: true},
	BinXor:            {text: "OperatorXor", symbol: "^", precedence: 6, associative: true},
	BinAnd:            {text: "OperatorAnd", symbol: "&", precedence: 5, associative: true},
	BinEqual:          {text: "OperatorEqual", symbol: "==", precedence: 4},
	BinNotEqual:       {text: "OperatorNotEqual", symbol: "!=", precedence: 4},
	BinLess:           {text: "OperatorLess", symbol: "<", precedence: 3},
	BinLessEqual:      {text: "OperatorLessEqual", symbol: "<=", precedence: 3},
	BinGreater:        {text: "OperatorGreater", symbol: ">", precedence: 3},
	BinGreaterEqual:   {text: "OperatorGreaterEqual", symbol: ">=", precedence: 3},
	BinAdd:            {text: "OperatorAdd", symbol: "+", precedence: 2, associative: true},
	BinSubtract:       {text: "OperatorSubtract", symbol: "-", precedence: 2}, // not associative: a-(b-c) keeps its parens
	BinMultiply:       {text: "OperatorMultiply", symbol: "*", precedence: 1, associative: true},
	BinDivide:         {text: "OperatorDivide", symbol: "/", precedence: 1},
	BinModulo:         {text: "OperatorModulo", symbol: "%", precedence: 1},
}

var unOpTable = [unOpCount]struct{ text, symbol string }{
	UnBitNot:   {text: "OperatorBitNot", symbol: "~"},
	UnLogicNot: {text: "OperatorLogicNot", symbol: "!"},
	UnNeg:      {text: "OperatorNeg", symbol: "-"},
}

var (
	binOpByText = make(map[string]BinOp, binOpCount)
	unOpByText  = make(map[string]UnOp, unOpCount)
)

func init() {
	for op := range binOpCount {
		binOpByText[binOpTable[op].text] = op
	}
	for op := range unOpCount {
		unOpByText[unOpTable[op].text] = op
	}
}

// BinOps returns every binary operator in declaration order.
func BinOps() []BinOp {
	ops := make([]BinOp, 0, binOpCount)
	for op := range binOpCount {
		ops = append(ops, op)
	}
	return ops
}

// UnOps returns every unary operator in declaration order.
func UnOps() []UnOp {
	return []UnOp{UnBitNot, UnLogicNot, UnNeg}
}

func (op BinOp) Valid() bool { return op < binOpCount }
func (op UnOp) Valid() bool  { return op < unOpCount }

// String returns the external textual form, e.g. "OperatorAssignAdd".
func (op BinOp) String() string {
	if !op.Valid() {
		return "OperatorUnknown"
	}
	return binOpTable[op].text
}

// Symbol returns the source token, e.g. "+=".
func (op BinOp) Symbol() string {
	if !op.Valid() {
		return "?"
	}
	return binOpTable[op].symbol
}

// Precedence returns the binding level; lower values bind tighter.
// Multiplicative operators are 1, compound assignment is 10.
func (op BinOp) Precedence() int {
	if !op.Valid() {
		return 0
	}
	return binOpTable[op].precedence
}

// Associative reports whether a chain of op may be regrouped without
// changing the parentheses a printer has to emit.
func (op BinOp) Associative() bool {
	return op.Valid() && binOpTable[op].associative
}

// DoesAssociate reports whether an operand using op may be printed without
// parentheses when nested directly under parent.
func (op BinOp) DoesAssociate(parent BinOp) bool {
	pp, cp := parent.Precedence(), op.Precedence()
	return pp > cp || (pp == cp && parent.Associative())
}

// IsAssignment reports compound assignment forms (+=, -=, ...).
func (op BinOp) IsAssignment() bool {
	return op <= BinAssignAnd
}

// ParseBinOp looks an operator up by its external textual form.
func ParseBinOp(text string) (BinOp, bool) {
	op, ok := binOpByText[text]
	return op, ok
}

func (op UnOp) String() string {
	if !op.Valid() {
		return "OperatorUnknown"
	}
	return unOpTable[op].text
}

func (op UnOp) Symbol() string {
	if !op.Valid() {
		return "?"
	}
	return unOpTable[op].symbol
}

// ParseUnOp looks an operator up by its external textual form.
func ParseUnOp(text string) (UnOp, bool) {
	op, ok := unOpByText[text]
	return op, ok
}
