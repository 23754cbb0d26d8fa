package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// type names
	TypInfo          Code = 1000
	TypWrapperArity  Code = 1001
	TypArrayArity    Code = 1002
	TypMalformedRepr Code = 1003
	TypEmptyName     Code = 1004

	// tree shape
	IRInfo            Code = 2000
	IRUnresolvedJump  Code = 2001
	IRMissingOperand  Code = 2002
	IRInvalidOperator Code = 2003

	// constant pool
	PoolInfo        Code = 3000
	PoolLoadError   Code = 3001
	PoolSchema      Code = 3002
	PoolBadTypeRepr Code = 3003
)

var codeDescription = map[Code]string{
	UnknownCode:       "Unknown error",
	TypInfo:           "Type name information",
	TypWrapperArity:   "Reference wrapper needs exactly one type argument",
	TypArrayArity:     "Array needs exactly one element type",
	TypMalformedRepr:  "Malformed type encoding",
	TypEmptyName:      "Empty type name",
	IRInfo:            "Tree information",
	IRUnresolvedJump:  "Jump left unresolved after structuring",
	IRMissingOperand:  "Missing operand",
	IRInvalidOperator: "Invalid operator",
	PoolInfo:          "Constant pool information",
	PoolLoadError:     "Failed to load constant pool",
	PoolSchema:        "Unsupported constant pool schema",
	PoolBadTypeRepr:   "Constant pool holds an undecodable type",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("TYP%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("IR%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("POOL%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
