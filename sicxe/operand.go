package sicxe

import (
	"strconv"
	"strings"
)

// Indirection selects how the target address is used (the n and i bits).
type Indirection int

//go:generate go tool stringer -linecomment -type=Indirection
const (
	INDIRECTION_SIMPLE    = Indirection(0) // simple
	INDIRECTION_IMMEDIATE = Indirection(1) // immediate
	INDIRECTION_INDIRECT  = Indirection(2) // indirect
)

// Flags returns the n and i bits.
func (ind Indirection) Flags() (n, i byte) {
	switch ind {
	case INDIRECTION_SIMPLE:
		n, i = 1, 1
	case INDIRECTION_IMMEDIATE:
		n, i = 0, 1
	case INDIRECTION_INDIRECT:
		n, i = 1, 0
	}
	return
}

// TargetKind classifies what an operand refers to.
type TargetKind int

//go:generate go tool stringer -linecomment -type=TargetKind
const (
	TARGET_NONE    = TargetKind(0) // none
	TARGET_LITERAL = TargetKind(1) // literal
	TARGET_SYMBOL  = TargetKind(2) // symbol
)

// Target is the resolved operand target.
type Target struct {
	Kind    TargetKind
	Name    string // Symbol name, for TARGET_SYMBOL.
	Address uint32 // Literal value or symbol address.
}

// Relative selects how a format 3 displacement is interpreted (the b and p bits).
type Relative int

//go:generate go tool stringer -linecomment -type=Relative
const (
	RELATIVE_NONE = Relative(0) // none
	RELATIVE_PC   = Relative(1) // pc
	RELATIVE_BASE = Relative(2) // base
)

// Flags returns the b and p bits.
func (rel Relative) Flags() (b, p byte) {
	switch rel {
	case RELATIVE_NONE:
	case RELATIVE_PC:
		p = 1
	case RELATIVE_BASE:
		b = 1
	}
	return
}

// AddressingMode describes an operand of a format 3 or format 4 instruction.
type AddressingMode struct {
	Indirection Indirection
	Indexed     bool
	Extended    bool
	Target      Target
	Relative    Relative
}

// Resolution is the addressing mode of an operand and the value to encode:
// a 12 bit displacement for format 3, or a 20 bit address for format 4.
type Resolution struct {
	Mode  AddressingMode
	Value uint32
}

// Base is the base register value declared by BASE.
type Base struct {
	Address uint32
	Active  bool
}

const (
	DISP_PC_MIN   = -2048
	DISP_PC_MAX   = 2047
	DISP_BASE_MAX = 4095
	ADDRESS_MAX   = 0xfffff
)

// isNumeric returns true for an unsigned decimal literal.
func isNumeric(word string) bool {
	if len(word) == 0 {
		return false
	}
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Resolve classifies an operand and computes its displacement or address.
//
// address is the location of the statement, base the active base register.
// A symbol in format 3 is reached PC-relative from the next statement when
// possible, base-relative otherwise.
func Resolve(operand string, symbols Symbols, address uint32, base Base, extended bool) (rs Resolution, err error) {
	mode := &rs.Mode
	mode.Extended = extended

	if len(operand) == 0 {
		return
	}

	switch operand[0] {
	case '#':
		mode.Indirection = INDIRECTION_IMMEDIATE
		operand = operand[1:]
	case '@':
		mode.Indirection = INDIRECTION_INDIRECT
		operand = operand[1:]
	}

	if index := strings.LastIndex(operand, ","); index >= 0 {
		if !strings.EqualFold(strings.TrimSpace(operand[index+1:]), REG_X.String()) {
			err = ErrMalformedOperand
			return
		}
		mode.Indexed = true
		operand = strings.TrimSpace(operand[:index])
	}

	if len(operand) == 0 {
		err = ErrMalformedOperand
		return
	}

	if isNumeric(operand) {
		var v64 uint64
		v64, err = strconv.ParseUint(operand, 10, 32)
		limit := uint64(DISP_BASE_MAX)
		if extended {
			limit = ADDRESS_MAX
		}
		if err != nil || v64 > limit {
			err = ErrDisplacementOutOfRange
			return
		}
		mode.Target = Target{Kind: TARGET_LITERAL, Address: uint32(v64)}
		rs.Value = uint32(v64)
		return
	}

	target, ok := symbols.Lookup(operand)
	if !ok {
		err = ErrUndefinedSymbol(operand)
		return
	}
	mode.Target = Target{Kind: TARGET_SYMBOL, Name: operand, Address: target}

	if extended {
		if target > ADDRESS_MAX {
			err = ErrDisplacementOutOfRange
			return
		}
		rs.Value = target
		return
	}

	pc := int64(address) + int64(FORMAT_3.Size())
	offset := int64(target) - pc
	if offset >= DISP_PC_MIN && offset <= DISP_PC_MAX {
		mode.Relative = RELATIVE_PC
		rs.Value = uint32(offset) & 0xfff
		return
	}

	if base.Active {
		offset = int64(target) - int64(base.Address)
		if offset >= 0 && offset <= DISP_BASE_MAX {
			mode.Relative = RELATIVE_BASE
			rs.Value = uint32(offset)
			return
		}
	}

	err = ErrDisplacementOutOfRange

	return
}
