package sicxe

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// Layout is the address assignment produced by pass 1.
type Layout struct {
	Name       string      // Label of the START statement.
	Start      uint32      // Program origin.
	Length     uint32      // Bytes between the origin and the final location counter.
	Statements []Statement // Statements, with Address set on those pass 1 reached.
	Symbols    SymbolTable // Labels defined by the program.
	Errors     []error     // One *ErrStatement per failing statement.
}

// parseCount decodes the decimal operand of a reservation directive.
func parseCount(operand string) (count uint32, err error) {
	v64, err := strconv.ParseUint(operand, 10, 24)
	if err != nil {
		err = ErrMalformedOperand
		return
	}
	count = uint32(v64)
	return
}

// parseByteLiteral decodes a C'...' or X'...' constant.
func parseByteLiteral(operand string) (data []byte, err error) {
	if len(operand) < 3 || operand[1] != '\'' || !strings.HasSuffix(operand, "'") {
		err = ErrMalformedOperand
		return
	}

	body := operand[2 : len(operand)-1]
	if len(body) == 0 {
		err = ErrMalformedOperand
		return
	}

	switch operand[0] {
	case 'C', 'c':
		for _, r := range body {
			if r > 0xff {
				err = ErrMalformedOperand
				return
			}
			data = append(data, byte(r))
		}
	case 'X', 'x':
		data, err = hex.DecodeString(body)
		if err != nil {
			err = ErrMalformedOperand
			return
		}
	default:
		err = ErrMalformedOperand
	}

	return
}

// statementSize returns the number of bytes a statement occupies.
func statementSize(st *Statement) (size uint32, err error) {
	name, extended := SplitExtended(st.Mnemonic)

	in, ok := Lookup(name)
	if ok {
		if extended {
			if !in.Extendable() {
				err = ErrUnsupportedOpcode(st.Mnemonic)
				return
			}
			size = uint32(FORMAT_4.Size())
			return
		}
		size = uint32(in.Format.Size())
		return
	}

	dir, ok := LookupDirective(name)
	if !ok || extended {
		err = ErrUnsupportedOpcode(st.Mnemonic)
		return
	}

	switch dir {
	case DIRECTIVE_WORD:
		size = 3
	case DIRECTIVE_RESW, DIRECTIVE_RESM:
		size, err = parseCount(st.Operand)
		size *= 3
	case DIRECTIVE_RESB:
		size, err = parseCount(st.Operand)
	case DIRECTIVE_BYTE:
		var data []byte
		data, err = parseByteLiteral(st.Operand)
		size = uint32(len(data))
	}

	return
}

// Locate runs pass 1: it assigns an address to every statement up to END and
// builds the symbol table. Errors are collected and scanning continues, so
// the layout is best effort when Errors is not empty.
func Locate(stmts []Statement) (layout *Layout) {
	layout = &Layout{
		Statements: append([]Statement(nil), stmts...),
	}

	fail := func(st *Statement, err error) {
		layout.Errors = append(layout.Errors, &ErrStatement{LineNo: st.LineNo, Line: st.Line, Err: err})
	}

	locctr := uint32(0)

	for n := range layout.Statements {
		st := &layout.Statements[n]

		dir, is_dir := LookupDirective(st.Mnemonic)

		if is_dir && dir == DIRECTIVE_START {
			if n != 0 {
				fail(st, ErrMalformedOperand)
				continue
			}
			if len(st.Operand) != 0 {
				v64, err := strconv.ParseUint(st.Operand, 16, 20)
				if err != nil {
					fail(st, ErrMalformedOperand)
				} else {
					locctr = uint32(v64)
				}
			}
			layout.Name = st.Label
			layout.Start = locctr
			st.Address = locctr
			st.Located = true
			continue
		}

		end := is_dir && dir == DIRECTIVE_END

		var size uint32
		var err error
		if !end {
			size, err = statementSize(st)
			if err == nil && uint64(locctr)+uint64(size) > ADDRESS_MAX+1 {
				err = ErrDisplacementOutOfRange
			}
		}
		sized := err == nil

		// A statement reports one error; sizing errors win over label errors.
		if len(st.Label) != 0 {
			var label_err error
			if locctr > ADDRESS_MAX {
				label_err = ErrDisplacementOutOfRange
			} else {
				label_err = layout.Symbols.Define(st.Label, locctr)
			}
			if err == nil {
				err = label_err
			}
		}

		st.Address = locctr
		st.Located = true

		if err != nil {
			fail(st, err)
		}

		if end {
			break
		}

		if sized {
			locctr += size
		}
	}

	layout.Length = locctr - layout.Start

	return
}
