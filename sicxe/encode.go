package sicxe

import (
	"strconv"
	"strings"

	"github.com/ezrec/xeasm/object"
)

// Encoded is the object code of one statement.
type Encoded struct {
	LineNo       int
	Address      uint32
	Bytes        []byte
	Modification *object.Modification // Set if the statement needs relocation.
}

// Encoder is pass 2: it turns located statements into object code.
type Encoder struct {
	Symbols         Symbols // Frozen symbol table from pass 1.
	StrictRegisters bool    // If set, unknown register names are errors instead of register 0.
}

// register returns the code of a register operand.
func (enc *Encoder) register(name string) (code byte, err error) {
	reg, ok := LookupRegister(name)
	if !ok {
		if enc.StrictRegisters {
			err = ErrMalformedOperand
		}
		return
	}
	code = byte(reg)
	return
}

// registers splits a register list operand.
func (enc *Encoder) registers(operand string) (codes []byte, err error) {
	if len(strings.TrimSpace(operand)) == 0 {
		return
	}
	for _, name := range strings.Split(operand, ",") {
		var code byte
		code, err = enc.register(name)
		if err != nil {
			return
		}
		codes = append(codes, code)
	}
	return
}

// encodeWord encodes a WORD constant as 3 big-endian bytes.
func encodeWord(operand string) (data []byte, err error) {
	if len(operand) == 0 {
		err = ErrOperandMissing
		return
	}
	v64, err := strconv.ParseInt(operand, 10, 32)
	if err != nil || v64 < -(1<<23) || v64 >= (1<<24) {
		err = ErrMalformedOperand
		return
	}
	value := uint32(v64) & 0xffffff
	data = []byte{byte(value >> 16), byte(value >> 8), byte(value)}
	return
}

// Encode produces the object code of a statement located by pass 1, given
// the base register in effect at that statement. Directives without object
// code encode to no bytes.
func (enc *Encoder) Encode(st *Statement, base Base) (code Encoded, err error) {
	code.LineNo = st.LineNo
	code.Address = st.Address

	name, extended := SplitExtended(st.Mnemonic)

	in, ok := Lookup(name)
	if !ok {
		dir, ok := LookupDirective(name)
		if !ok || extended {
			err = ErrUnsupportedOpcode(st.Mnemonic)
			return
		}
		if !dir.Emits() {
			return
		}
		switch dir {
		case DIRECTIVE_WORD:
			code.Bytes, err = encodeWord(st.Operand)
		case DIRECTIVE_BYTE:
			if len(st.Operand) == 0 {
				err = ErrOperandMissing
				return
			}
			code.Bytes, err = parseByteLiteral(st.Operand)
		}
		return
	}

	format := in.Format
	if extended {
		if !in.Extendable() {
			err = ErrUnsupportedOpcode(st.Mnemonic)
			return
		}
		format = FORMAT_4
	}

	switch format {
	case FORMAT_1:
		if len(st.Operand) != 0 {
			err = ErrMalformedOperand
			return
		}
		code.Bytes = []byte{in.Opcode}
	case FORMAT_2:
		var regs []byte
		regs, err = enc.registers(st.Operand)
		if err != nil {
			return
		}
		if len(regs) > 2 {
			err = ErrRegisterCountMismatch
			return
		}
		regs = append(regs, 0, 0)
		code.Bytes = []byte{in.Opcode, (regs[0] << 4) | (regs[1] & 0xf)}
	case FORMAT_3X:
		var regs []byte
		regs, err = enc.registers(st.Operand)
		if err != nil {
			return
		}
		if len(regs) != 4 {
			err = ErrRegisterCountMismatch
			return
		}
		code.Bytes = []byte{in.Opcode, (regs[0] << 4) | (regs[1] & 0xf), (regs[2] << 4) | (regs[3] & 0xf)}
	case FORMAT_3, FORMAT_4:
		var rs Resolution
		rs, err = Resolve(st.Operand, enc.Symbols, st.Address, base, format == FORMAT_4)
		if err != nil {
			return
		}
		code.Bytes = encodeMemory(in.Opcode, rs)
		if format == FORMAT_4 && rs.Mode.Target.Kind == TARGET_SYMBOL {
			code.Modification = &object.Modification{
				Address: st.Address + 1,
				Length:  object.MODIFY_EXTENDED,
			}
		}
	}

	return
}

// encodeMemory lays out a format 3 or format 4 instruction.
func encodeMemory(opcode byte, rs Resolution) (data []byte) {
	mode := rs.Mode

	n, i := mode.Indirection.Flags()
	b, p := mode.Relative.Flags()
	var x, e byte
	if mode.Indexed {
		x = 1
	}
	if mode.Extended {
		e = 1
		b, p = 0, 0
	}

	flags := (x << 3) | (b << 2) | (p << 1) | e
	first := (opcode & 0xfc) | (n << 1) | i

	if mode.Extended {
		address := rs.Value & ADDRESS_MAX
		data = []byte{
			first,
			(flags << 4) | byte(address>>16),
			byte(address >> 8),
			byte(address),
		}
		return
	}

	disp := rs.Value & 0xfff
	data = []byte{
		first,
		(flags << 4) | byte(disp>>8),
		byte(disp),
	}

	return
}
