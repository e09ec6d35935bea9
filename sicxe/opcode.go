package sicxe

import (
	"strings"
)

// Format is an instruction encoding class.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_1  = Format(0) // 1
	FORMAT_2  = Format(1) // 2
	FORMAT_3  = Format(2) // 3
	FORMAT_4  = Format(3) // 4
	FORMAT_3X = Format(4) // 3X
)

// Size returns the encoded length of the format, in bytes.
func (ft Format) Size() (size int) {
	switch ft {
	case FORMAT_1:
		size = 1
	case FORMAT_2:
		size = 2
	case FORMAT_3, FORMAT_3X:
		size = 3
	case FORMAT_4:
		size = 4
	}
	return
}

// Instruction describes a machine instruction.
type Instruction struct {
	Mnemonic string
	Format   Format
	Opcode   byte
}

// Extendable returns true if the instruction has a format 4 form.
func (in Instruction) Extendable() bool {
	return in.Format == FORMAT_3
}

// EXTENDED_MARKER prefixes a format 3 mnemonic to select format 4.
const EXTENDED_MARKER = "+"

var instructionTable = []Instruction{
	{"ADD", FORMAT_3, 0x18},
	{"ADDF", FORMAT_3, 0x58},
	{"ADDR", FORMAT_2, 0x90},
	{"AND", FORMAT_3, 0x40},
	{"CLEAR", FORMAT_2, 0xb4},
	{"COMP", FORMAT_3, 0x28},
	{"COMPF", FORMAT_3, 0x88},
	{"COMPR", FORMAT_2, 0xa0},
	{"DIV", FORMAT_3, 0x24},
	{"DIVF", FORMAT_3, 0x64},
	{"DIVR", FORMAT_2, 0x9c},
	{"FIX", FORMAT_1, 0xc4},
	{"FLOAT", FORMAT_1, 0xc0},
	{"HIO", FORMAT_1, 0xf4},
	{"J", FORMAT_3, 0x3c},
	{"JEQ", FORMAT_3, 0x30},
	{"JGT", FORMAT_3, 0x34},
	{"JLT", FORMAT_3, 0x38},
	{"JSUB", FORMAT_3, 0x48},
	{"LDA", FORMAT_3, 0x00},
	{"LDB", FORMAT_3, 0x68},
	{"LDCH", FORMAT_3, 0x50},
	{"LDF", FORMAT_3, 0x70},
	{"LDL", FORMAT_3, 0x08},
	{"LDS", FORMAT_3, 0x6c},
	{"LDT", FORMAT_3, 0x74},
	{"LDX", FORMAT_3, 0x04},
	{"LPS", FORMAT_3, 0xd0},
	{"MUL", FORMAT_3, 0x20},
	{"MULF", FORMAT_3, 0x60},
	{"MULR", FORMAT_2, 0x98},
	{"NORM", FORMAT_1, 0xc8},
	{"OR", FORMAT_3, 0x44},
	{"RD", FORMAT_3, 0xd8},
	{"RMO", FORMAT_2, 0xac},
	{"RSUB", FORMAT_3, 0x4c},
	{"SHIFTL", FORMAT_2, 0xa4},
	{"SHIFTR", FORMAT_2, 0xa8},
	{"SIO", FORMAT_1, 0xf0},
	{"SSK", FORMAT_3, 0xec},
	{"STA", FORMAT_3, 0x0c},
	{"STB", FORMAT_3, 0x78},
	{"STCH", FORMAT_3, 0x54},
	{"STF", FORMAT_3, 0x80},
	{"STI", FORMAT_3, 0xd4},
	{"STL", FORMAT_3, 0x14},
	{"STS", FORMAT_3, 0x7c},
	{"STSW", FORMAT_3, 0xe8},
	{"STT", FORMAT_3, 0x84},
	{"STX", FORMAT_3, 0x10},
	{"SUB", FORMAT_3, 0x1c},
	{"SUBF", FORMAT_3, 0x5c},
	{"SUBR", FORMAT_2, 0x94},
	{"SVC", FORMAT_2, 0xb0},
	{"TD", FORMAT_3, 0xe0},
	{"TIO", FORMAT_1, 0xf8},
	{"TIX", FORMAT_3, 0x2c},
	{"TIXR", FORMAT_2, 0xb8},
	{"WD", FORMAT_3, 0xdc},

	// Packed four register arithmetic.
	{"PADD", FORMAT_3X, 0xbc},
	{"PSUB", FORMAT_3X, 0x8c},
	{"PMUL", FORMAT_3X, 0xe4},
	{"PDIV", FORMAT_3X, 0xfc},
	{"PMOV", FORMAT_3X, 0xcc},
}

var instructionMap = func() map[string]Instruction {
	table := make(map[string]Instruction, len(instructionTable))
	for _, in := range instructionTable {
		table[in.Mnemonic] = in
	}
	return table
}()

// Instructions returns a copy of the instruction catalog.
func Instructions() []Instruction {
	return append([]Instruction(nil), instructionTable...)
}

// SplitExtended removes the format 4 marker from a mnemonic.
func SplitExtended(mnemonic string) (base string, extended bool) {
	base, extended = strings.CutPrefix(mnemonic, EXTENDED_MARKER)
	return
}

// Lookup finds the instruction for a mnemonic without the extended marker.
func Lookup(mnemonic string) (in Instruction, ok bool) {
	in, ok = instructionMap[strings.ToUpper(mnemonic)]
	return
}

// Directive is an assembler directive.
type Directive int

//go:generate go tool stringer -linecomment -type=Directive
const (
	DIRECTIVE_START  = Directive(0) // START
	DIRECTIVE_END    = Directive(1) // END
	DIRECTIVE_BYTE   = Directive(2) // BYTE
	DIRECTIVE_WORD   = Directive(3) // WORD
	DIRECTIVE_RESB   = Directive(4) // RESB
	DIRECTIVE_RESW   = Directive(5) // RESW
	DIRECTIVE_RESM   = Directive(6) // RESM
	DIRECTIVE_BASE   = Directive(7) // BASE
	DIRECTIVE_NOBASE = Directive(8) // NOBASE
)

var directiveMap = map[string]Directive{
	"START":  DIRECTIVE_START,
	"END":    DIRECTIVE_END,
	"BYTE":   DIRECTIVE_BYTE,
	"WORD":   DIRECTIVE_WORD,
	"RESB":   DIRECTIVE_RESB,
	"RESW":   DIRECTIVE_RESW,
	"RESM":   DIRECTIVE_RESM,
	"BASE":   DIRECTIVE_BASE,
	"NOBASE": DIRECTIVE_NOBASE,
}

// LookupDirective finds an assembler directive.
func LookupDirective(mnemonic string) (dir Directive, ok bool) {
	dir, ok = directiveMap[strings.ToUpper(mnemonic)]
	return
}

// Emits returns true if the directive generates object code.
func (dir Directive) Emits() bool {
	return dir == DIRECTIVE_BYTE || dir == DIRECTIVE_WORD
}

// Register is a machine register number.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_A  = Register(0) // A
	REG_X  = Register(1) // X
	REG_L  = Register(2) // L
	REG_B  = Register(3) // B
	REG_S  = Register(4) // S
	REG_T  = Register(5) // T
	REG_F  = Register(6) // F
	REG_PC = Register(8) // PC
	REG_SW = Register(9) // SW
)

var registerMap = map[string]Register{
	"A":  REG_A,
	"X":  REG_X,
	"L":  REG_L,
	"B":  REG_B,
	"S":  REG_S,
	"T":  REG_T,
	"F":  REG_F,
	"PC": REG_PC,
	"SW": REG_SW,
}

// LookupRegister finds a register by name.
func LookupRegister(name string) (reg Register, ok bool) {
	reg, ok = registerMap[strings.ToUpper(strings.TrimSpace(name))]
	return
}
