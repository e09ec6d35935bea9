package sicxe

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func objectLines(prog *Program) []string {
	return strings.Split(strings.TrimSpace(prog.Object.String()), "\n")
}

func TestAssembler_Copy(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Assemble(copyProgram)
	assert.NoError(err)
	assert.Equal("COPY", prog.Name)
	assert.Equal(uint32(0x1077), prog.Length)
	assert.Equal(uint32(0), prog.FirstExec)
	assert.Equal(copySymbols, prog.SymbolLines())
	assert.Equal(copyObject, objectLines(prog))
}

func TestAssembler_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Assemble([]string{
		"START 1000",
		"LDA FIVE",
		"FIVE WORD 5",
		"RSUB",
		"END",
	})
	assert.NoError(err)
	assert.Equal([]string{
		"H^^001000^000009",
		"T^001000^09^0320000000054F0000",
		"E^001000",
	}, objectLines(prog))
	assert.Equal([]string{"FIVE 1003"}, prog.SymbolLines())
}

func TestAssembler_Deterministic(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	first, err := asm.Assemble(copyProgram)
	assert.NoError(err)
	second, err := asm.Assemble(copyProgram)
	assert.NoError(err)
	assert.Equal(first.Object.String(), second.Object.String())
	assert.Equal(first.SymbolLines(), second.SymbolLines())
}

func TestAssembler_Workers(t *testing.T) {
	assert := assert.New(t)

	serial, err := (&Assembler{}).Assemble(copyProgram)
	assert.NoError(err)

	for _, workers := range []int{2, 4, 16} {
		parallel, err := (&Assembler{Workers: workers}).Assemble(copyProgram)
		assert.NoError(err)
		assert.Equal(serial.Object.String(), parallel.Object.String(), workers)
		assert.Equal(serial.Listing(), parallel.Listing(), workers)
	}
}

func TestAssembler_RecordSplit(t *testing.T) {
	assert := assert.New(t)

	var lines []string
	for range 11 {
		lines = append(lines, "LDA #1")
	}

	prog, err := (&Assembler{}).Assemble(lines)
	assert.NoError(err)
	assert.Equal(2, len(prog.Object.Texts))
	assert.Equal(uint32(0), prog.Object.Texts[0].Start)
	assert.Equal(30, len(prog.Object.Texts[0].Bytes))
	assert.Equal(uint32(0x1e), prog.Object.Texts[1].Start)
	assert.Equal(3, len(prog.Object.Texts[1].Bytes))

	// A smaller limit gives more records.
	prog, err = (&Assembler{RecordLimit: 6}).Assemble(lines)
	assert.NoError(err)
	assert.Equal(6, len(prog.Object.Texts))
}

func TestAssembler_RecordLimitCapped(t *testing.T) {
	assert := assert.New(t)

	var lines []string
	for range 100 {
		lines = append(lines, "WORD 1")
	}

	prog, err := (&Assembler{RecordLimit: 300}).Assemble(lines)
	assert.NoError(err)

	records := objectLines(prog)
	assert.Equal(4, len(records))
	assert.True(strings.HasPrefix(records[1], "T^000000^FF^000001"), records[1])
	assert.True(strings.HasPrefix(records[2], "T^0000FF^2D^"), records[2])
}

func TestAssembler_Gap(t *testing.T) {
	assert := assert.New(t)

	prog, err := (&Assembler{}).Assemble([]string{
		"A WORD 1",
		"B RESW 1",
		"C WORD 2",
	})
	assert.NoError(err)
	assert.Equal([]string{
		"H^^000000^000009",
		"T^000000^03^000001",
		"T^000006^03^000002",
		"E^000000",
	}, objectLines(prog))
}

func TestAssembler_Duplicate(t *testing.T) {
	assert := assert.New(t)

	prog, err := (&Assembler{}).Assemble([]string{
		"A WORD 1",
		"A WORD 2",
		"LDA A",
	})
	assert.ErrorIs(err, ErrDuplicateSymbol(""))

	var joined interface{ Unwrap() []error }
	assert.True(errors.As(err, &joined))
	assert.Equal(1, len(joined.Unwrap()))

	var es *ErrStatement
	assert.True(errors.As(err, &es))
	assert.Equal(2, es.LineNo)

	// The first definition wins, and the program is still produced.
	assert.Equal([]string{"A 0000"}, prog.SymbolLines())
	assert.Equal([]string{"0000 000001", "0003 000002", "0006 032FF7"}, prog.Listing())
}

func TestAssembler_AddressSpace(t *testing.T) {
	assert := assert.New(t)

	prog, err := (&Assembler{}).Assemble([]string{
		"P START 0",
		"+LDA FAR",
		"RESB 1048572",
		"FAR WORD 5",
		"END",
	})
	assert.ErrorIs(err, ErrDisplacementOutOfRange)
	assert.ErrorIs(err, ErrUndefinedSymbol(""))

	// Nothing is emitted past the 20 bit address space.
	assert.Empty(prog.SymbolLines())
	assert.Empty(prog.Encoded)
	assert.Equal([]string{"H^P^000000^100000", "E^000000"}, objectLines(prog))
}

func TestAssembler_OneErrorPerStatement(t *testing.T) {
	assert := assert.New(t)

	_, err := (&Assembler{}).Assemble([]string{
		"A WORD 1",
		"A LDA NOPE",
		"B FOO",
		"B BAR",
	})
	assert.ErrorIs(err, ErrDuplicateSymbol(""))
	assert.ErrorIs(err, ErrUnsupportedOpcode(""))
	assert.NotErrorIs(err, ErrUndefinedSymbol(""))

	var joined interface{ Unwrap() []error }
	assert.True(errors.As(err, &joined))

	var lines []int
	for _, each := range joined.Unwrap() {
		lines = append(lines, statementLine(each))
	}
	assert.Equal([]int{2, 3, 4}, lines)
}

func TestAssembler_Displacement(t *testing.T) {
	assert := assert.New(t)

	prog, err := (&Assembler{}).Assemble([]string{
		"BACK RSUB",
		"RESB 2042",
		"J BACK",
	})
	assert.NoError(err)
	assert.Equal("07FD 3F2800", prog.Listing()[2])

	_, err = (&Assembler{}).Assemble([]string{
		"BACK RSUB",
		"RESB 2043",
		"J BACK",
	})
	assert.ErrorIs(err, ErrDisplacementOutOfRange)

	prog, err = (&Assembler{}).Assemble([]string{
		"BACK RSUB",
		"RESB 2043",
		"BASE BACK",
		"J BACK",
		"NOBASE",
	})
	assert.NoError(err)
	assert.Equal("07FE 3F4000", prog.Listing()[3])

	// NOBASE ends base relative addressing.
	_, err = (&Assembler{}).Assemble([]string{
		"BACK RSUB",
		"RESB 2043",
		"BASE BACK",
		"NOBASE",
		"J BACK",
	})
	assert.ErrorIs(err, ErrDisplacementOutOfRange)
}

func TestAssembler_Errors(t *testing.T) {
	assert := assert.New(t)

	prog, err := (&Assembler{}).Assemble([]string{
		"START 0",
		"LDA NOPE",
		"FOO BAR BAZ QUX",
		"PADD A,X",
		"FOO",
		"RSUB",
		"END",
	})
	assert.NotNil(prog)

	var joined interface{ Unwrap() []error }
	assert.True(errors.As(err, &joined))

	var lines []int
	for _, each := range joined.Unwrap() {
		var es *ErrStatement
		assert.True(errors.As(each, &es))
		lines = append(lines, es.LineNo)
	}
	assert.Equal([]int{2, 3, 4, 5}, lines)

	assert.ErrorIs(err, ErrUndefinedSymbol(""))
	assert.ErrorIs(err, ErrMalformedOperand)
	assert.ErrorIs(err, ErrRegisterCountMismatch)
	assert.ErrorIs(err, ErrUnsupportedOpcode(""))

	// Good statements still encode.
	assert.Equal(1, len(prog.Encoded))
	assert.Equal(uint32(6), prog.Encoded[0].Address)
	assert.Equal([]byte{0x4f, 0x00, 0x00}, prog.Encoded[0].Bytes)
}

func TestAssembler_EndOperand(t *testing.T) {
	assert := assert.New(t)

	prog, err := (&Assembler{}).Assemble([]string{"START 100", "RSUB", "MAIN RSUB", "END MAIN"})
	assert.NoError(err)
	assert.Equal(uint32(0x103), prog.FirstExec)

	_, err = (&Assembler{}).Assemble([]string{"RSUB", "END NOWHERE"})
	assert.ErrorIs(err, ErrUndefinedSymbol(""))
}

func TestAssembler_Parse(t *testing.T) {
	assert := assert.New(t)

	input := strings.Join([]string{
		". Round trip",
		"5   START 1000",
		"10  LDA FIVE     . load it",
		"",
		"15  FIVE WORD 5",
		"20  RSUB",
		"25  END",
	}, "\n")

	prog, err := (&Assembler{}).Parse(strings.NewReader(input))
	assert.NoError(err)
	assert.Equal("T^001000^09^0320000000054F0000", prog.Object.Texts[0].String())
}

func TestAssembler_Verbose(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := (&Assembler{Verbose: true, Logger: logger}).Assemble([]string{"FIVE WORD 5"})
	assert.NoError(err)
	assert.Contains(buf.String(), "pass 1")
	assert.Contains(buf.String(), "pass 2")
	assert.Contains(buf.String(), fmt.Sprintf("%X", []byte{0, 0, 5}))

	buf.Reset()
	_, err = (&Assembler{Logger: logger}).Assemble([]string{"FIVE WORD 5"})
	assert.NoError(err)
	assert.Empty(buf.String())
}
