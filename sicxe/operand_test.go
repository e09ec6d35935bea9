package sicxe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSymbols(t *testing.T, pairs map[string]uint32) Symbols {
	tab := &SymbolTable{}
	for name, address := range pairs {
		assert.NoError(t, tab.Define(name, address))
	}
	return tab.Freeze()
}

func TestResolve_Modes(t *testing.T) {
	sym := testSymbols(t, map[string]uint32{"BUFFER": 0x36, "RETADR": 0x30, "LENGTH": 0x33})

	table := []struct {
		operand  string
		address  uint32
		mode     AddressingMode
		value    uint32
		extended bool
	}{
		{"", 0x1059, AddressingMode{}, 0, false},
		{"RETADR", 0x0, AddressingMode{
			Target:   Target{Kind: TARGET_SYMBOL, Name: "RETADR", Address: 0x30},
			Relative: RELATIVE_PC,
		}, 0x2d, false},
		{"#LENGTH", 0x3, AddressingMode{
			Indirection: INDIRECTION_IMMEDIATE,
			Target:      Target{Kind: TARGET_SYMBOL, Name: "LENGTH", Address: 0x33},
			Relative:    RELATIVE_PC,
		}, 0x2d, false},
		{"@RETADR", 0x2a, AddressingMode{
			Indirection: INDIRECTION_INDIRECT,
			Target:      Target{Kind: TARGET_SYMBOL, Name: "RETADR", Address: 0x30},
			Relative:    RELATIVE_PC,
		}, 0x3, false},
		{"#3", 0x20, AddressingMode{
			Indirection: INDIRECTION_IMMEDIATE,
			Target:      Target{Kind: TARGET_LITERAL, Address: 3},
		}, 3, false},
		{"BUFFER,X", 0x104e, AddressingMode{
			Indexed:  true,
			Target:   Target{Kind: TARGET_SYMBOL, Name: "BUFFER", Address: 0x36},
			Relative: RELATIVE_BASE,
		}, 0x3, false},
		{"BUFFER,x", 0x104e, AddressingMode{
			Indexed:  true,
			Target:   Target{Kind: TARGET_SYMBOL, Name: "BUFFER", Address: 0x36},
			Relative: RELATIVE_BASE,
		}, 0x3, false},
		{"BUFFER", 0x1000, AddressingMode{
			Extended: true,
			Target:   Target{Kind: TARGET_SYMBOL, Name: "BUFFER", Address: 0x36},
		}, 0x36, true},
		{"#4096", 0x103c, AddressingMode{
			Indirection: INDIRECTION_IMMEDIATE,
			Extended:    true,
			Target:      Target{Kind: TARGET_LITERAL, Address: 4096},
		}, 4096, true},
	}

	for _, entry := range table {
		t.Run(entry.operand, func(t *testing.T) {
			assert := assert.New(t)

			rs, err := Resolve(entry.operand, sym, entry.address, Base{Address: 0x33, Active: true}, entry.extended)
			assert.NoError(err)
			assert.Equal(entry.mode, rs.Mode)
			assert.Equal(entry.value, rs.Value)
		})
	}
}

func TestResolve_Displacement(t *testing.T) {
	assert := assert.New(t)

	sym := testSymbols(t, map[string]uint32{"BACK": 0x0, "AHEAD": 0x1000})

	// Exactly -2048 from the next instruction.
	rs, err := Resolve("BACK", sym, 2045, Base{}, false)
	assert.NoError(err)
	assert.Equal(RELATIVE_PC, rs.Mode.Relative)
	assert.Equal(uint32(0x800), rs.Value)

	// One further is out of reach without a base.
	_, err = Resolve("BACK", sym, 2046, Base{}, false)
	assert.ErrorIs(err, ErrDisplacementOutOfRange)

	// A base register brings it back into range.
	rs, err = Resolve("BACK", sym, 2046, Base{Address: 0, Active: true}, false)
	assert.NoError(err)
	assert.Equal(RELATIVE_BASE, rs.Mode.Relative)
	assert.Equal(uint32(0), rs.Value)

	// Base set past the target gives a negative offset.
	_, err = Resolve("BACK", sym, 2046, Base{Address: 1, Active: true}, false)
	assert.ErrorIs(err, ErrDisplacementOutOfRange)

	// Exactly +2047 forward.
	rs, err = Resolve("AHEAD", sym, 0x1000-2047-3, Base{}, false)
	assert.NoError(err)
	assert.Equal(RELATIVE_PC, rs.Mode.Relative)
	assert.Equal(uint32(0x7ff), rs.Value)

	// +2048 forward needs the base, up to 4095.
	_, err = Resolve("AHEAD", sym, 0x1000-2048-3, Base{}, false)
	assert.ErrorIs(err, ErrDisplacementOutOfRange)
	rs, err = Resolve("AHEAD", sym, 0x1000-2048-3, Base{Address: 0x1000 - 4095, Active: true}, false)
	assert.NoError(err)
	assert.Equal(uint32(4095), rs.Value)
	_, err = Resolve("AHEAD", sym, 0x1000-2048-3, Base{Address: 0x1000 - 4096, Active: true}, false)
	assert.ErrorIs(err, ErrDisplacementOutOfRange)

	// Format 4 reaches anywhere.
	rs, err = Resolve("AHEAD", sym, 0, Base{}, true)
	assert.NoError(err)
	assert.Equal(uint32(0x1000), rs.Value)

	// Up to the last byte of memory.
	sym = testSymbols(t, map[string]uint32{"TOP": ADDRESS_MAX})
	rs, err = Resolve("TOP", sym, 0, Base{}, true)
	assert.NoError(err)
	assert.Equal(uint32(ADDRESS_MAX), rs.Value)
}

func TestResolve_Errors(t *testing.T) {
	sym := testSymbols(t, map[string]uint32{"A": 0, "FAR": ADDRESS_MAX + 1})

	table := []struct {
		operand  string
		extended bool
		err      error
	}{
		{"NOPE", false, ErrUndefinedSymbol("")},
		{"#NOPE", true, ErrUndefinedSymbol("")},
		{"A,Y", false, ErrMalformedOperand},
		{",X", false, ErrMalformedOperand},
		{"#", false, ErrMalformedOperand},
		{"4096", false, ErrDisplacementOutOfRange},
		{"1048576", true, ErrDisplacementOutOfRange},
		{"99999999999", true, ErrDisplacementOutOfRange},
		{"FAR", true, ErrDisplacementOutOfRange},
		{"@FAR", true, ErrDisplacementOutOfRange},
	}

	for _, entry := range table {
		t.Run(entry.operand, func(t *testing.T) {
			assert := assert.New(t)

			_, err := Resolve(entry.operand, sym, 0, Base{}, entry.extended)
			assert.ErrorIs(err, entry.err)
		})
	}
}

func TestResolve_LiteralLimits(t *testing.T) {
	assert := assert.New(t)

	rs, err := Resolve("4095", Symbols{}, 0, Base{}, false)
	assert.NoError(err)
	assert.Equal(uint32(4095), rs.Value)
	assert.Equal(RELATIVE_NONE, rs.Mode.Relative)

	rs, err = Resolve("1048575", Symbols{}, 0, Base{}, true)
	assert.NoError(err)
	assert.Equal(uint32(0xfffff), rs.Value)
}

func TestIndirection_Flags(t *testing.T) {
	assert := assert.New(t)

	n, i := INDIRECTION_SIMPLE.Flags()
	assert.Equal([]byte{1, 1}, []byte{n, i})
	n, i = INDIRECTION_IMMEDIATE.Flags()
	assert.Equal([]byte{0, 1}, []byte{n, i})
	n, i = INDIRECTION_INDIRECT.Flags()
	assert.Equal([]byte{1, 0}, []byte{n, i})

	assert.Equal("immediate", INDIRECTION_IMMEDIATE.String())
	assert.Equal("base", RELATIVE_BASE.String())
	assert.Equal("symbol", TARGET_SYMBOL.String())
}
