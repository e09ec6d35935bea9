package sicxe

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/xeasm/object"
)

// Program is an assembled program.
type Program struct {
	Name       string
	Start      uint32
	Length     uint32
	FirstExec  uint32
	Statements []Statement // Source statements, with pass 1 addresses.
	Symbols    Symbols     // Frozen symbol table.
	Encoded    []Encoded   // Object code, in ascending address order.
	Object     *object.Object
}

// Records returns the object record stream.
func (prog *Program) Records() iter.Seq[object.Record] {
	return prog.Object.Records()
}

// SymbolLines renders the symbol table.
func (prog *Program) SymbolLines() []string {
	return prog.Symbols.Lines()
}

// Source returns the normalized text of every parsed statement.
func (prog *Program) Source() (lines []string) {
	for _, st := range prog.Statements {
		lines = append(lines, st.Line)
	}
	return
}

// Intermediate renders the pass 1 listing: every located statement prefixed
// by its address.
func (prog *Program) Intermediate() (lines []string) {
	for n := range prog.Statements {
		st := &prog.Statements[n]
		if st.Located {
			lines = append(lines, st.String())
		}
	}
	return
}

// Listing renders the pass 2 listing: every located statement's address and
// object code.
func (prog *Program) Listing() (lines []string) {
	code := make(map[int][]byte, len(prog.Encoded))
	for _, enc := range prog.Encoded {
		code[enc.LineNo] = enc.Bytes
	}

	for n := range prog.Statements {
		st := &prog.Statements[n]
		if !st.Located {
			continue
		}
		line := fmt.Sprintf("%04X %X", st.Address, code[st.LineNo])
		lines = append(lines, strings.TrimSpace(line))
	}

	return
}

// Codes iterates over the object code one byte at a time.
func (prog *Program) Codes() iter.Seq2[uint32, byte] {
	return func(yield func(address uint32, value byte) bool) {
		for _, enc := range prog.Encoded {
			for n, value := range enc.Bytes {
				if !yield(enc.Address+uint32(n), value) {
					return
				}
			}
		}
	}
}
