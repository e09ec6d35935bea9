// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package sicxe

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/ezrec/xeasm/object"
	"github.com/ezrec/xeasm/source"
)

// Assembler is a two pass assembler for SIC/XE programs.
type Assembler struct {
	Verbose         bool        // If set, logs the assembler actions at debug level.
	Logger          *log.Logger // Destination of verbose logs. Defaults to log.Default().
	Workers         int         // Number of concurrent pass 2 encoders. 0 or 1 encodes serially.
	RecordLimit     int         // Text record payload limit in bytes. 0 is object.MAX_TEXT_BYTES.
	StrictRegisters bool        // If set, unknown register names are errors.
}

// logger returns the verbose logger, or nil when not verbose.
func (asm *Assembler) logger() *log.Logger {
	if !asm.Verbose {
		return nil
	}
	if asm.Logger == nil {
		return log.Default()
	}
	return asm.Logger
}

// Parse reads raw assembly source, normalizes it, and assembles it.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	lines, err := source.Scan(input)
	if err != nil {
		return
	}

	prog, err = asm.Assemble(lines)
	return
}

// statementLine returns the line number carried by a statement error.
func statementLine(err error) int {
	var es *ErrStatement
	if errors.As(err, &es) {
		return es.LineNo
	}
	return 0
}

// Assemble translates normalized statements into a program.
//
// Every statement is processed even when some fail. The returned error joins
// one *ErrStatement per failing statement, and the returned program holds the
// best effort result.
func (asm *Assembler) Assemble(lines []string) (prog *Program, err error) {
	logger := asm.logger()

	stmts, errs := ParseStatements(lines)

	// Pass 1
	layout := Locate(stmts)
	errs = append(errs, layout.Errors...)

	// Statements pass 1 could not size are not encoded again.
	skip := make(map[int]bool, len(layout.Errors))
	for _, layout_err := range layout.Errors {
		if !errors.Is(layout_err, ErrDuplicateSymbol("")) {
			skip[statementLine(layout_err)] = true
		}
	}

	symbols := layout.Symbols.Freeze()

	if logger != nil {
		for _, st := range layout.Statements {
			if st.Located {
				logger.Debug("pass 1", "line", st.LineNo, "address", fmt.Sprintf("%04X", st.Address), "statement", st.Line)
			}
		}
		for name, address := range symbols.All() {
			logger.Debug("symbol", "name", name, "address", fmt.Sprintf("%04X", address))
		}
	}

	// Base register and entry point, in program order.
	bases, first_exec, base_errs := scanBase(layout, symbols)
	errs = append(errs, base_errs...)

	// Pass 2
	enc := &Encoder{Symbols: symbols, StrictRegisters: asm.StrictRegisters}
	codes, code_errs := asm.encodeAll(enc, layout, bases, skip)
	errs = append(errs, code_errs...)

	var encoded []Encoded
	for _, code := range codes {
		if len(code.Bytes) == 0 {
			continue
		}
		encoded = append(encoded, code)
		if logger != nil {
			logger.Debug("pass 2", "line", code.LineNo, "address", fmt.Sprintf("%04X", code.Address), "code", fmt.Sprintf("%X", code.Bytes))
		}
	}
	slices.SortStableFunc(encoded, func(a, b Encoded) int {
		return cmp.Compare(a.Address, b.Address)
	})

	// Object records
	em := &object.Emitter{Limit: asm.RecordLimit}
	obj := &object.Object{
		Header: object.Header{Name: layout.Name, Start: layout.Start, Length: layout.Length},
		End:    object.End{FirstExec: first_exec},
	}
	for _, code := range encoded {
		err = em.Add(code.Address, code.Bytes)
		if err != nil {
			errs = append(errs, &ErrStatement{LineNo: code.LineNo, Err: err})
			err = nil
			continue
		}
		if code.Modification != nil {
			obj.Modifications = append(obj.Modifications, *code.Modification)
		}
	}
	obj.Texts = em.Texts()

	prog = &Program{
		Name:       layout.Name,
		Start:      layout.Start,
		Length:     layout.Length,
		FirstExec:  first_exec,
		Statements: layout.Statements,
		Symbols:    symbols,
		Encoded:    encoded,
		Object:     obj,
	}

	if len(errs) != 0 {
		slices.SortStableFunc(errs, func(a, b error) int {
			return cmp.Compare(statementLine(a), statementLine(b))
		})
		errs = firstPerLine(errs)
		err = errors.Join(errs...)
		if logger != nil {
			logger.Debug("assembly failed", "errors", len(errs))
		}
	}

	return
}

// firstPerLine keeps the earliest error of each statement. Errors must be
// sorted by line, pass 1 errors first.
func firstPerLine(errs []error) (kept []error) {
	seen := make(map[int]bool, len(errs))
	for _, each := range errs {
		line := statementLine(each)
		if line != 0 {
			if seen[line] {
				continue
			}
			seen[line] = true
		}
		kept = append(kept, each)
	}
	return
}

// scanBase walks the located statements in order, tracking BASE and NOBASE,
// and finds the first executable address named by END.
func scanBase(layout *Layout, symbols Symbols) (bases []Base, first_exec uint32, errs []error) {
	bases = make([]Base, len(layout.Statements))
	first_exec = layout.Start

	var base Base
	for n := range layout.Statements {
		st := &layout.Statements[n]
		if !st.Located {
			continue
		}

		bases[n] = base

		dir, ok := LookupDirective(st.Mnemonic)
		if !ok {
			continue
		}

		var err error
		switch dir {
		case DIRECTIVE_BASE:
			var address uint32
			address, err = symbolOrNumber(st.Operand, symbols)
			if err == nil {
				base = Base{Address: address, Active: true}
			}
		case DIRECTIVE_NOBASE:
			base = Base{}
		case DIRECTIVE_END:
			if len(st.Operand) != 0 {
				first_exec, err = symbolOrNumber(st.Operand, symbols)
			}
		}
		if err != nil {
			errs = append(errs, &ErrStatement{LineNo: st.LineNo, Line: st.Line, Err: err})
		}
	}

	return
}

// symbolOrNumber resolves a label, or a decimal address.
func symbolOrNumber(operand string, symbols Symbols) (address uint32, err error) {
	if len(operand) == 0 {
		err = ErrOperandMissing
		return
	}
	if isNumeric(operand) {
		var v64 uint64
		v64, err = strconv.ParseUint(operand, 10, 20)
		if err != nil {
			err = ErrMalformedOperand
			return
		}
		address = uint32(v64)
		return
	}
	address, ok := symbols.Lookup(operand)
	if !ok {
		err = ErrUndefinedSymbol(operand)
	}
	return
}

// encodeAll runs pass 2 over every located statement. Statements are
// independent once the symbol table is frozen, so they may be encoded
// concurrently; results stay in statement order.
func (asm *Assembler) encodeAll(enc *Encoder, layout *Layout, bases []Base, skip map[int]bool) (codes []Encoded, errs []error) {
	count := len(layout.Statements)
	results := make([]Encoded, count)
	failures := make([]error, count)

	encodeOne := func(n int) {
		st := &layout.Statements[n]
		if !st.Located || skip[st.LineNo] {
			return
		}
		code, err := enc.Encode(st, bases[n])
		if err != nil {
			failures[n] = &ErrStatement{LineNo: st.LineNo, Line: st.Line, Err: err}
			return
		}
		results[n] = code
	}

	if asm.Workers > 1 {
		var group errgroup.Group
		group.SetLimit(asm.Workers)
		for n := range count {
			group.Go(func() error {
				encodeOne(n)
				return nil
			})
		}
		_ = group.Wait()
	} else {
		for n := range count {
			encodeOne(n)
		}
	}

	for n := range count {
		if failures[n] != nil {
			errs = append(errs, failures[n])
			continue
		}
		codes = append(codes, results[n])
	}

	return
}
