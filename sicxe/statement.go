package sicxe

import (
	"fmt"
	"strings"
	"unicode"
)

// Statement is one normalized line of assembly source.
type Statement struct {
	LineNo   int    // Source line number, 1 based.
	Line     string // Normalized source text.
	Address  uint32 // Location assigned by pass 1.
	Located  bool   // Set once pass 1 assigns Address.
	Label    string // Optional label.
	Mnemonic string // Instruction or directive, including any '+' marker.
	Operand  string // Optional operand.
}

// Fields returns the non-empty label, mnemonic and operand fields.
func (st *Statement) Fields() (fields []string) {
	for _, field := range []string{st.Label, st.Mnemonic, st.Operand} {
		if len(field) != 0 {
			fields = append(fields, field)
		}
	}
	return
}

// String renders the statement as it appears in the intermediate listing.
func (st *Statement) String() string {
	text := strings.Join(st.Fields(), " ")
	if !st.Located {
		return text
	}
	return fmt.Sprintf("%04X %v", st.Address, text)
}

// splitFields splits on whitespace, keeping quoted literals such as
// C'EOF DATA' in one field.
func splitFields(line string) (fields []string) {
	var field strings.Builder
	quoted := false

	for _, r := range line {
		switch {
		case r == '\'':
			quoted = !quoted
			field.WriteRune(r)
		case unicode.IsSpace(r) && !quoted:
			if field.Len() > 0 {
				fields = append(fields, field.String())
				field.Reset()
			}
		default:
			field.WriteRune(r)
		}
	}
	if field.Len() > 0 {
		fields = append(fields, field.String())
	}

	return
}

// isMnemonic returns true if the word names an instruction or directive.
func isMnemonic(word string) bool {
	if strings.HasPrefix(word, EXTENDED_MARKER) {
		return true
	}
	if _, ok := Lookup(word); ok {
		return true
	}
	_, ok := LookupDirective(word)
	return ok
}

// ParseStatement splits a normalized line into label, mnemonic and operand.
func ParseStatement(line string) (st Statement, err error) {
	st.Line = strings.TrimSpace(line)

	fields := splitFields(st.Line)
	switch len(fields) {
	case 0:
		err = ErrStatementEmpty
	case 1:
		st.Mnemonic = fields[0]
	case 2:
		if isMnemonic(fields[0]) {
			st.Mnemonic = fields[0]
			st.Operand = fields[1]
		} else {
			st.Label = fields[0]
			st.Mnemonic = fields[1]
		}
	case 3:
		st.Label = fields[0]
		st.Mnemonic = fields[1]
		st.Operand = fields[2]
	default:
		err = ErrMalformedOperand
	}

	return
}

// ParseStatements parses each line, numbering from 1.
func ParseStatements(lines []string) (stmts []Statement, errs []error) {
	for n, line := range lines {
		st, err := ParseStatement(line)
		st.LineNo = n + 1
		if err != nil {
			errs = append(errs, &ErrStatement{LineNo: st.LineNo, Line: st.Line, Err: err})
			continue
		}
		stmts = append(stmts, st)
	}

	return
}
