package sicxe

import (
	"errors"

	"github.com/ezrec/xeasm/translate"
)

var f = translate.From

var (
	// Operand errors
	ErrMalformedOperand       = errors.New(f("malformed operand"))
	ErrDisplacementOutOfRange = errors.New(f("displacement out of range"))
	ErrRegisterCountMismatch  = errors.New(f("register count mismatch"))
	ErrOperandMissing         = errors.New(f("operand missing"))

	// Statement errors
	ErrStatementEmpty = errors.New(f("statement empty"))
)

// ErrDuplicateSymbol is a label defined more than once.
type ErrDuplicateSymbol string

func (err ErrDuplicateSymbol) Error() string {
	return f("duplicate symbol %v", string(err))
}

func (err ErrDuplicateSymbol) Is(target error) (ok bool) {
	_, ok = target.(ErrDuplicateSymbol)
	return
}

// ErrUndefinedSymbol is a reference to a label never defined.
type ErrUndefinedSymbol string

func (err ErrUndefinedSymbol) Error() string {
	return f("undefined symbol %v", string(err))
}

func (err ErrUndefinedSymbol) Is(target error) (ok bool) {
	_, ok = target.(ErrUndefinedSymbol)
	return
}

// ErrUnsupportedOpcode is a mnemonic that is neither an instruction nor a
// directive, or an extended marker on an instruction without a format 4 form.
type ErrUnsupportedOpcode string

func (err ErrUnsupportedOpcode) Error() string {
	return f("unsupported opcode %v", string(err))
}

func (err ErrUnsupportedOpcode) Is(target error) (ok bool) {
	_, ok = target.(ErrUnsupportedOpcode)
	return
}

// ErrStatement locates an error in the source program.
type ErrStatement struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrStatement) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrStatement) Unwrap() error {
	return err.Err
}
