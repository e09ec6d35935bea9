package object

import (
	"errors"

	"github.com/ezrec/xeasm/translate"
)

var f = translate.From

var (
	ErrRecordEmpty    = errors.New(f("empty record"))
	ErrRecordKind     = errors.New(f("unknown record type"))
	ErrRecordFields   = errors.New(f("wrong number of fields"))
	ErrRecordHex      = errors.New(f("malformed hex field"))
	ErrRecordLength   = errors.New(f("text length does not match data"))
	ErrRecordOrder    = errors.New(f("records out of order"))
	ErrHeaderMissing  = errors.New(f("header record missing"))
	ErrEndMissing     = errors.New(f("end record missing"))
	ErrTextOverlap    = errors.New(f("text records overlap"))
	ErrAddressReverse = errors.New(f("text address moves backwards"))
)

// ErrRecord locates a malformed record in an object stream.
type ErrRecord struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrRecord) Error() string {
	return f("record %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrRecord) Unwrap() error {
	return err.Err
}
