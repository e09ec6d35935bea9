package loader

import (
	"errors"

	"github.com/ezrec/xeasm/object"
	"github.com/ezrec/xeasm/translate"
)

var f = translate.From

var (
	ErrRecordRange       = errors.New(f("record outside of program"))
	ErrModificationWidth = errors.New(f("modification width invalid"))
	ErrLoadAddress       = errors.New(f("program does not fit in memory at load address"))
)

// ErrLoad indicates the record that could not be loaded.
type ErrLoad struct {
	Record object.Record
	Err    error
}

func (err *ErrLoad) Error() string {
	return f("%v: %v", err.Record, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}
