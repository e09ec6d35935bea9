package artifact

import (
	"errors"

	"github.com/ezrec/xeasm/translate"
)

var f = translate.From

var (
	ErrNotDirectory = errors.New(f("not a directory"))
)

// ErrArtifact indicates the artifact file that could not be written.
type ErrArtifact struct {
	Name string
	Err  error
}

func (err *ErrArtifact) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrArtifact) Unwrap() error {
	return err.Err
}
