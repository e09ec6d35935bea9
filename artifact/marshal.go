// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package artifact persists an assembled program: its listings, symbol table
// and object file, and a machine readable report.
package artifact

import (
	"bufio"
	"errors"
	"io"
	"io/fs"

	"github.com/ezrec/xeasm/object"
	"github.com/ezrec/xeasm/sicxe"
)

const (
	FILE_SOURCE       = "intermediate.txt" // Normalized source statements.
	FILE_INTERMEDIATE = "out_pass1.txt"    // Pass 1 listing.
	FILE_SYMBOLS      = "symbTable.txt"    // Symbol table.
	FILE_LISTING      = "out_pass2.txt"    // Pass 2 listing.
	FILE_OBJECT       = "HTME.txt"         // Object program.
)

// Files returns the names written by Marshal, in writing order.
func Files() []string {
	return []string{FILE_SOURCE, FILE_INTERMEDIATE, FILE_SYMBOLS, FILE_LISTING, FILE_OBJECT}
}

// writeLines writes one line per string.
func writeLines(w io.Writer, lines []string) (err error) {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		_, err = bw.WriteString(line + "\n")
		if err != nil {
			return
		}
	}
	err = bw.Flush()
	return
}

// create writes a single artifact file.
func create(filesys CreateFS, name string, write func(w io.Writer) error) (err error) {
	defer func() {
		if err != nil {
			err = &ErrArtifact{Name: name, Err: err}
		}
	}()

	file, err := filesys.Create(name)
	if err != nil {
		return
	}

	err = write(file)
	err = errors.Join(err, file.Close())
	return
}

// Marshal writes every artifact of prog to a file system.
func Marshal(prog *sicxe.Program, filesys CreateFS) (err error) {
	for _, name := range Files() {
		var lines []string
		switch name {
		case FILE_SOURCE:
			lines = prog.Source()
		case FILE_INTERMEDIATE:
			lines = prog.Intermediate()
		case FILE_SYMBOLS:
			lines = prog.SymbolLines()
		case FILE_LISTING:
			lines = prog.Listing()
		case FILE_OBJECT:
			err = create(filesys, name, func(w io.Writer) error {
				return object.Write(w, prog.Object)
			})
			if err != nil {
				return
			}
			continue
		}

		err = create(filesys, name, func(w io.Writer) error {
			return writeLines(w, lines)
		})
		if err != nil {
			return
		}
	}

	return
}

// MarshalDir writes every artifact of prog to the named subdirectory,
// creating it if needed.
func MarshalDir(prog *sicxe.Program, filesys CreateFS, name string) (err error) {
	if name == "." || len(name) == 0 {
		return Marshal(prog, filesys)
	}

	subsys, err := filesys.Sub(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return
		}
		err = filesys.Mkdir(name, 0755)
		if err != nil {
			return
		}
		subsys, err = filesys.Sub(name)
		if err != nil {
			return
		}
	}

	err = Marshal(prog, subsys)
	return
}
