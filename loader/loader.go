// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package loader places an object program in memory at an arbitrary address,
// relocating it with its Modification records.
package loader

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ezrec/xeasm/object"
)

const (
	MEMORY_SIZE    = 1 << 20 // SIC/XE address space, in bytes.
	NIBBLES_MAX    = 8       // Widest relocatable field, in half-bytes.
	DUMP_LINE_SIZE = 16      // Bytes per line of Image.Dump.
)

// Image is a program loaded into memory.
type Image struct {
	Name  string
	Start uint32 // Load address.
	Entry uint32 // Relocated first executable address.
	Data  []byte // Program memory, from Start.
}

// Codes iterates over the loaded memory one byte at a time.
func (img *Image) Codes() iter.Seq2[uint32, byte] {
	return func(yield func(address uint32, value byte) bool) {
		for n, value := range img.Data {
			if !yield(img.Start+uint32(n), value) {
				return
			}
		}
	}
}

// Dump writes the image as hex, DUMP_LINE_SIZE bytes per line.
func (img *Image) Dump(w io.Writer) (err error) {
	for offset := 0; offset < len(img.Data); offset += DUMP_LINE_SIZE {
		line := img.Data[offset:min(offset+DUMP_LINE_SIZE, len(img.Data))]
		_, err = fmt.Fprintf(w, "%06X %X\n", img.Start+uint32(offset), line)
		if err != nil {
			return
		}
	}
	return
}

// Loader is a relocating loader.
type Loader struct {
	Verbose bool        // If set, logs each record as it is loaded.
	Logger  *log.Logger // Destination of verbose logs. Defaults to log.Default().
}

func (ld *Loader) logger() *log.Logger {
	if !ld.Verbose {
		return nil
	}
	if ld.Logger == nil {
		return log.Default()
	}
	return ld.Logger
}

// Load places obj at address at, with the default loader.
func Load(obj *object.Object, at uint32) (img *Image, err error) {
	return (&Loader{}).Load(obj, at)
}

// Load copies the Text records of obj into a memory image starting at at,
// then adds the distance between at and the assembled start to every field
// named by a Modification record.
func (ld *Loader) Load(obj *object.Object, at uint32) (img *Image, err error) {
	logger := ld.logger()

	header := obj.Header
	if uint64(at)+uint64(header.Length) > MEMORY_SIZE {
		err = &ErrLoad{Record: header, Err: ErrLoadAddress}
		return
	}

	delta := at - header.Start

	img = &Image{
		Name:  strings.TrimSpace(header.Name),
		Start: at,
		Entry: obj.End.FirstExec + delta,
		Data:  make([]byte, header.Length),
	}

	for _, text := range obj.Texts {
		if text.Start < header.Start || text.End() > header.Start+header.Length {
			err = &ErrLoad{Record: text, Err: ErrRecordRange}
			return
		}
		copy(img.Data[text.Start-header.Start:], text.Bytes)
		if logger != nil {
			logger.Debug("text", "address", fmt.Sprintf("%06X", text.Start+delta), "length", len(text.Bytes))
		}
	}

	for _, mod := range obj.Modifications {
		if mod.Address < header.Start {
			err = &ErrLoad{Record: mod, Err: ErrRecordRange}
			return
		}
		err = Relocate(img.Data, mod.Address-header.Start, mod.Length, delta)
		if err != nil {
			err = &ErrLoad{Record: mod, Err: err}
			return
		}
		if logger != nil {
			logger.Debug("modify", "address", fmt.Sprintf("%06X", mod.Address+delta), "nibbles", mod.Length)
		}
	}

	return
}

// Relocate adds delta to the field of nibbles half-bytes starting at offset.
// A field with an odd number of half-bytes starts at the low half of its
// first byte. The sum wraps within the field.
func Relocate(data []byte, offset uint32, nibbles uint8, delta uint32) (err error) {
	if nibbles == 0 || nibbles > NIBBLES_MAX {
		err = ErrModificationWidth
		return
	}

	size := (uint32(nibbles) + 1) / 2
	if uint64(offset)+uint64(size) > uint64(len(data)) {
		err = ErrRecordRange
		return
	}
	field := data[offset : offset+size]

	var value uint64
	for _, b := range field {
		value = (value << 8) | uint64(b)
	}

	mask := (uint64(1) << (4 * uint(nibbles))) - 1
	value = (value &^ mask) | ((value + uint64(delta)) & mask)

	for n := len(field) - 1; n >= 0; n-- {
		field[n] = byte(value)
		value >>= 8
	}

	return
}
