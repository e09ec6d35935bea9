package object

import (
	"bufio"
	"encoding/hex"
	"io"
	"strconv"
	"strings"
)

// parseHex decodes a fixed width hexadecimal field.
func parseHex(field string, width int) (value uint32, err error) {
	if len(field) != width {
		err = ErrRecordHex
		return
	}
	v64, err := strconv.ParseUint(field, 16, 32)
	if err != nil {
		err = ErrRecordHex
		return
	}
	value = uint32(v64)
	return
}

// ParseRecord decodes a single record line.
func ParseRecord(line string) (rec Record, err error) {
	if len(line) == 0 {
		err = ErrRecordEmpty
		return
	}

	fields := strings.Split(line, "^")

	want := map[string]int{"H": 4, "T": 4, "M": 3, "E": 2}
	count, ok := want[fields[0]]
	if !ok {
		err = ErrRecordKind
		return
	}
	if len(fields) != count {
		err = ErrRecordFields
		return
	}

	switch fields[0] {
	case RECORD_HEADER.String():
		hr := Header{Name: fields[1]}
		if hr.Start, err = parseHex(fields[2], 6); err != nil {
			return
		}
		if hr.Length, err = parseHex(fields[3], 6); err != nil {
			return
		}
		rec = hr
	case RECORD_TEXT.String():
		tr := Text{}
		if tr.Start, err = parseHex(fields[1], 6); err != nil {
			return
		}
		var length uint32
		if length, err = parseHex(fields[2], 2); err != nil {
			return
		}
		tr.Bytes, err = hex.DecodeString(fields[3])
		if err != nil {
			err = ErrRecordHex
			return
		}
		if int(length) != len(tr.Bytes) {
			err = ErrRecordLength
			return
		}
		rec = tr
	case RECORD_MODIFICATION.String():
		mr := Modification{}
		if mr.Address, err = parseHex(fields[1], 6); err != nil {
			return
		}
		var length uint32
		if length, err = parseHex(fields[2], 2); err != nil {
			return
		}
		mr.Length = uint8(length)
		rec = mr
	case RECORD_END.String():
		er := End{}
		if er.FirstExec, err = parseHex(fields[1], 6); err != nil {
			return
		}
		rec = er
	}

	return
}

// Read parses an object program.
//
// Records must appear as Header, Text, Modification, End. Blank lines are
// ignored.
func Read(input io.Reader) (obj *Object, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrRecord{LineNo: lineno, Line: line, Err: err}
		}
	}()

	var prog Object
	state := RecordKind(-1)

	for scanner.Scan() {
		lineno++
		line = strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		var rec Record
		rec, err = ParseRecord(line)
		if err != nil {
			return
		}

		kind := rec.Kind()
		switch {
		case state < 0 && kind != RECORD_HEADER:
			err = ErrHeaderMissing
			return
		case state == RECORD_END:
			err = ErrRecordOrder
			return
		case kind < state:
			err = ErrRecordOrder
			return
		case state >= 0 && kind == RECORD_HEADER:
			err = ErrRecordOrder
			return
		}
		state = kind

		switch rec := rec.(type) {
		case Header:
			prog.Header = rec
		case Text:
			if n := len(prog.Texts); n > 0 && rec.Start < prog.Texts[n-1].End() {
				err = ErrTextOverlap
				return
			}
			prog.Texts = append(prog.Texts, rec)
		case Modification:
			prog.Modifications = append(prog.Modifications, rec)
		case End:
			prog.End = rec
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	line = ""
	switch state {
	case -1:
		err = ErrHeaderMissing
		return
	case RECORD_END:
	default:
		err = ErrEndMissing
		return
	}

	obj = &prog

	return
}

// Write renders an object program, one record per line.
func Write(output io.Writer, obj *Object) (err error) {
	w := bufio.NewWriter(output)
	for rec := range obj.Records() {
		_, err = w.WriteString(rec.String() + "\n")
		if err != nil {
			return
		}
	}

	err = w.Flush()
	return
}
