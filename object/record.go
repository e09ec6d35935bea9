package object

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/xeasm/internal"
)

// MAX_TEXT_BYTES is the default payload limit of a Text record (60 hex characters).
const MAX_TEXT_BYTES = 30

// TEXT_LIMIT_MAX is the largest payload a two digit length field can carry.
const TEXT_LIMIT_MAX = 0xff

// MODIFY_EXTENDED is the half-byte length of a format 4 address field.
const MODIFY_EXTENDED = 5

// RecordKind identifies a record variant.
type RecordKind int

//go:generate go tool stringer -linecomment -type=RecordKind
const (
	RECORD_HEADER       = RecordKind(0) // H
	RECORD_TEXT         = RecordKind(1) // T
	RECORD_MODIFICATION = RecordKind(2) // M
	RECORD_END          = RecordKind(3) // E
)

// Record is one line of an object program.
type Record interface {
	Kind() RecordKind
	String() string
}

// Header names the program, its load origin and its length in bytes.
type Header struct {
	Name   string
	Start  uint32
	Length uint32
}

var _ Record = Header{}

func (hr Header) Kind() RecordKind { return RECORD_HEADER }

func (hr Header) String() string {
	return fmt.Sprintf("%v^%v^%06X^%06X", hr.Kind(), hr.Name, hr.Start, hr.Length)
}

// Text is a contiguous run of object code.
type Text struct {
	Start uint32
	Bytes []byte
}

var _ Record = Text{}

func (tr Text) Kind() RecordKind { return RECORD_TEXT }

// End returns the address following the last byte of the record.
func (tr Text) End() uint32 {
	return tr.Start + uint32(len(tr.Bytes))
}

func (tr Text) String() string {
	return fmt.Sprintf("%v^%06X^%02X^%X", tr.Kind(), tr.Start, len(tr.Bytes), tr.Bytes)
}

// Modification marks a field that must be relocated at load time.
type Modification struct {
	Address uint32 // Address of the first byte holding the field.
	Length  uint8  // Length of the field, in half-bytes.
}

var _ Record = Modification{}

func (mr Modification) Kind() RecordKind { return RECORD_MODIFICATION }

func (mr Modification) String() string {
	return fmt.Sprintf("%v^%06X^%02X", mr.Kind(), mr.Address, mr.Length)
}

// End names the first executable instruction.
type End struct {
	FirstExec uint32
}

var _ Record = End{}

func (er End) Kind() RecordKind { return RECORD_END }

func (er End) String() string {
	return fmt.Sprintf("%v^%06X", er.Kind(), er.FirstExec)
}

// Object is a complete object program.
type Object struct {
	Header        Header
	Texts         []Text
	Modifications []Modification
	End           End
}

// Records returns the records in wire order.
func (obj *Object) Records() iter.Seq[Record] {
	return internal.IterSeqConcat(
		internal.IterSeqOne[Record](obj.Header),
		internal.IterSeqMap(obj.Texts, func(tr Text) Record { return tr }),
		internal.IterSeqMap(obj.Modifications, func(mr Modification) Record { return mr }),
		internal.IterSeqOne[Record](obj.End),
	)
}

// String renders the object program, one record per line.
func (obj *Object) String() string {
	var sb strings.Builder
	for rec := range obj.Records() {
		sb.WriteString(rec.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
