package object

import (
	"slices"
)

// Emitter groups object code into Text records.
//
// Code must be added in ascending address order. A record is closed when the
// next chunk does not start where the record ends, or when the chunk would
// push the record past Limit bytes.
type Emitter struct {
	Limit int // Maximum payload of a Text record, in bytes. Zero means MAX_TEXT_BYTES; capped at TEXT_LIMIT_MAX.

	texts   []Text
	current *Text
}

func (em *Emitter) limit() int {
	switch {
	case em.Limit <= 0:
		return MAX_TEXT_BYTES
	case em.Limit > TEXT_LIMIT_MAX:
		return TEXT_LIMIT_MAX
	}
	return em.Limit
}

// Add appends the object code of one statement at address.
func (em *Emitter) Add(address uint32, code []byte) (err error) {
	if len(code) == 0 {
		return
	}

	if em.current != nil {
		switch {
		case address < em.current.End():
			err = ErrAddressReverse
			return
		case address != em.current.End():
			em.Flush()
		case len(em.current.Bytes)+len(code) > em.limit():
			em.Flush()
		}
	}

	if em.current == nil {
		em.current = &Text{Start: address}
	}
	em.current.Bytes = append(em.current.Bytes, code...)

	// A single chunk larger than the limit spans several records.
	for len(em.current.Bytes) > em.limit() {
		head := em.current.Bytes[:em.limit()]
		tail := em.current.Bytes[em.limit():]
		em.texts = append(em.texts, Text{Start: em.current.Start, Bytes: slices.Clone(head)})
		em.current = &Text{Start: em.current.Start + uint32(len(head)), Bytes: slices.Clone(tail)}
	}

	return
}

// Flush closes the pending record, if any.
func (em *Emitter) Flush() {
	if em.current == nil {
		return
	}
	if len(em.current.Bytes) > 0 {
		em.texts = append(em.texts, *em.current)
	}
	em.current = nil
}

// Texts flushes and returns every Text record emitted so far.
func (em *Emitter) Texts() []Text {
	em.Flush()
	return slices.Clone(em.texts)
}
