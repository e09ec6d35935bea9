// Package object implements the linker-loader record stream produced by the
// assembler.
//
// An object program is a Header record, a run of Text records in ascending
// address order, the Modification records marking relocatable fields, and a
// single End record. Each record renders as one line of '^' delimited,
// upper-case, zero padded hexadecimal fields:
//
//	H^COPY^001000^00107A
//	T^001000^1E^141033482039001036...
//	M^001007^05
//	E^001000
package object
