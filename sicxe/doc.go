// Package sicxe implements a two pass assembler for the SIC/XE architecture.
//
// Instructions come in four formats of 1, 2, 3 and 4 bytes, plus a 3 byte
// format carrying four register operands. Format 3 operands are encoded
// PC-relative or base-relative; format 4 carries a full 20 bit address and
// is marked for relocation by the linker-loader.
//
// Pass 1 (Locate) assigns an address to every statement and builds the
// symbol table. Pass 2 (Encoder) encodes each statement against the frozen
// symbol table, and the object package groups the result into Header, Text,
// Modification and End records.
package sicxe
