package sicxe

// copyProgram reads records from an input device into a buffer and copies
// them to an output device.
var copyProgram = []string{
	"COPY START 0",
	"FIRST STL RETADR",
	"LDB #LENGTH",
	"BASE LENGTH",
	"CLOOP +JSUB RDREC",
	"LDA LENGTH",
	"COMP #0",
	"JEQ ENDFIL",
	"+JSUB WRREC",
	"J CLOOP",
	"ENDFIL LDA EOF",
	"STA BUFFER",
	"LDA #3",
	"STA LENGTH",
	"+JSUB WRREC",
	"J @RETADR",
	"EOF BYTE C'EOF'",
	"RETADR RESW 1",
	"LENGTH RESW 1",
	"BUFFER RESB 4096",
	"RDREC CLEAR X",
	"CLEAR A",
	"CLEAR S",
	"+LDT #4096",
	"RLOOP TD INPUT",
	"JEQ RLOOP",
	"RD INPUT",
	"COMPR A,S",
	"JEQ EXIT",
	"STCH BUFFER,X",
	"TIXR T",
	"JLT RLOOP",
	"EXIT STX LENGTH",
	"RSUB",
	"INPUT BYTE X'F1'",
	"WRREC CLEAR X",
	"LDT LENGTH",
	"WLOOP TD OUTPUT",
	"JEQ WLOOP",
	"LDCH BUFFER,X",
	"WD OUTPUT",
	"TIXR T",
	"JLT WLOOP",
	"RSUB",
	"OUTPUT BYTE X'05'",
	"END FIRST",
}

var copySymbols = []string{
	"FIRST 0000",
	"CLOOP 0006",
	"ENDFIL 001A",
	"EOF 002D",
	"RETADR 0030",
	"LENGTH 0033",
	"BUFFER 0036",
	"RDREC 1036",
	"RLOOP 1040",
	"EXIT 1056",
	"INPUT 105C",
	"WRREC 105D",
	"WLOOP 1062",
	"OUTPUT 1076",
}

var copyObject = []string{
	"H^COPY^000000^001077",
	"T^000000^1D^17202D69202D4B1010360320262900003320074B10105D3F2FEC032010",
	"T^00001D^13^0F20160100030F200D4B10105D3E2003454F46",
	"T^001036^1D^B410B400B44075101000E32019332FFADB2013A00433200857C003B850",
	"T^001053^1D^3B2FEA1340004F0000F1B410774000E32011332FFA53C003DF2008B850",
	"T^001070^07^3B2FEF4F000005",
	"M^000007^05",
	"M^000014^05",
	"M^000027^05",
	"E^000000",
}

// locate parses and runs pass 1 over program lines.
func locate(lines []string) *Layout {
	stmts, errs := ParseStatements(lines)
	if len(errs) != 0 {
		panic(errs[0])
	}
	return Locate(stmts)
}
