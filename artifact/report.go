package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"

	"github.com/ezrec/xeasm/sicxe"
)

// Symbol is a symbol table entry of a Report.
type Symbol struct {
	Name    string `json:"name" jsonschema:"title=Name,description=Label as written in the source"`
	Address string `json:"address" jsonschema:"title=Address,description=Hex address,pattern=^[0-9A-F]+$"`
}

// Diagnostic is an assembly error of a Report.
type Diagnostic struct {
	LineNo  int    `json:"line,omitempty" jsonschema:"title=Line,description=Source statement number starting at 1"`
	Line    string `json:"text,omitempty" jsonschema:"title=Text,description=Normalized source statement"`
	Message string `json:"message" jsonschema:"title=Message"`
}

// Report is the machine readable result of an assembly.
type Report struct {
	Name      string       `json:"name" jsonschema:"title=Name,description=Program name from START"`
	Start     string       `json:"start" jsonschema:"title=Start,description=Hex start address,pattern=^[0-9A-F]{6}$"`
	Length    string       `json:"length" jsonschema:"title=Length,description=Hex program length,pattern=^[0-9A-F]{6}$"`
	FirstExec string       `json:"firstExec" jsonschema:"title=First Executable,description=Hex entry address,pattern=^[0-9A-F]{6}$"`
	Symbols   []Symbol     `json:"symbols" jsonschema:"title=Symbols"`
	Records   []string     `json:"records" jsonschema:"title=Records,description=Object records in H T M E order"`
	Errors    []Diagnostic `json:"errors,omitempty" jsonschema:"title=Errors"`
}

// NewReport summarizes an assembly result. asm_err is the error returned by
// the assembler, if any.
func NewReport(prog *sicxe.Program, asm_err error) (report *Report) {
	report = &Report{
		Name:      prog.Name,
		Start:     fmt.Sprintf("%06X", prog.Start),
		Length:    fmt.Sprintf("%06X", prog.Length),
		FirstExec: fmt.Sprintf("%06X", prog.FirstExec),
		Symbols:   []Symbol{},
		Records:   []string{},
	}

	for name, address := range prog.Symbols.All() {
		report.Symbols = append(report.Symbols, Symbol{Name: name, Address: fmt.Sprintf("%04X", address)})
	}

	if prog.Object != nil {
		for record := range prog.Records() {
			report.Records = append(report.Records, record.String())
		}
	}

	for _, err := range Diagnostics(asm_err) {
		diag := Diagnostic{Message: err.Error()}
		var es *sicxe.ErrStatement
		if errors.As(err, &es) {
			diag.LineNo = es.LineNo
			diag.Line = es.Line
			diag.Message = es.Err.Error()
		}
		report.Errors = append(report.Errors, diag)
	}

	return
}

// Diagnostics splits a joined error into its parts.
func Diagnostics(err error) (errs []error) {
	if err == nil {
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// Encode writes the report as indented JSON.
func (report *Report) Encode(w io.Writer) (err error) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err = enc.Encode(report)
	return
}

// Schema returns the JSON schema of Report.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	return reflector.Reflect(&Report{})
}
