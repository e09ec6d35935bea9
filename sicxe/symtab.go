package sicxe

import (
	"fmt"
	"iter"
)

// SymbolTable maps labels to addresses, in definition order.
type SymbolTable struct {
	names   []string
	address map[string]uint32
}

// Define adds a label. A label is never redefined; the first address wins.
func (tab *SymbolTable) Define(name string, address uint32) (err error) {
	if _, ok := tab.address[name]; ok {
		err = ErrDuplicateSymbol(name)
		return
	}

	if tab.address == nil {
		tab.address = make(map[string]uint32, 16)
	}
	tab.address[name] = address
	tab.names = append(tab.names, name)

	return
}

// Lookup returns the address of a label.
func (tab *SymbolTable) Lookup(name string) (address uint32, ok bool) {
	address, ok = tab.address[name]
	return
}

// Len returns the number of labels.
func (tab *SymbolTable) Len() int {
	return len(tab.names)
}

// All iterates over the labels in definition order.
func (tab *SymbolTable) All() iter.Seq2[string, uint32] {
	return func(yield func(name string, address uint32) bool) {
		for _, name := range tab.names {
			if !yield(name, tab.address[name]) {
				return
			}
		}
	}
}

// Freeze returns a read-only view of the table as it is now.
func (tab *SymbolTable) Freeze() Symbols {
	frozen := &SymbolTable{
		names:   append([]string(nil), tab.names...),
		address: make(map[string]uint32, len(tab.names)),
	}
	for _, name := range tab.names {
		frozen.address[name] = tab.address[name]
	}

	return Symbols{table: frozen}
}

// Symbols is a frozen symbol table. It is safe for concurrent use.
type Symbols struct {
	table *SymbolTable
}

// Lookup returns the address of a label.
func (sym Symbols) Lookup(name string) (address uint32, ok bool) {
	if sym.table == nil {
		return
	}
	return sym.table.Lookup(name)
}

// Len returns the number of labels.
func (sym Symbols) Len() int {
	if sym.table == nil {
		return 0
	}
	return sym.table.Len()
}

// All iterates over the labels in definition order.
func (sym Symbols) All() iter.Seq2[string, uint32] {
	if sym.table == nil {
		return func(yield func(string, uint32) bool) {}
	}
	return sym.table.All()
}

// Lines renders the table as 'NAME XXXX' lines.
func (sym Symbols) Lines() (lines []string) {
	for name, address := range sym.All() {
		lines = append(lines, fmt.Sprintf("%v %04X", name, address))
	}
	return
}
