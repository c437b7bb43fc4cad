// This file is part of cc2650emu.
//
// cc2650emu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cc2650emu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cc2650emu.  If not, see <https://www.gnu.org/licenses/>.

package symbols

import "sync"

// Table holds every symbol currently known for a loaded test bundle, plus
// any custom symbols added at runtime by the debugger.
type Table struct {
	crit sync.Mutex

	// bundle-supplied and custom symbols share a single flat address space,
	// consistent with the AHB-Lite memory map used by the core.
	entries *table
}

// NewTable returns an empty, ready to use symbol table.
func NewTable() *Table {
	return &Table{
		entries: newTable(),
	}
}

// LoadBundleSymbols populates the table from a test bundle's optional
// symbol map. Existing entries with the same address are left untouched;
// call this once, immediately after a bundle has been loaded.
func (t *Table) LoadBundleSymbols(symbols map[string]uint32) {
	t.crit.Lock()
	defer t.crit.Unlock()

	for name, addr := range symbols {
		t.entries.add(SourceBundle, addr, name)
	}
}

// Add registers a custom symbol, returning false if the address is already
// named or the symbol is empty.
func (t *Table) Add(addr uint32, symbol string) bool {
	t.crit.Lock()
	defer t.crit.Unlock()

	return t.entries.add(SourceCustom, addr, symbol)
}

// Remove deletes the symbol at addr, if any.
func (t *Table) Remove(addr uint32) bool {
	t.crit.Lock()
	defer t.crit.Unlock()

	return t.entries.remove(addr)
}

// Lookup returns the symbol for addr, if one is known.
func (t *Table) Lookup(addr uint32) (Entry, bool) {
	t.crit.Lock()
	defer t.crit.Unlock()

	return t.entries.get(addr)
}

// Resolve returns the address of the named symbol. Matching is
// case-insensitive.
func (t *Table) Resolve(symbol string) (uint32, bool) {
	t.crit.Lock()
	defer t.crit.Unlock()

	_, addr, ok := t.entries.search(symbol)
	return addr, ok
}

// Width returns the length, in characters, of the longest known symbol.
// Useful for aligning columnar output.
func (t *Table) Width() int {
	t.crit.Lock()
	defer t.crit.Unlock()

	return t.entries.maxWidth
}
