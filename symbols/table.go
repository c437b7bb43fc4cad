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

import (
	"fmt"
	"slices"
	"strings"
)

// Source identifies where a symbol definition came from.
type Source string

// List of valid Source values.
const (
	SourceSystem Source = "System"
	SourceBundle Source = "Bundle"
	SourceCustom Source = "Custom"
)

// Entry records a symbol and the source of its definition.
type Entry struct {
	Address uint32
	Symbol  string
	Source  Source
}

// table maps a symbol to an address and keeps track of the widest symbol in
// the table, for column alignment when listing.
type table struct {
	byAddr map[uint32]Entry
	index  []*Entry

	maxWidth int
}

func newTable() *table {
	return &table{
		byAddr: make(map[uint32]Entry),
		index:  make([]*Entry, 0),
	}
}

// should be called in critical section
func (t *table) sort() {
	if len(t.byAddr) != len(t.index) {
		panic("symbol table is inconsistent")
	}

	slices.SortFunc(t.index, func(a, b *Entry) int {
		if a.Address < b.Address {
			return -1
		}
		if a.Address > b.Address {
			return 1
		}
		return 0
	})

	t.maxWidth = 0
	for _, e := range t.byAddr {
		if len(e.Symbol) > t.maxWidth {
			t.maxWidth = len(e.Symbol)
		}
	}
}

func (t table) String() string {
	s := strings.Builder{}
	for i := range t.index {
		s.WriteString(fmt.Sprintf("%#08x -> %s [%s]\n", t.index[i].Address, t.index[i].Symbol, t.index[i].Source))
	}
	return s.String()
}

// normaliseSymbol ensures a symbol has no leading or trailing space and that
// internal space is compressed and replaced with underscores.
func (t *table) normaliseSymbol(symbol string) string {
	s := strings.Fields(symbol)
	return strings.Join(s, "_")
}

// uniqueSymbol makes sure symbol is unique in the table, appending a
// numbered suffix if necessary.
func (t *table) uniqueSymbol(symbol string) string {
	unique := symbol

	add := 1
	_, _, ok := t.search(unique)
	for ok {
		unique = fmt.Sprintf("%s_%d", symbol, add)
		add++
		_, _, ok = t.search(unique)
	}
	return unique
}

func (t *table) get(addr uint32) (Entry, bool) {
	v, ok := t.byAddr[addr]
	return v, ok
}

func (t *table) add(source Source, addr uint32, symbol string) bool {
	symbol = t.normaliseSymbol(symbol)
	if symbol == "" {
		return false
	}

	if _, ok := t.byAddr[addr]; ok {
		return false
	}

	e := Entry{
		Address: addr,
		Source:  source,
		Symbol:  t.uniqueSymbol(symbol),
	}
	t.byAddr[addr] = e
	t.index = append(t.index, &e)
	t.sort()
	return true
}

func (t *table) remove(addr uint32) bool {
	if _, ok := t.byAddr[addr]; ok {
		delete(t.byAddr, addr)
		t.index = slices.DeleteFunc(t.index, func(e *Entry) bool {
			return e.Address == addr
		})
		t.sort()
		return true
	}
	return false
}

// search is case-insensitive.
func (t table) search(symbol string) (Entry, uint32, bool) {
	symbol = strings.ToUpper(t.normaliseSymbol(symbol))

	for addr, e := range t.byAddr {
		if strings.ToUpper(e.Symbol) == symbol {
			return e, addr, true
		}
	}

	return Entry{}, 0, false
}
