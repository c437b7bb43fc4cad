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

package symbols_test

import (
	"testing"

	"github.com/m3sim/cc2650emu/symbols"
	"github.com/m3sim/cc2650emu/test"
)

func TestEmptyTable(t *testing.T) {
	tbl := symbols.NewTable()
	_, ok := tbl.Lookup(0x10000000)
	test.ExpectFailure(t, ok)
}

func TestLoadBundleSymbols(t *testing.T) {
	tbl := symbols.NewTable()
	tbl.LoadBundleSymbols(map[string]uint32{
		"RESET_VECTOR": 0x00000004,
		"MAIN_LOOP":    0x00000100,
	})

	e, ok := tbl.Lookup(0x00000100)
	test.ExpectSuccess(t, ok)
	test.Equate(t, e.Symbol, "MAIN_LOOP")
	test.Equate(t, e.Source, symbols.SourceBundle)

	addr, ok := tbl.Resolve("main_loop")
	test.ExpectSuccess(t, ok)
	test.Equate(t, addr, uint32(0x00000100))
}

func TestAddAndRemoveCustomSymbol(t *testing.T) {
	tbl := symbols.NewTable()

	test.ExpectSuccess(t, tbl.Add(0x20000000, "my breakpoint"))

	e, ok := tbl.Lookup(0x20000000)
	test.ExpectSuccess(t, ok)
	test.Equate(t, e.Symbol, "my_breakpoint")
	test.Equate(t, e.Source, symbols.SourceCustom)

	// adding another symbol at the same address fails
	test.ExpectFailure(t, tbl.Add(0x20000000, "duplicate"))

	test.ExpectSuccess(t, tbl.Remove(0x20000000))
	_, ok = tbl.Lookup(0x20000000)
	test.ExpectFailure(t, ok)
}

func TestUniqueSymbol(t *testing.T) {
	tbl := symbols.NewTable()

	test.ExpectSuccess(t, tbl.Add(0x1000, "dup"))
	test.ExpectSuccess(t, tbl.Add(0x1004, "dup"))

	e, ok := tbl.Lookup(0x1004)
	test.ExpectSuccess(t, ok)
	test.Equate(t, e.Symbol, "dup_1")
}

func TestList(t *testing.T) {
	tbl := symbols.NewTable()
	tw := &test.Writer{}

	tbl.List(tw)
	test.ExpectSuccess(t, tw.Compare("Symbols\n-------\n"))
}
