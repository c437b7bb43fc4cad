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

package dbgmem_test

import (
	"errors"
	"testing"

	"github.com/m3sim/cc2650emu/dbgmem"
	"github.com/m3sim/cc2650emu/symbols"
	"github.com/m3sim/cc2650emu/test"
)

type fakeBus struct {
	mem map[uint32]uint8
}

func newFakeBus() *fakeBus {
	return &fakeBus{mem: make(map[uint32]uint8)}
}

func (b *fakeBus) PeekByte(addr uint32) (uint8, error) {
	v, ok := b.mem[addr]
	if !ok {
		return 0, errors.New("unmapped")
	}
	return v, nil
}

func (b *fakeBus) PokeByte(addr uint32, data uint8) error {
	b.mem[addr] = data
	return nil
}

func TestPeekNumeric(t *testing.T) {
	bus := newFakeBus()
	bus.mem[0x1000] = 0x42

	sym := symbols.NewTable()
	insp := dbgmem.Inspector{Bus: bus, Sym: sym}

	ai, err := insp.Peek(uint32(0x1000))
	test.ExpectSuccess(t, err)
	test.Equate(t, ai.Data, uint8(0x42))
	test.Equate(t, ai.Symbol, "")
}

func TestPeekBySymbol(t *testing.T) {
	bus := newFakeBus()
	bus.mem[0x20000010] = 0x07

	sym := symbols.NewTable()
	sym.Add(0x20000010, "counter")

	insp := dbgmem.Inspector{Bus: bus, Sym: sym}

	ai, err := insp.Peek("counter")
	test.ExpectSuccess(t, err)
	test.Equate(t, ai.Address, uint32(0x20000010))
	test.Equate(t, ai.Data, uint8(0x07))
}

func TestPeekUnmapped(t *testing.T) {
	bus := newFakeBus()
	sym := symbols.NewTable()
	insp := dbgmem.Inspector{Bus: bus, Sym: sym}

	_, err := insp.Peek(uint32(0xdeadbeef))
	test.ExpectSuccess(t, errors.Is(err, dbgmem.ErrPeek))
}

func TestPokeAndReadBack(t *testing.T) {
	bus := newFakeBus()
	sym := symbols.NewTable()
	insp := dbgmem.Inspector{Bus: bus, Sym: sym}

	_, err := insp.Poke(uint32(0x30000000), 0xab)
	test.ExpectSuccess(t, err)

	ai, err := insp.Peek(uint32(0x30000000))
	test.ExpectSuccess(t, err)
	test.Equate(t, ai.Data, uint8(0xab))
}

func TestPeekNumericString(t *testing.T) {
	bus := newFakeBus()
	bus.mem[0x100] = 0x11

	sym := symbols.NewTable()
	insp := dbgmem.Inspector{Bus: bus, Sym: sym}

	ai, err := insp.Peek("0x100")
	test.ExpectSuccess(t, err)
	test.Equate(t, ai.Data, uint8(0x11))
}

func TestPeekUnresolvableSymbol(t *testing.T) {
	bus := newFakeBus()
	sym := symbols.NewTable()
	insp := dbgmem.Inspector{Bus: bus, Sym: sym}

	_, err := insp.Peek("not_a_symbol")
	test.ExpectSuccess(t, errors.Is(err, dbgmem.ErrPeek))
}
