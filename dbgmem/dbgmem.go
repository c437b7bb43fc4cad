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

package dbgmem

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/m3sim/cc2650emu/symbols"
)

// Bus is the minimum a memory implementation must support to be inspected.
// Unlike the AHB-Lite ports used by the cycle-accurate core, these accesses
// happen instantaneously and are never scheduled against the clock tree.
type Bus interface {
	PeekByte(addr uint32) (uint8, error)
	PokeByte(addr uint32, data uint8) error
}

// sentinel errors returned by Peek and Poke.
var ErrPeek = errors.New("cannot peek address")
var ErrPoke = errors.New("cannot poke address")

// Inspector is a front-end to the emulated address space that allows
// addressing by symbol name in addition to numeric address.
type Inspector struct {
	Bus Bus
	Sym *symbols.Table
}

// resolve turns a uint32 or string address into a concrete uint32,
// consulting the symbol table first when given a string.
func (insp Inspector) resolve(address any) (uint32, string, error) {
	switch address := address.(type) {
	case uint32:
		symbol := ""
		if e, ok := insp.Sym.Lookup(address); ok {
			symbol = e.Symbol
		}
		return address, symbol, nil
	case string:
		if addr, ok := insp.Sym.Resolve(address); ok {
			return addr, address, nil
		}

		addr, err := strconv.ParseUint(address, 0, 32)
		if err != nil {
			return 0, "", fmt.Errorf("unresolvable address: %q", address)
		}

		symbol := ""
		if e, ok := insp.Sym.Lookup(uint32(addr)); ok {
			symbol = e.Symbol
		}
		return uint32(addr), symbol, nil
	default:
		return 0, "", fmt.Errorf("unsupported address type (%T)", address)
	}
}

// Peek returns the byte at address, without causing any side effects on the
// core. The address may be numeric (uint32) or symbolic (string).
func (insp Inspector) Peek(address any) (AddressInfo, error) {
	addr, symbol, err := insp.resolve(address)
	if err != nil {
		return AddressInfo{}, fmt.Errorf("%w: %v", ErrPeek, err)
	}

	ai := AddressInfo{Address: addr, Symbol: symbol}

	data, err := insp.Bus.PeekByte(addr)
	if err != nil {
		return AddressInfo{}, fmt.Errorf("%w: %v", ErrPeek, err)
	}

	ai.Data = data
	ai.Accessed = true

	return ai, nil
}

// Poke writes data at address, without driving it through bus timing. The
// address may be numeric (uint32) or symbolic (string).
func (insp Inspector) Poke(address any, data uint8) (AddressInfo, error) {
	addr, symbol, err := insp.resolve(address)
	if err != nil {
		return AddressInfo{}, fmt.Errorf("%w: %v", ErrPoke, err)
	}

	ai := AddressInfo{Address: addr, Symbol: symbol, Write: true}

	if err := insp.Bus.PokeByte(addr, data); err != nil {
		return AddressInfo{}, fmt.Errorf("%w: %v", ErrPoke, err)
	}

	ai.Data = data
	ai.Accessed = true

	return ai, nil
}
