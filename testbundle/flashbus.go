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

package testbundle

import "fmt"

// FlashBase is where the CC2650 maps its on-chip flash bank, per the
// device's documented memory map.
const FlashBase uint32 = 0x00000000

// FlashBus is a byte-addressable view over a loaded case's flash image,
// with a sparse scratch region for anything outside it (SRAM-mapped
// symbols, mainly). It satisfies dbgmem.Bus and core/fetch's plain
// byte-at-a-time read needs, structurally rather than by importing
// either package.
type FlashBus struct {
	flash []byte
	ram   map[uint32]uint8
}

// NewFlashBus returns a bus backed by flash, read starting at FlashBase.
func NewFlashBus(flash []byte) *FlashBus {
	return &FlashBus{flash: flash, ram: make(map[uint32]uint8)}
}

// PeekByte reads addr without side effects: from the flash image if it
// falls within FlashBase..FlashBase+len(flash), from the scratch map if
// it was previously poked, or an error if neither holds it.
func (b *FlashBus) PeekByte(addr uint32) (uint8, error) {
	if addr >= FlashBase && int(addr-FlashBase) < len(b.flash) {
		return b.flash[addr-FlashBase], nil
	}
	if v, ok := b.ram[addr]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("address %#08x not backed by this bundle's flash image", addr)
}

// PokeByte writes addr into the scratch map; the flash image itself is
// immutable once loaded, matching real flash semantics.
func (b *FlashBus) PokeByte(addr uint32, data uint8) error {
	b.ram[addr] = data
	return nil
}

// ReadHalfword reads a little-endian 16-bit value at addr.
func (b *FlashBus) ReadHalfword(addr uint32) (uint16, error) {
	lo, err := b.PeekByte(addr)
	if err != nil {
		return 0, err
	}
	hi, err := b.PeekByte(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}
