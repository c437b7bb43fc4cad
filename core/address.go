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

// Package core holds the cycle-accurate execution engine: the data model
// shared by every subcomponent (Address, Word, DataBus) lives here; the
// flop discipline, bus wires, register bank, PIQ, NVIC, VIMS, clock tree
// and power sequencing each get their own subpackage, wired together by
// core/engine.
package core

import "fmt"

// Address is a 32-bit unsigned value addressing the AHB-Lite bus.
type Address uint32

// AlignDown rounds addr down to the nearest multiple of n, where n is 2,
// 4, or 8.
func (a Address) AlignDown(n uint32) Address {
	return Address(uint32(a) &^ (n - 1))
}

// AlignUp rounds addr up to the nearest multiple of n, where n is 2, 4, or
// 8.
func (a Address) AlignUp(n uint32) Address {
	return (a + Address(n-1)).AlignDown(n)
}

// Aligned reports whether addr is a multiple of n.
func (a Address) Aligned(n uint32) bool {
	return uint32(a)&(n-1) == 0
}

// Offset returns addr+delta. delta may be negative.
func (a Address) Offset(delta int32) Address {
	return Address(int64(a) + int64(delta))
}

// Mask returns addr with only the low n bits retained.
func (a Address) Mask(n uint32) Address {
	return Address(uint32(a) & ((1 << n) - 1))
}

func (a Address) String() string {
	return fmt.Sprintf("%#08x", uint32(a))
}

// Word is a 32-bit value with little-endian byte semantics, as stored and
// fetched over the AHB-Lite bus.
type Word uint32

// Bytes returns the four bytes making up w, least-significant first.
func (w Word) Bytes() [4]byte {
	return [4]byte{
		byte(w),
		byte(w >> 8),
		byte(w >> 16),
		byte(w >> 24),
	}
}

// WordFromBytes reconstructs a Word from four little-endian bytes.
func WordFromBytes(b [4]byte) Word {
	return Word(b[0]) | Word(b[1])<<8 | Word(b[2])<<16 | Word(b[3])<<24
}

// TransferSize is the width, in bytes, of a single AHB-Lite transfer.
type TransferSize int

// List of valid TransferSize values.
const (
	SizeByte     TransferSize = 1
	SizeHalfword TransferSize = 2
	SizeWord     TransferSize = 4
	SizeDouble   TransferSize = 8
)

// DataBus carries the byte/halfword/word/doubleword payload of a data
// phase, keyed by the transfer size that produced it.
type DataBus struct {
	Size TransferSize
	Byte uint8
	Half uint16
	Word Word
	Quad uint64
}
