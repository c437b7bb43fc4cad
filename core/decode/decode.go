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

// Package decode parses the head of the Prefetch Input Queue into an
// instruction descriptor, computes LSU operand addresses, tracks
// multi-cycle/stall status for Fetch, and applies IT-block folding
// (§4.3).
package decode

import "github.com/m3sim/cc2650emu/core/cpuregs"

// Width is a decoded instruction's halfword width.
type Width int

// List of valid Width values.
const (
	Narrow Width = 1 // one halfword
	Wide   Width = 2 // two halfwords (Thumb-2 32-bit encoding)
)

// Instruction is the result of decoding one PIQ head position.
type Instruction struct {
	Width       Width
	FirstHalf   uint16
	SecondHalf  uint16
	MultiCycle  bool
	IsBranch    bool
	Conditional bool
	Cond        uint8
}

// IsWideEncoding reports whether a first halfword's top 5 bits (bits
// 15:11) indicate a 32-bit Thumb-2 instruction: 0b11101, 0b11110 or
// 0b11111, per the ARMv7-M Thumb decode table.
func IsWideEncoding(first uint16) bool {
	top5 := (first >> 11) & 0b11111
	return top5 == 0b11101 || top5 == 0b11110 || top5 == 0b11111
}

// condUndefined and condSVC are the two cond field values a T1 conditional
// branch encoding never actually branches conditionally with: 0b1110 is
// UDF (permanently undefined) and 0b1111 is SVC, per the ARMv7-M Thumb
// 16-bit instruction encoding table.
const (
	condUndefined uint8 = 0b1110
	condSVC       uint8 = 0b1111
)

// classifyNarrow fills in the branch-related fields of a narrow
// Instruction by checking it against the two fixed 16-bit Thumb branch
// encodings: conditional branch (bits 15:12 = 0b1101) and unconditional
// branch (bits 15:11 = 0b11100). Both forms carry their entire branch
// disposition in fixed leading bits, so this needs no operand decoding
// beyond what IsWideEncoding already does for width.
func classifyNarrow(first uint16) (isBranch, conditional bool, cond uint8) {
	if first>>12 == 0b1101 {
		c := uint8((first >> 8) & 0xf)
		if c == condUndefined || c == condSVC {
			return false, false, 0
		}
		return true, true, c
	}
	if (first>>11)&0b11111 == 0b11100 {
		return true, false, 0
	}
	return false, false, 0
}

// Decode classifies a fetched halfword pair into an Instruction
// descriptor. second is ignored unless the first halfword indicates a
// wide encoding. MultiCycle is set for any branch, since a taken branch
// always costs Fetch a pipeline refill (§4.1); it isn't computed for
// other instruction forms, which need real per-opcode semantics this
// package doesn't have.
func Decode(first, second uint16) Instruction {
	if IsWideEncoding(first) {
		return Instruction{Width: Wide, FirstHalf: first, SecondHalf: second}
	}

	isBranch, conditional, cond := classifyNarrow(first)
	return Instruction{
		Width:       Narrow,
		FirstHalf:   first,
		IsBranch:    isBranch,
		Conditional: conditional,
		Cond:        cond,
		MultiCycle:  isBranch,
	}
}

// Fold applies IT-block folding (§4.3): a preceding IT instruction pairs
// with the immediately-following narrow instruction, consuming one slot
// of the IT mask without an extra decode cycle. it carries the ITState
// already advanced past the IT instruction itself.
func Fold(it cpuregs.ITState, next Instruction) (applyCondition bool, cond uint8) {
	if !it.Active() || next.Width != Narrow {
		return false, 0
	}
	return true, it.Cond
}

// AGUResult is the address computed for an LSU operand.
type AGUResult struct {
	Addr  uint32
	Valid bool
}

// ComputeAddress implements a simple base+offset AGU, the common case
// for LDR/STR-family instructions; pre/post-indexed writeback is left to
// the caller, which holds the register bank.
func ComputeAddress(base uint32, offset int32, preIndexed bool) AGUResult {
	if preIndexed {
		return AGUResult{Addr: uint32(int64(base) + int64(offset)), Valid: true}
	}
	return AGUResult{Addr: base, Valid: true}
}
