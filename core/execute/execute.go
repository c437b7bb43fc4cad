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

// Package execute provides the Execute-stage helpers of §4.3: branch
// condition evaluation, add-with-carry with its xPSR flag results, and
// recognising an exception-return PC write and decoding EXC_RETURN's
// target mode/stack. It does not commit register or memory effects and
// does not drive LSU transfers.
package execute

import (
	"github.com/m3sim/cc2650emu/core/cpuregs"
	"github.com/m3sim/cc2650emu/simerr"
)

// ReturnTarget is the decoded destination of an EXC_RETURN value.
type ReturnTarget int

// List of valid ReturnTarget values, selected by EXC_RETURN's low
// nibble per §4.3.
const (
	ReturnReserved ReturnTarget = iota
	ReturnHandlerMSP
	ReturnThreadMSP
	ReturnThreadPSP
)

// ExceptionReturn is the decoded content of an EXC_RETURN value.
type ExceptionReturn struct {
	Target   ReturnTarget
	Extended bool // bit 4 clear => extended (FP) frame
}

// IsExceptionReturn reports whether a value written to PC has the
// EXC_RETURN form required by §4.3: bits 31:5 must be all ones; only
// valid while in Handler mode (a pop/bx/ldr to PC in Thread mode never
// triggers an exception return regardless of its value).
func IsExceptionReturn(value uint32, inHandlerMode bool) bool {
	if !inHandlerMode {
		return false
	}
	return value>>5 == 0x07FFFFFF // bits 31:5 all ones
}

// DecodeExceptionReturn decodes EXC_RETURN's low nibble into a target
// mode/stack selection, per §4.3. bit 4 clear indicates an extended
// (floating-point) frame, which this core treats as UNPREDICTABLE since
// it has no FP extension.
func DecodeExceptionReturn(value uint32) (ExceptionReturn, error) {
	nibble := value & 0xF
	extended := value&0x10 == 0

	var target ReturnTarget
	switch nibble {
	case 0x1:
		target = ReturnHandlerMSP
	case 0x9:
		target = ReturnThreadMSP
	case 0xD:
		target = ReturnThreadPSP
	default:
		return ExceptionReturn{}, simerr.InvalidInputf("reserved EXC_RETURN low nibble: %x", nibble)
	}

	if extended {
		return ExceptionReturn{}, simerr.InvalidInputf("extended EXC_RETURN frame requested without FP extension")
	}

	return ExceptionReturn{Target: target, Extended: extended}, nil
}

// ALUFlags are the four NZCV condition flags produced by an ALU
// operation.
type ALUFlags struct {
	Negative bool
	Zero     bool
	Carry    bool
	Overflow bool
}

// AddWithCarry implements the ARM ADDS/ADCS flag-setting semantics used
// by the majority of data-processing instructions.
func AddWithCarry(a, b uint32, carryIn bool) (result uint32, flags ALUFlags) {
	carry := uint64(0)
	if carryIn {
		carry = 1
	}
	wide := uint64(a) + uint64(b) + carry
	result = uint32(wide)

	flags.Negative = result&0x80000000 != 0
	flags.Zero = result == 0
	flags.Carry = wide > 0xFFFFFFFF

	signedA := int64(int32(a))
	signedB := int64(int32(b))
	signedResult := signedA + signedB + int64(carry)
	flags.Overflow = signedResult != int64(int32(result))

	return
}

// EvaluateBranch reports whether a branch is taken, given the condition
// field carried on the instruction (possibly folded in via an IT block,
// §4.3) and the current xPSR.
func EvaluateBranch(x cpuregs.XPSR, cond uint8) bool {
	return x.Condition(cond)
}
