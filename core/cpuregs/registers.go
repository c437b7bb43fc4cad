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

// Package cpuregs holds the ARMv7-M register bank (§3.6): R0-R15, the
// banked stack pointers, xPSR and its ITstate condition stream, and the
// special-purpose mask registers.
package cpuregs

// Register names R0-R15, for readability at call sites.
const (
	R0 = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	SP // R13
	LR // R14
	PC // R15
)

// StackPointerBank selects which of the two banked stack pointers R13
// currently refers to.
type StackPointerBank int

// List of valid StackPointerBank values.
const (
	MSP StackPointerBank = iota
	PSP
)

// ITState carries the IT-block condition stream: 3 bits of base condition
// plus a mask of remaining conditional instructions, per §3.6. The block
// is active while Mask != 0.
type ITState struct {
	Cond uint8
	Mask uint8
}

// Active reports whether an IT block is currently open.
func (it ITState) Active() bool {
	return it.Mask != 0
}

// Advance consumes one instruction from the IT block, shifting the mask.
// Per ARMv7-M A7.3.2, once all conditional instructions are consumed the
// state resets to {0,0}.
func (it ITState) Advance() ITState {
	if !it.Active() {
		return it
	}
	if it.Mask&0b111 == 0 {
		return ITState{}
	}
	it.Mask = (it.Mask << 1) & 0b11111
	return it
}

// XPSR bundles APSR (condition flags), IPSR (current exception number) and
// EPSR (execution state, principally the IT/ICI bits) as the spec
// describes them (§3.6); Thumb-bit and other fixed EPSR bits aren't
// modelled since they never vary in this core.
type XPSR struct {
	Negative bool
	Zero     bool
	Carry    bool
	Overflow bool

	// ExceptionNumber is IPSR's 9-bit exception number field; 0 means
	// Thread mode.
	ExceptionNumber int

	IT ITState
}

// InHandlerMode reports whether the processor is in Handler (exception)
// mode, i.e. an exception number other than thread mode is active.
func (x XPSR) InHandlerMode() bool {
	return x.ExceptionNumber != 0
}

// Bank is the full ARMv7-M register file.
type Bank struct {
	core [13]uint32

	msp uint32
	psp uint32
	sp  StackPointerBank

	lr uint32
	pc uint32

	xpsr XPSR

	control  uint8 // bit 0: nPRIV, bit 1: SPSEL
	primask  bool
	faultmask bool
	basepri  uint8
}

// R reads a core register R0-R12.
func (b *Bank) R(n int) uint32 {
	return b.core[n]
}

// SetR writes a core register R0-R12.
func (b *Bank) SetR(n int, v uint32) {
	b.core[n] = v
}

// SP returns the currently active stack pointer: PSP when the bank
// selected with SetStackBank is PSP, MSP otherwise.
func (b *Bank) SP() uint32 {
	if b.sp == PSP {
		return b.psp
	}
	return b.msp
}

// SetSP writes the currently active stack pointer.
func (b *Bank) SetSP(v uint32) {
	if b.sp == PSP {
		b.psp = v
	} else {
		b.msp = v
	}
}

// MSP returns the Main stack pointer regardless of which is active.
func (b *Bank) MSP() uint32 { return b.msp }

// SetMSP writes the Main stack pointer regardless of which is active.
func (b *Bank) SetMSP(v uint32) { b.msp = v }

// PSP returns the Process stack pointer regardless of which is active.
func (b *Bank) PSP() uint32 { return b.psp }

// SetPSP writes the Process stack pointer regardless of which is active.
func (b *Bank) SetPSP(v uint32) { b.psp = v }

// StackBank returns which stack pointer is currently selected.
func (b *Bank) StackBank() StackPointerBank {
	return b.sp
}

// SetStackBank selects which stack pointer R13 refers to, mirroring
// CONTROL.SPSEL. In Handler mode the processor always uses MSP regardless
// of this setting; callers are expected to enforce that at the call site
// (the NVIC does, during exception entry/exit).
func (b *Bank) SetStackBank(sel StackPointerBank) {
	b.sp = sel
}

// LR reads the link register.
func (b *Bank) LR() uint32 { return b.lr }

// SetLR writes the link register.
func (b *Bank) SetLR(v uint32) { b.lr = v }

// PC reads the program counter.
func (b *Bank) PC() uint32 { return b.pc }

// SetPC writes the program counter.
func (b *Bank) SetPC(v uint32) { b.pc = v }

// XPSR returns the current program status.
func (b *Bank) XPSR() XPSR { return b.xpsr }

// SetXPSR replaces the current program status wholesale.
func (b *Bank) SetXPSR(x XPSR) { b.xpsr = x }

// CONTROL reads the CONTROL register (bit 0 nPRIV, bit 1 SPSEL).
func (b *Bank) CONTROL() uint8 { return b.control }

// SetCONTROL writes the CONTROL register.
func (b *Bank) SetCONTROL(v uint8) { b.control = v }

// PRIMASK reads PRIMASK.
func (b *Bank) PRIMASK() bool { return b.primask }

// SetPRIMASK writes PRIMASK.
func (b *Bank) SetPRIMASK(v bool) { b.primask = v }

// FAULTMASK reads FAULTMASK.
func (b *Bank) FAULTMASK() bool { return b.faultmask }

// SetFAULTMASK writes FAULTMASK.
func (b *Bank) SetFAULTMASK(v bool) { b.faultmask = v }

// BASEPRI reads BASEPRI.
func (b *Bank) BASEPRI() uint8 { return b.basepri }

// SetBASEPRI writes BASEPRI.
func (b *Bank) SetBASEPRI(v uint8) { b.basepri = v }
