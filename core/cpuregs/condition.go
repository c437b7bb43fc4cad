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

package cpuregs

// Condition evaluates one of the 16 ARM condition codes against the
// current APSR flags, per "A7.3 Conditional execution" in the ARMv7-M
// architecture reference.
func (x XPSR) Condition(cond uint8) bool {
	switch cond {
	case 0b0000: // EQ
		return x.Zero
	case 0b0001: // NE
		return !x.Zero
	case 0b0010: // CS
		return x.Carry
	case 0b0011: // CC
		return !x.Carry
	case 0b0100: // MI
		return x.Negative
	case 0b0101: // PL
		return !x.Negative
	case 0b0110: // VS
		return x.Overflow
	case 0b0111: // VC
		return !x.Overflow
	case 0b1000: // HI
		return x.Carry && !x.Zero
	case 0b1001: // LS
		return !x.Carry || x.Zero
	case 0b1010: // GE
		return x.Negative == x.Overflow
	case 0b1011: // LT
		return x.Negative != x.Overflow
	case 0b1100: // GT
		return !x.Zero && x.Negative == x.Overflow
	case 0b1101: // LE
		return x.Zero || x.Negative != x.Overflow
	case 0b1110: // AL
		return true
	default: // 0b1111 is UNPREDICTABLE as a condition for IT
		return false
	}
}
