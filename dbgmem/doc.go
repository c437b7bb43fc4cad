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

// Package dbgmem sits between the test runner (and any other debug client)
// and the emulated address space. It is more convenient to address memory
// through this package than through the AHB-Lite bus directly: addresses
// can be given numerically or by symbol, and access bypasses bus timing
// entirely, since post-run verification has no business driving the clock
// tree.
//
// The key type is Inspector, which pairs a Bus (anything that can Peek and
// Poke a 32-bit address without side effects on the cycle-accurate core)
// with a symbols.Table. Peek and Poke both return an AddressInfo describing
// everything known about the address touched, and accept either a uint32 or
// a string (symbol name, or a numeric string understood by strconv).
package dbgmem
