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

// Package flop implements the three edge-triggered state primitives every
// cycle-accurate component is built from: SeqFlop (exactly one write per
// cycle, reads return the value committed at the last tock), CombFlop
// (combinational, readable the same cycle it's written) and BufferFlop (a
// message queue, drained on commit).
//
// SeqFlop tracks whether this cycle's value has been written, kept or
// ignored, and CombFlop whether it has been set, kept or cleared. Such a
// flop left untouched at commit time means the component has an undriven
// piece of state, and Commit returns an internal error (spec.md §8.1,
// "flop discipline"). BufferFlop does not track this.
package flop
