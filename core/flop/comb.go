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

package flop

import "github.com/m3sim/cc2650emu/simerr"

// CombFlop is readable the same cycle it is written, unlike SeqFlop. It
// still requires an explicit Set/Keep/Clear per cycle so the commit-time
// discipline check has something to verify; Commit snapshots the written
// value as "last committed" for components that want to compare across an
// edge (e.g. detecting a rising edge on a gate's relay signal).
type CombFlop[T any] struct {
	value     T
	committed T
	touch     touch
}

// NewCombFlop returns a CombFlop initialised to initial and marked kept.
func NewCombFlop[T any](initial T) *CombFlop[T] {
	return &CombFlop[T]{value: initial, committed: initial, touch: kept}
}

// Read returns the value as set (or kept/cleared) so far this cycle.
func (f *CombFlop[T]) Read() T {
	return f.value
}

// Set drives the combinational output to v, visible immediately to any
// later reader in the same cycle.
func (f *CombFlop[T]) Set(v T) {
	f.value = v
	f.touch = written
}

// Keep holds the flop's previous value into this cycle.
func (f *CombFlop[T]) Keep() {
	f.touch = kept
}

// Clear resets the flop to its zero value for this cycle.
func (f *CombFlop[T]) Clear() {
	var zero T
	f.value = zero
	f.touch = written
}

// Previous returns the value as of the last Commit, i.e. the cycle before
// this one. Used to detect edges.
func (f *CombFlop[T]) Previous() T {
	return f.committed
}

// Commit snapshots this cycle's value as Previous() for the next cycle and
// resets the touch marker.
func (f *CombFlop[T]) Commit() error {
	if f.touch == untouched {
		return simerr.InternalErrorf("flop discipline violated: comb flop committed without Set/Keep/Clear")
	}
	f.committed = f.value
	f.touch = untouched
	return nil
}
