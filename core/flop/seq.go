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

// touch records what, if anything, happened to a flop this cycle.
type touch int

const (
	untouched touch = iota
	written
	kept
	ignored
)

// SeqFlop holds a value across the tick/tock boundary: Read returns the
// value committed at the last tock; Write stages a value for the next
// tock. Exactly one of Write, Keep or Ignore must be called per cycle.
type SeqFlop[T any] struct {
	current T
	next    T
	touch   touch
}

// NewSeqFlop returns a SeqFlop initialised to initial, already marked as kept
// so the first cycle doesn't need a synthetic Keep call.
func NewSeqFlop[T any](initial T) *SeqFlop[T] {
	return &SeqFlop[T]{current: initial, next: initial, touch: kept}
}

// Read returns the value committed as of the last tock.
func (f *SeqFlop[T]) Read() T {
	return f.current
}

// Write stages v to become the value Read() will return after the next
// Commit.
func (f *SeqFlop[T]) Write(v T) {
	f.next = v
	f.touch = written
}

// Keep explicitly declares that this flop holds its value for another
// cycle. Distinguishing Keep from Write lets invariant checking catch a
// flop nobody thought about.
func (f *SeqFlop[T]) Keep() {
	f.next = f.current
	f.touch = kept
}

// Ignore explicitly declares that this flop's value doesn't matter this
// cycle (commonly: a flop that's only meaningful while some other flop is
// in a particular state).
func (f *SeqFlop[T]) Ignore() {
	f.touch = ignored
}

// Commit moves the staged value into current and resets the touch marker.
// Returns an InternalError if the flop was never touched this cycle.
func (f *SeqFlop[T]) Commit() error {
	if f.touch == untouched {
		return simerr.InternalErrorf("flop discipline violated: flop committed without Write/Keep/Ignore")
	}
	f.current = f.next
	f.touch = untouched
	return nil
}
