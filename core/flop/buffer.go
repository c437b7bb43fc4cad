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

// BufferFlop is a queue-like flop used for messages passed between
// components on the same clock edge: Post during tick, Drain during tock.
// Unlike SeqFlop/CombFlop it carries no per-cycle discipline requirement
// of its own — an empty post queue is a perfectly normal cycle — but
// Commit still exists so BufferFlop composes with the same tick/tock
// calling convention as the other two.
type BufferFlop[T any] struct {
	pending []T
	ready   []T
}

// NewBufferFlop returns an empty BufferFlop.
func NewBufferFlop[T any]() *BufferFlop[T] {
	return &BufferFlop[T]{}
}

// Post queues a message to be visible to readers after the next Commit.
func (f *BufferFlop[T]) Post(v T) {
	f.pending = append(f.pending, v)
}

// Ready returns the messages posted in the previous cycle (i.e. since the
// last Commit).
func (f *BufferFlop[T]) Ready() []T {
	return f.ready
}

// Commit moves pending messages into Ready() and clears the pending queue.
func (f *BufferFlop[T]) Commit() error {
	f.ready = f.pending
	f.pending = nil
	return nil
}
