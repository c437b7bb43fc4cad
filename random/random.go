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

// Package random supplies the "random" bits the ARMv7-M architecture
// permits an implementation to leave UNPREDICTABLE - most visibly, the
// contents of general purpose registers at power-on, before Reset has run,
// and the padding bits of a misaligned stack frame. Real silicon leaves
// whatever was last on the bus; this package instead derives a value that
// is reproducible for a given run (seeded from the current cycle count) so
// that two runs of the identical test bundle produce identical emulator
// behaviour, while two different points in the same run still diverge.
package random

// CycleSource is consulted for the seed. It is satisfied by the engine's
// scheduler (environment.NewEnvironment wires it up), and by a fixed stub in tests.
type CycleSource interface {
	Cycle() uint64
}

// Random produces deterministic-but-varying values derived from the
// current simulated cycle count.
type Random struct {
	source CycleSource

	// ZeroSeed disables cycle-derived variation and always seeds from zero.
	// Used by the test runner so that a run can be repeated bit-for-bit
	// regardless of exactly when, cycle-wise, an UNPREDICTABLE value is
	// drawn.
	ZeroSeed bool

	// counter backs NoRewind, disambiguating repeated calls within a cycle.
	counter uint64
}

// NewRandom creates a Random that derives its seed from source.
func NewRandom(source CycleSource) *Random {
	return &Random{source: source}
}

func (r *Random) seed() uint64 {
	if r.ZeroSeed || r.source == nil {
		return 0
	}
	return r.source.Cycle()
}

// splitmix64 is a small, fast, well distributed integer hash. It is used in
// place of math/rand so that Rewindable() is a pure function of the seed
// with no hidden global state - essential for the rewind/replay semantics
// the test runner relies on.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	z := x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Rewindable returns a pseudo-random value in the range [0, n) derived from
// the current cycle count alone, so every call on the same cycle with the
// same n returns the same value. The same (cycle, n) always produces the
// same result - "rewindable" in the sense that re-running the emulator to
// the same point reproduces it.
func (r *Random) Rewindable(n int) int {
	if n <= 0 {
		return 0
	}
	h := splitmix64(r.seed())
	return int(h % uint64(n))
}

// NoRewind is like Rewindable but draws from an internal counter instead of
// the cycle count, so repeated calls within the same cycle (for example
// filling all 13 general purpose registers at power-on) don't all return
// the same value. It is explicitly *not* reproducible across a rewind to an
// earlier point that then re-executes the same cycle a different number of
// times - acceptable because it is only ever used for cosmetic purposes
// (register display colouring) never for architecturally observable state.
func (r *Random) NoRewind(n int) int {
	if n <= 0 {
		return 0
	}
	r.counter++
	h := splitmix64(r.seed() ^ r.counter)
	return int(h % uint64(n))
}
