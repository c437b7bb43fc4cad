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

// Package clocktree implements the discrete-event clock tree (§4.6):
// Oscillator/Gate/Divider/Switch nodes, each carrying a power mode, and
// the fast-forward machinery used to skip cycles when the visible system
// is idle.
package clocktree

import "github.com/m3sim/cc2650emu/simerr"

// PowerMode is one of the four node power states, ordered per §4.6:
// Active < ClockGated < Retention < Off.
type PowerMode int

// List of valid PowerMode values, in ascending order.
const (
	Active PowerMode = iota
	ClockGated
	Retention
	Off
)

// Max returns the more constraining (numerically larger) of two modes,
// matching §4.6's "effective mode is max(input_mode, own_constraint)".
func Max(a, b PowerMode) PowerMode {
	if a > b {
		return a
	}
	return b
}

// Node is implemented by every clock-tree component.
type Node interface {
	// Tick propagates a tick edge from the parent (ignored by the root
	// Oscillator) and returns whether this node emits its own
	// tick to its children this cycle.
	Tick(parentTick bool) bool
	// Tock propagates the matching tock edge.
	Tock(parentTock bool) bool
	// EffectiveMode returns max(input_mode, own constraint).
	EffectiveMode(inputMode PowerMode) PowerMode
	// MaxCyclesToSkip computes, bottom-up, how many cycles this node
	// (and everything below it) could fast-forward through right now.
	MaxCyclesToSkip() uint64
	// EmulateSkippedCycles advances internal counters by n cycles
	// without generating per-cycle ticks.
	EmulateSkippedCycles(n uint64)
}

// Oscillator is the tree root: it ticks and tocks every cycle unless its
// own power mode is Off.
type Oscillator struct {
	Mode PowerMode
}

func (o *Oscillator) Tick(_ bool) bool { return o.Mode != Off }
func (o *Oscillator) Tock(_ bool) bool { return o.Mode != Off }
func (o *Oscillator) EffectiveMode(inputMode PowerMode) PowerMode {
	return Max(inputMode, o.Mode)
}
func (o *Oscillator) MaxCyclesToSkip() uint64 {
	if o.Mode == Off {
		return ^uint64(0)
	}
	return 0
}
func (o *Oscillator) EmulateSkippedCycles(uint64) {}

// Gate passes ticks/tocks through only while RelaysTicks is true.
// Pending changes to RelaysTicks apply only when the gate is aligned
// (i.e. not mid tick/tock pair), matching the Divider's alignment rule.
type Gate struct {
	RelaysTicks bool
	pending     *bool
	aligned     bool
	Mode        PowerMode
}

// NewGate returns a Gate that initially relays ticks.
func NewGate() *Gate {
	return &Gate{RelaysTicks: true, aligned: true}
}

// SetRelaysTicks requests a change, applied at the next aligned boundary.
func (g *Gate) SetRelaysTicks(v bool) {
	g.pending = &v
}

func (g *Gate) Tick(parentTick bool) bool {
	if g.aligned && g.pending != nil {
		g.RelaysTicks = *g.pending
		g.pending = nil
	}
	g.aligned = false
	return parentTick && g.RelaysTicks
}

func (g *Gate) Tock(parentTock bool) bool {
	g.aligned = true
	return parentTock && g.RelaysTicks
}

func (g *Gate) EffectiveMode(inputMode PowerMode) PowerMode {
	return Max(inputMode, g.Mode)
}
func (g *Gate) MaxCyclesToSkip() uint64 {
	if !g.RelaysTicks {
		return ^uint64(0)
	}
	return 0
}
func (g *Gate) EmulateSkippedCycles(uint64) {}

// Divider emits tick on the first cycle of every N, tock likewise, then
// N-1 idle cycles before re-ticking, preserving #ticks == #tocks at every
// boundary (§4.6, §8.1).
type Divider struct {
	Ratio   uint32
	phase   uint32
	pending *uint32
	Mode    PowerMode
}

// NewDivider returns a Divider with the given ratio (minimum 1).
func NewDivider(ratio uint32) *Divider {
	if ratio == 0 {
		ratio = 1
	}
	return &Divider{Ratio: ratio}
}

// Reconfigure sets a new ratio immediately when the divider is aligned
// (phase 0) and returns an InternalError otherwise, per §4.6.
func (d *Divider) Reconfigure(ratio uint32) error {
	if ratio == 0 {
		return simerr.InvalidInputf("divider ratio must be non-zero")
	}
	if d.phase != 0 {
		return simerr.InternalErrorf("divider reconfigured while unaligned at phase %d", d.phase)
	}
	d.Ratio = ratio
	return nil
}

func (d *Divider) Tick(parentTick bool) bool {
	if !parentTick {
		return false
	}
	emit := d.phase == 0
	return emit
}

func (d *Divider) Tock(parentTock bool) bool {
	if !parentTock {
		return false
	}
	emit := d.phase == 0
	d.phase = (d.phase + 1) % d.Ratio
	return emit
}

func (d *Divider) EffectiveMode(inputMode PowerMode) PowerMode {
	return Max(inputMode, d.Mode)
}
func (d *Divider) MaxCyclesToSkip() uint64 {
	return 0
}
func (d *Divider) EmulateSkippedCycles(n uint64) {
	d.phase = uint32((uint64(d.phase) + n) % uint64(d.Ratio))
}

// Switch selects one of several named parent clocks; switching inserts a
// phantom tock to re-align the new parent before ticks resume (§4.6).
type Switch struct {
	Parents  []string
	Selected string
	Mode     PowerMode
	phantom  bool
}

// NewSwitch returns a Switch defaulting to the first parent.
func NewSwitch(parents ...string) *Switch {
	s := &Switch{Parents: parents}
	if len(parents) > 0 {
		s.Selected = parents[0]
	}
	return s
}

// Select changes the active parent, scheduling a phantom tock.
func (s *Switch) Select(name string) error {
	found := false
	for _, p := range s.Parents {
		if p == name {
			found = true
			break
		}
	}
	if !found {
		return simerr.InvalidInputf("unknown clock parent: %q", name)
	}
	if name != s.Selected {
		s.Selected = name
		s.phantom = true
	}
	return nil
}

func (s *Switch) Tick(parentTick bool) bool {
	return parentTick
}

func (s *Switch) Tock(parentTock bool) bool {
	if s.phantom {
		s.phantom = false
		return true
	}
	return parentTock
}

func (s *Switch) EffectiveMode(inputMode PowerMode) PowerMode {
	return Max(inputMode, s.Mode)
}
func (s *Switch) MaxCyclesToSkip() uint64 { return 0 }
func (s *Switch) EmulateSkippedCycles(uint64) {}
