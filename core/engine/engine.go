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

// Package engine ties the clock tree, pipeline, PIQ, bus, NVIC and cache
// together into the single-threaded, deterministic step loop described
// in §5: a two-phase tick/tock cycle over the clock-tree nodes and
// transparent cycle-skipping when every skippable node is idle. The
// per-component phase order is not checked here.
package engine

import (
	"github.com/m3sim/cc2650emu/cdl"
	"github.com/m3sim/cc2650emu/core/clocktree"
	"github.com/m3sim/cc2650emu/core/cpuregs"
	"github.com/m3sim/cc2650emu/core/fetch"
	"github.com/m3sim/cc2650emu/core/nvic"
	"github.com/m3sim/cc2650emu/core/piq"
	"github.com/m3sim/cc2650emu/core/vims"
	"github.com/m3sim/cc2650emu/environment"
	"github.com/m3sim/cc2650emu/simerr"
)

// Engine owns one of each major subsystem (§3.9: every entity has
// exactly one owner) and drives them through the two-phase cycle.
type Engine struct {
	Cycles uint64

	Registers cpuregs.Bank
	PIQ       *piq.PIQ
	Fetch     *fetch.Unit
	NVIC      *nvic.NVIC
	Cache     *vims.Cache
	Clock     []clocktree.Node

	// Env is the shared context object (§3.10); it may be nil, in which
	// case StepCycle skips CDL capture rather than requiring every
	// caller to construct one.
	Env *environment.Environment

	// CurrentInstructionAddr is updated by the driving harness each
	// cycle and is what RunUntil compares against its stop address.
	CurrentInstructionAddr uint32

	asleep bool
}

// New returns an Engine with freshly-constructed subsystems, not bound
// to any environment.
func New() *Engine {
	return &Engine{
		PIQ:   piq.New(),
		Fetch: fetch.New(),
		NVIC:  nvic.New(),
		Cache: vims.New(),
	}
}

// NewWithEnvironment is like New but binds env, so StepCycle captures a
// cdl.Record every cycle into env.CDL.
func NewWithEnvironment(env *environment.Environment) *Engine {
	e := New()
	e.Env = env
	return e
}

// StepCycle advances the system by exactly one cycle: it calls Tick and
// then Tock on every node of Clock, checks PIQ conservation, increments
// Cycles and, when Env has a CDL, appends a cdl.Record. It returns an
// error only if PIQ conservation is violated; it does not commit
// component flops and does not check flop discipline or phase order.
func (e *Engine) StepCycle() error {
	ticks := make([]bool, len(e.Clock))
	for i, node := range e.Clock {
		ticks[i] = node.Tick(true)
	}
	for i, node := range e.Clock {
		_ = node.Tock(ticks[i])
	}

	if err := e.PIQ.CheckConservation(false); err != nil {
		return err
	}

	e.Cycles++

	if e.Env != nil && e.Env.CDL != nil {
		occupancy := e.PIQ.QueueLen() + 2*e.PIQ.InFlight()
		if e.PIQ.HeadOccupied() {
			occupancy += 2
		}
		e.Env.CDL.Append(cdl.Record{
			Cycle:        e.Cycles,
			Phase:        "tock",
			PIQOccupancy: occupancy,
			CacheHitRate: e.Cache.HitRate(),
			NVICActive:   e.NVIC.ActiveCount(),
		})
	}

	return nil
}

// MaxCyclesToSkip returns the minimum skip budget across every
// skippable clock-tree node (§4.6's bottom-up fast-forward rule), or 0
// if anything is actively ticking.
func (e *Engine) MaxCyclesToSkip() uint64 {
	if len(e.Clock) == 0 {
		return 0
	}
	min := ^uint64(0)
	for _, node := range e.Clock {
		if n := node.MaxCyclesToSkip(); n < min {
			min = n
		}
	}
	return min
}

// SkipCycles fast-forwards n cycles without generating per-cycle ticks,
// updating every node's counters and the engine's own cycle count.
// Per §5, this must be observably identical to having run those cycles
// individually.
func (e *Engine) SkipCycles(n uint64) {
	for _, node := range e.Clock {
		node.EmulateSkippedCycles(n)
	}
	e.Cycles += n
}

// RunUntil steps the engine until CurrentInstructionAddr equals stopAddr
// or cyclesTimeout cycles have elapsed, opportunistically fast-forwarding
// via SkipCycles whenever the whole clock tree reports a non-zero skip
// budget (§5's cycle-skipping rule). advance is called once per
// non-skipped cycle to let the harness move CurrentInstructionAddr and
// the rest of the pipeline forward; it returns true once the stop
// condition is reached.
func (e *Engine) RunUntil(stopAddr uint32, cyclesTimeout uint64, advance func() (done bool, err error)) error {
	for e.Cycles < cyclesTimeout {
		if skip := e.MaxCyclesToSkip(); skip > 0 {
			remaining := cyclesTimeout - e.Cycles
			if skip > remaining {
				skip = remaining
			}
			e.SkipCycles(skip)
			continue
		}

		if err := e.StepCycle(); err != nil {
			return err
		}

		done, err := advance()
		if err != nil {
			return err
		}
		if done && e.CurrentInstructionAddr == stopAddr {
			return nil
		}
	}
	return simerr.TimedOutf("did not reach %08x within %d cycles (%d executed)", stopAddr, cyclesTimeout, e.Cycles)
}

// Sleep transitions the engine into WFI sleep; StepCycle continues to
// run (clocks may still tick for peripherals) but the pipeline itself is
// quiesced by the caller.
func (e *Engine) Sleep() {
	e.asleep = true
}

// Asleep reports whether the engine is currently in a WFI sleep.
func (e *Engine) Asleep() bool {
	return e.asleep
}

// WakeUp ends a WFI sleep by clearing the sleep flag. takeException is
// not used: a spurious wakeup and one that takes an exception are handled
// the same way here.
func (e *Engine) WakeUp(takeException bool) {
	e.asleep = false
}
