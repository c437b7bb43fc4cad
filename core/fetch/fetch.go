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

// Package fetch drives the instruction bus to keep the Prefetch Input
// Queue full, services vector-table fetches on exception entry, and
// mediates branches (normal, delayed, speculative, decode-time), per
// §4.1. Each cycle runs a fixed phase order — TickExtra,
// HandleRequestedData, TickPiq, RunFetch, Tock — enforced by
// Unit.AdvancePhase.
package fetch

import "github.com/m3sim/cc2650emu/simerr"

// Phase names the five sub-steps of one Fetch cycle, in their mandatory
// order.
type Phase int

// List of valid Phase values, in required order.
const (
	TickExtra Phase = iota
	HandleRequestedData
	TickPiq
	RunFetch
	Tock
)

func (p Phase) next() Phase {
	return (p + 1) % (Tock + 1)
}

// State is the Fetch unit's top-level state machine (§4.1).
type State int

// List of valid State values.
const (
	Initial State = iota
	Idle
	RequestVectorTable
	RequestInstruction
	RequestInstructionSpeculatively
	DelayedBranch
)

// Signal is a buffered cross-cycle event; only the highest-priority
// signal present is handled per cycle, per §4.1's buffered-signals list.
type Signal int

// List of valid Signal values. SignalNone means no signal; the rest are
// in decreasing priority (SignalVectorCall highest).
const (
	SignalNone Signal = iota
	SignalVectorCall
	SignalBranch
	SignalNewSpeculativeBranch
	SignalSpeculationResolved
	SignalFetchDisable
)

var signalPriority = map[Signal]int{
	SignalVectorCall:           0,
	SignalBranch:               1,
	SignalNewSpeculativeBranch: 2,
	SignalSpeculationResolved:  3,
	SignalFetchDisable:         4,
}

// Speculation carries the bookkeeping for an in-flight speculative fetch
// (§4.1's RequestInstructionSpeculatively state).
type Speculation struct {
	Addr          uint32
	IfConfirm     uint32
	IfCancel      uint32
	HadAddrPhase  bool
	IsBranch      bool
}

// Unit is the Fetch state machine.
type Unit struct {
	phase Phase
	state State

	pendingAddr uint32
	vectorCB    func(addr uint32)

	speculation *Speculation

	signals      []Signal
	delayedAddr  uint32

	// multicycleActive, branchInProgress and decodeStall are set by
	// Decode/Execute each cycle to gate should_speculate.
	multicycleActive bool
	branchInProgress bool
	decodeStall      bool

	piqHoldWouldFit       func() bool
	piqSpeculativeWouldFit func() bool
}

// New returns a Fetch unit in its Initial state.
func New() *Unit {
	return &Unit{state: Initial}
}

// Phase returns the current cycle phase.
func (u *Unit) Phase() Phase {
	return u.phase
}

// State returns the current top-level state.
func (u *Unit) State() State {
	return u.state
}

// AdvancePhase moves to the next phase in the mandatory order, failing
// the simulation if called out of sequence (§4.1, §5).
func (u *Unit) AdvancePhase(expect Phase) error {
	if u.phase != expect {
		return simerr.InternalErrorf("fetch phase out of order: at %v, expected %v", u.phase, expect)
	}
	u.phase = u.phase.next()
	return nil
}

// PostSignal buffers a cross-cycle event for the next RunFetch.
func (u *Unit) PostSignal(s Signal) {
	u.signals = append(u.signals, s)
}

// HighestSignal returns the highest-priority buffered signal, per §4.1's
// priority list (vector-call > branch > new-speculative-branch >
// speculation-resolved > fetch-disable). Only one signal is handled per
// cycle; ClearSignals discards the rest at cycle end.
func (u *Unit) HighestSignal() (Signal, bool) {
	if len(u.signals) == 0 {
		return SignalNone, false
	}
	best := u.signals[0]
	for _, s := range u.signals[1:] {
		if signalPriority[s] < signalPriority[best] {
			best = s
		}
	}
	return best, true
}

// ClearSignals discards all buffered signals at cycle end, per §4.1.
func (u *Unit) ClearSignals() {
	u.signals = nil
}

// SetGating records this cycle's gating conditions for ShouldSpeculate.
func (u *Unit) SetGating(multicycleActive, branchInProgress, decodeStall bool) {
	u.multicycleActive = multicycleActive
	u.branchInProgress = branchInProgress
	u.decodeStall = decodeStall
}

// ShouldSpeculate implements §4.1's should_speculate decision: permitted
// only when no multicycle instruction is executing, no branch is in
// progress, no decode stall is active, the speculated shift fits in the
// PIQ, and a hold-branch shift would not fit (i.e. capacity to speculate
// but not to hold).
func (u *Unit) ShouldSpeculate(speculativeShiftFits, holdBranchShiftFits bool) bool {
	if u.multicycleActive || u.branchInProgress || u.decodeStall {
		return false
	}
	return speculativeShiftFits && !holdBranchShiftFits
}

// BeginInitial issues the stack-pointer-initial-value read and moves to
// RequestVectorTable once that completes, per §4.1's Initial state.
func (u *Unit) BeginInitial(resetAddr uint32) {
	u.state = Initial
	u.pendingAddr = resetAddr
}

// CompleteInitial is called once the SP-initial-value read returns; it
// schedules the vector-table read (or, if entryOverride is non-nil,
// jumps there directly).
func (u *Unit) CompleteInitial(spValue uint32, vectorAddr uint32, entryOverride *uint32, cb func(addr uint32)) {
	if entryOverride != nil {
		u.state = RequestInstruction
		u.pendingAddr = *entryOverride
		return
	}
	u.state = RequestVectorTable
	u.pendingAddr = vectorAddr
	u.vectorCB = cb
}

// CompleteVectorTable invokes the stored callback then branches to addr,
// per §4.1's RequestVectorTable{addr, callback} state.
func (u *Unit) CompleteVectorTable(addr uint32) {
	if u.vectorCB != nil {
		u.vectorCB(addr)
		u.vectorCB = nil
	}
	u.state = RequestInstruction
	u.pendingAddr = addr
}

// RequestNormal moves to RequestInstruction{addr}.
func (u *Unit) RequestNormal(addr uint32) {
	u.state = RequestInstruction
	u.pendingAddr = addr
}

// BeginSpeculative moves to RequestInstructionSpeculatively, prefetching
// past a not-yet-resolved branch or condition.
func (u *Unit) BeginSpeculative(s Speculation) {
	u.state = RequestInstructionSpeculatively
	u.speculation = &s
}

// ResolveSpeculation confirms or cancels an in-flight speculation. On
// confirmation, fetch continues normally from IfConfirm. On
// cancellation, the data phase is dropped from the train PIQ; if the
// transfer had already entered its address phase, the caller must still
// let the bus complete it and divert the result to the shadow PIQ
// (§4.1's cancellation policy) rather than discarding it outright.
func (u *Unit) ResolveSpeculation(confirm bool) (ignoreDataPhase bool) {
	if u.speculation == nil {
		return false
	}
	s := u.speculation
	u.speculation = nil

	if confirm {
		u.state = RequestInstruction
		u.pendingAddr = s.IfConfirm
		return false
	}

	u.state = RequestInstruction
	u.pendingAddr = s.IfCancel
	return s.HadAddrPhase
}

// BeginDelayedBranch latches a branch target one cycle late, used after
// LSU-driven PC writes (§4.1's DelayedBranch state).
func (u *Unit) BeginDelayedBranch(addr uint32) {
	u.state = DelayedBranch
	u.delayedAddr = addr
}

// CompleteDelayedBranch fires the latched branch.
func (u *Unit) CompleteDelayedBranch() uint32 {
	addr := u.delayedAddr
	u.state = RequestInstruction
	u.pendingAddr = addr
	return addr
}

// GoIdle moves to the Idle state (no active request).
func (u *Unit) GoIdle() {
	u.state = Idle
}

// PendingAddr returns the address associated with the current request
// state, if any.
func (u *Unit) PendingAddr() uint32 {
	return u.pendingAddr
}
