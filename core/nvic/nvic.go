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

// Package nvic implements the Nested Vectored Interrupt Controller
// (§3.7, §4.4): exception priority arbitration, the per-exception state
// machine, entry/exit frame stacking and tail-chaining.
package nvic

import "github.com/m3sim/cc2650emu/simerr"

// Fixed exception numbers and priorities, per the ARMv7-M architecture.
const (
	ExceptionReset     = 1
	ExceptionNMI       = 2
	ExceptionHardFault = 3

	NumExceptions = 50 // 16 system exceptions + 34 interrupts

	PriorityReset     = -3
	PriorityNMI       = -2
	PriorityHardFault = -1
	ThreadPriority    = 256
)

// State is the per-exception lifecycle, per §4.4.
type State int

// List of valid State values.
const (
	None State = iota
	InterruptFoundToHandle
	Entry
	Handling
	TailChained
	Exit
)

// Exception tracks one exception/interrupt's liveness.
type Exception struct {
	Number   int
	Priority int8 // fixed priorities are negative; configurable ones hold the top 3 bits (0-7)
	Enabled  bool
	Pending  bool
	Active   bool
	State    State
}

// Frame is the 8-word exception entry/exit stack frame, pushed/popped in
// the documented order (§4.4 step 2): R0, R1, R2, R3, R12, LR, ReturnAddr,
// xPSR.
type Frame struct {
	R0, R1, R2, R3, R12 uint32
	LR                  uint32
	ReturnAddr          uint32
	XPSR                uint32
}

// NVIC holds the full exception table and the System Control Block
// registers named in §3.7.
type NVIC struct {
	exceptions [NumExceptions]Exception

	PRIMASK   bool
	FAULTMASK bool
	BASEPRI   uint8
	PRIGROUP  uint8

	VTOR  uint32
	AIRCR uint32
	SCR   uint32
	CCR   uint32

	activeStack []int // exception numbers currently nested, innermost last
}

// New returns an NVIC with every exception inactive and every exception
// other than Reset and HardFault disabled.
func New() *NVIC {
	n := &NVIC{}
	for i := range n.exceptions {
		n.exceptions[i].Number = i
	}
	n.exceptions[ExceptionReset].Priority = PriorityReset
	n.exceptions[ExceptionReset].Enabled = true
	n.exceptions[ExceptionNMI].Priority = PriorityNMI
	n.exceptions[ExceptionHardFault].Priority = PriorityHardFault
	n.exceptions[ExceptionHardFault].Enabled = true
	return n
}

// Exception returns a copy of the given exception's bookkeeping.
func (n *NVIC) Exception(number int) (Exception, error) {
	if number < 0 || number >= NumExceptions {
		return Exception{}, simerr.InvalidInputf("exception number out of range: %d", number)
	}
	return n.exceptions[number], nil
}

// SetPriority configures an interrupt's 8-bit priority (§3.7: only the
// top 3 bits are significant on this implementation).
func (n *NVIC) SetPriority(number int, priority uint8) error {
	if number < 0 || number >= NumExceptions {
		return simerr.InvalidInputf("exception number out of range: %d", number)
	}
	n.exceptions[number].Priority = int8(priority >> 5)
	return nil
}

// SetEnabled enables or disables an interrupt.
func (n *NVIC) SetEnabled(number int, enabled bool) error {
	if number < 0 || number >= NumExceptions {
		return simerr.InvalidInputf("exception number out of range: %d", number)
	}
	n.exceptions[number].Enabled = enabled
	return nil
}

// SetPending marks an interrupt pending (or clears pending).
func (n *NVIC) SetPending(number int, pending bool) error {
	if number < 0 || number >= NumExceptions {
		return simerr.InvalidInputf("exception number out of range: %d", number)
	}
	n.exceptions[number].Pending = pending
	return nil
}

// ExecutionPriority computes the current execution priority per §4.4:
// the minimum (i.e. highest-urgency) over active exception priorities,
// the boosted priority from PRIMASK/FAULTMASK/BASEPRI, and the base
// thread-mode priority.
func (n *NVIC) ExecutionPriority() int {
	priority := ThreadPriority

	for _, num := range n.activeStack {
		if p := int(n.exceptions[num].Priority); p < priority {
			priority = p
		}
	}

	if n.FAULTMASK {
		priority = min(priority, PriorityHardFault-1)
	}
	if n.PRIMASK {
		priority = min(priority, 0)
	}
	if n.BASEPRI != 0 {
		priority = min(priority, int(n.BASEPRI>>5))
	}

	return priority
}

// ActiveCount returns how many exceptions are currently nested (entered
// but not yet exited), for diagnostic reporting.
func (n *NVIC) ActiveCount() int {
	return len(n.activeStack)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// HighestPendingEligible returns the enabled, pending exception with the
// numerically lowest (highest-urgency) priority that is strictly more
// urgent than the current execution priority, per the NVIC priority
// invariant (§8.1). ok is false when nothing qualifies.
func (n *NVIC) HighestPendingEligible() (Exception, bool) {
	execPriority := n.ExecutionPriority()

	best := -1
	for i := range n.exceptions {
		e := &n.exceptions[i]
		if !e.Enabled || !e.Pending || e.Active {
			continue
		}
		if int(e.Priority) >= execPriority {
			continue
		}
		if best == -1 || e.Priority < n.exceptions[best].Priority {
			best = i
		}
	}
	if best == -1 {
		return Exception{}, false
	}
	return n.exceptions[best], true
}

// BuildFrame assembles the 8-word exception stack frame (§4.4 step 2).
// If sp is not 8-byte aligned the caller is expected to align it and set
// bit 9 of the returned frame's XPSR before pushing.
func BuildFrame(r0, r1, r2, r3, r12, lr, returnAddr, xpsr uint32) Frame {
	return Frame{R0: r0, R1: r1, R2: r2, R3: r3, R12: r12, LR: lr, ReturnAddr: returnAddr, XPSR: xpsr}
}

// VectorAddress computes the vector-table entry address for an exception
// number: VTOR + 4*exception_number (§4.4 step 3).
func (n *NVIC) VectorAddress(number int) uint32 {
	return n.VTOR + 4*uint32(number)
}

// BeginEntry transitions an exception from InterruptFoundToHandle (or
// None) to Entry, pushing it onto the active stack, per the state machine in
// §4.4.
func (n *NVIC) BeginEntry(number int) error {
	if number < 0 || number >= NumExceptions {
		return simerr.InvalidInputf("exception number out of range: %d", number)
	}
	e := &n.exceptions[number]
	if e.State != InterruptFoundToHandle && e.State != None {
		return simerr.InternalErrorf("exception %d: BeginEntry from state %v", number, e.State)
	}
	e.State = Entry
	e.Active = true
	e.Pending = false
	n.activeStack = append(n.activeStack, number)
	return nil
}

// FinishedEntry transitions Entry to Handling once both the frame push
// and the vector-table fetch have completed (§4.4 step 4).
func (n *NVIC) FinishedEntry(number int) error {
	e, err := n.mustException(number)
	if err != nil {
		return err
	}
	if e.State != Entry {
		return simerr.InternalErrorf("exception %d: FinishedEntry from state %v", number, e.State)
	}
	e.State = Handling
	return nil
}

// StartedExit transitions Handling to Exit.
func (n *NVIC) StartedExit(number int) error {
	e, err := n.mustException(number)
	if err != nil {
		return err
	}
	if e.State != Handling {
		return simerr.InternalErrorf("exception %d: StartedExit from state %v", number, e.State)
	}
	e.State = Exit
	return nil
}

// CompleteExit finishes unstacking: if a pending interrupt outranks the
// priority this exception is returning to, it tail-chains directly into
// Entry instead of falling back to None/thread context (§4.4 exit step
// 4). In both cases the exception is popped off the active stack; it is
// left in TailChained when chaining and returns to None otherwise.
func (n *NVIC) CompleteExit(number int) (tailChainedTo int, chained bool, err error) {
	e, err := n.mustException(number)
	if err != nil {
		return 0, false, err
	}
	if e.State != Exit {
		return 0, false, simerr.InternalErrorf("exception %d: CompleteExit from state %v", number, e.State)
	}

	e.Active = false
	n.popActive(number)

	if next, ok := n.HighestPendingEligible(); ok {
		e.State = TailChained
		if err := n.BeginEntry(next.Number); err != nil {
			return 0, false, err
		}
		return next.Number, true, nil
	}

	e.State = None
	return 0, false, nil
}

func (n *NVIC) mustException(number int) (*Exception, error) {
	if number < 0 || number >= NumExceptions {
		return nil, simerr.InvalidInputf("exception number out of range: %d", number)
	}
	return &n.exceptions[number], nil
}

func (n *NVIC) popActive(number int) {
	for i, v := range n.activeStack {
		if v == number {
			n.activeStack = append(n.activeStack[:i], n.activeStack[i+1:]...)
			return
		}
	}
}

// WakeUp models WFI semantics (§4.4): an asynchronous exception that
// would preempt at PRIMASK==0 always wakes the CPU from sleep, but only
// actually takes the exception (returns true) when it is currently
// eligible; a spurious wakeup (false) still ends the sleep.
func (n *NVIC) WakeUp(number int) (takeException bool, err error) {
	e, err := n.mustException(number)
	if err != nil {
		return false, err
	}
	if !e.Enabled || !e.Pending {
		return false, nil
	}
	if int(e.Priority) < n.ExecutionPriority() {
		return true, nil
	}
	return false, nil
}
