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

package nvic_test

import (
	"testing"

	"github.com/m3sim/cc2650emu/core/nvic"
	"github.com/m3sim/cc2650emu/test"
)

func TestFixedPriorities(t *testing.T) {
	n := nvic.New()
	reset, err := n.Exception(nvic.ExceptionReset)
	test.ExpectSuccess(t, err)
	test.Equate(t, reset.Priority, int8(nvic.PriorityReset))

	hf, err := n.Exception(nvic.ExceptionHardFault)
	test.ExpectSuccess(t, err)
	test.Equate(t, hf.Priority, int8(nvic.PriorityHardFault))
}

func TestExecutionPriorityDefaultsToThread(t *testing.T) {
	n := nvic.New()
	test.Equate(t, n.ExecutionPriority(), nvic.ThreadPriority)
}

func TestHighestPendingEligiblePicksLowestPriority(t *testing.T) {
	n := nvic.New()
	test.ExpectSuccess(t, n.SetEnabled(16, true))
	test.ExpectSuccess(t, n.SetPriority(16, 0x40))
	test.ExpectSuccess(t, n.SetPending(16, true))

	test.ExpectSuccess(t, n.SetEnabled(17, true))
	test.ExpectSuccess(t, n.SetPriority(17, 0x20))
	test.ExpectSuccess(t, n.SetPending(17, true))

	e, ok := n.HighestPendingEligible()
	test.ExpectSuccess(t, ok)
	test.Equate(t, e.Number, 17)
}

func TestDisabledOrNonPendingIsNotEligible(t *testing.T) {
	n := nvic.New()
	test.ExpectSuccess(t, n.SetPriority(16, 0x40))
	test.ExpectSuccess(t, n.SetPending(16, true))
	// not enabled
	_, ok := n.HighestPendingEligible()
	test.ExpectFailure(t, ok)
}

func TestEntryExitStateMachine(t *testing.T) {
	n := nvic.New()
	test.ExpectSuccess(t, n.SetEnabled(16, true))
	test.ExpectSuccess(t, n.SetPriority(16, 0x40))
	test.ExpectSuccess(t, n.SetPending(16, true))

	test.ExpectSuccess(t, n.BeginEntry(16))
	e, _ := n.Exception(16)
	test.Equate(t, e.State, nvic.Entry)
	test.ExpectSuccess(t, e.Active)

	test.ExpectSuccess(t, n.FinishedEntry(16))
	e, _ = n.Exception(16)
	test.Equate(t, e.State, nvic.Handling)

	test.ExpectSuccess(t, n.StartedExit(16))
	_, chained, err := n.CompleteExit(16)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, chained)

	e, _ = n.Exception(16)
	test.Equate(t, e.State, nvic.None)
	test.ExpectFailure(t, e.Active)
}

func TestActiveCountTracksEntryExit(t *testing.T) {
	n := nvic.New()
	test.Equate(t, n.ActiveCount(), 0)

	test.ExpectSuccess(t, n.SetEnabled(16, true))
	test.ExpectSuccess(t, n.SetPriority(16, 0x40))
	test.ExpectSuccess(t, n.SetPending(16, true))
	test.ExpectSuccess(t, n.BeginEntry(16))
	test.Equate(t, n.ActiveCount(), 1)

	test.ExpectSuccess(t, n.FinishedEntry(16))
	test.ExpectSuccess(t, n.StartedExit(16))
	_, _, err := n.CompleteExit(16)
	test.ExpectSuccess(t, err)
	test.Equate(t, n.ActiveCount(), 0)
}

func TestTailChaining(t *testing.T) {
	n := nvic.New()
	test.ExpectSuccess(t, n.SetEnabled(16, true))
	test.ExpectSuccess(t, n.SetPriority(16, 0x40))
	test.ExpectSuccess(t, n.SetPending(16, true))
	test.ExpectSuccess(t, n.BeginEntry(16))
	test.ExpectSuccess(t, n.FinishedEntry(16))

	// a higher-priority interrupt arrives while 16 is being handled
	test.ExpectSuccess(t, n.SetEnabled(17, true))
	test.ExpectSuccess(t, n.SetPriority(17, 0x20))
	test.ExpectSuccess(t, n.SetPending(17, true))

	test.ExpectSuccess(t, n.StartedExit(16))
	chainedTo, chained, err := n.CompleteExit(16)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, chained)
	test.Equate(t, chainedTo, 17)

	e, _ := n.Exception(17)
	test.Equate(t, e.State, nvic.Entry)
}

func TestVectorAddress(t *testing.T) {
	n := nvic.New()
	n.VTOR = 0x10000000
	test.Equate(t, n.VectorAddress(5), uint32(0x10000014))
}

func TestWakeUpSpuriousVsReal(t *testing.T) {
	n := nvic.New()
	test.ExpectSuccess(t, n.SetEnabled(16, true))
	test.ExpectSuccess(t, n.SetPriority(16, 0x40))
	test.ExpectSuccess(t, n.SetPending(16, true))

	take, err := n.WakeUp(16)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, take)

	n2 := nvic.New()
	take, err = n2.WakeUp(16) // never enabled/pending
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, take)
}

func TestExceptionOutOfRange(t *testing.T) {
	n := nvic.New()
	_, err := n.Exception(999)
	test.ExpectFailure(t, err == nil)
}
