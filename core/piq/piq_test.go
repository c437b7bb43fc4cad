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

package piq_test

import (
	"testing"

	"github.com/m3sim/cc2650emu/core/piq"
	"github.com/m3sim/cc2650emu/test"
)

func TestPopulateFillsHeadBeforeQueue(t *testing.T) {
	p := piq.New()
	test.ExpectFailure(t, p.HeadOccupied())

	p.Populate(0x1111)
	test.ExpectSuccess(t, p.HeadOccupied())
	test.Equate(t, p.QueueLen(), 0)

	p.Populate(0x2222)
	p.Populate(0x3333)
	test.Equate(t, p.QueueLen(), 1)
}

func TestShiftHalfSlidesQueueForward(t *testing.T) {
	p := piq.New()
	p.Populate(0x1111)
	p.Populate(0x2222)
	p.Populate(0x3333)

	out, ok := p.ShiftHalf()
	test.ExpectSuccess(t, ok)
	test.Equate(t, out.Half, uint16(0x1111))
	test.Equate(t, p.QueueLen(), 0)

	out, ok = p.ShiftHalf()
	test.ExpectSuccess(t, ok)
	test.Equate(t, out.Half, uint16(0x2222))
}

func TestShiftFullConsumesWholeHead(t *testing.T) {
	p := piq.New()
	p.Populate(0x1111)
	p.Populate(0x2222)
	p.Populate(0x3333)
	p.Populate(0x4444)

	out, ok := p.ShiftFull()
	test.ExpectSuccess(t, ok)
	test.Equate(t, out[0].Half, uint16(0x1111))
	test.Equate(t, out[1].Half, uint16(0x2222))
	test.ExpectSuccess(t, p.HeadOccupied())
	test.Equate(t, p.QueueLen(), 0)
}

func TestShiftOnEmptyPIQFails(t *testing.T) {
	p := piq.New()
	_, ok := p.ShiftHalf()
	test.ExpectFailure(t, ok)

	_, ok = p.ShiftFull()
	test.ExpectFailure(t, ok)
}

func TestConservationInvariantHolds(t *testing.T) {
	p := piq.New()
	test.ExpectSuccess(t, p.CheckConservation(false))

	p.Populate(0x1111)
	p.Populate(0x2222)
	p.Populate(0x3333)
	p.Populate(0x4444)
	p.Populate(0x5555)
	p.Populate(0x6666)
	test.ExpectSuccess(t, p.CheckConservation(false))
}

func TestShadowRingRetainsPhantomHalfword(t *testing.T) {
	p := piq.New()
	p.Populate(0x1111)
	p.Populate(0x2222) // e.g. the second halfword of a wide instruction

	_, _ = p.ShiftFull() // decode has moved past both halfwords

	// the phantom IT curse: the shadow ring still has the stale halfword
	// even though the train view head/queue are now empty.
	test.Equate(t, p.ShadowAt(0).Half, uint16(0x2222))
	test.Equate(t, p.ShadowAt(1).Half, uint16(0x1111))
}

func TestOnBranchResetsShadowTail(t *testing.T) {
	p := piq.New()
	p.Populate(0x1111)
	p.Populate(0x2222)

	p.OnBranch(0x1000, true, 0, false, 0, 0)
	p.Populate(0x3333)
	test.Equate(t, p.ShadowAt(0).Half, uint16(0x3333))
}

func TestOnBranchUnalignedLoadsPrecedingHalfword(t *testing.T) {
	p := piq.New()
	p.OnBranch(0x1002, false, 0xAAAA, false, 0, 0)
	test.Equate(t, p.Shadow()[0].Half, uint16(0xAAAA))
}

func TestOnBranchHeldMovesBranchBytesToTail(t *testing.T) {
	p := piq.New()
	p.OnBranch(0x1000, true, 0, true, 0xBEEF, 0xCAFE)
	test.Equate(t, p.Shadow()[4].Half, uint16(0xBEEF))
	test.Equate(t, p.Shadow()[5].Half, uint16(0xCAFE))
}

func TestReset(t *testing.T) {
	p := piq.New()
	p.Populate(0x1111)
	p.Reset()
	test.ExpectFailure(t, p.HeadOccupied())
	test.Equate(t, p.QueueLen(), 0)
}
