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

package faults_test

import (
	"testing"

	"github.com/m3sim/cc2650emu/faults"
	"github.com/m3sim/cc2650emu/test"
)

func TestRecordNewEntry(t *testing.T) {
	log := faults.NewLog()
	log.Record("write to unmapped region", faults.BusFault, 0x00000100, 0x50000000)

	test.Equate(t, len(log.Entries), 1)
	test.Equate(t, log.Entries[0].Category, faults.BusFault)
	test.Equate(t, log.Entries[0].Count, 1)
	test.ExpectFailure(t, log.HasLockup)
}

func TestRecordRepeatedEntry(t *testing.T) {
	log := faults.NewLog()
	log.Record("unaligned word access", faults.UsageFault, 0x00000200, 0x20000001)
	log.Record("unaligned word access", faults.UsageFault, 0x00000200, 0x20000001)
	log.Record("unaligned word access", faults.UsageFault, 0x00000200, 0x20000001)

	test.Equate(t, len(log.Entries), 1)
	test.Equate(t, log.Entries[0].Count, 3)
}

func TestDistinctEntriesAreSeparate(t *testing.T) {
	log := faults.NewLog()
	log.Record("a", faults.MemManage, 0x00000300, 0x00000000)
	log.Record("b", faults.MemManage, 0x00000304, 0x00000004)

	test.Equate(t, len(log.Entries), 2)
}

func TestLockupDetection(t *testing.T) {
	log := faults.NewLog()
	log.Record("double fault", faults.HardFault, 0x00000000, 0x00000000)
	test.ExpectFailure(t, log.HasLockup)

	log.Record("double fault", faults.HardFault, 0x00000000, 0x00000000)
	test.ExpectSuccess(t, log.HasLockup)
}

func TestClear(t *testing.T) {
	log := faults.NewLog()
	log.Record("a", faults.BusFault, 1, 2)
	log.Clear()
	test.Equate(t, len(log.Entries), 0)
}

func TestEntryString(t *testing.T) {
	e := faults.Entry{
		Category:        faults.BusFault,
		Event:           "write to unmapped region",
		InstructionAddr: 0x100,
		AccessAddr:      0x50000000,
	}
	test.Equate(t, e.String(), "BusFault: write to unmapped region: 50000000 (PC: 00000100)")
}
