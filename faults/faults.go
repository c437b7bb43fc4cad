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

// Package faults records the ARMv7-M fault escalations that abort a run, for
// post-mortem reporting. It does not participate in the cycle-accurate core
// itself, and the NVIC does not report into it: entries are added by
// calling Log's methods directly.
package faults

import (
	"fmt"
	"io"
)

// Category classifies which of the four ARMv7-M fault handlers a fault
// escalated to.
type Category string

// List of valid Category values.
const (
	HardFault  Category = "HardFault"
	MemManage  Category = "MemManage"
	BusFault   Category = "BusFault"
	UsageFault Category = "UsageFault"
)

// Entry is a single entry in the fault log.
type Entry struct {
	Category Category

	// description of the event that triggered the fault
	Event string

	// addresses related to the fault
	InstructionAddr uint32
	AccessAddr      uint32

	// number of times this specific fault has been seen
	Count int
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s: %08x (PC: %08x)", e.Category, e.Event, e.AccessAddr, e.InstructionAddr)
}

// Log records the faults raised over the course of a run, keyed by the
// instruction address and access address that triggered them.
type Log struct {
	entries map[string]*Entry

	// Entries in the order they first appeared. The Count field on each
	// Entry tracks whether it recurred after that.
	Entries []*Entry

	// HasLockup is true once a fault has escalated while already in the
	// hard fault handler (the ARMv7-M "lockup" state). Once set, subsequent
	// faults are still counted but the run is assumed unrecoverable.
	HasLockup bool
}

// NewLog returns an empty, ready to use fault log.
func NewLog() Log {
	return Log{
		entries: make(map[string]*Entry),
	}
}

// Clear removes all entries from the log. HasLockup is not reset.
func (flt *Log) Clear() {
	clear(flt.entries)
	flt.Entries = flt.Entries[:0]
}

// Write writes the list of faults, in the order they were first added, one
// per line.
func (flt Log) Write(w io.Writer) {
	for _, e := range flt.Entries {
		fmt.Fprintln(w, e.String())
	}
}

// Record adds a fault to the log, or increments the repeat counter if the
// same instruction/access pair has already been recorded.
func (flt *Log) Record(event string, category Category, instructionAddr uint32, accessAddr uint32) {
	key := fmt.Sprintf("%08x%08x", instructionAddr, accessAddr)

	e, found := flt.entries[key]
	if !found {
		e = &Entry{
			Category:        category,
			Event:           event,
			InstructionAddr: instructionAddr,
			AccessAddr:      accessAddr,
		}
		flt.entries[key] = e
		flt.Entries = append(flt.Entries, e)
	}

	e.Count++

	if category == HardFault && found {
		flt.HasLockup = true
	}
}
