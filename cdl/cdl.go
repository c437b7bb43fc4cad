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

// Package cdl implements the Cycle Debug Logger: a per-cycle capture of
// microarchitectural events (PIQ occupancy, cache hit/miss, active NVIC
// exception count) for offline analysis. Like logger.Logger it is an
// explicit value owned by the environment, never a package-level global,
// so that several emulations running side by side each keep their own
// trace.
package cdl

// Record is a single cycle's worth of microarchitectural state. The
// engine captures one for every stepped cycle while it is bound to an
// environment with a CDL; capture does not wait for EmulatorCDLStartAddr.
type Record struct {
	Cycle        uint64  `json:"cycle"`
	Phase        string  `json:"phase"`
	PIQOccupancy int     `json:"piq_occupancy"`
	CacheHitRate float64 `json:"cache_hit_rate"`
	NVICActive   int     `json:"nvic_active"`
	Detail       string  `json:"detail,omitempty"`
}

// Logger is a capacity-bounded ring of Records, mirroring logger.Logger's
// ring discipline so the two packages read the same way even though this
// one stores structured records rather than pre-rendered strings.
type Logger struct {
	capacity int
	records  []Record
	start    int
}

// NewLogger creates a Logger retaining at most capacity records.
func NewLogger(capacity int) *Logger {
	if capacity <= 0 {
		capacity = 1
	}
	return &Logger{capacity: capacity}
}

// Append records r, discarding the oldest retained record if the ring is
// full.
func (l *Logger) Append(r Record) {
	if len(l.records) < l.capacity {
		l.records = append(l.records, r)
		return
	}
	l.records[l.start] = r
	l.start = (l.start + 1) % l.capacity
}

// Clear empties the log.
func (l *Logger) Clear() {
	l.records = l.records[:0]
	l.start = 0
}

// Records returns every retained record, oldest first.
func (l *Logger) Records() []Record {
	if len(l.records) < l.capacity {
		out := make([]Record, len(l.records))
		copy(out, l.records)
		return out
	}
	out := make([]Record, 0, len(l.records))
	out = append(out, l.records[l.start:]...)
	out = append(out, l.records[:l.start]...)
	return out
}
