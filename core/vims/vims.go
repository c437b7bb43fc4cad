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

// Package vims implements the 4-way set-associative prefetch cache
// (§3.8, §4.5): tag RAM lookup, the POLY+next-way-position eviction
// scheme and its three special-case overrides, and the GPRAM/Cache/Off
// mode machine.
package vims

import (
	"github.com/m3sim/cc2650emu/crunched"
	"github.com/m3sim/cc2650emu/simerr"
)

const (
	numSets  = 256
	numWays  = 4
	lineSize = 8

	setBits = 8 // log2(numSets)
	setMask = numSets - 1

	dataArraySize = numSets * numWays * lineSize // 8 KiB
)

// Mode is one of the three VIMS operating modes (§3.8).
type Mode int

// List of valid Mode values.
const (
	GPRAM Mode = iota
	CacheMode
	Off
)

type tagEntry struct {
	valid bool
	tag   uint32
}

type setState struct {
	ways        [numWays]tagEntry
	nextWay     int
	treatedFull bool
}

func (s *setState) full() bool {
	for _, w := range s.ways {
		if !w.valid {
			return false
		}
	}
	return true
}

// Cache holds the tag RAM and eviction bookkeeping for all 256 sets.
type Cache struct {
	mode Mode
	sets [numSets]setState

	polyPosition int

	tagPrefetch    uint32
	hasPrefetch    bool
	prefetchAgeCy  int
	coincidesGPRAM bool

	lastMissSet      int
	hasLastMiss      bool
	lastWasPrefetch  bool
	lastReusedPosFor int
	hasLastReusedPos bool

	requestInFlight bool

	hitCount  uint64
	missCount uint64

	// lines is the GPRAM-backed data array shared by both GPRAM and
	// Cache modes (§3.8: "stored in the same memory as GPRAM when in
	// Cache mode"). A line's offset is (set + 256*way)*8, per §4.5.
	lines crunched.Data
}

// New returns a Cache in GPRAM mode with empty tag RAM.
func New() *Cache {
	return &Cache{mode: GPRAM, lines: crunched.NewQuick(dataArraySize)}
}

// LineOffset computes a line's byte offset into the shared GPRAM/Cache
// data array, per §4.5.
func LineOffset(set, way int) int {
	return (set + numSets*way) * lineSize
}

// ReadLine returns the 8 bytes stored for (set, way).
func (c *Cache) ReadLine(set, way int) [lineSize]byte {
	data := *c.lines.Data()
	off := LineOffset(set, way)
	var line [lineSize]byte
	copy(line[:], data[off:off+lineSize])
	return line
}

// WriteLine stores 8 bytes for (set, way).
func (c *Cache) WriteLine(set, way int, line [lineSize]byte) {
	data := *c.lines.Data()
	off := LineOffset(set, way)
	copy(data[off:off+lineSize], line[:])
}

// Snapshot returns a compacted copy of the cache's data array, suitable
// for cheap storage between test runs.
func (c *Cache) Snapshot() crunched.Data {
	return c.lines.Snapshot()
}

// Mode returns the current operating mode.
func (c *Cache) Mode() Mode {
	return c.mode
}

// SetMode transitions the operating mode. Per §4.5 this only commits when
// no request is in flight; entering Cache mode zeroes all cache metadata.
func (c *Cache) SetMode(m Mode) error {
	if c.requestInFlight {
		return simerr.InternalErrorf("VIMS mode switch attempted with a request in flight")
	}
	if m == CacheMode {
		*c = Cache{mode: CacheMode, lines: crunched.NewQuick(dataArraySize)}
	} else {
		c.mode = m
	}
	return nil
}

// decode splits a byte address into its set index and 21-bit tag.
func decode(addr uint32) (set int, tag uint32) {
	set = int((addr >> 3) & setMask)
	tag = addr >> (3 + setBits)
	return
}

// LookupResult reports the outcome of a Lookup.
type LookupResult struct {
	Hit        bool
	Way        int
	Set        int
	Prefetched bool
}

// Lookup probes all 4 ways of addr's set. A hit means the line is
// already resident and can be read from GPRAM-backed line storage at
// base + (set + 256*way)*8 (§4.5); a miss requires a flash read and, two
// cycles after data returns, a tag update via Install.
func (c *Cache) Lookup(addr uint32) LookupResult {
	set, tag := decode(addr)
	s := &c.sets[set]

	for way, e := range s.ways {
		if e.valid && e.tag == tag {
			c.hitCount++
			return LookupResult{Hit: true, Way: way, Set: set}
		}
	}

	c.missCount++
	prefetched := c.hasPrefetch && addr == c.tagPrefetch
	return LookupResult{Hit: false, Set: set, Prefetched: prefetched}
}

// HitRate returns the fraction of Lookup calls that have hit so far, or
// 0 if Lookup has never been called.
func (c *Cache) HitRate() float64 {
	total := c.hitCount + c.missCount
	if total == 0 {
		return 0
	}
	return float64(c.hitCount) / float64(total)
}

// Install commits a tag-RAM update for a prior miss, choosing the
// eviction way per §4.5's ordered rule set, and remembers the
// miss-series bookkeeping (reuse/POLY+1/prefetch tracking) needed to
// evaluate the next miss's special cases.
func (c *Cache) Install(addr uint32, wasPrefetched bool) (way int) {
	set, tag := decode(addr)
	s := &c.sets[set]

	way = c.chooseWay(set, wasPrefetched)
	s.ways[way] = tagEntry{valid: true, tag: tag}

	if !wasPrefetched {
		c.polyPosition = (c.polyPosition + 1) % len(poly)
	}

	c.tagPrefetch = addr + lineSize
	c.hasPrefetch = true
	c.prefetchAgeCy = 0
	c.coincidesGPRAM = false

	c.lastWasPrefetch = wasPrefetched
	c.lastMissSet = set
	c.hasLastMiss = true

	return way
}

// chooseWay implements §4.5's eviction-way selection, applying the
// reuse-previous-way and POLY+1 special cases in order; the prefetch
// invalidation case is handled by TickPrefetchAging.
func (c *Cache) chooseWay(set int, wasPrefetched bool) int {
	s := &c.sets[set]

	if !s.full() {
		sameSetAsLast := c.hasLastMiss && c.lastMissSet == set
		reusePrevious := sameSetAsLast && c.lastWasPrefetch && !c.hasLastReusedPos

		if reusePrevious {
			pos := (s.nextWay - 1 + numWays) % numWays
			c.hasLastReusedPos = true
			c.lastReusedPosFor = set
			return pos
		}

		c.hasLastReusedPos = false
		way := s.nextWay
		s.nextWay = (s.nextWay + 1) % numWays
		return way
	}

	sameSetAsLast := c.hasLastMiss && c.lastMissSet == set
	polyPlusOne := sameSetAsLast && !wasPrefetched && !c.lastWasPrefetch

	base := int(poly[c.polyPosition]) % numWays
	if polyPlusOne {
		return (base + 1) % numWays
	}
	return base
}

// TickPrefetchAging advances the "do-not-use-prefetch" timers (§4.5
// special case 3): tag_prefetch is invalidated 2 cycles after a flash
// read, or 3 cycles after one that coincided with a GPRAM read.
func (c *Cache) TickPrefetchAging(coincidesGPRAMRead bool) {
	if !c.hasPrefetch {
		return
	}
	if c.prefetchAgeCy == 0 {
		c.coincidesGPRAM = coincidesGPRAMRead
	}
	c.prefetchAgeCy++

	limit := 2
	if c.coincidesGPRAM {
		limit = 3
	}
	if c.prefetchAgeCy >= limit {
		c.hasPrefetch = false
	}
}

// BeginRequest marks a request as in flight, blocking mode transitions
// until EndRequest is called.
func (c *Cache) BeginRequest() {
	c.requestInFlight = true
}

// EndRequest clears the in-flight marker.
func (c *Cache) EndRequest() {
	c.requestInFlight = false
}
