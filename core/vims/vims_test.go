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

package vims_test

import (
	"testing"

	"github.com/m3sim/cc2650emu/core/vims"
	"github.com/m3sim/cc2650emu/test"
)

func TestStartsInGPRAMMode(t *testing.T) {
	c := vims.New()
	test.Equate(t, c.Mode(), vims.GPRAM)
}

func TestLookupMissesOnEmptyCache(t *testing.T) {
	c := vims.New()
	r := c.Lookup(0x1000)
	test.ExpectFailure(t, r.Hit)
}

func TestInstallThenLookupHits(t *testing.T) {
	c := vims.New()
	addr := uint32(0x8000)
	r := c.Lookup(addr)
	test.ExpectFailure(t, r.Hit)

	way := c.Install(addr, false)
	test.ExpectSuccess(t, way >= 0 && way < 4)

	r = c.Lookup(addr)
	test.ExpectSuccess(t, r.Hit)
	test.Equate(t, r.Way, way)
}

func TestHitRateTracksLookups(t *testing.T) {
	c := vims.New()
	test.Equate(t, c.HitRate(), 0.0)

	addr := uint32(0x9000)
	c.Lookup(addr) // miss
	c.Install(addr, false)
	c.Lookup(addr) // hit

	test.Equate(t, c.HitRate(), 0.5)
}

func TestNextWayPositionAdvancesOnNonFullSet(t *testing.T) {
	c := vims.New()
	// four distinct lines mapping to the same set: stride by (256*8) to
	// keep the set index fixed while the tag changes.
	const stride = uint32(256 * 8)
	base := uint32(0x10000)

	seen := map[int]bool{}
	for i := 0; i < 4; i++ {
		addr := base + uint32(i)*stride
		c.Lookup(addr)
		way := c.Install(addr, false)
		seen[way] = true
	}
	test.Equate(t, len(seen), 4)
}

func TestModeSwitchBlockedDuringRequest(t *testing.T) {
	c := vims.New()
	c.BeginRequest()
	err := c.SetMode(vims.CacheMode)
	test.ExpectFailure(t, err == nil)

	c.EndRequest()
	test.ExpectSuccess(t, c.SetMode(vims.CacheMode))
	test.Equate(t, c.Mode(), vims.CacheMode)
}

func TestEnteringCacheModeClearsMetadata(t *testing.T) {
	c := vims.New()
	addr := uint32(0x4000)
	c.Lookup(addr)
	c.Install(addr, false)

	test.ExpectSuccess(t, c.SetMode(vims.CacheMode))
	r := c.Lookup(addr)
	test.ExpectFailure(t, r.Hit)
}

func TestLineStorageRoundTrips(t *testing.T) {
	c := vims.New()
	line := [8]byte{1, 2, 3, 4, 5, 6, 7, 8}
	c.WriteLine(5, 2, line)
	test.Equate(t, c.ReadLine(5, 2), line)
}

func TestLineOffsetDistinguishesWays(t *testing.T) {
	test.ExpectFailure(t, vims.LineOffset(5, 0) == vims.LineOffset(5, 1))
}

func TestPrefetchAgingInvalidatesAfterTwoCycles(t *testing.T) {
	c := vims.New()
	c.Install(0x2000, false)

	r := c.Lookup(0x2008) // addr + lineSize, still fresh
	test.ExpectSuccess(t, r.Prefetched)

	c.TickPrefetchAging(false)
	c.TickPrefetchAging(false)

	r = c.Lookup(0x2008)
	test.ExpectFailure(t, r.Prefetched)
}
