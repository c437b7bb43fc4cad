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

package vims

// poly is the fixed 255-entry way-eviction sequence (§3.8), transcribed
// verbatim from the cache controller's own POLY table. Not all cache
// misses choose their way from this sequence, the rules for shifting the
// position in it are non-trivial, and in some cases the value read from
// it is altered (see chooseWay) before it's used as a way number.
var poly = [255]byte{
	0, 0, 0, 0, 0, 0, 1, 2, 0, 0, 1, 3, 3, 2, 0, 0,
	1, 2, 0, 1, 2, 1, 3, 3, 2, 0, 0, 0, 0, 0, 1, 3,
	2, 0, 1, 2, 0, 1, 2, 0, 1, 3, 2, 1, 3, 3, 2, 0,
	1, 2, 0, 0, 0, 0, 1, 2, 1, 2, 1, 3, 2, 1, 3, 2,
	1, 2, 1, 3, 2, 0, 1, 2, 1, 3, 2, 0, 0, 0, 1, 3,
	3, 3, 3, 2, 1, 3, 2, 1, 3, 3, 3, 2, 1, 2, 1, 3,
	3, 2, 1, 2, 0, 0, 1, 2, 0, 0, 0, 1, 3, 2, 1, 3,
	2, 0, 0, 1, 3, 3, 3, 2, 0, 1, 3, 3, 2, 0, 1, 3,
	2, 0, 0, 1, 2, 1, 3, 2, 1, 2, 0, 1, 2, 0, 0, 1,
	2, 1, 2, 0, 1, 2, 1, 2, 1, 2, 0, 1, 3, 3, 2, 1,
	3, 3, 2, 1, 3, 2, 0, 1, 3, 3, 3, 2, 1, 3, 3, 3,
	3, 3, 2, 1, 2, 0, 1, 3, 2, 0, 1, 3, 2, 1, 2, 1,
	2, 0, 0, 1, 3, 2, 0, 0, 0, 0, 1, 3, 3, 2, 1, 2,
	1, 2, 1, 2, 1, 3, 3, 3, 3, 2, 0, 1, 2, 1, 2, 0,
	0, 0, 1, 2, 0, 1, 3, 3, 3, 3, 3, 3, 3, 2, 0, 0,
	0, 1, 2, 1, 3, 3, 3, 2, 0, 0, 1, 3, 2, 1, 2,
}
