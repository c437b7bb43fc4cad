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

// Package testbundle opens and verifies the archives consumed by the test
// and benchmark runners. A bundle is either a plain directory, a .zip, or a
// .tzst (a zstd-compressed tar), and holds, per numbered test case N, an
// "N.flash" image and an "N.dump" MessagePack record, plus an optional
// "N.asm" source entry. An "<archive>.asm" file beside the archive is not
// read.
package testbundle
