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

package dbgmem_test

import (
	"testing"

	"github.com/m3sim/cc2650emu/dbgmem"
	"github.com/m3sim/cc2650emu/test"
)

func TestFormatChunkByteHex(t *testing.T) {
	test.Equate(t, dbgmem.FormatChunk([]byte{0x01, 0xab, 0xff}, dbgmem.ByteHex), "01 ab ff")
}

func TestFormatChunkWordHexLittleEndian(t *testing.T) {
	test.Equate(t, dbgmem.FormatChunk([]byte{0x34, 0x12, 0xff, 0x00}, dbgmem.WordHex), "1234 00ff")
}

func TestRoundTripAllFormats(t *testing.T) {
	data := []byte{0x00, 0x01, 0x7f, 0x80, 0xff, 0x10}

	for _, f := range []dbgmem.DisplayFormat{dbgmem.ByteHex, dbgmem.ByteDec, dbgmem.WordHex, dbgmem.WordDec} {
		s := dbgmem.FormatChunk(data, f)
		got, err := dbgmem.ParseChunk(s, f)
		test.ExpectSuccess(t, err)
		test.Equate(t, got, data)
	}
}

func TestRoundTripPartialWordZeroPads(t *testing.T) {
	data := []byte{0xaa, 0xbb, 0xcc}

	s := dbgmem.FormatChunk(data, dbgmem.WordHex)
	got, err := dbgmem.ParseChunk(s, dbgmem.WordHex)
	test.ExpectSuccess(t, err)

	want := append([]byte{}, data...)
	want = append(want, 0x00)
	test.Equate(t, got, want)
}

func TestParseChunkRejectsInvalidDigits(t *testing.T) {
	_, err := dbgmem.ParseChunk("zz", dbgmem.ByteHex)
	test.ExpectFailure(t, err == nil)
}
