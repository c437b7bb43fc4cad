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

package testbundle_test

import (
	"testing"

	"github.com/m3sim/cc2650emu/test"
	"github.com/m3sim/cc2650emu/testbundle"
)

func TestFlashBusReadsLoadedImage(t *testing.T) {
	b := testbundle.NewFlashBus([]byte{0xde, 0xad, 0xbe, 0xef})

	v, err := b.PeekByte(testbundle.FlashBase + 2)
	test.ExpectSuccess(t, err)
	test.Equate(t, v, uint8(0xbe))
}

func TestFlashBusReadHalfwordIsLittleEndian(t *testing.T) {
	b := testbundle.NewFlashBus([]byte{0xde, 0xad, 0xbe, 0xef})

	h, err := b.ReadHalfword(testbundle.FlashBase)
	test.ExpectSuccess(t, err)
	test.Equate(t, h, uint16(0xadde))
}

func TestFlashBusPokeIsReadBackOutsideFlash(t *testing.T) {
	b := testbundle.NewFlashBus(nil)

	err := b.PokeByte(0x20000000, 0x42)
	test.ExpectSuccess(t, err)

	v, err := b.PeekByte(0x20000000)
	test.ExpectSuccess(t, err)
	test.Equate(t, v, uint8(0x42))
}

func TestFlashBusUnmappedAddressFails(t *testing.T) {
	b := testbundle.NewFlashBus([]byte{0x01})

	_, err := b.PeekByte(0x20000000)
	test.ExpectFailure(t, err == nil)
}
