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

package dbgmem

import (
	"fmt"
	"strings"
)

// AddressInfo is returned by Inspector's Peek and Poke. It contains
// everything useful to know about an access: the resolved address, its
// symbol (if any), and, once the access has actually taken place, the data
// read or written.
type AddressInfo struct {
	Address uint32
	Symbol  string

	// Write is true if this AddressInfo was produced by Poke rather than
	// Peek.
	Write bool

	// Accessed is false if the access has not actually happened yet, in
	// which case Data is not meaningful.
	Accessed bool
	Data     uint8
}

func (ai AddressInfo) String() string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%#08x", ai.Address))

	if ai.Symbol != "" {
		s.WriteString(fmt.Sprintf(" (%s)", ai.Symbol))
	}

	if ai.Accessed {
		s.WriteString(fmt.Sprintf(" -> %#02x", ai.Data))
	}

	return s.String()
}
