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

package bus

import (
	"github.com/m3sim/cc2650emu/core/flop"
	"github.com/m3sim/cc2650emu/simerr"
)

// SlavePort drives a single slave's response to the current address/data
// phase, enforcing the §3.4 transition table and the §6.3 timing rules
// (single-cycle Success, two-cycle Error).
type SlavePort struct {
	lastResponse *flop.SeqFlop[ResponseKind]
	errorTail    *flop.SeqFlop[bool]
}

// NewSlavePort returns a port with no response pending (treated as
// Success for the purpose of the first transition check).
func NewSlavePort() *SlavePort {
	return &SlavePort{
		lastResponse: flop.NewSeqFlop(Success),
		errorTail:    flop.NewSeqFlop(false),
	}
}

// Respond validates and commits a response for this cycle. When the slave
// wants to signal a bus error, callers drive Error1 on the cycle the error
// is detected; Respond automatically requires Error2 on the following
// cycle before any other response kind is accepted, per the "two-cycle
// Error response" rule.
func (p *SlavePort) Respond(kind ResponseKind) (Response, error) {
	if p.errorTail.Read() && kind != Error2 {
		return Response{}, simerr.InternalErrorf("AHB-Lite violation: Error1 must be followed by Error2, got %v", kind)
	}

	if !ValidTransition(p.lastResponse.Read(), kind) {
		return Response{}, simerr.InternalErrorf("AHB-Lite violation: illegal response transition %v -> %v", p.lastResponse.Read(), kind)
	}

	p.lastResponse.Write(kind)
	p.errorTail.Write(kind == Error1)

	return Response{Kind: kind}, nil
}

// Commit advances the port's flops to the next cycle.
func (p *SlavePort) Commit() error {
	if err := p.lastResponse.Commit(); err != nil {
		return err
	}
	return p.errorTail.Commit()
}
