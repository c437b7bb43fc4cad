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

// Package bus models the AHB-Lite address-phase/data-phase wires that
// connect a master (Fetch, LSU) to a slave (VIMS, peripheral decoders)
// through the interconnect. It captures only the signal shapes and legal
// transitions the spec requires (§3.4, §6.3); it is not a general-purpose
// bus-modelling library.
package bus

import "github.com/m3sim/cc2650emu/core"

// Direction is the transfer direction of an address-phase request.
type Direction int

// List of valid Direction values.
const (
	Read Direction = iota
	Write
)

// Protection carries the HPROT-derived qualifiers of a transfer.
type Protection struct {
	IsData        bool
	IsPrivileged  bool
	IsBufferable  bool
	IsCacheable   bool
}

// TransferMeta describes a NonSeq or Seq address-phase transfer.
type TransferMeta struct {
	Addr       core.Address
	Size       core.TransferSize
	Direction  Direction
	Burst      int
	Protection Protection
}

// TransferKind distinguishes the four AHB-Lite address-phase states
// (Idle, Busy, NonSeq, Seq) plus NoSel.
type TransferKind int

// List of valid TransferKind values.
const (
	Idle TransferKind = iota
	Busy
	NonSeq
	Seq
	NoSel
)

// TransferType is the address-phase signal group: a kind tag plus, for
// NonSeq/Seq, the transfer's metadata.
type TransferType struct {
	Kind TransferKind
	Meta TransferMeta

	// Lock indicates the transfer is part of a locked (atomic) sequence.
	Lock bool

	// Ready mirrors HREADY fed back from the slave: while false, the
	// address phase persists (per §6.3, "address phase persistence under
	// HREADY=0").
	Ready bool
}

// IdleTransfer is the canonical Idle address phase.
func IdleTransfer() TransferType {
	return TransferType{Kind: Idle, Ready: true}
}

// DataPhase is the data-phase signal group following an address phase:
// the payload plus a provenance tag for debug tracing (replacing the
// teacher source's phantom-typed per-port generics, per §9).
type DataPhase struct {
	Data core.DataBus
	Tag  string
}

// ResponseKind is the slave-to-master response signal.
type ResponseKind int

// List of valid ResponseKind values (§3.4).
const (
	Success ResponseKind = iota
	Pending
	Error1
	Error2
)

// Response pairs a ResponseKind with the data phase it accompanies.
type Response struct {
	Kind ResponseKind
	Data DataPhase
}

// ValidTransition reports whether moving from 'from' to 'to' is a legal
// AhbResponseControl transition per §3.4:
//
//	from Error1 only Error2 may follow
//	Error2 may not follow Error2 directly
//	Pending/Success/Error2 may not transition into Error2 in a single step
func ValidTransition(from, to ResponseKind) bool {
	if from == Error1 {
		return to == Error2
	}
	if to == Error2 {
		// only reachable from Error1, handled above
		return false
	}
	return true
}
