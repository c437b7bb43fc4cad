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

// Package power implements the PRCM/WUC/OSC sequencing state machines
// (§4.7): power-domain readiness orchestration, wake-event handling, and
// fast-clock source switching, all observing the two-phase cycle
// discipline used throughout the core.
package power

import "github.com/m3sim/cc2650emu/simerr"

// PRCMState is the per-power-domain sleep sequencing state.
type PRCMState int

// List of valid PRCMState values, in the order §4.7 transitions through
// them on a sleep request.
const (
	CpuActive PRCMState = iota
	WaitForClocks
	WaitForDomains
	PowerOff
)

// PRCM orchestrates per-power-domain readiness, requesting the clock
// tree to gate and the WUC to deep-power-down as it proceeds.
type PRCM struct {
	State PRCMState

	clocksGated bool
	domainsDown bool
}

// NewPRCM returns a PRCM in CpuActive state.
func NewPRCM() *PRCM {
	return &PRCM{State: CpuActive}
}

// RequestSleep begins the sleep sequence; it returns an InternalError if
// the PRCM is not in CpuActive.
func (p *PRCM) RequestSleep() error {
	if p.State != CpuActive {
		return simerr.InternalErrorf("PRCM: sleep requested from state %d", p.State)
	}
	p.State = WaitForClocks
	return nil
}

// ClocksGated is called by the clock tree once it has honoured the gate
// request; it advances PRCM to WaitForDomains.
func (p *PRCM) ClocksGated() error {
	if p.State != WaitForClocks {
		return simerr.InternalErrorf("PRCM: ClocksGated from state %d", p.State)
	}
	p.clocksGated = true
	p.State = WaitForDomains
	return nil
}

// DomainsPoweredDown is called by the WUC once power domains have
// reached deep-power-down; it advances PRCM to Off.
func (p *PRCM) DomainsPoweredDown() error {
	if p.State != WaitForDomains {
		return simerr.InternalErrorf("PRCM: DomainsPoweredDown from state %d", p.State)
	}
	p.domainsDown = true
	p.State = PowerOff
	return nil
}

// Wake reverses the sequence in response to a WUC wake event, returning
// straight to CpuActive (§4.7: "restores clocks in reverse order" is
// modelled here as a single atomic transition since the clock tree
// itself enforces per-node ordering during the restore).
func (p *PRCM) Wake() error {
	if p.State == CpuActive {
		return simerr.InternalErrorf("PRCM: Wake while already CpuActive")
	}
	p.State = CpuActive
	p.clocksGated = false
	p.domainsDown = false
	return nil
}

// WUC receives MCU wake events, forwarded from NVIC's asynchronous
// exceptions, and notifies the PRCM.
type WUC struct {
	prcm       *PRCM
	deepAsleep bool
}

// NewWUC binds a WUC to the PRCM it notifies.
func NewWUC(prcm *PRCM) *WUC {
	return &WUC{prcm: prcm}
}

// EnterDeepPowerDown is called once the PRCM reaches WaitForDomains.
func (w *WUC) EnterDeepPowerDown() error {
	if err := w.prcm.DomainsPoweredDown(); err != nil {
		return err
	}
	w.deepAsleep = true
	return nil
}

// WakeEvent is called when an asynchronous (NVIC) exception arrives
// while the system is in deep power-down; it wakes the PRCM.
func (w *WUC) WakeEvent() error {
	if !w.deepAsleep {
		return nil
	}
	w.deepAsleep = false
	return w.prcm.Wake()
}

// OscSource identifies a fast-clock source.
type OscSource int

// List of valid OscSource values.
const (
	SourceRC OscSource = iota
	SourceXOSC
)

// OSC handles fast-clock source switching, including the "allow switch"
// handshake and stability tracking. It holds no reference to the PRCM
// and does not notify it when a source becomes stable.
type OSC struct {
	Current     OscSource
	switchAllowed bool
	pending     *OscSource
	stable      bool
}

// NewOSC returns an OSC running from the RC source.
func NewOSC() *OSC {
	return &OSC{Current: SourceRC, stable: true}
}

// AllowSwitch grants (or revokes) permission for a source switch to
// proceed, per the required handshake.
func (o *OSC) AllowSwitch(allow bool) {
	o.switchAllowed = allow
}

// RequestSwitch requests a new source, which becomes current at the next
// SourceStable; it returns an InternalError unless AllowSwitch(true) has
// been granted.
func (o *OSC) RequestSwitch(src OscSource) error {
	if !o.switchAllowed {
		return simerr.InternalErrorf("OSC: switch requested without handshake permission")
	}
	o.pending = &src
	o.stable = false
	return nil
}

// SourceStable is called once the new source has settled; it completes
// the pending switch and marks the OSC stable. No PRCM is notified.
func (o *OSC) SourceStable() {
	if o.pending != nil {
		o.Current = *o.pending
		o.pending = nil
	}
	o.stable = true
}

// Stable reports whether the currently selected source has settled.
func (o *OSC) Stable() bool {
	return o.stable
}
